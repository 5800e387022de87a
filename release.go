// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug

package obdd

import "github.com/sirupsen/logrus"

const _DEBUG bool = false

func (d *Diagram) logStep(rule string, n *Node, fields logrus.Fields) {}
