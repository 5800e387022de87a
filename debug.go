// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package obdd

import "github.com/sirupsen/logrus"

const _DEBUG bool = true

// logStep emits one structured log entry per reduction/elimination/prune
// step when the binary is built with `-tags debug`. Release builds compile
// this to a no-op (see release.go) so that the field-building in the hot
// path costs nothing in production, the same split the teacher makes
// between debug.go and the unconditional code paths in gc.go.
func (d *Diagram) logStep(rule string, n *Node, fields logrus.Fields) {
	if d.logger == nil {
		return
	}
	f := logrus.Fields{"rule": rule, "node": n.ID(), "level": n.Level()}
	for k, v := range fields {
		f[k] = v
	}
	d.logger.WithFields(f).Debug("bdd step")
}
