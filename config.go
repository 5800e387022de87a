// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import "github.com/sirupsen/logrus"

// Option configures a Diagram at construction time, in the teacher's
// functional-option idiom (config.go: Nodesize, Maxnodesize, Minfreenodes,
// ...). We only expose the two dials the spec actually names.
type Option func(*settings)

type settings struct {
	logger       logrus.FieldLogger
	autoValidate bool
}

func defaultSettings() *settings {
	return &settings{
		logger:       logrus.StandardLogger(),
		autoValidate: false,
	}
}

// WithLogger is an Option. Used at diagram construction, it sets the
// destination for the structured debug logging emitted during minimize
// and prune (see debug.go). The default logger is
// logrus.StandardLogger(), which is silent at the default log level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) { s.logger = l }
}

// WithAutoValidate is an Option. When enabled, EnsureCorrectBdd runs after
// every public mutating operation returns, the way spec.md §4.6 describes
// debug-mode validation. This is expensive (a full-graph walk) and meant
// for tests and development, not production use with large diagrams.
func WithAutoValidate(on bool) Option {
	return func(s *settings) { s.autoValidate = on }
}
