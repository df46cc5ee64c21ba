// SPDX-License-Identifier: MIT
// Package: tilewfc/wfc
//
// options.go — functional options for the Engine.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on meaningless input (nil logger/observer);
//     the engine itself never panics.
//   • Defaults: discard logger, no observers, early stopping on.

package wfc

import "log/slog"

// Option customizes an Engine at construction.
type Option func(*config)

type config struct {
	logger        *slog.Logger
	observers     []Observer
	earlyStopping bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:        slog.New(slog.DiscardHandler),
		earlyStopping: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("wfc: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithObserver appends an observer; observers are notified in the order
// they were added. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("wfc: WithObserver(nil)")
	}
	return func(c *config) {
		c.observers = append(c.observers, o)
	}
}

// WithEarlyStopping controls whether Run stops at the first contradiction
// (default true). With false, Run keeps placing cells for diagnostics and
// reports the first contradiction once nothing can advance.
func WithEarlyStopping(on bool) Option {
	return func(c *config) {
		c.earlyStopping = on
	}
}
