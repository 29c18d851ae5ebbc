package abt

import (
	"log/slog"
)

// Engine performs the operations that may need to invent names: Subst,
// Equal, Args and String. An Engine is immutable once created and may be
// shared between goroutines.
type Engine struct {
	fresh  Freshener
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug output about renamed binders.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine that freshens names with the given strategy. A nil
// strategy selects DigitSuffix.
func New(fresh Freshener, opts ...Option) *Engine {
	if fresh == nil {
		fresh = DigitSuffix
	}
	e := &Engine{fresh: fresh}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Default is an engine using DigitSuffix.
var Default = New(DigitSuffix)

func (e *Engine) log() *slog.Logger {
	if e.logger == nil {
		return slog.Default()
	}
	return e.logger
}

// freshenAll picks a fresh name for each of names in turn, each one avoiding
// used and the names picked before it. It returns the extended set and
// whether any name had to change.
func (e *Engine) freshenAll(used Names, names []string) (Names, []string, bool) {
	scope := used.clone()
	fresh := make([]string, len(names))
	renamed := false
	for i, x := range names {
		y := e.findFresh(scope, x)
		scope.add(y)
		fresh[i] = y
		renamed = renamed || y != x
	}
	return scope, fresh, renamed
}
