package walker

import (
	"context"

	"go.uber.org/zap"
)

// Option configures optional behavior of Walk.
// Use with Walk(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for a walk.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked before every step.
	Ctx context.Context

	// OnStep, if non-nil, is invoked after every step with the new state.
	// Returning an error aborts the walk with that error.
	OnStep func(State) error

	// MaxSteps, if non-negative, bounds the number of cells entered.
	// Default is -1 (no limit).
	MaxSteps int

	// CycleDetection ends the walk with StatusCycleDetected when a
	// (position, direction) pair repeats. Default is true.
	CycleDetection bool

	// Vocabulary names the marker runes. Default is DefaultVocabulary().
	Vocabulary Vocabulary

	// Logger receives debug traces of turns and termination.
	// Default is a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No step hook
//   - No step limit (MaxSteps = -1)
//   - Cycle detection on
//   - DefaultVocabulary()
//   - zap.NewNop() logger
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnStep:         nil,
		MaxSteps:       -1,
		CycleDetection: true,
		Vocabulary:     DefaultVocabulary(),
		Logger:         zap.NewNop(),
	}
}

// WithContext returns an Option that sets the Context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep returns an Option that installs fn as a post-step hook.
// Panics on nil.
func WithOnStep(fn func(State) error) Option {
	if fn == nil {
		panic("walker: WithOnStep(nil)")
	}
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMaxSteps returns an Option that bounds the walk to limit entered cells.
// A limit of 0 returns just the entry marker; -1 removes the bound.
// Panics on limit < -1.
func WithMaxSteps(limit int) Option {
	if limit < -1 {
		panic("walker: WithMaxSteps(limit < -1)")
	}
	return func(o *Options) {
		o.MaxSteps = limit
	}
}

// WithCycleDetection returns an Option that enables or disables the
// repeated-state guard. With it disabled a looping path only ends through
// WithMaxSteps or cancellation.
func WithCycleDetection(on bool) Option {
	return func(o *Options) {
		o.CycleDetection = on
	}
}

// WithVocabulary returns an Option that replaces the marker runes.
// Panics when v.Validate fails.
func WithVocabulary(v Vocabulary) Option {
	if err := v.Validate(); err != nil {
		panic(err.Error())
	}
	return func(o *Options) {
		o.Vocabulary = v
	}
}

// WithLogger returns an Option that routes debug traces to l.
// Passing nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
