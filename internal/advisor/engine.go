package advisor

import (
	"context"
	"time"

	"github.com/meu-painel/backend/internal/ledger"
)

// Report is the result of an advisory run.
type Report struct {
	Sections []Section `json:"sections"`
	Text     string    `json:"report"` // Markdown rendering of the sections
}

// Engine generates reports. The zero value is ready to use.
type Engine struct {
	delay   time.Duration
	observe func(Kind)
}

type Option func(*Engine)

// WithDelay makes Generate wait before evaluating, so that clients can show
// a progress indicator.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.delay = d
	}
}

// WithObserver registers a function called once for every produced section.
func WithObserver(fn func(Kind)) Option {
	return func(e *Engine) {
		e.observe = fn
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate builds the report for the profile as of today. It only fails
// when ctx ends during the configured delay.
func (e *Engine) Generate(ctx context.Context, p ledger.PersonData, today time.Time) (Report, error) {
	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return Report{}, ctx.Err()
		case <-timer.C:
		}
	}

	sections := Evaluate(p.Transactions, today)
	if e.observe != nil {
		for _, s := range sections {
			e.observe(s.Kind)
		}
	}

	return Report{
		Sections: sections,
		Text:     Format(sections),
	}, nil
}
