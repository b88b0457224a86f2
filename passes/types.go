package passes

import (
	"errors"

	"github.com/go-logr/logr"
)

// ErrGraphNil is returned when a pass is handed a nil graph.
var ErrGraphNil = errors.New("passes: graph is nil")

// Option customizes Simplify.
type Option func(*options)

type options struct {
	log    logr.Logger
	verify bool
}

func defaultOptions() options {
	return options{log: logr.Discard()}
}

// WithLogr routes per-round progress to l at verbosity 1.
func WithLogr(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithVerify runs Graph.Verify after every round and aborts on the first
// inconsistency. Intended for tests and debugging; it adds a full
// structural scan per round.
func WithVerify() Option {
	return func(o *options) { o.verify = true }
}
