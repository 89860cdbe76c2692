package runtime

import (
	"log/slog"

	"github.com/aretw0/ariadne/internal/logging"
	"github.com/aretw0/ariadne/pkg/domain"
)

// options are shared by the explorers and the navigator.
type options struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option configures an explorer or navigator.
type Option func(*options)

// WithLogger sets the operational logger. This is separate from the session
// log, which is a domain artifact surfaced to users.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

func newOptions(opts []Option) options {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
