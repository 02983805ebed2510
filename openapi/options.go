package openapi

import (
	"github.com/skillsenselab/openapi-client/logger"
	"github.com/skillsenselab/openapi-client/signing"
)

// Option customizes client construction.
type Option func(*options)

type options struct {
	log    *logger.Logger
	scheme signing.Scheme
}

// WithLogger attaches a logger. Defaults to the Nop logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithScheme overrides the signing scheme built from the configuration.
// Useful for injecting a scheme with a pinned clock or nonce source.
func WithScheme(s signing.Scheme) Option {
	return func(o *options) { o.scheme = s }
}

func applyOptions(opts []Option) options {
	o := options{log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Nop()
	}
	return o
}
