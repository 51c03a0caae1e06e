package catalog

import (
	"github.com/rs/zerolog"

	"github.com/iarchive/iarchive/pkg/storage"
)

// options holds catalog construction settings.
type options struct {
	store          storage.Store
	logger         *zerolog.Logger
	seed           bool
	autoLoad       bool
	strictNotFound bool
}

// catalogDefaults returns the default options for a catalog.
func catalogDefaults() *options {
	return &options{
		seed:     true,
		autoLoad: true,
	}
}

// apply applies the given options.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures a catalog.
type Option func(*options)

// WithStore sets the durable key-value store the catalog mirrors to. Without
// it the catalog uses an in-process store and nothing survives a restart.
func WithStore(store storage.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithLogger sets the logger for persistence warnings and mutation tracing.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithoutSeed starts empty collections when the store has no data, instead of
// the built-in seed lists.
func WithoutSeed() Option {
	return func(o *options) {
		o.seed = false
	}
}

// WithoutAutoLoad skips the initial Load; the caller drives it explicitly.
func WithoutAutoLoad() Option {
	return func(o *options) {
		o.autoLoad = false
	}
}

// WithStrictNotFound upgrades update and delete on a missing id from a silent
// no-op to a NotFoundError.
func WithStrictNotFound() Option {
	return func(o *options) {
		o.strictNotFound = true
	}
}
