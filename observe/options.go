package observe

import (
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// Option configures Instrument and Trace.
type Option func(*config)

type config struct {
	description string
	attributes  []attribute.KeyValue
	level       slog.Level
}

// WithDescription sets the description of the instruments created by Instrument.
func WithDescription(description string) Option {
	return func(c *config) {
		c.description = description
	}
}

// WithAttributes adds attributes to every measurement recorded by Instrument, and every record logged by Trace.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(c *config) {
		c.attributes = append(c.attributes, attrs...)
	}
}

// WithLevel sets the level of the records logged by Trace. The default is slog.LevelDebug.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		level: slog.LevelDebug,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// logAttrs returns the configured attributes as slog attributes.
func (c *config) logAttrs() []any {
	attrs := make([]any, 0, len(c.attributes))
	for _, kv := range c.attributes {
		attrs = append(attrs, slog.String(string(kv.Key), kv.Value.Emit()))
	}

	return attrs
}
