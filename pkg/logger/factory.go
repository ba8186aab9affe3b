package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format selects the encoding log records are written in.
type Format string

const (
	// FormatJSON is the machine-readable encoding for log aggregation.
	FormatJSON Format = "json"
	// FormatText is the human-readable encoding for terminals.
	FormatText Format = "text"
)

func (f Format) valid() bool {
	return f == FormatJSON || f == FormatText
}

// config collects the settings Options write before New assembles the
// handler chain.
type config struct {
	level       slog.Level
	format      Format
	output      io.Writer
	attrs       []slog.Attr
	handlerOpts *slog.HandlerOptions
	extractors  []ContextExtractor
}

// Option configures New.
type Option func(*config)

// WithLevel sets the minimum record level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat selects the output encoding. Unknown formats panic so a
// misconfigured process refuses to start instead of logging garbage.
func WithFormat(f Format) Option {
	if !f.valid() {
		panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
	}
	return func(c *config) { c.format = f }
}

// WithTextFormatter selects the text encoding.
func WithTextFormatter() Option {
	return WithFormat(FormatText)
}

// WithJSONFormatter selects the JSON encoding.
func WithJSONFormatter() Option {
	return WithFormat(FormatJSON)
}

// WithOutput redirects records to w. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithHandlerOptions replaces the slog.HandlerOptions New would otherwise
// derive from the configured level, for callers that need AddSource or a
// ReplaceAttr hook. Nil is ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		if opts != nil {
			c.handlerOpts = opts
		}
	}
}

// WithAttr attaches static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithContextExtractors registers extractors that pull dynamic attributes
// out of the context on every log call. Nil entries are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue copies the context value stored under key into every
// record as an attribute named name. Request-scoped data such as a session
// id travels into log records this way.
func WithContextValue(name string, key any) Option {
	if name == "" || key == nil {
		return func(*config) {}
	}
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		if v := ctx.Value(key); v != nil {
			return slog.Any(name, v), true
		}
		return slog.Attr{}, false
	})
}

// preset is the shared shape of the environment presets: a level, an
// encoding and the service/env pair every record carries.
func preset(level slog.Level, format Format, service, env string) Option {
	return func(c *config) {
		c.level = level
		c.format = format
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", env),
		)
	}
}

// WithDevelopment configures text records at debug level, tagged with the
// service name and a development marker. Empty service names are ignored.
func WithDevelopment(service string) Option {
	if service == "" {
		return func(*config) {}
	}
	return preset(slog.LevelDebug, FormatText, service, "development")
}

// WithProduction configures JSON records at info level, tagged with the
// service name and a production marker. Empty service names are ignored.
func WithProduction(service string) Option {
	if service == "" {
		return func(*config) {}
	}
	return preset(slog.LevelInfo, FormatJSON, service, "production")
}

// New assembles a *slog.Logger from the options: an encoding handler over
// the configured output, static attributes, and the context-extractor
// wrapper outermost so every record passes through extraction. Defaults are
// production-safe: JSON at info level on stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return slog.New(newContextHandler(cfg.handler(), cfg.extractors...))
}

// SetAsDefault installs l as the process-wide slog default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

func (c *config) handler() slog.Handler {
	opts := c.handlerOpts
	if opts == nil {
		opts = &slog.HandlerOptions{Level: c.level}
	}

	var h slog.Handler
	switch c.format {
	case FormatText:
		h = slog.NewTextHandler(c.output, opts)
	default:
		h = slog.NewJSONHandler(c.output, opts)
	}

	if len(c.attrs) > 0 {
		h = h.WithAttrs(c.attrs)
	}
	return h
}
