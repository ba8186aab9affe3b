// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The single factory, New, creates a *slog.Logger configured by Option
// functions: output format (text or json), minimum level, static attributes
// applied to every record, and ContextExtractor callbacks that pull dynamic
// attributes (a session id, for example) out of the context on every Handle
// call.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("checkout"),
//	)
//
//	log.Debug("field edited",
//	    logger.Component("checkout_form"),
//	    logger.Field("card_number"),
//	    logger.Valid(true),
//	)
//
// The attribute helpers in attr.go keep key naming consistent across the
// codebase. Sensitive values never get helpers here on purpose: card numbers
// and emails must be masked by the caller before they reach a record.
//
// # Error Handling
//
// The Error helper produces an attribute only when the supplied error is
// non-nil, allowing calls like
//
//	log.Info("submit", logger.Error(err))
//
// without an additional nil check.
package logger
