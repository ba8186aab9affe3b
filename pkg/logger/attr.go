package logger

import (
	"log/slog"

	"github.com/google/uuid"
)

// Error records err under the key "error". Nil errors produce an empty
// attribute, so callers never need their own nil check.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// FormID records the form instance identifier under the key "form_id".
func FormID(id uuid.UUID) slog.Attr {
	return slog.String("form_id", id.String())
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Valid records a validation outcome under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Brand records a card brand under the key "brand".
func Brand(brand string) slog.Attr {
	return slog.String("brand", brand)
}
