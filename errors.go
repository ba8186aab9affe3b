package checkoutkit

import "errors"

var (
	// ErrNilOnSuccess is returned by New when no success callback is provided.
	ErrNilOnSuccess = errors.New("onSuccess callback is required")

	// ErrFormInvalid rejects a submission while any field fails validation.
	ErrFormInvalid = errors.New("form has invalid fields")

	// ErrFormLoading rejects a submission while one is already in flight.
	ErrFormLoading = errors.New("submission already in progress")
)
