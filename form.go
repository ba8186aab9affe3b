package checkoutkit

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/checkoutkit/pkg/logger"
	"github.com/dmitrymomot/checkoutkit/pkg/sanitizer"
)

const defaultSubmitText = "Submit"

// SuccessHandler receives the snapshot of values a submission was accepted
// with. It runs synchronously inside Submit, exactly once per accepted
// submission.
type SuccessHandler func(Values)

// Form binds checkout state to the submission gate. Every Edit replaces the
// state with a freshly validated one, so Values and Validation can never
// disagree.
//
// A Form belongs to a single user interaction and is not safe for
// concurrent use. Embedding applications drive it from one goroutine, the
// same way a UI drives an input component from its event loop.
type Form struct {
	id         uuid.UUID
	state      State
	onSuccess  SuccessHandler
	submitText string
	loading    bool
	now        func() time.Time
	log        *slog.Logger
}

// Option configures a Form during construction.
type Option func(*Form)

// WithSubmitText overrides the submit affordance label. Empty strings are
// ignored.
func WithSubmitText(text string) Option {
	return func(f *Form) {
		if text != "" {
			f.submitText = text
		}
	}
}

// WithLoading sets the initial in-flight flag, for forms created while a
// submission is already being processed elsewhere.
func WithLoading(loading bool) Option {
	return func(f *Form) {
		f.loading = loading
	}
}

// WithClock injects the source of the current time. Expiry validation
// depends on it; tests pin it to a fixed moment. Nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(f *Form) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLogger sets a custom logger. The form is silent by default.
// Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(f *Form) {
		if log != nil {
			f.log = log
		}
	}
}

// WithConfig applies environment-backed defaults, usually obtained from
// LoadConfig. Unknown location names leave the clock untouched.
func WithConfig(cfg Config) Option {
	return func(f *Form) {
		if cfg.SubmitText != "" {
			f.submitText = cfg.SubmitText
		}
		if cfg.TimeLocation != "" {
			if loc, err := time.LoadLocation(cfg.TimeLocation); err == nil {
				inner := f.now
				f.now = func() time.Time { return inner().In(loc) }
			}
		}
	}
}

// New creates a checkout form. The onSuccess callback is the one required
// collaborator; everything else has defaults. The form starts pristine:
// empty values, every field failing Required, submission disabled.
func New(onSuccess SuccessHandler, opts ...Option) (*Form, error) {
	if onSuccess == nil {
		return nil, ErrNilOnSuccess
	}

	f := &Form{
		id:         uuid.New(),
		onSuccess:  onSuccess,
		submitText: defaultSubmitText,
		now:        time.Now,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(f)
	}

	f.state = NewState(Values{}, f.now())

	return f, nil
}

// ID returns the form instance identifier carried in log records.
func (f *Form) ID() uuid.UUID {
	return f.id
}

// Values returns the current field values in their display form.
func (f *Form) Values() Values {
	return f.state.Values
}

// Validation returns the result of validating the current values. It is
// produced by the same transition that stored them.
func (f *Form) Validation() Result {
	return f.state.Result
}

// Edit applies a change to one field: the raw input is formatted where the
// field has a display format, stored, and all fields are re-validated
// synchronously. The new result is returned for immediate rendering.
func (f *Form) Edit(field Field, raw string) Result {
	f.state = ApplyEdit(f.state, field, raw, f.now())

	args := []any{
		logger.Component("checkout_form"),
		logger.FormID(f.id),
		logger.Field(string(field)),
		logger.Valid(len(f.state.Result.Field(field)) == 0),
	}
	if field == FieldCardNumber {
		args = append(args, logger.Brand(string(f.state.Values.CardBrand())))
	}
	f.log.Debug("field edited", args...)

	return f.state.Result
}

// CanSubmit reports whether the submit affordance is enabled: nothing
// invalid and no submission in flight.
func (f *Form) CanSubmit() bool {
	return !f.loading && !f.state.Result.AnyInvalid()
}

// Loading reports whether a submission is marked as in flight.
func (f *Form) Loading() bool {
	return f.loading
}

// SetLoading flips the in-flight flag. The embedding application owns the
// submission lifecycle; the form only gates on it.
func (f *Form) SetLoading(loading bool) {
	f.loading = loading
}

// SubmitText returns the label for the submit affordance.
func (f *Form) SubmitText() string {
	return f.submitText
}

// Submit runs the submission gate. It does not re-validate: the result
// produced by the last edit decides. Blocked submits return ErrFormLoading
// or ErrFormInvalid and the callback never runs. An accepted submit
// snapshots the values, resets the form to pristine and hands the snapshot
// to onSuccess. Resetting first means a callback that re-enters the form
// finds it already empty, so a submission can never be delivered twice.
func (f *Form) Submit() error {
	if f.loading {
		f.log.Warn("submit blocked",
			logger.Component("checkout_form"),
			logger.Event("submit"),
			logger.FormID(f.id),
			logger.Error(ErrFormLoading),
		)
		return ErrFormLoading
	}

	if f.state.Result.AnyInvalid() {
		f.log.Warn("submit blocked",
			logger.Component("checkout_form"),
			logger.Event("submit"),
			logger.FormID(f.id),
			logger.Error(ErrFormInvalid),
		)
		return ErrFormInvalid
	}

	values := f.state.Values
	f.state = NewState(Values{}, f.now())

	// Card number and email are masked; the CVV never reaches a record.
	f.log.Info("checkout submitted",
		logger.Component("checkout_form"),
		logger.Event("submit"),
		logger.FormID(f.id),
		slog.String("email", sanitizer.MaskEmail(values.Email)),
		slog.String("card_number", sanitizer.MaskCardNumber(values.CardNumber)),
		logger.Brand(string(values.CardBrand())),
	)

	f.onSuccess(values)

	return nil
}
