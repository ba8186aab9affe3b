package checkoutkit_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkoutkit"
	"github.com/dmitrymomot/checkoutkit/pkg/logger"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newTestForm(t *testing.T, opts ...checkoutkit.Option) (*checkoutkit.Form, *[]checkoutkit.Values) {
	t.Helper()

	var submitted []checkoutkit.Values
	opts = append([]checkoutkit.Option{checkoutkit.WithClock(fixedClock(testNow))}, opts...)
	form, err := checkoutkit.New(func(v checkoutkit.Values) {
		submitted = append(submitted, v)
	}, opts...)
	require.NoError(t, err)

	return form, &submitted
}

func fillValid(form *checkoutkit.Form) {
	form.Edit(checkoutkit.FieldEmail, "jane@example.com")
	form.Edit(checkoutkit.FieldCardNumber, "4111111111111111")
	form.Edit(checkoutkit.FieldCardExpire, "1229")
	form.Edit(checkoutkit.FieldCVV, "123")
}

func TestNew(t *testing.T) {
	t.Run("requires a success callback", func(t *testing.T) {
		form, err := checkoutkit.New(nil)
		assert.ErrorIs(t, err, checkoutkit.ErrNilOnSuccess)
		assert.Nil(t, form)
	})

	t.Run("starts pristine and blocked", func(t *testing.T) {
		form, _ := newTestForm(t)

		assert.NotEqual(t, uuid.Nil, form.ID())
		assert.Equal(t, "Submit", form.SubmitText())
		assert.False(t, form.Loading())
		assert.Equal(t, checkoutkit.Values{}, form.Values())
		assert.True(t, form.Validation().AnyInvalid())
		assert.False(t, form.CanSubmit())
	})

	t.Run("each form gets its own identity", func(t *testing.T) {
		a, _ := newTestForm(t)
		b, _ := newTestForm(t)
		assert.NotEqual(t, a.ID(), b.ID())
	})
}

func TestFormOptions(t *testing.T) {
	t.Run("WithSubmitText", func(t *testing.T) {
		form, _ := newTestForm(t, checkoutkit.WithSubmitText("Pay $10"))
		assert.Equal(t, "Pay $10", form.SubmitText())
	})

	t.Run("WithSubmitText ignores empty", func(t *testing.T) {
		form, _ := newTestForm(t, checkoutkit.WithSubmitText(""))
		assert.Equal(t, "Submit", form.SubmitText())
	})

	t.Run("WithLoading", func(t *testing.T) {
		form, _ := newTestForm(t, checkoutkit.WithLoading(true))
		assert.True(t, form.Loading())
	})

	t.Run("WithClock ignores nil", func(t *testing.T) {
		form, err := checkoutkit.New(func(checkoutkit.Values) {}, checkoutkit.WithClock(nil))
		require.NoError(t, err)
		assert.NotNil(t, form)
	})

	t.Run("WithConfig applies submit text", func(t *testing.T) {
		form, _ := newTestForm(t, checkoutkit.WithConfig(checkoutkit.Config{SubmitText: "Place order"}))
		assert.Equal(t, "Place order", form.SubmitText())
	})

	t.Run("WithConfig ignores unknown locations", func(t *testing.T) {
		form, _ := newTestForm(t, checkoutkit.WithConfig(checkoutkit.Config{TimeLocation: "Not/AZone"}))
		form.Edit(checkoutkit.FieldCardExpire, "12 / 29")
		assert.Empty(t, form.Validation().Field(checkoutkit.FieldCardExpire))
	})
}

func TestFormEdit(t *testing.T) {
	t.Run("formats card input for display", func(t *testing.T) {
		form, _ := newTestForm(t)

		form.Edit(checkoutkit.FieldCardNumber, "4111111111111111")
		form.Edit(checkoutkit.FieldCardExpire, "1229")

		assert.Equal(t, "4111 1111 1111 1111", form.Values().CardNumber)
		assert.Equal(t, "12 / 29", form.Values().CardExpire)
	})

	t.Run("returns the result it stored", func(t *testing.T) {
		form, _ := newTestForm(t)

		result := form.Edit(checkoutkit.FieldCVV, "12")

		assert.Equal(t, form.Validation(), result)
		assert.Equal(t, []string{"Maximum 3 digits"}, result.Field(checkoutkit.FieldCVV))
	})

	t.Run("every edit re-validates all fields", func(t *testing.T) {
		form, _ := newTestForm(t)

		result := form.Edit(checkoutkit.FieldEmail, "jane@example.com")

		assert.Empty(t, result.Field(checkoutkit.FieldEmail))
		assert.Equal(t, []string{"Required"}, result.Field(checkoutkit.FieldCVV))
		assert.True(t, result.AnyInvalid())
	})
}

func TestFormCanSubmit(t *testing.T) {
	t.Run("blocked while any field is invalid", func(t *testing.T) {
		form, _ := newTestForm(t)
		fillValid(form)
		form.Edit(checkoutkit.FieldCVV, "12")

		assert.False(t, form.CanSubmit())
	})

	t.Run("blocked while loading", func(t *testing.T) {
		form, _ := newTestForm(t)
		fillValid(form)

		form.SetLoading(true)
		assert.False(t, form.CanSubmit())

		form.SetLoading(false)
		assert.True(t, form.CanSubmit())
	})

	t.Run("enabled when valid and idle", func(t *testing.T) {
		form, _ := newTestForm(t)
		fillValid(form)

		assert.True(t, form.CanSubmit())
	})
}

func TestFormSubmit(t *testing.T) {
	t.Run("delivers the accepted values exactly once", func(t *testing.T) {
		form, submitted := newTestForm(t)
		fillValid(form)

		require.NoError(t, form.Submit())

		require.Len(t, *submitted, 1)
		assert.Equal(t, checkoutkit.Values{
			Email:      "jane@example.com",
			CardNumber: "4111 1111 1111 1111",
			CardExpire: "12 / 29",
			CVV:        "123",
		}, (*submitted)[0])
	})

	t.Run("resets to pristine after success", func(t *testing.T) {
		form, submitted := newTestForm(t)
		fillValid(form)

		require.NoError(t, form.Submit())

		assert.Equal(t, checkoutkit.Values{}, form.Values())
		assert.True(t, form.Validation().AnyInvalid())
		assert.False(t, form.CanSubmit())

		assert.ErrorIs(t, form.Submit(), checkoutkit.ErrFormInvalid)
		assert.Len(t, *submitted, 1, "callback must not fire twice for one submission")
	})

	t.Run("rejects invalid forms without calling back", func(t *testing.T) {
		form, submitted := newTestForm(t)
		fillValid(form)
		form.Edit(checkoutkit.FieldCVV, "12")

		assert.ErrorIs(t, form.Submit(), checkoutkit.ErrFormInvalid)
		assert.Empty(t, *submitted)
	})

	t.Run("rejects while loading without calling back", func(t *testing.T) {
		form, submitted := newTestForm(t)
		fillValid(form)
		form.SetLoading(true)

		assert.ErrorIs(t, form.Submit(), checkoutkit.ErrFormLoading)
		assert.Empty(t, *submitted)

		form.SetLoading(false)
		require.NoError(t, form.Submit())
		assert.Len(t, *submitted, 1)
	})

	t.Run("empty form cannot be submitted", func(t *testing.T) {
		form, submitted := newTestForm(t)

		assert.ErrorIs(t, form.Submit(), checkoutkit.ErrFormInvalid)
		assert.Empty(t, *submitted)
	})
}

func TestFormExpiryLocation(t *testing.T) {
	// 2026-08-31 23:00 UTC is already September 1st in a UTC+12 zone.
	instant := time.Date(2026, time.August, 31, 23, 0, 0, 0, time.UTC)
	eastOfUTC := time.FixedZone("UTC+12", 12*60*60)

	t.Run("clock location decides the month boundary", func(t *testing.T) {
		form, _ := newTestForm(t, checkoutkit.WithClock(fixedClock(instant.In(eastOfUTC))))

		form.Edit(checkoutkit.FieldCardExpire, "0826")

		assert.Equal(t,
			[]string{"Must be valid expiration date"},
			form.Validation().Field(checkoutkit.FieldCardExpire),
		)
	})

	t.Run("configured location overrides the clock zone", func(t *testing.T) {
		form, _ := newTestForm(t,
			checkoutkit.WithClock(fixedClock(instant.In(eastOfUTC))),
			checkoutkit.WithConfig(checkoutkit.Config{TimeLocation: "UTC"}),
		)

		form.Edit(checkoutkit.FieldCardExpire, "0826")

		assert.Empty(t, form.Validation().Field(checkoutkit.FieldCardExpire))
	})
}

func TestFormLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithLevel(slog.LevelDebug),
	)

	form, _ := newTestForm(t, checkoutkit.WithLogger(log))
	fillValid(form)
	require.NoError(t, form.Submit())

	out := buf.String()
	assert.NotContains(t, out, "4111111111111111", "raw card numbers must never be logged")
	assert.NotContains(t, out, "4111 1111 1111 1111", "formatted card numbers must never be logged")
	assert.NotContains(t, out, "jane@example.com", "raw email addresses must never be logged")

	var submitRecord map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == "checkout submitted" {
			submitRecord = entry
			break
		}
	}
	require.NotNil(t, submitRecord, "submission must produce an info record")

	assert.Equal(t, "checkout_form", submitRecord["component"])
	assert.Equal(t, form.ID().String(), submitRecord["form_id"])
	assert.Equal(t, "j***@example.com", submitRecord["email"])
	assert.Equal(t, "************1111", submitRecord["card_number"])
	assert.Equal(t, "visa", submitRecord["brand"])
	_, hasCVV := submitRecord["cvv"]
	assert.False(t, hasCVV, "the security code must never reach a log record")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("CHECKOUT_SUBMIT_TEXT", "Pay now")
	t.Setenv("CHECKOUT_TIME_LOCATION", "Europe/Berlin")

	cfg, err := checkoutkit.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Pay now", cfg.SubmitText)
	assert.Equal(t, "Europe/Berlin", cfg.TimeLocation)

	again, err := checkoutkit.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, again, "config is cached per process")
}
