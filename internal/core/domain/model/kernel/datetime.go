package kernel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"golang.org/x/text/language"
)

// isoMillisLayout is the canonical textual form: UTC with millisecond precision.
const isoMillisLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrInvalidDate is the cause carried when a value cannot be parsed as a point in time.
	ErrInvalidDate = errors.New("date is not parseable")
	// ErrFutureDate is the cause carried when a value is later than the construction-time now.
	ErrFutureDate = errors.New("date must not be in the future")
	// ErrDateTimeIsNotConstructed is returned when validating a zero-value DateTime.
	ErrDateTimeIsNotConstructed = errs.NewValueIsRequiredError("DateTime must be created via NewDateTime or ParseDateTime")
)

// parseLayouts are tried in order. Values without an offset are read as UTC.
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// localeLayouts holds the numeric date/time layout per supported locale; the
// matcher below picks the closest one for a requested tag.
var (
	localeTags = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Russian,
		language.Japanese,
	}
	localeLayouts = []string{
		"1/2/2006, 3:04:05 PM",
		"02/01/2006, 15:04:05",
		"2.1.2006, 15:04:05",
		"02/01/2006 15:04:05",
		"02.01.2006, 15:04:05",
		"2006/1/2 15:04:05",
	}
	localeMatcher = language.NewMatcher(localeTags)
)

// DateTime is an immutable point in time that was not in the future when it was created.
type DateTime struct { //nolint:recvcheck //using for validation
	value time.Time
	guard guard.ConstructorGuard
}

// NewDateTime captures clock.Now(). It never fails.
func NewDateTime(clock Clock) DateTime {
	return DateTime{
		value: clock.Now(),
		guard: guard.NewConstructorGuard(),
	}
}

// ParseDateTime parses value (RFC 3339, "YYYY-MM-DDThh:mm:ss" or "YYYY-MM-DD") and
// rejects it if it lies after clock.Now().
func ParseDateTime(value string, clock Clock) (DateTime, error) {
	value = strings.TrimSpace(value)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateTimeFromTime(t, clock)
		}
	}

	return DateTime{}, errs.NewValueIsInvalidErrorWithCause(
		"date",
		fmt.Errorf("%w: %q", ErrInvalidDate, value),
	)
}

// DateTimeFromTime wraps t, applying the same not-in-the-future rule as ParseDateTime.
func DateTimeFromTime(t time.Time, clock Clock) (DateTime, error) {
	d := DateTime{
		guard: guard.NewConstructorGuard(),
	}
	if err := d.setValue(t, clock.Now()); err != nil {
		return DateTime{}, err
	}
	return d, nil
}

// RestoreDateTime rehydrates a stored value. Only the zero time is rejected: the
// not-in-the-future rule held when the value was first captured.
func RestoreDateTime(t time.Time) (DateTime, error) {
	if t.IsZero() {
		return DateTime{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%w: zero time", ErrInvalidDate))
	}
	return DateTime{value: t, guard: guard.NewConstructorGuard()}, nil
}

// Time returns the wrapped time.
func (d DateTime) Time() time.Time {
	return d.value
}

// IsEqual reports whether both values denote the same instant.
func (d DateTime) IsEqual(other DateTime) bool {
	return d.value.Equal(other.value)
}

// Validate returns ErrDateTimeIsNotConstructed for a zero value.
func (d DateTime) Validate() error {
	return d.guard.Validate(ErrDateTimeIsNotConstructed)
}

// String returns the ISO-8601 form in UTC with milliseconds, e.g. "2024-03-01T09:30:00.000Z".
func (d DateTime) String() string {
	return d.value.UTC().Format(isoMillisLayout)
}

// Format renders numeric year, month, day, hour, minute and second fields using the
// conventions of the closest supported locale. Unsupported locales get an ISO-like
// "2006-01-02 15:04:05" layout; language.Und selects DefaultLocale.
func (d DateTime) Format(locale language.Tag) string {
	if locale == language.Und {
		locale = DefaultLocale
	}
	_, index, confidence := localeMatcher.Match(locale)
	if confidence == language.No {
		return d.value.Format(time.DateTime)
	}
	return d.value.Format(localeLayouts[index])
}

func (d *DateTime) setValue(t time.Time, now time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%w: zero time", ErrInvalidDate))
	}
	if t.After(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%w: %s is after %s", ErrFutureDate, t.UTC().Format(isoMillisLayout), now.UTC().Format(isoMillisLayout)),
		)
	}

	d.value = t
	return nil
}
