package persian

import (
	"errors"
	"fmt"
)

// ErrRange matches every *RangeError via errors.Is.
var ErrRange = errors.New("persian: value out of range")

// Field names the component of a date or time that failed validation.
type Field string

const (
	FieldYear        Field = "year"
	FieldMonth       Field = "month"
	FieldDay         Field = "day"
	FieldHour        Field = "hour"
	FieldMinute      Field = "minute"
	FieldSecond      Field = "second"
	FieldMillisecond Field = "millisecond"
)

// RangeError reports a field that parsed as an integer but violates the
// calendar's invariants. Reason is a short English explanation suitable for
// logs; UI layers localize from Field and Value.
type RangeError struct {
	Field  Field
	Value  int
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("persian: invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool { return target == ErrRange }

func rangeErr(f Field, v int, format string, args ...any) *RangeError {
	return &RangeError{Field: f, Value: v, Reason: fmt.Sprintf(format, args...)}
}
