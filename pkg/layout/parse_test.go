package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddao/persiancal/pkg/persian"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		in, delim string
		want      persian.Date
	}{
		{"1402/07/10", "/", persian.MustNew(1402, 7, 10)},
		{"1399/12/30", "/", persian.MustNew(1399, 12, 30)},
		{"1402-7-1", "-", persian.MustNew(1402, 7, 1)},
		{"1402/07/10/", "/", persian.MustNew(1402, 7, 10)},
		{" 1402 / 07 / 10 ", "/", persian.MustNew(1402, 7, 10)},
		{"1403..01..01", "..", persian.MustNew(1403, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in, tt.delim)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatErrors(t *testing.T) {
	tests := []struct {
		name, in, delim string
	}{
		{"non numeric year", "abcd/07/10", "/"},
		{"two fields", "1402/07", "/"},
		{"four fields", "1402/07/10/11", "/"},
		{"empty input", "", "/"},
		{"wrong delimiter", "1402-07-10", "/"},
		{"empty middle field", "1402//10", "/"},
		{"empty delimiter", "1402/07/10", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in, tt.delim)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFormat)
			assert.NotErrorIs(t, err, persian.ErrRange)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.in, fe.Input)
		})
	}
}

func TestParseRangeErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		field  persian.Field
		reason string
	}{
		{"year zero", "0/01/01", persian.FieldYear, "year must be at least 1"},
		{"negative year", "-5/01/01", persian.FieldYear, "year must be at least 1"},
		{"month thirteen", "1402/13/01", persian.FieldMonth, "month must be between 1 and 12"},
		{"month zero", "1402/00/01", persian.FieldMonth, "month must be between 1 and 12"},
		{"day zero", "1402/01/00", persian.FieldDay, "day must be at least 1"},
		{"day 32", "1402/01/32", persian.FieldDay, "day must be at most 31"},
		{"day 31 in 30-day month", "1402/07/31", persian.FieldDay, "Mehr has only 30 days"},
		{"Esfand 30 in common year", "1402/12/30", persian.FieldDay, "1402 is not a leap year"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in, "/")
			require.Error(t, err)
			assert.ErrorIs(t, err, persian.ErrRange)
			assert.NotErrorIs(t, err, ErrFormat)

			var re *persian.RangeError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.field, re.Field)
			assert.Equal(t, tt.reason, re.Reason)
		})
	}
}

func TestParseEsfandThirtyFollowsLeapRule(t *testing.T) {
	for year := 1390; year <= 1410; year++ {
		_, err := Parse(FormatDate(persian.MustNew(year, 12, 1), "Y/m")+"/30", "/")
		if persian.IsLeapYear(year) {
			assert.NoError(t, err, "year %d", year)
		} else {
			assert.ErrorIs(t, err, persian.ErrRange, "year %d", year)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime("1403/01/01 14:30", "/")
	require.NoError(t, err)
	assert.Equal(t, persian.MustNew(1403, 1, 1), dt.Date())
	assert.Equal(t, 14, dt.Hour())
	assert.Equal(t, 30, dt.Minute())
	assert.Equal(t, 0, dt.Second())

	dt, err = ParseDateTime("1403/01/01 14:30:59", "/")
	require.NoError(t, err)
	assert.Equal(t, 59, dt.Second())

	dt, err = ParseDateTime("1403/01/01", "/")
	require.NoError(t, err)
	assert.Equal(t, int64(1710892800000), dt.EpochMillis())

	_, err = ParseDateTime("1403/01/01 14", "/")
	assert.ErrorIs(t, err, ErrFormat)
	_, err = ParseDateTime("1403/01/01 aa:bb", "/")
	assert.ErrorIs(t, err, ErrFormat)
	_, err = ParseDateTime("1403/01/01 25:00", "/")
	assert.ErrorIs(t, err, persian.ErrRange)
	_, err = ParseDateTime("1403/01/32 10:00", "/")
	assert.ErrorIs(t, err, persian.ErrRange)
}

func TestMustParsePanics(t *testing.T) {
	assert.Equal(t, persian.MustNew(1402, 7, 10), MustParse("1402/07/10"))
	assert.Panics(t, func() { MustParse("1402/07") })
}
