package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddao/persiancal/pkg/persian"
)

func TestDisplayStrings(t *testing.T) {
	d := persian.MustNew(1403, 1, 1)
	assert.Equal(t, "فروردین 1403", YearMonth(d))
	assert.Equal(t, "1 فروردین 1403", YearMonthDay(d))
	assert.Equal(t, "1 فروردین", MonthDay(d))
	assert.Equal(t, "چهارشنبه 1 فروردین", MonthDayWeekday(d))
	assert.Equal(t, "چهارشنبه 1 فروردین 1403", YearMonthDayWeekday(d))
}

func TestRangeStrings(t *testing.T) {
	start := persian.MustNew(1402, 7, 10)
	end := persian.MustNew(1402, 8, 1)

	s, e := RangeStrings(&start, &end)
	assert.Equal(t, "10 مهر 1402", s)
	assert.Equal(t, "1 آبان 1402", e)

	s, e = RangeStrings(nil, &end)
	assert.Equal(t, "", s)
	assert.Equal(t, "1 آبان 1402", e)

	s, e = RangeStrings(nil, nil)
	assert.Empty(t, s)
	assert.Empty(t, e)
}

func TestToGregorian(t *testing.T) {
	got, err := ToGregorian("1403/01/01 14:30", "/", G4)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-20T14:30:00", got)

	got, err = ToGregorian("1348-10-11", "-", G1)
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T00:00:00Z", got)

	_, err = ToGregorian("1402/12/30", "/", G1)
	assert.ErrorIs(t, err, persian.ErrRange)
}

func TestFromGregorian(t *testing.T) {
	assert.Equal(t, "1348/10/11", FromGregorian(0, P6))
	assert.Equal(t, "1403/01/01 00:00", FromGregorian(1710892800000, P3))
}
