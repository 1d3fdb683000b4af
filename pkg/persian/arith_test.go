package persian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		from Date
		n    int
		want Date
	}{
		{"zero", MustNew(1402, 7, 10), 0, MustNew(1402, 7, 10)},
		{"into shorter month clamps", MustNew(1402, 6, 31), 1, MustNew(1402, 7, 30)},
		{"into Esfand of common year", MustNew(1402, 11, 30), 1, MustNew(1402, 12, 29)},
		{"into Esfand of leap year", MustNew(1399, 11, 30), 1, MustNew(1399, 12, 30)},
		{"carry into next year", MustNew(1402, 12, 29), 1, MustNew(1403, 1, 29)},
		{"backward across year", MustNew(1402, 1, 31), -1, MustNew(1401, 12, 29)},
		{"backward thirteen", MustNew(1402, 1, 15), -13, MustNew(1400, 12, 15)},
		{"forward twenty-five", MustNew(1402, 3, 5), 25, MustNew(1404, 4, 5)},
		{"into year zero", MustNew(1, 2, 1), -13, MustNew(0, 1, 1)},
		{"into negative year", MustNew(0, 1, 1), -1, MustNew(-1, 12, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.AddMonths(tt.n))
		})
	}
}

func TestAddMonthsAlwaysValid(t *testing.T) {
	start := MustNew(1398, 1, 31)
	for n := -60; n <= 60; n++ {
		got := start.AddMonths(n)
		assert.NoError(t, Validate(got.Year(), int(got.Month()), got.Day()), "AddMonths(%d) = %s", n, got)
	}
}

func TestAddYears(t *testing.T) {
	assert.Equal(t, MustNew(1400, 12, 29), MustNew(1399, 12, 30).AddYears(1))
	assert.Equal(t, MustNew(1395, 12, 30), MustNew(1399, 12, 30).AddYears(-4))
	assert.Equal(t, MustNew(1392, 7, 10), MustNew(1402, 7, 10).AddYears(-10))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, MustNew(1403, 1, 1), MustNew(1402, 12, 29).AddDays(1))
	assert.Equal(t, MustNew(1399, 12, 30), MustNew(1400, 1, 1).AddDays(-1))
	assert.Equal(t, MustNew(1402, 7, 10), MustNew(1402, 7, 10).AddDays(0))
	assert.Equal(t, MustNew(1403, 1, 1), MustNew(1402, 1, 1).AddDays(365))
}

func TestCompare(t *testing.T) {
	a := MustNew(1402, 7, 10)
	b := MustNew(1402, 7, 11)
	c := MustNew(1403, 1, 1)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(MustNew(1402, 7, 10)))
	assert.True(t, a.Before(b))
	assert.True(t, c.After(a))
	assert.True(t, a.Equal(MustNew(1402, 7, 10)))
	assert.False(t, a.After(a))
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 365, MustNew(1402, 1, 1).DaysUntil(MustNew(1403, 1, 1)))
	assert.Equal(t, -366, MustNew(1400, 1, 1).DaysUntil(MustNew(1399, 1, 1)))
	assert.Equal(t, 0, MustNew(1402, 7, 10).DaysUntil(MustNew(1402, 7, 10)))
}
