package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviddao/persiancal/pkg/persian"
)

// 1402/07/10 09:05:07.042 UTC, a Monday (2023-10-02).
var sample = persian.FromEpochMillis(1696204800000 + 9*3_600_000 + 5*60_000 + 7_000 + 42)

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		layout string
		want   string
	}{
		{"yyyy/MM/dd", "1402/07/10"},
		{"Y/m/d", "1402/07/10"},
		{"yy", "02"},
		{"y", "1402"},
		{"M/n/j", "7/7/10"},
		{"MMM", "مهر"},
		{"F", "مهر"},
		{"E", "دوشنبه"},
		{"l j F Y", "دوشنبه 10 مهر 1402"},
		{"HH:mm:ss.SSS", "09:05:07.042"},
		{"H:i:s", "09:05:07"},
		{"'Y/m/d' Y", "Y/m/d 1402"},
		{"''d''", "'10'"},
		{"'day' j", "day 10"},
		{"'unterminated", "unterminated"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(sample, tt.layout))
		})
	}
}

func TestFormatPersianPatterns(t *testing.T) {
	tests := []struct {
		p    PersianPattern
		want string
	}{
		{P1, "1402/07/10  09:05:07"},
		{P2, "09:05 1402/07/10"},
		{P3, "1402/07/10 09:05"},
		{P4, "1402/07/10"},
		{P5, "1402/07/10 09:05"},
		{P6, "1402/07/10"},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Format(sample, tt.p.Text()))
		})
	}
}

func TestFormatGregorianPatterns(t *testing.T) {
	tests := []struct {
		p    GregorianPattern
		want string
	}{
		{G1, "2023-10-02T09:05:07Z"},
		{G2, "2023_10_02__09_05"},
		{G3, "09:05"},
		{G4, "2023-10-02T09:05:07"},
		{G5, "2023-10-02 09:05:07.042Z"},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatGregorian(sample, tt.p.Text()))
		})
	}
	assert.Equal(t, "Monday, 02 October 2023", FormatGregorian(sample, "EEEE, d MMMM yyyy"))
}

func TestFormatDateIsMidnight(t *testing.T) {
	d := persian.MustNew(1403, 1, 1)
	assert.Equal(t, "1403/01/01 00:00:00", FormatDate(d, "Y/m/d H:i:s"))
	assert.Equal(t, "چهارشنبه", FormatDate(d, "l"))
}

func TestFormatParseRoundTrip(t *testing.T) {
	d := persian.MustNew(1300, 1, 1)
	for i := 0; i < 2000; i++ {
		s := FormatDate(d, P6.Text())
		got, err := Parse(s, "/")
		require.NoError(t, err, s)
		require.Equal(t, d, got)
		d = d.AddDays(37)
	}
}

func TestPatternText(t *testing.T) {
	assert.Equal(t, "Y/m/d  H:i:s", P1.Text())
	assert.Equal(t, "yyyy/MM/dd", P6.Text())
	assert.Equal(t, "", PersianPattern(0).Text())
	assert.Equal(t, "", PersianPattern(7).Text())
	assert.Equal(t, "yyyy-MM-dd'T'HH:mm:ss'Z'", G1.Text())
	assert.Equal(t, "", GregorianPattern(6).Text())
}

func TestResolve(t *testing.T) {
	assert.Equal(t, P3.Text(), Resolve("P3"))
	assert.Equal(t, P3.Text(), Resolve("p3"))
	assert.Equal(t, G5.Text(), Resolve("G5"))
	assert.Equal(t, "P9", Resolve("P9"))
	assert.Equal(t, "Y-m-d", Resolve("Y-m-d"))
}
