package persian

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	ptime "github.com/yaa110/go-persian-calendar"
)

// The 2820-year rule and the observed calendar agree on every year in
// this window, so any mismatch here is a bug in the conversion.
func TestAgreesWithPtime(t *testing.T) {
	start := time.Date(1964, time.April, 1, 12, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		want := ptime.New(day)
		got := FromTime(day).Date()
		require.Equal(t,
			[3]int{want.Year(), int(want.Month()), want.Day()},
			[3]int{got.Year(), int(got.Month()), got.Day()},
			"gregorian %s", day.Format("2006-01-02"))
	}
}

func TestToGregorianAgreesWithPtime(t *testing.T) {
	for year := 1343; year <= 1402; year++ {
		for month := 1; month <= 12; month++ {
			d := MustNew(year, month, 1)
			want := ptime.Date(year, ptime.Month(month), 1, 12, 0, 0, 0, time.UTC).Time()
			gy, gm, gd := d.Gregorian()
			require.Equal(t,
				[3]int{want.Year(), int(want.Month()), want.Day()},
				[3]int{gy, int(gm), gd},
				"persian %s", d)
		}
	}
}
