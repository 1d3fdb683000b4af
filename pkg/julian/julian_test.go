package julian

import "testing"

func TestToJulianDayKnownDates(t *testing.T) {
	tests := []struct {
		name              string
		year, month0, day int
		want              int64
	}{
		{"epoch", 1, 0, 1, PersianEpoch},
		{"unix epoch", 1348, 9, 11, 2440588},
		{"nowruz 1403", 1403, 0, 1, 2460390},
		{"mehr 1402", 1402, 6, 10, 2460220},
		{"leap day 1399", 1399, 11, 30, 2459294},
		{"nowruz 1300", 1300, 0, 1, 2422770},
		{"year zero", 0, 0, 1, 1947955},
		{"last day of year -1", -1, 11, 29, 1947954},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToJulianDay(tt.year, tt.month0, tt.day); got != tt.want {
				t.Errorf("ToJulianDay(%d, %d, %d) = %d, want %d",
					tt.year, tt.month0, tt.day, got, tt.want)
			}
		})
	}
}

func TestFromJulianDayUnixEpoch(t *testing.T) {
	y, m, d := FromJulianDay(2440588)
	if y != 1348 || m != 9 || d != 11 {
		t.Fatalf("FromJulianDay(2440588) = %d/%d/%d, want 1348/9/11", y, m, d)
	}
}

func TestRoundTripAllDays(t *testing.T) {
	for year := 1; year <= 3000; year++ {
		for month0 := 0; month0 < 12; month0++ {
			n := MonthLength(year, month0)
			for day := 1; day <= n; day++ {
				jdn := ToJulianDay(year, month0, day)
				y, m, d := FromJulianDay(jdn)
				if y != year || m != month0 || d != day {
					t.Fatalf("round trip %d/%d/%d -> %d -> %d/%d/%d",
						year, month0, day, jdn, y, m, d)
				}
			}
		}
	}
}

func TestRoundTripNonPositiveYears(t *testing.T) {
	for year := -3000; year <= 0; year++ {
		for month0 := 0; month0 < 12; month0++ {
			last := MonthLength(year, month0)
			for _, day := range []int{1, last} {
				y, m, d := FromJulianDay(ToJulianDay(year, month0, day))
				if y != year || m != month0 || d != day {
					t.Fatalf("round trip %d/%d/%d -> %d/%d/%d", year, month0, day, y, m, d)
				}
			}
		}
	}
}

func TestJulianDaysAreContiguous(t *testing.T) {
	prev := ToJulianDay(1, 0, 1) - 1
	for year := 1; year <= 1600; year++ {
		for month0 := 0; month0 < 12; month0++ {
			for day := 1; day <= MonthLength(year, month0); day++ {
				jdn := ToJulianDay(year, month0, day)
				if jdn != prev+1 {
					t.Fatalf("%d/%d/%d: jdn %d does not follow %d", year, month0, day, jdn, prev)
				}
				prev = jdn
			}
		}
	}
}

func TestFromJulianDayInverse(t *testing.T) {
	start := ToJulianDay(1, 0, 1)
	end := ToJulianDay(3001, 0, 1)
	for jdn := start; jdn < end; jdn += 7 {
		y, m, d := FromJulianDay(jdn)
		if got := ToJulianDay(y, m, d); got != jdn {
			t.Fatalf("ToJulianDay(FromJulianDay(%d)) = %d", jdn, got)
		}
	}
}

func TestCycleBoundary(t *testing.T) {
	// 474 + 2820 starts a new grand cycle.
	for _, year := range []int{473, 474, 475, 3293, 3294, 3295} {
		first := ToJulianDay(year, 0, 1)
		next := ToJulianDay(year+1, 0, 1)
		if int(next-first) != DaysInYear(year) {
			t.Errorf("year %d: %d days between nowruz, DaysInYear says %d",
				year, next-first, DaysInYear(year))
		}
		y, m, d := FromJulianDay(next - 1)
		if y != year || m != 11 || d != MonthLength(year, 11) {
			t.Errorf("last day of %d decoded as %d/%d/%d", year, y, m, d)
		}
	}
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b, q, m int64
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{-6, 3, -2, 0},
		{0, 5, 0, 0},
		{-1, 86400000, -1, 86399999},
	}
	for _, tt := range tests {
		if q := FloorDiv(tt.a, tt.b); q != tt.q {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, q, tt.q)
		}
		if m := FloorMod(tt.a, tt.b); m != tt.m {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", tt.a, tt.b, m, tt.m)
		}
	}
}
