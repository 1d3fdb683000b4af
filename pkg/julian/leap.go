package julian

// IsLeapYear reports whether the Persian year has 366 days under the
// 2820-year intercalation rule (not the 33-year approximation).
func IsLeapYear(year int) bool {
	cycleYear := FloorMod(int64(year)-epochBase, cycleYears) + epochBase
	return FloorMod((cycleYear+38)*682, 2816) < 682
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// MonthLength returns the number of days in the 0-based month of year.
// The first six months have 31 days, the next five 30, and Esfand has 29
// or 30 depending on the leap rule. Months outside [0, 11] return 0.
func MonthLength(year, month0 int) int {
	switch {
	case month0 < 0 || month0 > 11:
		return 0
	case month0 < 6:
		return 31
	case month0 < 11:
		return 30
	case IsLeapYear(year):
		return 30
	default:
		return 29
	}
}
