package persian

// Month is a 1-based Persian month, Farvardin (1) through Esfand (12).
type Month int

const (
	Farvardin Month = iota + 1
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

var monthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

var monthLatin = [12]string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

// Valid reports whether m is in [1, 12].
func (m Month) Valid() bool { return m >= Farvardin && m <= Esfand }

// Index returns the 0-based month index.
func (m Month) Index() int { return int(m) - 1 }

// String returns the Persian month name, or "" for an invalid month.
func (m Month) String() string {
	if !m.Valid() {
		return ""
	}
	return monthNames[m-1]
}

// Latin returns the transliterated month name.
func (m Month) Latin() string {
	if !m.Valid() {
		return ""
	}
	return monthLatin[m-1]
}

// Weekday is a day of the Persian week, Saturday (1) through Friday (7).
type Weekday int

const (
	Shanbe Weekday = iota + 1
	Yekshanbe
	Doshanbe
	Seshanbe
	Chaharshanbe
	Panjshanbe
	Jome
)

var weekdayNames = [7]string{
	"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه",
}

var weekdayLatin = [7]string{
	"Shanbe", "Yekshanbe", "Doshanbe", "Seshanbe", "Chaharshanbe", "Panjshanbe", "Jome",
}

// Valid reports whether w is in [1, 7].
func (w Weekday) Valid() bool { return w >= Shanbe && w <= Jome }

// String returns the Persian weekday name, or "" for an invalid weekday.
func (w Weekday) String() string {
	if !w.Valid() {
		return ""
	}
	return weekdayNames[w-1]
}

// Latin returns the transliterated weekday name.
func (w Weekday) Latin() string {
	if !w.Valid() {
		return ""
	}
	return weekdayLatin[w-1]
}
