package layout

import (
	"strconv"
	"strings"

	"github.com/daviddao/persiancal/pkg/julian"
	"github.com/daviddao/persiancal/pkg/persian"
)

// Layout letters. A run of the same letter forms one token; the run length
// only matters where noted.
//
//	y      year; yy is the two-digit year
//	Y      year
//	M      month; MM zero-padded; MMM or longer is the month name
//	m      zero-padded month; mm is the zero-padded minute
//	n      month
//	d      zero-padded day
//	j      day
//	H      zero-padded hour (0-23)
//	i      zero-padded minute
//	s      zero-padded second
//	S      three-digit millisecond
//	E, l   weekday name
//	F      month name
//
// Text between single quotes is copied verbatim and '' is a literal quote.
// Every other character is copied as is.

type fields struct {
	year, month, day             int
	hour, minute, second, millis int
	monthName, dayName           string
}

// Format renders dt through layout using Persian calendar fields and names.
func Format(dt persian.DateTime, layout string) string {
	d := dt.Date()
	return render(layout, fields{
		year:      d.Year(),
		month:     int(d.Month()),
		day:       d.Day(),
		hour:      dt.Hour(),
		minute:    dt.Minute(),
		second:    dt.Second(),
		millis:    dt.Millisecond(),
		monthName: d.MonthName(),
		dayName:   d.DayName(),
	})
}

// FormatDate renders d at midnight.
func FormatDate(d persian.Date, layout string) string {
	return Format(persian.FromEpochMillis(d.EpochMillis()), layout)
}

// FormatGregorian renders the UTC instant of dt through layout using
// Gregorian fields and English names.
func FormatGregorian(dt persian.DateTime, layout string) string {
	t := dt.Time()
	return render(layout, fields{
		year:      t.Year(),
		month:     int(t.Month()),
		day:       t.Day(),
		hour:      t.Hour(),
		minute:    t.Minute(),
		second:    t.Second(),
		millis:    t.Nanosecond() / 1e6,
		monthName: t.Month().String(),
		dayName:   t.Weekday().String(),
	})
}

func render(layout string, f fields) string {
	var b strings.Builder
	b.Grow(len(layout) + 8)

	for i := 0; i < len(layout); {
		c := layout[i]

		if c == '\'' {
			end := strings.IndexByte(layout[i+1:], '\'')
			switch {
			case end == 0:
				b.WriteByte('\'')
				i += 2
			case end < 0:
				b.WriteString(layout[i+1:])
				i = len(layout)
			default:
				b.WriteString(layout[i+1 : i+1+end])
				i += end + 2
			}
			continue
		}

		n := 1
		for i+n < len(layout) && layout[i+n] == c {
			n++
		}
		if !writeToken(&b, c, n, f) {
			b.WriteString(layout[i : i+n])
		}
		i += n
	}
	return b.String()
}

func writeToken(b *strings.Builder, c byte, n int, f fields) bool {
	switch c {
	case 'y':
		if n == 2 {
			b.WriteString(pad(int(julian.FloorMod(int64(f.year), 100)), 2))
		} else {
			b.WriteString(strconv.Itoa(f.year))
		}
	case 'Y':
		b.WriteString(strconv.Itoa(f.year))
	case 'M':
		switch n {
		case 1:
			b.WriteString(strconv.Itoa(f.month))
		case 2:
			b.WriteString(pad(f.month, 2))
		default:
			b.WriteString(f.monthName)
		}
	case 'm':
		if n == 1 {
			b.WriteString(pad(f.month, 2))
		} else {
			b.WriteString(pad(f.minute, 2))
		}
	case 'n':
		b.WriteString(strconv.Itoa(f.month))
	case 'd':
		b.WriteString(pad(f.day, 2))
	case 'j':
		b.WriteString(strconv.Itoa(f.day))
	case 'H':
		b.WriteString(pad(f.hour, 2))
	case 'i':
		b.WriteString(pad(f.minute, 2))
	case 's':
		b.WriteString(pad(f.second, 2))
	case 'S':
		b.WriteString(pad(f.millis, 3))
	case 'E', 'l':
		b.WriteString(f.dayName)
	case 'F':
		b.WriteString(f.monthName)
	default:
		return false
	}
	return true
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
