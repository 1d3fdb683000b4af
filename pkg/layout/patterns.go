package layout

import "fmt"

// PersianPattern names a fixed layout for Persian dates.
type PersianPattern int

const (
	P1 PersianPattern = iota + 1 // Y/m/d  H:i:s
	P2                           // H:i Y/m/d
	P3                           // yyyy/MM/dd HH:mm
	P4                           // Y/m/d
	P5                           // Y/m/d H:i
	P6                           // yyyy/MM/dd
)

var persianPatterns = [...]string{
	P1: "Y/m/d  H:i:s",
	P2: "H:i Y/m/d",
	P3: "yyyy/MM/dd HH:mm",
	P4: "Y/m/d",
	P5: "Y/m/d H:i",
	P6: "yyyy/MM/dd",
}

// Text returns the layout string, or "" for an unknown pattern.
func (p PersianPattern) Text() string {
	if p < P1 || p > P6 {
		return ""
	}
	return persianPatterns[p]
}

func (p PersianPattern) String() string { return fmt.Sprintf("P%d", int(p)) }

// GregorianPattern names a fixed layout for Gregorian UTC timestamps.
type GregorianPattern int

const (
	G1 GregorianPattern = iota + 1 // yyyy-MM-dd'T'HH:mm:ss'Z'
	G2                             // yyyy_MM_dd__HH_mm
	G3                             // HH:mm
	G4                             // yyyy-MM-dd'T'HH:mm:ss
	G5                             // yyyy-MM-dd HH:mm:ss.SSS'Z'
)

var gregorianPatterns = [...]string{
	G1: "yyyy-MM-dd'T'HH:mm:ss'Z'",
	G2: "yyyy_MM_dd__HH_mm",
	G3: "HH:mm",
	G4: "yyyy-MM-dd'T'HH:mm:ss",
	G5: "yyyy-MM-dd HH:mm:ss.SSS'Z'",
}

// Text returns the layout string, or "" for an unknown pattern.
func (p GregorianPattern) Text() string {
	if p < G1 || p > G5 {
		return ""
	}
	return gregorianPatterns[p]
}

func (p GregorianPattern) String() string { return fmt.Sprintf("G%d", int(p)) }

// Resolve maps a pattern name such as "P3" or "g1" to its layout. Any other
// string is returned unchanged so callers can pass free-form layouts.
func Resolve(name string) string {
	if len(name) != 2 || name[1] < '1' || name[1] > '9' {
		return name
	}
	n := int(name[1] - '0')
	var t string
	switch name[0] {
	case 'P', 'p':
		t = PersianPattern(n).Text()
	case 'G', 'g':
		t = GregorianPattern(n).Text()
	}
	if t == "" {
		return name
	}
	return t
}
