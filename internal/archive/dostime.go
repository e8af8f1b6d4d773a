package archive

import "time"

// dosTime packs t into the MS-DOS time format: hours in bits 15-11,
// minutes in bits 10-5 and seconds/2 in bits 4-0.
func dosTime(t time.Time) uint16 {
	return uint16(t.Hour()<<11 | t.Minute()<<5 | t.Second()/2)
}

// dosDate packs t into the MS-DOS date format: years since 1980 in bits
// 15-9, month in bits 8-5 and day in bits 4-0.
func dosDate(t time.Time) uint16 {
	y := t.Year() - 1980
	if y < 0 {
		y = 0
	}
	if y > 127 {
		y = 127
	}
	return uint16(y<<9 | int(t.Month())<<5 | t.Day())
}
