// Package dateconv converts calendar instants to Julian dates, the
// continuous day-count the oblate gravity model's pole motion (§4.4)
// and the reference ephemeris (§6) are expressed in.
package dateconv

import (
	"math"
	"time"
)

// J2000 is the Julian date of the J2000.0 epoch (2000-01-01 12:00 TT).
const J2000 = 2451545.0

// DaysPerJulianCentury is the number of days in a Julian century, the
// unit pole-motion rates are expressed in (§4.4, §6).
const DaysPerJulianCentury = 36525.0

// JulianDate converts t (interpreted in UTC) to a Julian date, using
// the standard Fliegel-Van Flandern / Meeus algorithm.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	year := float64(t.Year())
	month := float64(t.Month())
	day := float64(t.Day())

	hour := float64(t.Hour()) / 24.0
	minute := float64(t.Minute()) / 1440.0
	second := (float64(t.Second()) + float64(t.Nanosecond())/1e9) / 86400.0
	dayFraction := hour + minute + second

	if month <= 2 {
		year--
		month += 12
	}

	a := math.Floor(year / 100.0)
	b := 2 - a + math.Floor(a/4.0)

	jd := math.Floor(365.25*(year+4716)) + math.Floor(30.6001*(month+1)) + day + b - 1524.5
	return jd + dayFraction
}

// JulianCenturiesSinceJ2000 returns (JulianDate(t) - J2000) /
// DaysPerJulianCentury, the "T" that pole-motion and orbital-element
// rate formulas are parameterized by.
func JulianCenturiesSinceJ2000(t time.Time) float64 {
	return (JulianDate(t) - J2000) / DaysPerJulianCentury
}
