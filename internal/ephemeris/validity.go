package ephemeris

import "time"

// mustDate builds the UTC calendar instant used to seed
// FirstValidDate/LastValidDate at package init. year uses Go's usual
// astronomical convention (negative years precede 1 BC by one,
// i.e. year -3000 here is used only as the conventional marker for
// "3000 BC" the spec names; the exact proleptic-calendar boundary
// value is not load-bearing, only its distance from J2000 is).
func mustDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
