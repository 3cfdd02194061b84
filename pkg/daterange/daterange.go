// Package daterange resolves year/month/day query selectors into the date
// windows used by transaction filters and summaries.
package daterange

import "time"

// Range is a date window: Start is inclusive, End is exclusive.
type Range struct {
	Start time.Time
	End   time.Time
}

// Resolve builds the window for the given selector. Zero values mean "not
// supplied". Without tahun no window applies and ok is false; bulan is only
// honored together with tahun, hari only together with both.
//
// Year and month windows end on the next period boundary. The day window
// ends at 23:59:59.999 of the same day, matching the behavior list queries
// have always had. A hari beyond the month's last day yields an empty
// window rather than spilling into the next month: such a selector has
// never matched anything.
func Resolve(tahun, bulan, hari int) (Range, bool) {
	if tahun <= 0 {
		return Range{}, false
	}
	if bulan >= 1 && bulan <= 12 && hari >= 1 {
		if hari > daysInMonth(tahun, bulan) {
			start := time.Date(tahun, time.Month(bulan), 1, 0, 0, 0, 0, time.UTC)
			return Range{Start: start, End: start}, true
		}
		start := time.Date(tahun, time.Month(bulan), hari, 0, 0, 0, 0, time.UTC)
		end := time.Date(tahun, time.Month(bulan), hari, 23, 59, 59, 999*int(time.Millisecond), time.UTC)
		return Range{Start: start, End: end}, true
	}
	if bulan >= 1 && bulan <= 12 {
		start := time.Date(tahun, time.Month(bulan), 1, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes month 13 to January of the next year
		end := time.Date(tahun, time.Month(bulan)+1, 1, 0, 0, 0, 0, time.UTC)
		return Range{Start: start, End: end}, true
	}
	start := time.Date(tahun, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(tahun+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: start, End: end}, true
}

// daysInMonth returns the last day of the month; day zero of the next month
// normalizes to it.
func daysInMonth(tahun, bulan int) int {
	return time.Date(tahun, time.Month(bulan)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
