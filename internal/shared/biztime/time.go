// Package biztime provides reporting-timezone calculations.
// All storage and queries use UTC. Reporting boundaries (the yearly
// listing window, the ticket-number year) are computed in a fixed
// UTC+9 civil calendar regardless of host timezone or tzdata; the
// offset has no DST so a fixed zone states the rule directly.
package biztime

import "time"

// offsetSeconds is the fixed reporting offset (UTC+9).
const offsetSeconds = 9 * 60 * 60

var reportingZone = time.FixedZone("UTC+9", offsetSeconds)

// Location returns the fixed reporting timezone.
func Location() *time.Location {
	return reportingZone
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Year returns the civil year of t in the reporting timezone.
func Year(t time.Time) int {
	return t.In(reportingZone).Year()
}

// YearStartUTC returns Jan 1 00:00:00 of the given reporting year,
// converted to UTC.
func YearStartUTC(year int) time.Time {
	return time.Date(year, 1, 1, 0, 0, 0, 0, reportingZone).UTC()
}

// YearRangeUTC returns the half-open interval [Jan1 Y, Jan1 Y+1) of the
// given reporting year, both bounds in UTC. A record at exactly the upper
// bound belongs to the next year.
func YearRangeUTC(year int) (time.Time, time.Time) {
	return YearStartUTC(year), YearStartUTC(year + 1)
}
