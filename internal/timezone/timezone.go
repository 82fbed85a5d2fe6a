package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Africa/Lusaka"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// In converts t to the shop time zone, falling back to DefaultTimezone.
func In(t time.Time, tz string) time.Time {
	return t.In(Location(tz))
}

// StartOfDay returns midnight of t's calendar day in the shop time zone.
func StartOfDay(t time.Time, tz string) time.Time {
	local := In(t, tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
