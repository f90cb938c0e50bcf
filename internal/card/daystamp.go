package card

import (
	"strings"
	"time"
)

const secondsPerDay = 86400

// DayStamp is a count of whole days since the Unix epoch.
type DayStamp int64

var dayStampLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.RFC3339,
	time.RFC3339Nano,
}

// DayStampOf returns the day containing t, computed as floor(unix / 86400).
func DayStampOf(t time.Time) DayStamp {
	unix := t.Unix()
	day := unix / secondsPerDay
	if unix%secondsPerDay < 0 {
		day--
	}
	return DayStamp(day)
}

// Today returns the current day stamp.
func Today() DayStamp {
	return DayStampOf(time.Now())
}

// ParseDayStamp parses an ISO-8601 date or date-time.
// Values without a zone are interpreted as UTC.
func ParseDayStamp(value string) (DayStamp, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range dayStampLayouts {
		t, err := time.ParseInLocation(layout, trimmed, time.UTC)
		if err == nil {
			return DayStampOf(t), nil
		}
	}
	return 0, &InvalidDateError{Value: value}
}

// Time returns midnight UTC of the day.
func (d DayStamp) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// AddDays returns the day n days later.
func (d DayStamp) AddDays(n int) DayStamp {
	return d + DayStamp(n)
}

func (d DayStamp) String() string {
	return d.Time().Format(time.DateOnly)
}

// Int64 returns the raw day count.
func (d DayStamp) Int64() int64 {
	return int64(d)
}
