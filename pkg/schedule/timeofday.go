package schedule

import (
	"regexp"
	"strconv"
)

var startTimeRe = regexp.MustCompile(`(\d{1,2})[:.](\d{2})`)

// StartTime extracts the starting hour and minute from a free-text
// time-of-day field ("14:00", "14.00", "14:00 - 16:00"). ok is false when
// nothing time-shaped is present or the values are out of range.
func StartTime(s string) (hour, minute int, ok bool) {
	m := startTimeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
