// Package schedule decides whether a free-text schedule descriptor stored
// on a post falls on a given calendar date. Descriptors are user-typed and
// mix English and Thai; the matcher is deliberately permissive.
package schedule

import "time"

// WeekdayNames holds every spelling of one weekday that may appear inside
// a schedule descriptor.
type WeekdayNames struct {
	Full       string // "Saturday"
	Abbr       string // "Sat"
	Thai       string // "เสาร์"
	ThaiFormal string // "วันเสาร์"
}

var weekdayNames = [7]WeekdayNames{
	{"Sunday", "Sun", "อาทิตย์", "วันอาทิตย์"},
	{"Monday", "Mon", "จันทร์", "วันจันทร์"},
	{"Tuesday", "Tue", "อังคาร", "วันอังคาร"},
	{"Wednesday", "Wed", "พุธ", "วันพุธ"},
	{"Thursday", "Thu", "พฤหัสบดี", "วันพฤหัสบดี"},
	{"Friday", "Fri", "ศุกร์", "วันศุกร์"},
	{"Saturday", "Sat", "เสาร์", "วันเสาร์"},
}

// NamesFor returns the spellings for the weekday of t (server local time).
func NamesFor(t time.Time) WeekdayNames {
	return weekdayNames[int(t.Weekday())]
}

// NamesOf returns the spellings for a weekday index (0 = Sunday).
func NamesOf(d time.Weekday) WeekdayNames {
	return weekdayNames[int(d)]
}

// All returns the four spellings as a slice.
func (n WeekdayNames) All() []string {
	return []string{n.Full, n.Abbr, n.Thai, n.ThaiFormal}
}
