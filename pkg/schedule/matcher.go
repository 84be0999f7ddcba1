package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Years above this are taken as Buddhist era and shifted back 543 years.
const buddhistYearFloor = 2400

var (
	dmyRe = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
	ymdRe = regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`)
)

// Pattern is the parsed form of a schedule descriptor. A descriptor is
// parsed once per tick and matched against many dates.
//
// Weekdays holds every weekday whose name (any spelling) appears somewhere
// in the descriptor as a substring. This is intentionally not a tokenized
// check: "Monkey business" yields Monday, matching what producers have
// come to rely on.
//
// Date holds an explicit D/M/YYYY or YYYY/M/D literal found in the
// descriptor, if any. It is only consulted when the weekday check misses:
// a descriptor naming Saturday plus some date matches every Saturday AND
// that date.
type Pattern struct {
	Weekdays map[time.Weekday]bool
	Date     *time.Time
}

// IsZero reports whether the pattern can never match.
func (p Pattern) IsZero() bool {
	return len(p.Weekdays) == 0 && p.Date == nil
}

// Matches reports whether the descriptor falls on target. Weekday
// recurrence wins over the explicit date literal.
func (p Pattern) Matches(target time.Time) bool {
	if p.Weekdays[target.Weekday()] {
		return true
	}
	if p.Date != nil {
		y1, m1, d1 := p.Date.Date()
		y2, m2, d2 := target.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}
	return false
}

// Parse builds a Pattern from a free-text descriptor. It never fails:
// anything unrecognizable is a zero pattern that matches no date.
func Parse(descriptor string) Pattern {
	var p Pattern
	if descriptor == "" {
		return p
	}
	lower := strings.ToLower(descriptor)
	for d := time.Sunday; d <= time.Saturday; d++ {
		for _, name := range NamesOf(d).All() {
			if strings.Contains(lower, strings.ToLower(name)) {
				if p.Weekdays == nil {
					p.Weekdays = make(map[time.Weekday]bool)
				}
				p.Weekdays[d] = true
				break
			}
		}
	}
	if m := dmyRe.FindStringSubmatch(descriptor); m != nil {
		if t, ok := buildDate(m[3], m[2], m[1]); ok {
			p.Date = &t
		}
	}
	if p.Date == nil {
		if m := ymdRe.FindStringSubmatch(descriptor); m != nil {
			if t, ok := buildDate(m[1], m[2], m[3]); ok {
				p.Date = &t
			}
		}
	}
	return p
}

// Matches is the one-shot form of Parse + Pattern.Matches.
func Matches(descriptor string, target time.Time) bool {
	return Parse(descriptor).Matches(target)
}

func buildDate(ys, ms, ds string) (time.Time, bool) {
	year, err := strconv.Atoi(ys)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(ms)
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(ds)
	if err != nil {
		return time.Time{}, false
	}
	if year > buddhistYearFloor {
		year -= 543
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes out-of-range components ("32/13/2025" rolls
	// over); reject anything that did not round-trip.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
