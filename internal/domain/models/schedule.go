package models

import (
	"sort"
	"time"

	"travelapp/internal/domain"
)

// Schedule is a recurring weekly departure of a route.
type Schedule struct {
	ID                 domain.ID  `json:"id"`
	RouteID            domain.ID  `json:"routeId"`
	DepartureTime      string     `json:"departureTime"` // HH:mm, zero padded
	DaysOfWeek         Weekdays   `json:"daysOfWeek"`
	EffectiveDateStart *time.Time `json:"effectiveDateStart,omitempty"`
	EffectiveDateEnd   *time.Time `json:"effectiveDateEnd,omitempty"`
	IsActive           bool       `json:"isActive"`
}

// Covers reports whether the schedule departs on calendar date d.
// Bounds are inclusive and compared by calendar day only.
func (s Schedule) Covers(d time.Time) bool {
	if !s.DaysOfWeek.Has(d.Weekday()) {
		return false
	}
	day := dayNumber(d)
	if s.EffectiveDateStart != nil && day < dayNumber(*s.EffectiveDateStart) {
		return false
	}
	if s.EffectiveDateEnd != nil && day > dayNumber(*s.EffectiveDateEnd) {
		return false
	}
	return true
}

func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// Weekdays is a set of days, 0 = Sunday .. 6 = Saturday (time.Weekday).
type Weekdays []int

func (w Weekdays) Has(d time.Weekday) bool {
	for _, v := range w {
		if v == int(d) {
			return true
		}
	}
	return false
}

// Valid reports whether the set is non-empty and every entry is within 0..6.
func (w Weekdays) Valid() bool {
	if len(w) == 0 {
		return false
	}
	for _, v := range w {
		if v < 0 || v > 6 {
			return false
		}
	}
	return true
}

// Normalize returns a sorted copy without duplicates.
func (w Weekdays) Normalize() Weekdays {
	seen := map[int]bool{}
	out := make(Weekdays, 0, len(w))
	for _, v := range w {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// EveryDay covers all seven weekdays.
func EveryDay() Weekdays { return Weekdays{0, 1, 2, 3, 4, 5, 6} }
