// Package daycount resolves day-count convention names and computes year
// fractions between dates.
package daycount

import (
	"strings"
	"time"
)

type Convention int

const (
	Simple Convention = iota
	Thirty360
	Act360
	Act365Fixed
	ActAct
	Bus252
)

var conventionNames = map[string]Convention{
	"SIMPLE":       Simple,
	"30/360":       Thirty360,
	"ACT/360":      Act360,
	"ACT/365FIXED": Act365Fixed,
	"ACT/ACT":      ActAct,
	"BUS/252":      Bus252,
}

// Parse resolves a day counter name like "ACT/365Fixed". Matching is case
// insensitive.
func Parse(name string) (Convention, error) {
	convention, ok := conventionNames[strings.ToUpper(name)]
	if !ok {
		return 0, &UnknownConventionError{Name: name}
	}
	return convention, nil
}

func (c Convention) String() string {
	for name, convention := range conventionNames {
		if convention == c {
			return name
		}
	}
	return "UNKNOWN"
}

type UnknownConventionError struct {
	Name string
}

func (e *UnknownConventionError) Error() string {
	return "unknown day counter: " + e.Name
}

// YearFraction computes the year fraction between start and end under the
// given convention. Simple falls back to ACT/365.
func YearFraction(c Convention, start, end time.Time) float64 {
	switch c {
	case Thirty360:
		return thirty360(start, end)
	case Act360:
		return daysBetween(start, end) / 360.0
	case Act365Fixed, Simple:
		return daysBetween(start, end) / 365.0
	case ActAct:
		return actAct(start, end)
	case Bus252:
		return businessDays(start, end) / 252.0
	}
	return daysBetween(start, end) / 365.0
}

func daysBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24.0
}

// US 30/360 convention with end-of-month day clamping.
func thirty360(start, end time.Time) float64 {
	d1, d2 := start.Day(), end.Day()
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 == 30 {
		d2 = 30
	}
	days := 360*(end.Year()-start.Year()) + 30*(int(end.Month())-int(start.Month())) + (d2 - d1)
	return float64(days) / 360.0
}

// ACT/ACT (ISDA): actual days in each calendar year over that year's length.
func actAct(start, end time.Time) float64 {
	if end.Before(start) {
		return -actAct(end, start)
	}
	fraction := 0.0
	cursor := start
	for cursor.Year() < end.Year() {
		yearEnd := time.Date(cursor.Year()+1, 1, 1, 0, 0, 0, 0, cursor.Location())
		fraction += daysBetween(cursor, yearEnd) / yearLength(cursor.Year())
		cursor = yearEnd
	}
	fraction += daysBetween(cursor, end) / yearLength(end.Year())
	return fraction
}

func yearLength(year int) float64 {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366.0
	}
	return 365.0
}

// Weekday count only; holiday calendars are resolved by external adapters.
func businessDays(start, end time.Time) float64 {
	if end.Before(start) {
		return -businessDays(end, start)
	}
	count := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			count++
		}
	}
	return float64(count)
}
