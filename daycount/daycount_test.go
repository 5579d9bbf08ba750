package daycount

import (
	"math"
	"testing"
	"time"
)

func CheckFraction(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Bad %v: %v, expected %v\n", name, got, want)
	}
}

func TestParse(t *testing.T) {
	for name, expected := range map[string]Convention{
		"ACT/360":      Act360,
		"act/365fixed": Act365Fixed,
		"30/360":       Thirty360,
		"ACT/ACT":      ActAct,
		"BUS/252":      Bus252,
		"simple":       Simple,
	} {
		parsed, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%v): %v", name, err)
		}
		if parsed != expected {
			t.Errorf("Bad convention for %v: %v, expected %v\n", name, parsed, expected)
		}
	}

	if _, err := Parse("ACT/252"); err == nil {
		t.Error("Expected error for unknown day counter")
	} else if _, ok := err.(*UnknownConventionError); !ok {
		t.Errorf("Bad error type: %v\n", err)
	}
}

func TestYearFractions(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	CheckFraction(t, "ACT/360", YearFraction(Act360, start, end), 181.0/360.0)
	CheckFraction(t, "ACT/365", YearFraction(Act365Fixed, start, end), 181.0/365.0)
	CheckFraction(t, "30/360", YearFraction(Thirty360, start, end), 180.0/360.0)
	CheckFraction(t, "ACT/ACT same year", YearFraction(ActAct, start, end), 181.0/365.0)
}

func TestYearFractionAcrossLeapYear(t *testing.T) {
	start := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	// 184 days in 2023 over 365, 182 days in 2024 over 366.
	CheckFraction(t, "ACT/ACT leap", YearFraction(ActAct, start, end), 184.0/365.0+182.0/366.0)
}

func TestBusinessDays(t *testing.T) {
	// 2025-01-06 is a Monday; one full week has five weekdays.
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	CheckFraction(t, "BUS/252", YearFraction(Bus252, start, end), 5.0/252.0)
}
