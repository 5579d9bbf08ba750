// Package curves holds the discount-curve and volatility-surface adapters the
// pricing core queries. The core never constructs these itself.
package curves

import (
	"math"
	"sort"
	"time"

	"github.com/JulijJegorov/xlbricksmodels/daycount"
	"github.com/JulijJegorov/xlbricksmodels/models"
)

// FlatForward is a single continuously evolving flat rate quoted under any
// compounding convention.
type FlatForward struct {
	ReferenceDate time.Time
	Rate          float64
	Convention    daycount.Convention
	Compounding   models.Compounding
}

func NewFlatForward(referenceDate time.Time, rate float64, convention daycount.Convention, compounding models.Compounding) *FlatForward {
	return &FlatForward{ReferenceDate: referenceDate, Rate: rate, Convention: convention, Compounding: compounding}
}

func (c *FlatForward) DayCounter() daycount.Convention {
	return c.Convention
}

func (c *FlatForward) ZeroRate(date time.Time, dayCounter daycount.Convention, compounding models.Compounding) float64 {
	t := daycount.YearFraction(dayCounter, c.ReferenceDate, date)
	discount := discountFactor(c.Rate, c.Compounding, daycount.YearFraction(c.Convention, c.ReferenceDate, date))
	return impliedRate(discount, compounding, t)
}

// ForwardCurve is a pillar-based zero curve with log-linear interpolation on
// discount factors and flat extrapolation past the last pillar.
type ForwardCurve struct {
	ReferenceDate time.Time
	Convention    daycount.Convention
	times         []float64
	rates         []float64
}

// CurvePoint is one (date, continuously compounded zero rate) pillar.
type CurvePoint struct {
	Date time.Time
	Rate float64
}

func NewForwardCurve(referenceDate time.Time, points []CurvePoint, convention daycount.Convention) *ForwardCurve {
	sorted := make([]CurvePoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
	curve := &ForwardCurve{ReferenceDate: referenceDate, Convention: convention}
	for _, point := range sorted {
		curve.times = append(curve.times, daycount.YearFraction(convention, referenceDate, point.Date))
		curve.rates = append(curve.rates, point.Rate)
	}
	return curve
}

func (c *ForwardCurve) DayCounter() daycount.Convention {
	return c.Convention
}

func (c *ForwardCurve) ZeroRate(date time.Time, dayCounter daycount.Convention, compounding models.Compounding) float64 {
	tNative := daycount.YearFraction(c.Convention, c.ReferenceDate, date)
	discount := discountFactor(c.rateAt(tNative), models.Continuous, tNative)
	t := daycount.YearFraction(dayCounter, c.ReferenceDate, date)
	return impliedRate(discount, compounding, t)
}

// rateAt interpolates log-linearly on discounts, which is linear in rate*time.
func (c *ForwardCurve) rateAt(t float64) float64 {
	if len(c.times) == 0 {
		return 0
	}
	if t <= c.times[0] {
		return c.rates[0]
	}
	last := len(c.times) - 1
	if t >= c.times[last] {
		return c.rates[last]
	}
	i := sort.SearchFloat64s(c.times, t)
	t0, t1 := c.times[i-1], c.times[i]
	rt := c.rates[i-1]*t0 + (c.rates[i]*t1-c.rates[i-1]*t0)*(t-t0)/(t1-t0)
	return rt / t
}

func discountFactor(rate float64, compounding models.Compounding, t float64) float64 {
	switch compounding {
	case models.SimpleCompounding:
		return 1.0 / (1.0 + rate*t)
	case models.Compounded:
		return math.Pow(1.0+rate, -t)
	}
	return math.Exp(-rate * t)
}

func impliedRate(discount float64, compounding models.Compounding, t float64) float64 {
	if t <= 0 {
		return 0
	}
	switch compounding {
	case models.SimpleCompounding:
		return (1.0/discount - 1.0) / t
	case models.Compounded:
		return math.Pow(1.0/discount, 1.0/t) - 1.0
	}
	return -math.Log(discount) / t
}
