package models

import (
	"time"

	"github.com/JulijJegorov/xlbricksmodels/daycount"
)

// DiscountCurve is the query interface of an externally constructed yield
// curve. Continuous compounding is assumed wherever the core discounts.
type DiscountCurve interface {
	ZeroRate(date time.Time, dayCounter daycount.Convention, compounding Compounding) float64
	DayCounter() daycount.Convention
}

// VolSurface is the query interface of an externally constructed Black
// volatility surface. Both query forms are required: by expiry date and
// strike, and by time to maturity and forward.
type VolSurface interface {
	BlackVol(expiry time.Time, strike float64) float64
	BlackVolTime(timeToMaturity float64, strike float64) float64
}

// MarketContext is a read-only snapshot of the pricing inputs, borrowed by the
// core for the duration of one call. The evaluation date travels here
// explicitly; there is no process-wide date setting anywhere in this module.
type MarketContext struct {
	EvaluationDate time.Time
	ForwardPrice   float64
	Curve          DiscountCurve
	Surface        VolSurface
}

// YearsToExpiry measures time to expiry with the discount curve's own day
// counter, matching how rates queried from the curve are quoted.
func (m MarketContext) YearsToExpiry(expiry time.Time) float64 {
	return daycount.YearFraction(m.Curve.DayCounter(), m.EvaluationDate, expiry)
}
