package options

import (
	"math"

	"github.com/chobie/go-gaussian"

	"github.com/JulijJegorov/xlbricksmodels/models"
)

var stdNormal = gaussian.NewGaussian(0, 1)

// BlackProcess is a lognormal forward-price process: the forward carries no
// drift and cashflows discount at the zero rate to expiry.
type BlackProcess struct {
	Forward      float64
	Rate         float64
	Vol          float64
	TimeToExpiry float64
}

func (p BlackProcess) d1(strike float64) float64 {
	return (math.Log(p.Forward/strike) + 0.5*p.Vol*p.Vol*p.TimeToExpiry) / (p.Vol * math.Sqrt(p.TimeToExpiry))
}

func (p BlackProcess) d2(strike float64) float64 {
	return p.d1(strike) - p.Vol*math.Sqrt(p.TimeToExpiry)
}

// blackClosedForm prices a European option under the Black model with the
// full set of analytic Greeks.
func blackClosedForm(optionType models.OptionType, process BlackProcess, strike float64) models.PricingResult {
	forward, rate, vol, t := process.Forward, process.Rate, process.Vol, process.TimeToExpiry
	discount := math.Exp(-rate * t)
	d1 := process.d1(strike)
	d2 := process.d2(strike)
	nPrime := stdNormal.Pdf(d1)

	result := models.PricingResult{
		Gamma:  discount * nPrime / (forward * vol * math.Sqrt(t)),
		Vega:   discount * forward * nPrime * math.Sqrt(t),
		Method: models.ClosedForm,
	}
	if optionType == models.Call {
		result.Price = discount * (forward*stdNormal.Cdf(d1) - strike*stdNormal.Cdf(d2))
		result.Delta = discount * stdNormal.Cdf(d1)
		result.Theta = -discount*forward*nPrime*vol/(2*math.Sqrt(t)) +
			rate*discount*(forward*stdNormal.Cdf(d1)-strike*stdNormal.Cdf(d2))
		result.Rho = strike * t * discount * stdNormal.Cdf(d2)
	} else {
		result.Price = discount * (strike*stdNormal.Cdf(-d2) - forward*stdNormal.Cdf(-d1))
		result.Delta = discount * (stdNormal.Cdf(d1) - 1)
		result.Theta = -discount*forward*nPrime*vol/(2*math.Sqrt(t)) +
			rate*discount*(strike*stdNormal.Cdf(-d2)-forward*stdNormal.Cdf(-d1))
		result.Rho = -strike * t * discount * stdNormal.Cdf(-d2)
	}
	return result
}

// ImpliedVol recovers the Black volatility matching a target price via
// Newton-Raphson, seeded with the Brenner-Subrahmanyam approximation.
func ImpliedVol(optionType models.OptionType, process BlackProcess, strike float64, targetPrice float64) (float64, error) {
	if targetPrice <= 0 {
		return 0, models.Preconditionf("target price must be positive, got %v", targetPrice)
	}
	t := process.TimeToExpiry
	vol := math.Sqrt(2*math.Pi/t) * targetPrice / process.Forward
	for i := 0; i < 100; i++ {
		process.Vol = vol
		result := blackClosedForm(optionType, process, strike)
		if result.Vega == 0 {
			break
		}
		diff := result.Price - targetPrice
		if math.Abs(diff) < 1e-12 {
			return vol, nil
		}
		vol = vol - diff/result.Vega
	}
	if math.IsNaN(vol) || math.IsInf(vol, 0) || vol <= 0 {
		return 0, models.Numericalf("implied vol solve diverged for strike %v", strike)
	}
	return vol, nil
}
