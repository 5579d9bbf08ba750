// Package options is the pricing-and-risk core: the single-option pricer with
// closed-form and lattice valuation, the finite-difference Greek estimator,
// the multi-leg structure builder and the calendar-spread Monte Carlo engine.
package options

import (
	"github.com/JulijJegorov/xlbricksmodels/models"
)

// Vanilla prices a single option leg against a market context: closed-form
// Black valuation for European exercise, a CRR lattice with finite-difference
// vega and rho for American exercise.
func Vanilla(ctx models.MarketContext, leg models.OptionLeg) (models.PricingResult, error) {
	if err := validateLeg(ctx, leg); err != nil {
		return models.PricingResult{}, err
	}

	vol := ctx.Surface.BlackVol(leg.Expiry, leg.Strike)
	rate := ctx.Curve.ZeroRate(leg.Expiry, ctx.Curve.DayCounter(), models.Continuous)
	process := BlackProcess{
		Forward:      ctx.ForwardPrice,
		Rate:         rate,
		Vol:          vol,
		TimeToExpiry: ctx.YearsToExpiry(leg.Expiry),
	}

	if leg.Style == models.European {
		return blackClosedForm(leg.Type, process, leg.Strike), nil
	}

	result := latticeResult(leg.Type, process, leg.Strike, leg.LatticeSteps)
	vega, err := EstimateVega(leg.Type, process, leg.Strike, leg.LatticeSteps, DefaultVegaBump)
	if err != nil {
		return models.PricingResult{}, err
	}
	rho, err := EstimateRho(leg.Type, process, leg.Strike, leg.LatticeSteps, DefaultRhoBump)
	if err != nil {
		return models.PricingResult{}, err
	}
	result.Vega = vega
	result.Rho = rho
	return result, nil
}

func validateLeg(ctx models.MarketContext, leg models.OptionLeg) error {
	if leg.Type != models.Call && leg.Type != models.Put {
		return &models.InvalidEnumError{Field: "option_type", Value: string(leg.Type)}
	}
	if leg.Style != models.European && leg.Style != models.American {
		return &models.InvalidEnumError{Field: "exercise_type", Value: string(leg.Style)}
	}
	if ctx.ForwardPrice <= 0 {
		return models.Preconditionf("forward price must be positive, got %v", ctx.ForwardPrice)
	}
	if leg.Strike <= 0 {
		return models.Preconditionf("strike price must be positive, got %v", leg.Strike)
	}
	if !leg.Expiry.After(ctx.EvaluationDate) {
		return models.Preconditionf("expiry %v must be after evaluation date %v",
			leg.Expiry.Format("2006-01-02"), ctx.EvaluationDate.Format("2006-01-02"))
	}
	// The tree Greeks read the step-1 and step-2 layers, so shallower trees
	// cannot be priced.
	if leg.Style == models.American && leg.LatticeSteps < 2 {
		return models.Preconditionf("lattice steps must be at least 2, got %v", leg.LatticeSteps)
	}
	return nil
}
