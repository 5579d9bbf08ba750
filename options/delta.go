package options

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/JulijJegorov/xlbricksmodels/models"
)

// VanillaDelta recovers the strike implied by a target delta, then prices a
// European option at that strike. The Black d1 relation is inverted with the
// inverse normal CDF; only European exercise has a defined inversion.
func VanillaDelta(ctx models.MarketContext, expiry time.Time, delta float64, optionType models.OptionType) (models.DeltaSolveResult, error) {
	if optionType != models.Call && optionType != models.Put {
		return models.DeltaSolveResult{}, &models.InvalidEnumError{Field: "option_type", Value: string(optionType)}
	}
	if !expiry.After(ctx.EvaluationDate) {
		return models.DeltaSolveResult{}, models.Preconditionf("expiry %v must be after evaluation date %v",
			expiry.Format("2006-01-02"), ctx.EvaluationDate.Format("2006-01-02"))
	}

	yearsToMaturity := ctx.YearsToExpiry(expiry)
	rate := ctx.Curve.ZeroRate(expiry, ctx.Curve.DayCounter(), models.Continuous)
	atmVol := ctx.Surface.BlackVolTime(yearsToMaturity, ctx.ForwardPrice)

	// Undo the discounting on the quoted delta; puts shift by one tail.
	quantile := delta * math.Exp(rate*yearsToMaturity)
	if optionType == models.Put {
		quantile += 1
	}
	if quantile <= 0 || quantile >= 1 {
		return models.DeltaSolveResult{}, models.Domainf("delta %v is outside the invertible range for a %v", delta, optionType)
	}
	d1 := distuv.UnitNormal.Quantile(quantile)
	strike := ctx.ForwardPrice / math.Exp(atmVol*math.Sqrt(yearsToMaturity)*d1-0.5*atmVol*atmVol*yearsToMaturity)

	priced, err := Vanilla(ctx, models.OptionLeg{Type: optionType, Strike: strike, Expiry: expiry, Style: models.European})
	if err != nil {
		return models.DeltaSolveResult{}, err
	}
	return models.DeltaSolveResult{
		PricingResult:   priced,
		D1:              d1,
		RiskFreeRate:    rate,
		ATMVol:          atmVol,
		YearsToMaturity: yearsToMaturity,
		Strike:          strike,
	}, nil
}
