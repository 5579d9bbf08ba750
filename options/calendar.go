package options

import (
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/JulijJegorov/xlbricksmodels/logger"
	"github.com/JulijJegorov/xlbricksmodels/models"
)

// TimeSteps is the fixed discretization of the simulation horizon.
const TimeSteps = 365

// DefaultSeed keeps unconfigured runs reproducible. Callers wanting fresh
// randomness per run pass their own seed.
const DefaultSeed uint64 = 42

// CalendarSpreadParams describes a spread option between two expiries of the
// same underlying. A zero Seed selects DefaultSeed.
type CalendarSpreadParams struct {
	ExpiryLong  time.Time
	ExpiryShort time.Time
	Strike      float64
	Type        models.OptionType
	Correlation float64
	Paths       int
	Seed        uint64
}

// CalendarSpread prices the spread option with a correlated two-factor Monte
// Carlo simulation. Each factor is a lognormal forward carrying the flat vol
// and flat zero rate to its own expiry; both are simulated to the nearer
// expiry, where the payoff reads the terminal spread.
func CalendarSpread(ctx models.MarketContext, params CalendarSpreadParams) (models.SpreadSimulationResult, error) {
	if err := validateCalendarSpread(ctx, params); err != nil {
		return models.SpreadSimulationResult{}, err
	}
	seed := params.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	volLong := ctx.Surface.BlackVol(params.ExpiryLong, ctx.ForwardPrice)
	volShort := ctx.Surface.BlackVol(params.ExpiryShort, ctx.ForwardPrice)
	rateLong := ctx.Curve.ZeroRate(params.ExpiryLong, ctx.Curve.DayCounter(), models.Continuous)
	rateShort := ctx.Curve.ZeroRate(params.ExpiryShort, ctx.Curve.DayCounter(), models.Continuous)

	// The horizon runs to the nearer expiry; its rate discounts the payoff.
	horizonExpiry, horizonRate := params.ExpiryLong, rateLong
	if params.ExpiryShort.Before(params.ExpiryLong) {
		horizonExpiry, horizonRate = params.ExpiryShort, rateShort
	}
	yearsToMaturity := ctx.YearsToExpiry(horizonExpiry)
	dt := yearsToMaturity / float64(TimeSteps)

	l00, l10, l11 := correlationFactor(params.Correlation)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}

	runID := "calspread-" + uuid.New().String()
	logger.Debugf("[%v] simulating %v paths, %v steps, correlation %v, seed %v\n",
		runID, params.Paths, TimeSteps, params.Correlation, seed)

	sqrtDt := math.Sqrt(dt)
	payoffs := make([]float64, params.Paths)
	for path := 0; path < params.Paths; path++ {
		terminalLong := ctx.ForwardPrice
		terminalShort := ctx.ForwardPrice
		for step := 0; step < TimeSteps; step++ {
			epsilon1 := normal.Rand()
			epsilon2 := normal.Rand()
			z1 := l00 * epsilon1
			z2 := l10*epsilon1 + l11*epsilon2
			// Zero drift: the factors are forwards, not spots.
			terminalLong *= math.Exp(-0.5*volLong*volLong*dt + volLong*sqrtDt*z1)
			terminalShort *= math.Exp(-0.5*volShort*volShort*dt + volShort*sqrtDt*z2)
		}
		spread := terminalLong - terminalShort
		if params.Type == models.Call {
			payoffs[path] = math.Max(spread-params.Strike, 0)
		} else {
			payoffs[path] = math.Max(params.Strike-spread, 0)
		}
	}

	payoff, payoffStd := stat.MeanStdDev(payoffs, nil)
	if math.IsNaN(payoff) || math.IsInf(payoff, 0) {
		return models.SpreadSimulationResult{}, models.Numericalf("[%v] simulated payoff is not finite", runID)
	}
	stdError := 0.0
	if params.Paths > 1 {
		stdError = payoffStd / math.Sqrt(float64(params.Paths))
	}
	price := payoff * math.Exp(-horizonRate*yearsToMaturity)
	logger.Debugf("[%v] payoff %v, price %v, std error %v\n", runID, payoff, price, stdError)

	return models.SpreadSimulationResult{
		Price:     price,
		Payoff:    payoff,
		RateLong:  rateLong,
		RateShort: rateShort,
		VolLong:   volLong,
		VolShort:  volShort,
		RunID:     runID,
		StdError:  stdError,
		Paths:     params.Paths,
		Seed:      seed,
	}, nil
}

func validateCalendarSpread(ctx models.MarketContext, params CalendarSpreadParams) error {
	if params.Type != models.Call && params.Type != models.Put {
		return &models.InvalidEnumError{Field: "option_type", Value: string(params.Type)}
	}
	if ctx.ForwardPrice <= 0 {
		return models.Preconditionf("forward price must be positive, got %v", ctx.ForwardPrice)
	}
	if params.Paths < 1 {
		return models.Preconditionf("paths must be a positive integer, got %v", params.Paths)
	}
	if params.Correlation < -1 || params.Correlation > 1 {
		return models.Preconditionf("correlation must be within [-1, 1], got %v", params.Correlation)
	}
	if !params.ExpiryLong.After(ctx.EvaluationDate) || !params.ExpiryShort.After(ctx.EvaluationDate) {
		return models.Preconditionf("both expiries must be after evaluation date %v",
			ctx.EvaluationDate.Format("2006-01-02"))
	}
	return nil
}

// correlationFactor builds the symmetric 2x2 correlation matrix and returns
// the entries of its lower Cholesky factor. At |correlation| = 1 the matrix is
// singular and the degenerate factor is used directly.
func correlationFactor(correlation float64) (l00, l10, l11 float64) {
	corr := mat.NewSymDense(2, []float64{1, correlation, correlation, 1})
	var chol mat.Cholesky
	if chol.Factorize(corr) {
		lower := mat.NewTriDense(2, mat.Lower, nil)
		chol.LTo(lower)
		return lower.At(0, 0), lower.At(1, 0), lower.At(1, 1)
	}
	return 1, correlation, 0
}
