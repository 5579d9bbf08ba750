package options

import (
	"math"

	"github.com/JulijJegorov/xlbricksmodels/models"
)

// Default bump sizes for the finite-difference Greeks: absolute vol points for
// vega, absolute rate for rho.
const (
	DefaultVegaBump = 0.01
	DefaultRhoBump  = 0.001
)

// EstimateVega estimates dPrice/dVol by central finite difference, re-pricing
// the same contract on the same lattice under a bumped volatility. Reusing the
// step count keeps the discretization error consistent between the two
// evaluations, so the difference quotient is not a re-gridding artifact.
func EstimateVega(optionType models.OptionType, process BlackProcess, strike float64, steps int, bump float64) (float64, error) {
	if bump <= 0 {
		return 0, models.Preconditionf("vega bump must be positive, got %v", bump)
	}
	// The tree folds a negative vol back to its magnitude, so both bumped
	// vols must stay positive.
	if process.Vol <= bump {
		bump = process.Vol / 2
	}
	if bump <= 0 {
		return 0, models.Preconditionf("volatility must be positive, got %v", process.Vol)
	}
	processUp := process
	processUp.Vol = process.Vol + bump
	processDown := process
	processDown.Vol = process.Vol - bump

	priceUp := crrLattice(optionType, processUp, strike, steps).price
	priceDown := crrLattice(optionType, processDown, strike, steps).price
	vega := (priceUp - priceDown) / (2 * bump)
	if math.IsNaN(vega) || math.IsInf(vega, 0) {
		return 0, models.Numericalf("vega estimate is not finite for strike %v, bump %v", strike, bump)
	}
	return vega, nil
}

// EstimateRho estimates dPrice/dRate the same way, bumping the flat zero rate
// the process discounts with.
func EstimateRho(optionType models.OptionType, process BlackProcess, strike float64, steps int, bump float64) (float64, error) {
	if bump <= 0 {
		return 0, models.Preconditionf("rho bump must be positive, got %v", bump)
	}
	processUp := process
	processUp.Rate = process.Rate + bump
	processDown := process
	processDown.Rate = process.Rate - bump

	priceUp := crrLattice(optionType, processUp, strike, steps).price
	priceDown := crrLattice(optionType, processDown, strike, steps).price
	rho := (priceUp - priceDown) / (2 * bump)
	if math.IsNaN(rho) || math.IsInf(rho, 0) {
		return 0, models.Numericalf("rho estimate is not finite for strike %v, bump %v", strike, bump)
	}
	return rho, nil
}
