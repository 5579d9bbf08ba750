package options

import (
	"math"

	"github.com/JulijJegorov/xlbricksmodels/models"
)

// latticeValues holds the tree nodes needed for the spot Greeks: the root
// value plus the retained step-1 and step-2 layers.
type latticeValues struct {
	price float64
	step1 [2]float64
	step2 [3]float64
	dt    float64
	up    float64
	down  float64
}

// crrLattice prices an American option on a Cox-Ross-Rubinstein recombining
// tree. The forward process has zero drift, so the risk-neutral up probability
// is (1-d)/(u-d) and each step discounts at the zero rate.
func crrLattice(optionType models.OptionType, process BlackProcess, strike float64, steps int) latticeValues {
	dt := process.TimeToExpiry / float64(steps)
	up := math.Exp(process.Vol * math.Sqrt(dt))
	down := 1.0 / up
	probUp := (1.0 - down) / (up - down)
	stepDiscount := math.Exp(-process.Rate * dt)

	// Terminal layer, node i holds forward * up^i * down^(steps-i).
	values := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		price := process.Forward * math.Pow(up, float64(i)) * math.Pow(down, float64(steps-i))
		values[i] = intrinsic(optionType, price, strike)
	}

	lattice := latticeValues{dt: dt, up: up, down: down}
	// A two-step tree surfaces its terminal layer as the step-2 layer.
	if steps == 2 {
		copy(lattice.step2[:], values[:3])
	}
	for step := steps - 1; step >= 0; step-- {
		for i := 0; i <= step; i++ {
			continuation := stepDiscount * (probUp*values[i+1] + (1.0-probUp)*values[i])
			price := process.Forward * math.Pow(up, float64(i)) * math.Pow(down, float64(step-i))
			values[i] = math.Max(continuation, intrinsic(optionType, price, strike))
		}
		if step == 2 {
			copy(lattice.step2[:], values[:3])
		}
		if step == 1 {
			copy(lattice.step1[:], values[:2])
		}
	}
	lattice.price = values[0]
	return lattice
}

func intrinsic(optionType models.OptionType, price float64, strike float64) float64 {
	if optionType == models.Call {
		return math.Max(price-strike, 0)
	}
	return math.Max(strike-price, 0)
}

// latticeResult derives price, delta, gamma and theta from the retained tree
// layers; it requires at least two steps so both layers exist. Vega and rho
// have no analytic form on the tree and come from the finite-difference
// estimator instead.
func latticeResult(optionType models.OptionType, process BlackProcess, strike float64, steps int) models.PricingResult {
	lattice := crrLattice(optionType, process, strike, steps)
	forward, up, down := process.Forward, lattice.up, lattice.down

	delta := (lattice.step1[1] - lattice.step1[0]) / (forward*up - forward*down)
	deltaUp := (lattice.step2[2] - lattice.step2[1]) / (forward*up*up - forward)
	deltaDown := (lattice.step2[1] - lattice.step2[0]) / (forward - forward*down*down)
	gamma := (deltaUp - deltaDown) / (0.5 * (forward*up*up - forward*down*down))
	// ud = 1, so the middle step-2 node sits back at the root price.
	theta := (lattice.step2[1] - lattice.price) / (2.0 * lattice.dt)

	return models.PricingResult{
		Price:  lattice.price,
		Delta:  delta,
		Gamma:  gamma,
		Theta:  theta,
		Method: models.Lattice,
	}
}
