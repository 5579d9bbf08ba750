package curves

import (
	"math"
	"sort"
	"time"

	"github.com/JulijJegorov/xlbricksmodels/daycount"
	"github.com/JulijJegorov/xlbricksmodels/models"
)

// ConstantVol is a flat Black volatility, the surface used when a single
// market vol drives every strike and expiry.
type ConstantVol struct {
	ReferenceDate time.Time
	Vol           float64
	Convention    daycount.Convention
}

func NewConstantVol(referenceDate time.Time, vol float64, convention daycount.Convention) *ConstantVol {
	return &ConstantVol{ReferenceDate: referenceDate, Vol: vol, Convention: convention}
}

func (s *ConstantVol) BlackVol(expiry time.Time, strike float64) float64 {
	return s.Vol
}

func (s *ConstantVol) BlackVolTime(timeToMaturity float64, strike float64) float64 {
	return s.Vol
}

// VolPillar is one (expiry, strike, vol) quote of a variance surface.
type VolPillar struct {
	Expiry time.Time
	Strike float64
	Vol    float64
}

// VarianceSurface interpolates bilinearly on total variance across a strike by
// expiry grid, flat beyond the edges. Deliberately minimal; smile modelling
// belongs to the external surface builders.
type VarianceSurface struct {
	ReferenceDate time.Time
	Convention    daycount.Convention
	times         []float64
	strikes       []float64
	// variance[i][j] is total variance at times[i], strikes[j]
	variance [][]float64
}

// NewVarianceSurface builds the surface from pillar quotes. Every (expiry,
// strike) grid cell needs a pillar; a hole would otherwise interpolate against
// zero variance.
func NewVarianceSurface(referenceDate time.Time, pillars []VolPillar, convention daycount.Convention) (*VarianceSurface, error) {
	surface := &VarianceSurface{ReferenceDate: referenceDate, Convention: convention}
	timeSet := map[float64]bool{}
	strikeSet := map[float64]bool{}
	for _, pillar := range pillars {
		timeSet[daycount.YearFraction(convention, referenceDate, pillar.Expiry)] = true
		strikeSet[pillar.Strike] = true
	}
	for t := range timeSet {
		surface.times = append(surface.times, t)
	}
	for k := range strikeSet {
		surface.strikes = append(surface.strikes, k)
	}
	sort.Float64s(surface.times)
	sort.Float64s(surface.strikes)
	surface.variance = make([][]float64, len(surface.times))
	filled := make([][]bool, len(surface.times))
	for i := range surface.variance {
		surface.variance[i] = make([]float64, len(surface.strikes))
		filled[i] = make([]bool, len(surface.strikes))
	}
	for _, pillar := range pillars {
		t := daycount.YearFraction(convention, referenceDate, pillar.Expiry)
		i := sort.SearchFloat64s(surface.times, t)
		j := sort.SearchFloat64s(surface.strikes, pillar.Strike)
		surface.variance[i][j] = pillar.Vol * pillar.Vol * t
		filled[i][j] = true
	}
	for i, row := range filled {
		for j, ok := range row {
			if !ok {
				return nil, models.Preconditionf("missing vol pillar for time %v, strike %v",
					surface.times[i], surface.strikes[j])
			}
		}
	}
	return surface, nil
}

func (s *VarianceSurface) BlackVol(expiry time.Time, strike float64) float64 {
	return s.BlackVolTime(daycount.YearFraction(s.Convention, s.ReferenceDate, expiry), strike)
}

func (s *VarianceSurface) BlackVolTime(timeToMaturity float64, strike float64) float64 {
	if timeToMaturity <= 0 {
		return 0
	}
	variance := s.varianceAt(timeToMaturity, strike)
	return math.Sqrt(variance / timeToMaturity)
}

func (s *VarianceSurface) varianceAt(t float64, strike float64) float64 {
	i0, i1, wt := bracket(s.times, t)
	j0, j1, wk := bracket(s.strikes, strike)
	low := s.variance[i0][j0]*(1-wk) + s.variance[i0][j1]*wk
	high := s.variance[i1][j0]*(1-wk) + s.variance[i1][j1]*wk
	return low*(1-wt) + high*wt
}

// bracket locates the surrounding grid indexes and interpolation weight for x,
// clamping at the grid edges.
func bracket(grid []float64, x float64) (int, int, float64) {
	if len(grid) == 1 || x <= grid[0] {
		return 0, 0, 0
	}
	last := len(grid) - 1
	if x >= grid[last] {
		return last, last, 0
	}
	i := sort.SearchFloat64s(grid, x)
	weight := (x - grid[i-1]) / (grid[i] - grid[i-1])
	return i - 1, i, weight
}
