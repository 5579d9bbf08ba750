package models

// SpreadSimulationResult is the outcome of one calendar-spread Monte Carlo
// run. The first six fields form the reported row vector; RunID, StdError,
// Paths and Seed are audit fields outside it.
type SpreadSimulationResult struct {
	Price     float64 `row:"price"`
	Payoff    float64 `row:"payoff"`
	RateLong  float64 `row:"risk_free_rate_long"`
	RateShort float64 `row:"risk_free_rate_short"`
	VolLong   float64 `row:"volatility_long"`
	VolShort  float64 `row:"volatility_short"`

	RunID    string  `row:"-"`
	StdError float64 `row:"-"`
	Paths    int     `row:"-"`
	Seed     uint64  `row:"-"`
}

// Table renders the simulation result as a one-column table.
func (r SpreadSimulationResult) Table(column string) *ResultTable {
	table := NewResultTable(rowLabels(r))
	table.AddColumn(column, rowValues(r))
	return table
}
