package models

import (
	"github.com/fatih/structs"
)

type ValuationMethod string

const (
	ClosedForm ValuationMethod = "CLOSED_FORM"
	Lattice    ValuationMethod = "LATTICE"
)

// PricingResult is the universal currency between the pricer, the Greek
// estimator and the structure builder. The field order is the row order of
// every result table and must not change.
type PricingResult struct {
	Price float64 `row:"price"`
	Delta float64 `row:"delta"`
	Gamma float64 `row:"gamma"`
	Theta float64 `row:"theta"`
	Vega  float64 `row:"vega"`
	Rho   float64 `row:"rho"`

	// Method records whether vega and rho came from the closed form or from
	// finite differences around the lattice. Not part of the row vector.
	Method ValuationMethod `row:"-"`
}

// Vector flattens the result into the fixed row order.
func (r PricingResult) Vector() []float64 {
	return rowValues(r)
}

// RowLabels returns the row labels aligned with Vector.
func (r PricingResult) RowLabels() []string {
	return rowLabels(r)
}

// ResultFromVector is the inverse of Vector.
func ResultFromVector(v []float64) PricingResult {
	return PricingResult{Price: v[0], Delta: v[1], Gamma: v[2], Theta: v[3], Vega: v[4], Rho: v[5]}
}

// DeltaSolveResult carries the priced option plus the intermediates of the
// delta-to-strike inversion for auditability.
type DeltaSolveResult struct {
	PricingResult
	D1              float64 `row:"d1"`
	RiskFreeRate    float64 `row:"riskfree_rate"`
	ATMVol          float64 `row:"volatility_atm"`
	YearsToMaturity float64 `row:"years_to_maturity"`
	Strike          float64 `row:"strike_price"`
}

// rowLabels and rowValues walk the struct fields tagged with `row`, recursing
// through embedded structs so composite results flatten in declaration order.
func rowLabels(result interface{}) []string {
	var labels []string
	for _, field := range structs.Fields(result) {
		if field.IsEmbedded() {
			labels = append(labels, rowLabels(field.Value())...)
			continue
		}
		tag := field.Tag("row")
		if tag == "" || tag == "-" {
			continue
		}
		labels = append(labels, tag)
	}
	return labels
}

func rowValues(result interface{}) []float64 {
	var values []float64
	for _, field := range structs.Fields(result) {
		if field.IsEmbedded() {
			values = append(values, rowValues(field.Value())...)
			continue
		}
		tag := field.Tag("row")
		if tag == "" || tag == "-" {
			continue
		}
		values = append(values, field.Value().(float64))
	}
	return values
}

// ResultTable is the columnar output shape shared by every pricing operation:
// fixed labeled rows, one column per leg or structure.
type ResultTable struct {
	Rows    []string
	Columns []string
	// Values[i] is the column vector for Columns[i], aligned with Rows.
	Values [][]float64
}

func NewResultTable(rows []string) *ResultTable {
	return &ResultTable{Rows: rows}
}

func (t *ResultTable) AddColumn(label string, values []float64) {
	t.Columns = append(t.Columns, label)
	t.Values = append(t.Values, values)
}

// Column returns the vector for a column label, nil if absent.
func (t *ResultTable) Column(label string) []float64 {
	for i, column := range t.Columns {
		if column == label {
			return t.Values[i]
		}
	}
	return nil
}

// At returns the value for a (row, column) label pair, false if absent.
func (t *ResultTable) At(row string, column string) (float64, bool) {
	values := t.Column(column)
	if values == nil {
		return 0, false
	}
	for i, r := range t.Rows {
		if r == row {
			return values[i], true
		}
	}
	return 0, false
}

// Table renders a single result as a one-column table.
func (r PricingResult) Table(column string) *ResultTable {
	table := NewResultTable(r.RowLabels())
	table.AddColumn(column, r.Vector())
	return table
}

// Table renders the priced option rows followed by the inversion audit rows.
func (r DeltaSolveResult) Table(column string) *ResultTable {
	table := NewResultTable(rowLabels(r))
	table.AddColumn(column, rowValues(r))
	return table
}

// StructureLeg is one priced leg of a multi-leg structure with its label and
// signed weight in the combination.
type StructureLeg struct {
	Label  string
	Weight float64
	Result PricingResult
}

// Structure is an ordered set of priced legs plus their weighted combination.
type Structure struct {
	Kind     string
	Legs     []StructureLeg
	Combined PricingResult
}

// Combine applies the structure recipe: the combined result is the weighted
// element-wise sum of the leg vectors, row order identical across all legs.
func Combine(kind string, legs []StructureLeg) Structure {
	combined := make([]float64, len(PricingResult{}.Vector()))
	for _, leg := range legs {
		for i, value := range leg.Result.Vector() {
			combined[i] += leg.Weight * value
		}
	}
	return Structure{Kind: kind, Legs: legs, Combined: ResultFromVector(combined)}
}

// Table renders one column per leg followed by the combined column.
func (s Structure) Table() *ResultTable {
	table := NewResultTable(PricingResult{}.RowLabels())
	for _, leg := range s.Legs {
		table.AddColumn(leg.Label, leg.Result.Vector())
	}
	table.AddColumn(s.Kind, s.Combined.Vector())
	return table
}
