package models

import (
	"testing"
)

func TestPricingResultRowOrder(t *testing.T) {
	expected := []string{"price", "delta", "gamma", "theta", "vega", "rho"}
	labels := PricingResult{}.RowLabels()
	if len(labels) != len(expected) {
		t.Fatalf("Bad row count: %v, expected %v\n", len(labels), len(expected))
	}
	for i, label := range expected {
		if labels[i] != label {
			t.Errorf("Bad row %v: %v, expected %v\n", i, labels[i], label)
		}
	}
}

func TestVectorRoundTrip(t *testing.T) {
	result := PricingResult{Price: 1, Delta: 2, Gamma: 3, Theta: 4, Vega: 5, Rho: 6}
	vector := result.Vector()
	for i, value := range []float64{1, 2, 3, 4, 5, 6} {
		if vector[i] != value {
			t.Errorf("Bad vector element %v: %v, expected %v\n", i, vector[i], value)
		}
	}
	back := ResultFromVector(vector)
	if back.Price != 1 || back.Delta != 2 || back.Gamma != 3 || back.Theta != 4 || back.Vega != 5 || back.Rho != 6 {
		t.Errorf("Bad round trip: %+v\n", back)
	}
}

func TestCombineWeights(t *testing.T) {
	long := PricingResult{Price: 10, Delta: 0.6, Gamma: 0.02, Theta: -3, Vega: 20, Rho: 12}
	short := PricingResult{Price: 4, Delta: 0.3, Gamma: 0.01, Theta: -2, Vega: 15, Rho: 8}
	structure := Combine("CALL_SPREAD", []StructureLeg{
		{Label: "CALL_LONG", Weight: 1, Result: long},
		{Label: "CALL_SHORT", Weight: -1, Result: short},
	})

	longVector := long.Vector()
	shortVector := short.Vector()
	for i, value := range structure.Combined.Vector() {
		if value != longVector[i]-shortVector[i] {
			t.Errorf("Bad combined element %v: %v\n", i, value)
		}
	}
}

func TestStructureTableShape(t *testing.T) {
	structure := Combine("COLLAR", []StructureLeg{
		{Label: "CALL", Weight: -1, Result: PricingResult{Price: 3}},
		{Label: "PUT", Weight: 1, Result: PricingResult{Price: 5}},
	})
	table := structure.Table()

	expectedColumns := []string{"CALL", "PUT", "COLLAR"}
	if len(table.Columns) != len(expectedColumns) {
		t.Fatalf("Bad column count: %v, expected %v\n", len(table.Columns), len(expectedColumns))
	}
	for i, column := range expectedColumns {
		if table.Columns[i] != column {
			t.Errorf("Bad column %v: %v, expected %v\n", i, table.Columns[i], column)
		}
	}
	if price, ok := table.At("price", "COLLAR"); !ok || price != 2 {
		t.Errorf("Bad collar price: %v, %v\n", price, ok)
	}
	if _, ok := table.At("price", "STRANGLE"); ok {
		t.Error("Expected missing column lookup to fail")
	}
}

func TestParseEnums(t *testing.T) {
	if parsed, err := ParseOptionType("call"); err != nil || parsed != Call {
		t.Errorf("Bad parse: %v, %v\n", parsed, err)
	}
	if parsed, err := ParseExerciseStyle("American"); err != nil || parsed != American {
		t.Errorf("Bad parse: %v, %v\n", parsed, err)
	}
	if parsed, err := ParseCompounding("CONTINUOUS"); err != nil || parsed != Continuous {
		t.Errorf("Bad parse: %v, %v\n", parsed, err)
	}

	if _, err := ParseOptionType("FORWARD"); err == nil {
		t.Error("Expected error for unknown option type")
	} else if enumErr, ok := err.(*InvalidEnumError); !ok || enumErr.Field != "option_type" {
		t.Errorf("Bad error: %v\n", err)
	}
	if _, err := ParseExerciseStyle("ASIAN"); err == nil {
		t.Error("Expected error for unknown exercise style")
	}
	if _, err := ParseCompounding("WEEKLY"); err == nil {
		t.Error("Expected error for unknown compounding")
	}
}
