package options

import (
	"errors"
	"testing"

	"github.com/JulijJegorov/xlbricksmodels/models"
)

// Pricing at a strike yields a delta; feeding that delta back into the solver
// must recover the strike.
func TestDeltaImpliedStrikeRoundTrip(t *testing.T) {
	ctx := testContext(105, 0.22, 0.04)
	for _, fixture := range []struct {
		optionType models.OptionType
		strike     float64
	}{
		{models.Call, 95},
		{models.Call, 115},
		{models.Put, 100},
	} {
		priced, err := Vanilla(ctx, models.OptionLeg{Type: fixture.optionType, Strike: fixture.strike, Expiry: expiryDate, Style: models.European})
		if err != nil {
			t.Fatal(err)
		}
		solved, err := VanillaDelta(ctx, expiryDate, priced.Delta, fixture.optionType)
		if err != nil {
			t.Fatal(err)
		}
		CheckClose(t, "round trip strike", solved.Strike, fixture.strike, 1e-8)
		CheckClose(t, "round trip price", solved.Price, priced.Price, 1e-8)
		CheckClose(t, "round trip delta", solved.Delta, priced.Delta, 1e-10)
	}
}

func TestDeltaSolveAuditRows(t *testing.T) {
	ctx := testContext(100, 0.2, 0.05)
	solved, err := VanillaDelta(ctx, expiryDate, 0.35, models.Call)
	if err != nil {
		t.Fatal(err)
	}

	if solved.ATMVol != 0.2 {
		t.Errorf("Bad ATM vol: %v, expected 0.2\n", solved.ATMVol)
	}
	CheckClose(t, "years to maturity", solved.YearsToMaturity, ctx.YearsToExpiry(expiryDate), 1e-12)
	if solved.Strike <= 0 {
		t.Errorf("Derived strike must be positive: %v\n", solved.Strike)
	}

	table := solved.Table("CALL")
	expectedRows := []string{"price", "delta", "gamma", "theta", "vega", "rho", "d1", "riskfree_rate", "volatility_atm", "years_to_maturity", "strike_price"}
	if len(table.Rows) != len(expectedRows) {
		t.Fatalf("Bad row count: %v, expected %v\n", len(table.Rows), len(expectedRows))
	}
	for i, row := range expectedRows {
		if table.Rows[i] != row {
			t.Errorf("Bad row %v: %v, expected %v\n", i, table.Rows[i], row)
		}
	}
}

func TestDeltaSolveDomainErrors(t *testing.T) {
	ctx := testContext(100, 0.2, 0.05)
	var domainErr *models.DomainError

	if _, err := VanillaDelta(ctx, expiryDate, 1.2, models.Call); !errors.As(err, &domainErr) {
		t.Errorf("Expected DomainError for call delta above one, got %v\n", err)
	}
	if _, err := VanillaDelta(ctx, expiryDate, -0.1, models.Call); !errors.As(err, &domainErr) {
		t.Errorf("Expected DomainError for negative call delta, got %v\n", err)
	}
	if _, err := VanillaDelta(ctx, expiryDate, -1.5, models.Put); !errors.As(err, &domainErr) {
		t.Errorf("Expected DomainError for put delta below minus one, got %v\n", err)
	}
	if _, err := VanillaDelta(ctx, expiryDate, 0.2, models.Put); !errors.As(err, &domainErr) {
		t.Errorf("Expected DomainError for positive put delta, got %v\n", err)
	}

	var enumErr *models.InvalidEnumError
	if _, err := VanillaDelta(ctx, expiryDate, 0.5, "DIGITAL"); !errors.As(err, &enumErr) {
		t.Errorf("Expected InvalidEnumError for option type, got %v\n", err)
	}
}
