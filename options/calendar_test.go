package options

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/JulijJegorov/xlbricksmodels/models"
)

var expiryLong = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
var expiryShort = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

func TestCalendarSpreadValidation(t *testing.T) {
	ctx := testContext(100, 0.2, 0.05)
	base := CalendarSpreadParams{
		ExpiryLong:  expiryLong,
		ExpiryShort: expiryShort,
		Strike:      5,
		Type:        models.Call,
		Correlation: 0.5,
		Paths:       100,
	}

	var preErr *models.PreconditionError
	var enumErr *models.InvalidEnumError

	params := base
	params.Paths = 0
	if _, err := CalendarSpread(ctx, params); !errors.As(err, &preErr) {
		t.Errorf("Expected PreconditionError for zero paths, got %v\n", err)
	}

	params = base
	params.Correlation = 1.5
	if _, err := CalendarSpread(ctx, params); !errors.As(err, &preErr) {
		t.Errorf("Expected PreconditionError for correlation above one, got %v\n", err)
	}

	params = base
	params.Type = "SWAPTION"
	if _, err := CalendarSpread(ctx, params); !errors.As(err, &enumErr) {
		t.Errorf("Expected InvalidEnumError for option type, got %v\n", err)
	}

	params = base
	params.ExpiryShort = evaluationDate
	if _, err := CalendarSpread(ctx, params); !errors.As(err, &preErr) {
		t.Errorf("Expected PreconditionError for expiry at evaluation date, got %v\n", err)
	}
}

// Perfectly correlated legs with identical flat vols move in lockstep: the
// terminal spread is identically zero, so a call on the spread is worthless
// and a put pays its strike discounted.
func TestCalendarSpreadPerfectCorrelation(t *testing.T) {
	ctx := testContext(100, 0.2, 0.05)
	params := CalendarSpreadParams{
		ExpiryLong:  expiryLong,
		ExpiryShort: expiryShort,
		Strike:      5,
		Type:        models.Call,
		Correlation: 1.0,
		Paths:       2000,
	}
	call, err := CalendarSpread(ctx, params)
	if err != nil {
		t.Fatal(err)
	}
	CheckClose(t, "perfectly correlated call", call.Price, 0, 1e-12)

	params.Type = models.Put
	put, err := CalendarSpread(ctx, params)
	if err != nil {
		t.Fatal(err)
	}
	horizon := ctx.YearsToExpiry(expiryShort)
	discount := math.Exp(-put.RateShort * horizon)
	CheckClose(t, "perfectly correlated put", put.Price, 5*discount, 1e-9)
}

func TestCalendarSpreadDeterministicSeed(t *testing.T) {
	ctx := testContext(100, 0.25, 0.03)
	params := CalendarSpreadParams{
		ExpiryLong:  expiryLong,
		ExpiryShort: expiryShort,
		Strike:      2,
		Type:        models.Call,
		Correlation: 0.4,
		Paths:       1000,
		Seed:        7,
	}
	first, err := CalendarSpread(ctx, params)
	if err != nil {
		t.Fatal(err)
	}
	second, err := CalendarSpread(ctx, params)
	if err != nil {
		t.Fatal(err)
	}
	if first.Price != second.Price {
		t.Errorf("Same seed produced different prices: %v, %v\n", first.Price, second.Price)
	}

	params.Seed = 8
	other, err := CalendarSpread(ctx, params)
	if err != nil {
		t.Fatal(err)
	}
	if other.Price == first.Price {
		t.Errorf("Different seeds produced identical prices: %v\n", other.Price)
	}
	if first.Seed != 7 || other.Seed != 8 {
		t.Errorf("Bad recorded seeds: %v, %v\n", first.Seed, other.Seed)
	}
}

func TestCalendarSpreadStandardErrorShrinks(t *testing.T) {
	ctx := testContext(100, 0.25, 0.03)
	params := CalendarSpreadParams{
		ExpiryLong:  expiryLong,
		ExpiryShort: expiryShort,
		Strike:      2,
		Type:        models.Call,
		Correlation: 0.3,
		Paths:       1000,
		Seed:        11,
	}
	coarse, err := CalendarSpread(ctx, params)
	if err != nil {
		t.Fatal(err)
	}

	params.Paths = 16000
	fine, err := CalendarSpread(ctx, params)
	if err != nil {
		t.Fatal(err)
	}
	if fine.StdError >= coarse.StdError {
		t.Errorf("Standard error did not shrink: %v paths %v, %v paths %v\n",
			coarse.Paths, coarse.StdError, fine.Paths, fine.StdError)
	}
}

func TestCalendarSpreadReportsMarketRows(t *testing.T) {
	ctx := testContext(100, 0.2, 0.05)
	result, err := CalendarSpread(ctx, CalendarSpreadParams{
		ExpiryLong:  expiryLong,
		ExpiryShort: expiryShort,
		Strike:      5,
		Type:        models.Call,
		Correlation: 0.5,
		Paths:       500,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.VolLong != 0.2 || result.VolShort != 0.2 {
		t.Errorf("Bad vols: %v, %v\n", result.VolLong, result.VolShort)
	}
	if result.RunID == "" {
		t.Error("Expected a run id")
	}
	if result.Seed != DefaultSeed {
		t.Errorf("Bad default seed: %v, expected %v\n", result.Seed, DefaultSeed)
	}

	table := result.Table("CALL")
	expectedRows := []string{"price", "payoff", "risk_free_rate_long", "risk_free_rate_short", "volatility_long", "volatility_short"}
	for i, row := range expectedRows {
		if table.Rows[i] != row {
			t.Errorf("Bad row %v: %v, expected %v\n", i, table.Rows[i], row)
		}
	}
}
