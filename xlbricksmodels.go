// Package xlbricksmodels prices commodity vanilla options and multi-leg
// option structures. The exported functions mirror the host-facing surface:
// string enums are resolved at this boundary and every operation returns the
// fixed-row labeled table shape.
package xlbricksmodels

import (
	"time"

	"github.com/JulijJegorov/xlbricksmodels/models"
	"github.com/JulijJegorov/xlbricksmodels/options"
)

// ComdtyVanillaOption prices one vanilla option leg: price, delta, gamma,
// theta, vega, rho in fixed row order, one column labeled by option type.
func ComdtyVanillaOption(evaluationDate, expiryDate time.Time, forwardPrice, strikePrice float64,
	optionType, exerciseType string, steps int,
	volatility models.VolSurface, yieldCurve models.DiscountCurve) (*models.ResultTable, error) {
	parsedType, err := models.ParseOptionType(optionType)
	if err != nil {
		return nil, err
	}
	parsedStyle, err := models.ParseExerciseStyle(exerciseType)
	if err != nil {
		return nil, err
	}
	ctx := models.MarketContext{EvaluationDate: evaluationDate, ForwardPrice: forwardPrice, Curve: yieldCurve, Surface: volatility}
	leg := models.OptionLeg{Type: parsedType, Strike: strikePrice, Expiry: expiryDate, Style: parsedStyle, LatticeSteps: steps}
	result, err := options.Vanilla(ctx, leg)
	if err != nil {
		return nil, err
	}
	return result.Table(string(parsedType)), nil
}

// ComdtyVanillaOptionDelta derives a strike from a target delta, prices a
// European option there and appends the inversion audit rows.
func ComdtyVanillaOptionDelta(evaluationDate, expiryDate time.Time, forwardPrice, delta float64,
	optionType string, volatility models.VolSurface, yieldCurve models.DiscountCurve) (*models.ResultTable, error) {
	parsedType, err := models.ParseOptionType(optionType)
	if err != nil {
		return nil, err
	}
	ctx := models.MarketContext{EvaluationDate: evaluationDate, ForwardPrice: forwardPrice, Curve: yieldCurve, Surface: volatility}
	result, err := options.VanillaDelta(ctx, expiryDate, delta, parsedType)
	if err != nil {
		return nil, err
	}
	return result.Table(string(parsedType)), nil
}

// ComdtyVanillaOptionSpread prices a long/short spread of the same type.
func ComdtyVanillaOptionSpread(evaluationDate, expiryDate time.Time, forwardPrice, strikePriceLong, strikePriceShort float64,
	optionType, exerciseType string, steps int,
	volatility models.VolSurface, yieldCurve models.DiscountCurve) (*models.ResultTable, error) {
	parsedType, err := models.ParseOptionType(optionType)
	if err != nil {
		return nil, err
	}
	parsedStyle, err := models.ParseExerciseStyle(exerciseType)
	if err != nil {
		return nil, err
	}
	ctx := models.MarketContext{EvaluationDate: evaluationDate, ForwardPrice: forwardPrice, Curve: yieldCurve, Surface: volatility}
	structure, err := options.Spread(ctx, expiryDate, strikePriceLong, strikePriceShort, parsedType, parsedStyle, steps)
	if err != nil {
		return nil, err
	}
	return structure.Table(), nil
}

// ComdtyVanillaOptionCollar prices a short call against a long put.
func ComdtyVanillaOptionCollar(evaluationDate, expiryDate time.Time, forwardPrice, strikePriceCallShort, strikePricePutLong float64,
	exerciseType string, steps int,
	volatility models.VolSurface, yieldCurve models.DiscountCurve) (*models.ResultTable, error) {
	parsedStyle, err := models.ParseExerciseStyle(exerciseType)
	if err != nil {
		return nil, err
	}
	ctx := models.MarketContext{EvaluationDate: evaluationDate, ForwardPrice: forwardPrice, Curve: yieldCurve, Surface: volatility}
	structure, err := options.Collar(ctx, expiryDate, strikePriceCallShort, strikePricePutLong, parsedStyle, steps)
	if err != nil {
		return nil, err
	}
	return structure.Table(), nil
}

// ComdtyVanillaOptionButterfly prices long wings against a doubled short body.
func ComdtyVanillaOptionButterfly(evaluationDate, expiryDate time.Time, forwardPrice, strikePriceLowLong, strikePriceMiddleShort, strikePriceHighLong float64,
	optionType, exerciseType string, steps int,
	volatility models.VolSurface, yieldCurve models.DiscountCurve) (*models.ResultTable, error) {
	parsedType, err := models.ParseOptionType(optionType)
	if err != nil {
		return nil, err
	}
	parsedStyle, err := models.ParseExerciseStyle(exerciseType)
	if err != nil {
		return nil, err
	}
	ctx := models.MarketContext{EvaluationDate: evaluationDate, ForwardPrice: forwardPrice, Curve: yieldCurve, Surface: volatility}
	structure, err := options.Butterfly(ctx, expiryDate, strikePriceLowLong, strikePriceMiddleShort, strikePriceHighLong, parsedType, parsedStyle, steps)
	if err != nil {
		return nil, err
	}
	return structure.Table(), nil
}

// ComdtyVanillaOptionCalendarSpread prices a spread option between two
// expiries of the same underlying by correlated Monte Carlo simulation.
func ComdtyVanillaOptionCalendarSpread(evaluationDate, expiryDateLong, expiryDateShort time.Time, forwardPrice, strikePrice float64,
	optionType string, correlation float64, paths int, seed uint64,
	volatility models.VolSurface, yieldCurve models.DiscountCurve) (*models.ResultTable, error) {
	parsedType, err := models.ParseOptionType(optionType)
	if err != nil {
		return nil, err
	}
	ctx := models.MarketContext{EvaluationDate: evaluationDate, ForwardPrice: forwardPrice, Curve: yieldCurve, Surface: volatility}
	result, err := options.CalendarSpread(ctx, options.CalendarSpreadParams{
		ExpiryLong:  expiryDateLong,
		ExpiryShort: expiryDateShort,
		Strike:      strikePrice,
		Type:        parsedType,
		Correlation: correlation,
		Paths:       paths,
		Seed:        seed,
	})
	if err != nil {
		return nil, err
	}
	return result.Table(string(parsedType)), nil
}
