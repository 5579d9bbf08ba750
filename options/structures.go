package options

import (
	"time"

	"github.com/JulijJegorov/xlbricksmodels/models"
)

// Structures are fixed (label, signed weight) recipes over priced legs; the
// combination itself lives in models.Combine and is shared by every kind.

// Spread prices a long and a short leg of the same type at different strikes.
// Combined value is long minus short.
func Spread(ctx models.MarketContext, expiry time.Time, strikeLong, strikeShort float64,
	optionType models.OptionType, style models.ExerciseStyle, steps int) (models.Structure, error) {
	long, err := Vanilla(ctx, models.OptionLeg{Type: optionType, Strike: strikeLong, Expiry: expiry, Style: style, LatticeSteps: steps})
	if err != nil {
		return models.Structure{}, err
	}
	short, err := Vanilla(ctx, models.OptionLeg{Type: optionType, Strike: strikeShort, Expiry: expiry, Style: style, LatticeSteps: steps})
	if err != nil {
		return models.Structure{}, err
	}
	return models.Combine(string(optionType)+"_SPREAD", []models.StructureLeg{
		{Label: string(optionType) + "_LONG", Weight: 1, Result: long},
		{Label: string(optionType) + "_SHORT", Weight: -1, Result: short},
	}), nil
}

// Collar prices a short call against a long put. Combined value is put minus
// call.
func Collar(ctx models.MarketContext, expiry time.Time, strikeCallShort, strikePutLong float64,
	style models.ExerciseStyle, steps int) (models.Structure, error) {
	call, err := Vanilla(ctx, models.OptionLeg{Type: models.Call, Strike: strikeCallShort, Expiry: expiry, Style: style, LatticeSteps: steps})
	if err != nil {
		return models.Structure{}, err
	}
	put, err := Vanilla(ctx, models.OptionLeg{Type: models.Put, Strike: strikePutLong, Expiry: expiry, Style: style, LatticeSteps: steps})
	if err != nil {
		return models.Structure{}, err
	}
	return models.Combine("COLLAR", []models.StructureLeg{
		{Label: string(models.Call), Weight: -1, Result: call},
		{Label: string(models.Put), Weight: 1, Result: put},
	}), nil
}

// Butterfly prices long low and high strikes against twice the short middle
// strike. Combined value is low - 2*middle + high.
func Butterfly(ctx models.MarketContext, expiry time.Time, strikeLow, strikeMiddle, strikeHigh float64,
	optionType models.OptionType, style models.ExerciseStyle, steps int) (models.Structure, error) {
	low, err := Vanilla(ctx, models.OptionLeg{Type: optionType, Strike: strikeLow, Expiry: expiry, Style: style, LatticeSteps: steps})
	if err != nil {
		return models.Structure{}, err
	}
	middle, err := Vanilla(ctx, models.OptionLeg{Type: optionType, Strike: strikeMiddle, Expiry: expiry, Style: style, LatticeSteps: steps})
	if err != nil {
		return models.Structure{}, err
	}
	high, err := Vanilla(ctx, models.OptionLeg{Type: optionType, Strike: strikeHigh, Expiry: expiry, Style: style, LatticeSteps: steps})
	if err != nil {
		return models.Structure{}, err
	}
	return models.Combine(string(optionType)+"_BUTTERFLY", []models.StructureLeg{
		{Label: string(optionType) + "_LOW", Weight: 1, Result: low},
		{Label: string(optionType) + "_MIDDLE", Weight: -2, Result: middle},
		{Label: string(optionType) + "_HIGH", Weight: 1, Result: high},
	}), nil
}
