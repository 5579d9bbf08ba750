package models

import (
	"strings"
	"time"
)

type OptionType string

const (
	Call OptionType = "CALL"
	Put  OptionType = "PUT"
)

type ExerciseStyle string

const (
	European ExerciseStyle = "EUROPEAN"
	American ExerciseStyle = "AMERICAN"
)

type Compounding string

const (
	SimpleCompounding Compounding = "SIMPLE"
	Compounded        Compounding = "COMPOUNDED"
	Continuous        Compounding = "CONTINUOUS"
)

func ParseOptionType(value string) (OptionType, error) {
	switch strings.ToUpper(value) {
	case "CALL":
		return Call, nil
	case "PUT":
		return Put, nil
	}
	return "", &InvalidEnumError{Field: "option_type", Value: value}
}

func ParseExerciseStyle(value string) (ExerciseStyle, error) {
	switch strings.ToUpper(value) {
	case "EUROPEAN":
		return European, nil
	case "AMERICAN":
		return American, nil
	}
	return "", &InvalidEnumError{Field: "exercise_type", Value: value}
}

func ParseCompounding(value string) (Compounding, error) {
	switch strings.ToUpper(value) {
	case "SIMPLE":
		return SimpleCompounding, nil
	case "COMPOUNDED":
		return Compounded, nil
	case "CONTINUOUS":
		return Continuous, nil
	}
	return "", &InvalidEnumError{Field: "compounding", Value: value}
}

// OptionLeg fully determines a single pricing request together with a
// MarketContext. LatticeSteps is only meaningful for American exercise.
type OptionLeg struct {
	Type         OptionType
	Strike       float64
	Expiry       time.Time
	Style        ExerciseStyle
	LatticeSteps int
}
