// Package data loads market inputs from CSV files into curve and surface
// objects. Pure input plumbing around the pricing core.
package data

import (
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/JulijJegorov/xlbricksmodels/curves"
	"github.com/JulijJegorov/xlbricksmodels/daycount"
)

const dateLayout = "2006-01-02"

type zeroRateRow struct {
	Date string  `csv:"date"`
	Rate float64 `csv:"rate"`
}

type volPillarRow struct {
	Expiry string  `csv:"expiry"`
	Strike float64 `csv:"strike"`
	Vol    float64 `csv:"vol"`
}

// LoadZeroRates reads date,rate rows into a pillar-based forward curve.
func LoadZeroRates(path string, referenceDate time.Time, convention daycount.Convention) (*curves.ForwardCurve, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows := []*zeroRateRow{}
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}
	points := make([]curves.CurvePoint, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(dateLayout, row.Date)
		if err != nil {
			return nil, err
		}
		points = append(points, curves.CurvePoint{Date: date, Rate: row.Rate})
	}
	return curves.NewForwardCurve(referenceDate, points, convention), nil
}

// LoadVolPillars reads expiry,strike,vol rows into a variance surface.
func LoadVolPillars(path string, referenceDate time.Time, convention daycount.Convention) (*curves.VarianceSurface, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows := []*volPillarRow{}
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}
	pillars := make([]curves.VolPillar, 0, len(rows))
	for _, row := range rows {
		expiry, err := time.Parse(dateLayout, row.Expiry)
		if err != nil {
			return nil, err
		}
		pillars = append(pillars, curves.VolPillar{Expiry: expiry, Strike: row.Strike, Vol: row.Vol})
	}
	return curves.NewVarianceSurface(referenceDate, pillars, convention)
}
