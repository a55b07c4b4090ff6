// v1
// internal/model/constants.go
package model

import "github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/idf"

// Rating is the qualitative performance band derived from EUI.
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingAverage   Rating = "Average"
	RatingPoor      Rating = "Poor"
)

// RatingThreshold maps an inclusive EUI upper bound to a rating band.
type RatingThreshold struct {
	MaxEUI float64
	Rating Rating
}

// Constants is the canonical, versioned table of model coefficients. Earlier
// deployments carried these as per-handler globals with two conflicting
// threshold sets; the table below is the single source of truth and is
// injected into the model rather than read at call sites.
type Constants struct {
	Version string

	// HeatingBaseWPerM2K is the envelope loss coefficient; the heating load
	// is this value scaled by the indoor/outdoor temperature difference.
	HeatingBaseWPerM2K float64
	// ResidentialHeatingIncrementWPerM2K is added to the base coefficient
	// for residential buildings only.
	ResidentialHeatingIncrementWPerM2K float64

	// InternalGainFactor is the share of nameplate internal gains charged to
	// the cooling load, standing in for part-load and diversity factors.
	InternalGainFactor float64
	// OccupantHeatW converts occupancy density to an internal gain (W/person).
	OccupantHeatW float64

	DefaultTempDiffC    float64
	DefaultHeatingHours float64 // 200 days × 24 h
	DefaultCoolingHours float64 // 150 days × 24 h

	// CategoryMultipliers scale the annual energies after derivation.
	CategoryMultipliers map[idf.Category]float64

	// RatingThresholds must be ordered by ascending MaxEUI. An EUI exactly at
	// a bound maps to the better band; above the last bound is Poor.
	RatingThresholds []RatingThreshold

	// HighEUIAdviceThreshold triggers envelope and lighting recommendations.
	HighEUIAdviceThreshold float64
}

// DefaultConstants returns the canonical constants table.
func DefaultConstants() Constants {
	return Constants{
		Version:                            "1",
		HeatingBaseWPerM2K:                 2.5,
		ResidentialHeatingIncrementWPerM2K: 0.5,
		InternalGainFactor:                 0.8,
		OccupantHeatW:                      100,
		DefaultTempDiffC:                   7.0,
		DefaultHeatingHours:                200 * 24,
		DefaultCoolingHours:                150 * 24,
		CategoryMultipliers: map[idf.Category]float64{
			idf.CategoryOffice:      1.0,
			idf.CategoryResidential: 0.3,
			idf.CategorySchool:      0.8,
			idf.CategoryHospital:    1.5,
		},
		RatingThresholds: []RatingThreshold{
			{MaxEUI: 100, Rating: RatingExcellent},
			{MaxEUI: 150, Rating: RatingGood},
			{MaxEUI: 300, Rating: RatingAverage},
		},
		HighEUIAdviceThreshold: 100,
	}
}

// RatingFor maps an EUI value onto the configured threshold table.
func (c Constants) RatingFor(eui float64) Rating {
	for _, th := range c.RatingThresholds {
		if eui <= th.MaxEUI {
			return th.Rating
		}
	}
	return RatingPoor
}

// MultiplierFor returns the category energy multiplier, defaulting to the
// office multiplier for anything unrecognized.
func (c Constants) MultiplierFor(cat idf.Category) float64 {
	if m, ok := c.CategoryMultipliers[cat]; ok {
		return m
	}
	return c.CategoryMultipliers[idf.CategoryOffice]
}
