// v1
// internal/model/compute.go
package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/idf"
)

var (
	// ErrInvalidFloorArea rejects negative or non-finite floor areas.
	ErrInvalidFloorArea = errors.New("invalid floor area")
	// ErrInvalidDensity rejects negative or non-finite power/occupancy densities.
	ErrInvalidDensity = errors.New("invalid density")
	// ErrInvalidWeather rejects non-positive load hours or non-finite temperature differences.
	ErrInvalidWeather = errors.New("invalid weather assumptions")
)

// Weather overrides the fixed seasonal assumptions. A nil Weather resolves to
// the constants-table defaults.
type Weather struct {
	HeatingHours float64 `json:"heatingHours"`
	CoolingHours float64 `json:"coolingHours"`
	TempDiffC    float64 `json:"tempDiffC"`
}

// EnergyResult is the annual energy estimate for one building.
// HeatingKWh + CoolingKWh == TotalKWh always holds: the category multiplier
// scales all three by the same factor after the annual energies are derived,
// so the heating:cooling split stays the one the unscaled loads produced.
type EnergyResult struct {
	TotalKWh   float64 `json:"totalEnergyKWh"`
	HeatingKWh float64 `json:"heatingEnergyKWh"`
	CoolingKWh float64 `json:"coolingEnergyKWh"`
	EUIKWhM2   float64 `json:"energyUseIntensityKWhM2"`

	HeatingLoadWPerM2 float64 `json:"heatingLoadWPerM2"`
	CoolingLoadWPerM2 float64 `json:"coolingLoadWPerM2"`

	Rating          Rating   `json:"performanceRating"`
	Recommendations []string `json:"recommendations"`
}

// Model converts building parameters into an annual energy estimate using an
// injected constants table.
type Model struct {
	c Constants
}

// New builds a model around the given constants table.
func New(c Constants) *Model {
	return &Model{c: c}
}

// Constants exposes the table the model was built with.
func (m *Model) Constants() Constants {
	return m.c
}

// Compute derives the annual energy estimate. It is a pure function: no I/O,
// no shared state, identical inputs always produce identical output.
//
// A floor area of exactly zero is guarded by substituting the extractor
// default; negative or non-finite numerics fail loudly instead of producing
// nonsensical energies.
func (m *Model) Compute(p idf.BuildingParameters, w *Weather) (EnergyResult, error) {
	if err := validateParams(p); err != nil {
		return EnergyResult{}, err
	}
	area := p.FloorAreaM2
	if area == 0 {
		area = idf.DefaultFloorAreaM2
	}

	hours, err := m.resolveWeather(w)
	if err != nil {
		return EnergyResult{}, err
	}

	heatCoeff := m.c.HeatingBaseWPerM2K
	if p.Category == idf.CategoryResidential {
		heatCoeff += m.c.ResidentialHeatingIncrementWPerM2K
	}
	heatingLoad := heatCoeff * hours.TempDiffC

	gains := p.LightingWPerM2 + p.EquipmentWPerM2 + p.OccupancyPerM2*m.c.OccupantHeatW
	coolingLoad := heatingLoad + m.c.InternalGainFactor*gains

	// W/m² × h × m² = Wh; one ÷1000 converts to kWh.
	heatingKWh := heatingLoad * hours.HeatingHours * area / 1000
	coolingKWh := coolingLoad * hours.CoolingHours * area / 1000

	mult := m.c.MultiplierFor(p.Category)
	heatingKWh *= mult
	coolingKWh *= mult
	totalKWh := heatingKWh + coolingKWh

	eui := totalKWh / area

	res := EnergyResult{
		TotalKWh:          totalKWh,
		HeatingKWh:        heatingKWh,
		CoolingKWh:        coolingKWh,
		EUIKWhM2:          eui,
		HeatingLoadWPerM2: heatingLoad,
		CoolingLoadWPerM2: coolingLoad,
		Rating:            m.c.RatingFor(eui),
	}
	res.Recommendations = m.recommend(res)
	return res, nil
}

func (m *Model) recommend(res EnergyResult) []string {
	var out []string
	if res.EUIKWhM2 > m.c.HighEUIAdviceThreshold {
		out = append(out,
			"Improve envelope insulation to reduce conditioning losses.",
			"Upgrade to high-efficiency lighting to cut internal gains.",
		)
	}
	if res.HeatingKWh > res.CoolingKWh {
		out = append(out, "Heating dominates annual consumption; focus on heating system efficiency.")
	} else {
		out = append(out, "Cooling dominates annual consumption; focus on cooling system efficiency.")
	}
	return out
}

func (m *Model) resolveWeather(w *Weather) (Weather, error) {
	if w == nil {
		return Weather{
			HeatingHours: m.c.DefaultHeatingHours,
			CoolingHours: m.c.DefaultCoolingHours,
			TempDiffC:    m.c.DefaultTempDiffC,
		}, nil
	}
	resolved := *w
	if resolved.HeatingHours == 0 {
		resolved.HeatingHours = m.c.DefaultHeatingHours
	}
	if resolved.CoolingHours == 0 {
		resolved.CoolingHours = m.c.DefaultCoolingHours
	}
	if resolved.TempDiffC == 0 {
		resolved.TempDiffC = m.c.DefaultTempDiffC
	}
	if !finite(resolved.HeatingHours) || resolved.HeatingHours < 0 {
		return Weather{}, fmt.Errorf("heating hours %v: %w", resolved.HeatingHours, ErrInvalidWeather)
	}
	if !finite(resolved.CoolingHours) || resolved.CoolingHours < 0 {
		return Weather{}, fmt.Errorf("cooling hours %v: %w", resolved.CoolingHours, ErrInvalidWeather)
	}
	if !finite(resolved.TempDiffC) || resolved.TempDiffC <= 0 {
		return Weather{}, fmt.Errorf("temperature difference %v: %w", resolved.TempDiffC, ErrInvalidWeather)
	}
	return resolved, nil
}

func validateParams(p idf.BuildingParameters) error {
	if !finite(p.FloorAreaM2) || p.FloorAreaM2 < 0 {
		return fmt.Errorf("floor area %v m²: %w", p.FloorAreaM2, ErrInvalidFloorArea)
	}
	for name, v := range map[string]float64{
		"lighting":  p.LightingWPerM2,
		"equipment": p.EquipmentWPerM2,
		"occupancy": p.OccupancyPerM2,
	} {
		if !finite(v) || v < 0 {
			return fmt.Errorf("%s density %v: %w", name, v, ErrInvalidDensity)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
