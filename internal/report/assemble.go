// v0
// internal/report/assemble.go
package report

import (
	"math"

	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/idf"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/model"
)

// Simulation status values reported to the caller.
const (
	StatusSuccess  = "success"
	StatusDegraded = "degraded"
)

// RequestMeta carries per-request bookkeeping the assembler folds into the
// payload. It is produced by the transport layer, not by the core.
type RequestMeta struct {
	RequestID  string
	DurationMS int64
	Diag       idf.Diagnostics
}

// EnergySummary is the rounded energy section of the payload.
type EnergySummary struct {
	TotalEnergyKWh     float64  `json:"totalEnergyKWh"`
	HeatingEnergyKWh   float64  `json:"heatingEnergyKWh"`
	CoolingEnergyKWh   float64  `json:"coolingEnergyKWh"`
	EnergyUseIntensity float64  `json:"energyUseIntensityKWhM2"`
	PerformanceRating  string   `json:"performanceRating"`
	Recommendations    []string `json:"recommendations"`
}

// BuildingSummary echoes the parameters the estimate was computed from.
type BuildingSummary struct {
	Category        string  `json:"category"`
	FloorAreaM2     float64 `json:"floorAreaM2"`
	LightingWPerM2  float64 `json:"lightingWPerM2"`
	EquipmentWPerM2 float64 `json:"equipmentWPerM2"`
	OccupancyPerM2  float64 `json:"occupancyPerM2"`
}

// MetaSummary packages parse diagnostics and request bookkeeping.
type MetaSummary struct {
	ContentBytes       int            `json:"contentBytes"`
	ObjectCounts       map[string]int `json:"objectCounts"`
	ExtractionDegraded bool           `json:"extractionDegraded"`
	DurationMS         int64          `json:"durationMs"`
}

// Payload is the response structure the transport layer serializes.
type Payload struct {
	RequestID        string          `json:"requestId"`
	Fingerprint      string          `json:"fingerprint"`
	SimulationStatus string          `json:"simulationStatus"`
	Energy           EnergySummary   `json:"energy"`
	Building         BuildingSummary `json:"building"`
	Meta             MetaSummary     `json:"meta"`
	Calibration      *Calibration    `json:"calibration,omitempty"`
}

// Assemble merges the load-model output with request metadata. Pure mapping:
// two-decimal rounding and packaging only, no computation.
func Assemble(p idf.BuildingParameters, res model.EnergyResult, meta RequestMeta) Payload {
	status := StatusSuccess
	if meta.Diag.TotalMiss {
		status = StatusDegraded
	}
	counts := meta.Diag.ObjectCounts
	if counts == nil {
		counts = map[string]int{}
	}
	return Payload{
		RequestID:        meta.RequestID,
		Fingerprint:      p.Fingerprint,
		SimulationStatus: status,
		Energy: EnergySummary{
			TotalEnergyKWh:     round2(res.TotalKWh),
			HeatingEnergyKWh:   round2(res.HeatingKWh),
			CoolingEnergyKWh:   round2(res.CoolingKWh),
			EnergyUseIntensity: round2(res.EUIKWhM2),
			PerformanceRating:  string(res.Rating),
			Recommendations:    res.Recommendations,
		},
		Building: BuildingSummary{
			Category:        string(p.Category),
			FloorAreaM2:     round2(p.FloorAreaM2),
			LightingWPerM2:  round2(p.LightingWPerM2),
			EquipmentWPerM2: round2(p.EquipmentWPerM2),
			OccupancyPerM2:  round2(p.OccupancyPerM2),
		},
		Meta: MetaSummary{
			ContentBytes:       meta.Diag.ContentBytes,
			ObjectCounts:       counts,
			ExtractionDegraded: meta.Diag.Degraded,
			DurationMS:         meta.DurationMS,
		},
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
