// v0
// internal/report/calibrate.go
package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/model"
)

// ErrInvalidMeasured rejects measured annual figures that are not positive finite numbers.
var ErrInvalidMeasured = errors.New("invalid measured annual energy")

// Calibration status labels by absolute percentage difference.
const (
	CalibrationCalibrated   = "calibrated"   // within 10%
	CalibrationAcceptable   = "acceptable"   // within 25%
	CalibrationUncalibrated = "uncalibrated" // beyond 25%
)

// Calibration compares the estimate against a caller-supplied measured annual
// figure. It only reads the EnergyResult.
type Calibration struct {
	MeasuredKWh   float64 `json:"measuredKWh"`
	EstimatedKWh  float64 `json:"estimatedKWh"`
	DifferencePct float64 `json:"differencePct"`
	Status        string  `json:"status"`
}

// Calibrate derives the calibration status for a measured annual consumption.
func Calibrate(res model.EnergyResult, measuredKWh float64) (Calibration, error) {
	if math.IsNaN(measuredKWh) || math.IsInf(measuredKWh, 0) || measuredKWh <= 0 {
		return Calibration{}, fmt.Errorf("measured %v kWh: %w", measuredKWh, ErrInvalidMeasured)
	}
	diffPct := (res.TotalKWh - measuredKWh) / measuredKWh * 100
	status := CalibrationUncalibrated
	switch abs := math.Abs(diffPct); {
	case abs <= 10:
		status = CalibrationCalibrated
	case abs <= 25:
		status = CalibrationAcceptable
	}
	return Calibration{
		MeasuredKWh:   round2(measuredKWh),
		EstimatedKWh:  round2(res.TotalKWh),
		DifferencePct: round2(diffPct),
		Status:        status,
	}, nil
}
