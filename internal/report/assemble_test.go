// v0
// internal/report/assemble_test.go
package report

import (
	"testing"

	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/idf"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/model"
)

func sampleResult() model.EnergyResult {
	return model.EnergyResult{
		TotalKWh:        219000.123456,
		HeatingKWh:      84000.006,
		CoolingKWh:      135000.118456,
		EUIKWhM2:        219.000123,
		Rating:          model.RatingAverage,
		Recommendations: []string{"a", "b"},
	}
}

func TestAssembleRoundsToTwoDecimals(t *testing.T) {
	p := idf.Defaults()
	p.Fingerprint = "abc123def456"
	p.OccupancyPerM2 = 0.123456

	out := Assemble(p, sampleResult(), RequestMeta{RequestID: "req-1"})

	if out.Energy.TotalEnergyKWh != 219000.12 {
		t.Fatalf("total not rounded: %v", out.Energy.TotalEnergyKWh)
	}
	if out.Energy.HeatingEnergyKWh != 84000.01 {
		t.Fatalf("heating not rounded: %v", out.Energy.HeatingEnergyKWh)
	}
	if out.Building.OccupancyPerM2 != 0.12 {
		t.Fatalf("occupancy not rounded: %v", out.Building.OccupancyPerM2)
	}
	if out.Fingerprint != "abc123def456" {
		t.Fatalf("fingerprint not carried: %q", out.Fingerprint)
	}
	if out.RequestID != "req-1" {
		t.Fatalf("request id not carried: %q", out.RequestID)
	}
}

func TestAssembleStatusReflectsTotalMiss(t *testing.T) {
	p := idf.Defaults()

	out := Assemble(p, sampleResult(), RequestMeta{Diag: idf.Diagnostics{Degraded: true}})
	if out.SimulationStatus != StatusSuccess {
		t.Fatalf("partial degradation must still report success, got %q", out.SimulationStatus)
	}
	if !out.Meta.ExtractionDegraded {
		t.Fatal("expected extractionDegraded to surface in meta")
	}

	out = Assemble(p, sampleResult(), RequestMeta{Diag: idf.Diagnostics{Degraded: true, TotalMiss: true}})
	if out.SimulationStatus != StatusDegraded {
		t.Fatalf("total miss must report degraded, got %q", out.SimulationStatus)
	}
}

func TestAssembleNilObjectCounts(t *testing.T) {
	out := Assemble(idf.Defaults(), sampleResult(), RequestMeta{})
	if out.Meta.ObjectCounts == nil {
		t.Fatal("object counts must never serialize as null")
	}
}
