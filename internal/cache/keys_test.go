// v0
// internal/cache/keys_test.go
package cache

import (
	"testing"

	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/model"
)

func f64(v float64) *float64 { return &v }

func TestEstimateKeyDistinguishesInputs(t *testing.T) {
	base := EstimateKey("abc123def456", nil, nil)

	if k := EstimateKey("fff000fff000", nil, nil); k == base {
		t.Fatal("expected different keys for different fingerprints")
	}
	if k := EstimateKey("abc123def456", nil, f64(90000)); k == base {
		t.Fatal("expected different keys when a measured figure is supplied")
	}
	w := &model.Weather{HeatingHours: 4800, CoolingHours: 3600, TempDiffC: 7}
	if k := EstimateKey("abc123def456", w, nil); k == base {
		t.Fatal("expected explicit weather overrides to change the key")
	}
}

func TestEstimateKeyMeasuredPresenceMatters(t *testing.T) {
	absent := EstimateKey("abc123def456", nil, nil)
	zero := EstimateKey("abc123def456", nil, f64(0))
	if absent == zero {
		t.Fatal("an explicit zero measured figure must not alias the absent case")
	}
}

func TestEstimateKeyCanonicalizes(t *testing.T) {
	a := EstimateKey("  abc123def456  ", nil, nil)
	b := EstimateKey("abc123def456", nil, nil)
	if a != b {
		t.Fatal("expected fingerprint whitespace to be canonicalized away")
	}

	wA := &model.Weather{HeatingHours: 4800, CoolingHours: 3600, TempDiffC: 7}
	wB := &model.Weather{HeatingHours: 4800, CoolingHours: 3600, TempDiffC: 7}
	if EstimateKey("abc", wA, nil) != EstimateKey("abc", wB, nil) {
		t.Fatal("expected equal weather values to produce equal keys")
	}
}
