// v1
// internal/model/compute_test.go
package model

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/idf"
)

// Hand-computed reference for the all-defaults office:
// heating load = 2.5 W/(m²·K) × 7 K = 17.5 W/m²
// cooling load = 17.5 + 0.8 × (10 + 5 + 0.1×100) = 37.5 W/m²
// heating = 17.5 × 4800 h × 1000 m² / 1000 = 84 000 kWh
// cooling = 37.5 × 3600 h × 1000 m² / 1000 = 135 000 kWh
// total = 219 000 kWh, EUI = 219 → Average
func TestComputeMinimalOfficeReference(t *testing.T) {
	m := New(DefaultConstants())
	res, err := m.Compute(idf.Defaults(), nil)
	require.NoError(t, err)

	assert.InDelta(t, 17.5, res.HeatingLoadWPerM2, 1e-9)
	assert.InDelta(t, 37.5, res.CoolingLoadWPerM2, 1e-9)
	assert.InDelta(t, 84000, res.HeatingKWh, 1e-6)
	assert.InDelta(t, 135000, res.CoolingKWh, 1e-6)
	assert.InDelta(t, 219000, res.TotalKWh, 1e-6)
	assert.InDelta(t, 219, res.EUIKWhM2, 1e-9)
	assert.Equal(t, RatingAverage, res.Rating)
}

func TestComputeAdditivity(t *testing.T) {
	m := New(DefaultConstants())
	params := []idf.BuildingParameters{
		idf.Defaults(),
		{Category: idf.CategoryHospital, FloorAreaM2: 3200, LightingWPerM2: 18, EquipmentWPerM2: 9, OccupancyPerM2: 0.25},
		{Category: idf.CategoryResidential, FloorAreaM2: 120, LightingWPerM2: 4, EquipmentWPerM2: 3, OccupancyPerM2: 0.05},
		{Category: idf.CategorySchool, FloorAreaM2: 5400, LightingWPerM2: 11, EquipmentWPerM2: 6, OccupancyPerM2: 0.4},
	}
	for _, p := range params {
		res, err := m.Compute(p, nil)
		require.NoError(t, err)
		sum := res.HeatingKWh + res.CoolingKWh
		assert.InEpsilon(t, res.TotalKWh, sum, 1e-6, "category %s", p.Category)
	}
}

func TestComputeAreaMonotonicity(t *testing.T) {
	m := New(DefaultConstants())
	small := idf.Defaults()
	large := idf.Defaults()
	large.FloorAreaM2 = 2000

	resSmall, err := m.Compute(small, nil)
	require.NoError(t, err)
	resLarge, err := m.Compute(large, nil)
	require.NoError(t, err)

	assert.Greater(t, resLarge.TotalKWh, resSmall.TotalKWh)
	// Doubling the area doubles energy and leaves EUI untouched.
	assert.InEpsilon(t, 2*resSmall.TotalKWh, resLarge.TotalKWh, 1e-9)
	assert.InDelta(t, resSmall.EUIKWhM2, resLarge.EUIKWhM2, 1e-9)
}

func TestComputeHospitalMultiplier(t *testing.T) {
	m := New(DefaultConstants())
	office := idf.Defaults()
	hospital := idf.Defaults()
	hospital.Category = idf.CategoryHospital

	resOffice, err := m.Compute(office, nil)
	require.NoError(t, err)
	resHospital, err := m.Compute(hospital, nil)
	require.NoError(t, err)

	assert.InEpsilon(t, 1.5*resOffice.TotalKWh, resHospital.TotalKWh, 1e-9)
	// The multiplier must not change the heating:cooling split.
	assert.InEpsilon(t, resOffice.HeatingKWh/resOffice.CoolingKWh,
		resHospital.HeatingKWh/resHospital.CoolingKWh, 1e-9)
}

func TestComputeResidentialHeatingIncrement(t *testing.T) {
	m := New(DefaultConstants())
	p := idf.Defaults()
	p.Category = idf.CategoryResidential
	res, err := m.Compute(p, nil)
	require.NoError(t, err)
	assert.InDelta(t, 21.0, res.HeatingLoadWPerM2, 1e-9) // (2.5+0.5) × 7
	assert.Equal(t, RatingExcellent, res.Rating)         // 0.3 multiplier pulls EUI to 74.52
}

func TestComputeIdempotent(t *testing.T) {
	m := New(DefaultConstants())
	p := idf.Defaults()
	p.Category = idf.CategorySchool
	a, err := m.Compute(p, &Weather{HeatingHours: 4000, CoolingHours: 2000, TempDiffC: 9})
	require.NoError(t, err)
	b, err := m.Compute(p, &Weather{HeatingHours: 4000, CoolingHours: 2000, TempDiffC: 9})
	require.NoError(t, err)
	assert.True(t, reflect.DeepEqual(a, b))
}

func TestComputeZeroAreaGuarded(t *testing.T) {
	m := New(DefaultConstants())
	p := idf.Defaults()
	p.FloorAreaM2 = 0
	res, err := m.Compute(p, nil)
	require.NoError(t, err)
	assert.InDelta(t, 219, res.EUIKWhM2, 1e-9) // treated as the 1000 m² default
}

func TestComputeRejectsInvalidNumerics(t *testing.T) {
	m := New(DefaultConstants())

	neg := idf.Defaults()
	neg.FloorAreaM2 = -10
	_, err := m.Compute(neg, nil)
	assert.ErrorIs(t, err, ErrInvalidFloorArea)

	nan := idf.Defaults()
	nan.FloorAreaM2 = math.NaN()
	_, err = m.Compute(nan, nil)
	assert.ErrorIs(t, err, ErrInvalidFloorArea)

	badDensity := idf.Defaults()
	badDensity.LightingWPerM2 = -1
	_, err = m.Compute(badDensity, nil)
	assert.ErrorIs(t, err, ErrInvalidDensity)

	_, err = m.Compute(idf.Defaults(), &Weather{TempDiffC: -3})
	assert.ErrorIs(t, err, ErrInvalidWeather)

	_, err = m.Compute(idf.Defaults(), &Weather{HeatingHours: math.Inf(1)})
	assert.ErrorIs(t, err, ErrInvalidWeather)
}

func TestComputeRecommendations(t *testing.T) {
	m := New(DefaultConstants())

	res, err := m.Compute(idf.Defaults(), nil)
	require.NoError(t, err)
	// EUI 219 > 100: envelope + lighting advice, then cooling focus (135 000 > 84 000).
	require.Len(t, res.Recommendations, 3)
	assert.Contains(t, res.Recommendations[2], "Cooling dominates")

	lowEUI := idf.Defaults()
	lowEUI.Category = idf.CategoryResidential
	res, err = m.Compute(lowEUI, nil)
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 1)

	// Long heating season with no cooling hours flips the focus.
	res, err = m.Compute(idf.Defaults(), &Weather{HeatingHours: 6000, CoolingHours: 100, TempDiffC: 12})
	require.NoError(t, err)
	assert.Contains(t, res.Recommendations[len(res.Recommendations)-1], "Heating dominates")
}

func TestRatingBoundariesMapToBetterBand(t *testing.T) {
	c := DefaultConstants()
	cases := []struct {
		eui  float64
		want Rating
	}{
		{0, RatingExcellent},
		{100, RatingExcellent},
		{100.01, RatingGood},
		{150, RatingGood},
		{150.01, RatingAverage},
		{300, RatingAverage},
		{300.01, RatingPoor},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.RatingFor(tc.eui), "eui=%v", tc.eui)
	}
}

func TestMultiplierForUnknownCategoryFallsBack(t *testing.T) {
	c := DefaultConstants()
	assert.Equal(t, 1.0, c.MultiplierFor(idf.Category("warehouse")))
}
