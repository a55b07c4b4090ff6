// v0
// internal/idf/types.go
package idf

// Category classifies the building for the load model's energy multiplier.
type Category string

const (
	CategoryOffice      Category = "office"
	CategoryResidential Category = "residential"
	CategorySchool      Category = "school"
	CategoryHospital    Category = "hospital"
)

// Default parameter values substituted whenever extraction misses a field.
const (
	DefaultFloorAreaM2     = 1000.0
	DefaultLightingWPerM2  = 10.0
	DefaultEquipmentWPerM2 = 5.0
	DefaultOccupancyPerM2  = 0.1
)

// BuildingParameters is the normalized parameter set the load model consumes.
// Every field carries a safe default; extraction never leaves one unset.
type BuildingParameters struct {
	Category        Category `json:"category"`
	FloorAreaM2     float64  `json:"floorAreaM2"`
	LightingWPerM2  float64  `json:"lightingWPerM2"`
	EquipmentWPerM2 float64  `json:"equipmentWPerM2"`
	OccupancyPerM2  float64  `json:"occupancyPerM2"`
	Fingerprint     string   `json:"fingerprint"` // short content digest, traceability only
}

// Defaults returns the all-defaults parameter set (office, 1000 m²).
func Defaults() BuildingParameters {
	return BuildingParameters{
		Category:        CategoryOffice,
		FloorAreaM2:     DefaultFloorAreaM2,
		LightingWPerM2:  DefaultLightingWPerM2,
		EquipmentWPerM2: DefaultEquipmentWPerM2,
		OccupancyPerM2:  DefaultOccupancyPerM2,
	}
}

// Diagnostics reports what the extractor actually found in the document.
type Diagnostics struct {
	// Degraded is true when at least one field fell back to its default.
	Degraded bool `json:"degraded"`
	// TotalMiss is true when nothing recognizable was found at all.
	TotalMiss bool `json:"totalMiss"`
	// ObjectCounts holds the number of records seen per object kind.
	ObjectCounts map[string]int `json:"objectCounts"`
	// ContentBytes is the size of the scanned document.
	ContentBytes int `json:"contentBytes"`
}
