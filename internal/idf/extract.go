// v1
// internal/idf/extract.go
package idf

import (
	"crypto/sha1"
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// Object kinds the extractor recognizes. Matching is on the first field of a
// record, case-insensitively.
const (
	KindBuilding  = "building"
	KindZone      = "zone"
	KindLights    = "lights"
	KindEquipment = "electricequipment"
	KindPeople    = "people"
)

// Record shapes: `Zone,<name>,<area>` carries the floor area in field 2;
// `Lights|ElectricEquipment|People,<name>,<zone>,<schedule>,<value>` carry
// their numeric value in field 4.
const (
	zoneAreaField     = 2
	densityValueField = 4
)

// Category keyword tables, scanned in priority order. First table with a hit
// wins; no hit at all yields office.
var categoryKeywords = []struct {
	cat  Category
	keys []string
}{
	{CategoryHospital, []string{"hospital", "healthcare", "clinic", "medical"}},
	{CategorySchool, []string{"school", "university", "college", "classroom", "education"}},
	{CategoryResidential, []string{"residential", "apartment", "dwelling", "house"}},
}

// Extract scans an IDF-like document and produces the normalized parameter
// set. It is a total function: any field it cannot read falls back to its
// default and is reported via Diagnostics, never as an error. Only the first
// record of each kind is consulted; later duplicates are counted but ignored.
func Extract(raw string) (BuildingParameters, Diagnostics) {
	p := Defaults()
	d := Diagnostics{
		ObjectCounts: map[string]int{},
		ContentBytes: len(raw),
	}
	p.Fingerprint = Fingerprint(raw)

	cat, catFound := detectCategory(raw)
	p.Category = cat

	var (
		area, lighting, equipment, people         float64
		areaOK, lightingOK, equipmentOK, peopleOK bool
	)

	sc := NewScanner(raw)
	for {
		rec, ok := sc.Next()
		if !ok {
			break
		}
		switch rec.Kind {
		case KindBuilding:
			d.ObjectCounts[KindBuilding]++
		case KindZone:
			d.ObjectCounts[KindZone]++
			if !areaOK {
				if v, ok := parsePositive(rec.Field(zoneAreaField)); ok {
					area, areaOK = v, true
				}
			}
		case KindLights:
			d.ObjectCounts[KindLights]++
			if !lightingOK {
				if v, ok := parseNonNegative(rec.Field(densityValueField)); ok {
					lighting, lightingOK = v, true
				}
			}
		case KindEquipment:
			d.ObjectCounts[KindEquipment]++
			if !equipmentOK {
				if v, ok := parseNonNegative(rec.Field(densityValueField)); ok {
					equipment, equipmentOK = v, true
				}
			}
		case KindPeople:
			d.ObjectCounts[KindPeople]++
			if !peopleOK {
				if v, ok := parseNonNegative(rec.Field(densityValueField)); ok {
					people, peopleOK = v, true
				}
			}
		}
	}

	if areaOK {
		p.FloorAreaM2 = area
	}
	if lightingOK {
		p.LightingWPerM2 = lighting
	}
	if equipmentOK {
		p.EquipmentWPerM2 = equipment
	}
	if peopleOK {
		// People records carry an absolute head count; convert to density.
		// The extracted area is always positive here, but guard anyway.
		refArea := p.FloorAreaM2
		if refArea <= 0 {
			refArea = DefaultFloorAreaM2
		}
		p.OccupancyPerM2 = people / refArea
	}

	misses := 0
	for _, found := range []bool{catFound, areaOK, lightingOK, equipmentOK, peopleOK} {
		if !found {
			misses++
		}
	}
	d.Degraded = misses > 0
	// Total failure means the document yielded nothing recognizable at all:
	// every field defaulted and not even a known object record was seen.
	d.TotalMiss = misses == 5 && len(d.ObjectCounts) == 0

	return p, d
}

// Fingerprint returns a short stable digest of the document, used for
// traceability and cache keys. Not a security property.
func Fingerprint(raw string) string {
	sum := sha1.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])[:12]
}

func detectCategory(raw string) (Category, bool) {
	lowered := strings.ToLower(raw)
	for _, set := range categoryKeywords {
		for _, kw := range set.keys {
			if strings.Contains(lowered, kw) {
				return set.cat, true
			}
		}
	}
	return CategoryOffice, false
}

func parsePositive(s string) (float64, bool) {
	v, ok := parseNonNegative(s)
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

func parseNonNegative(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}
