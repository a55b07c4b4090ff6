// v0
// internal/cache/keys.go
package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/model"
)

// EstimateKey builds the cache key for an estimate request so that equivalent
// (document, weather, measured-figure) triples hash identically. Absent
// weather and measured inputs canonicalize differently from explicit values:
// presence is part of the request identity.
func EstimateKey(fingerprint string, w *model.Weather, measuredKWh *float64) string {
	measured := "none"
	if measuredKWh != nil {
		measured = canonicalFloat(*measuredKWh)
	}
	return makeKey(
		"estimate",
		strings.TrimSpace(fingerprint),
		canonicalWeather(w),
		measured,
	)
}

func canonicalWeather(w *model.Weather) string {
	if w == nil {
		return "default"
	}
	return strings.Join([]string{
		canonicalFloat(w.HeatingHours),
		canonicalFloat(w.CoolingHours),
		canonicalFloat(w.TempDiffC),
	}, ",")
}

func canonicalFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func makeKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	h := sha1.Sum([]byte(joined))
	return hex.EncodeToString(h[:])
}
