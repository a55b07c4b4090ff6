// v1
// internal/api/handlers.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/audit"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/cache"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/idf"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/model"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/observability"
	"github.com/giolux1235/energyplus-mcp-wrapper-sub001/internal/report"
)

// Error kinds surfaced in the structured error body.
const (
	kindBadRequest   = "bad_request"
	kindInvalidInput = "invalid_input"
)

type Handlers struct {
	Log          *slog.Logger
	Model        *model.Model
	Cache        *cache.Cache[report.Payload]
	Audit        *audit.Publisher
	Metrics      *observability.Metrics
	MaxBodyBytes int64
}

type simulateRequest struct {
	IDFContent        string         `json:"idfContent"`
	Weather           *model.Weather `json:"weather,omitempty"`
	MeasuredAnnualKWh *float64       `json:"measuredAnnualKWh,omitempty"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "ts": time.Now().UTC()})
}

// Simulate runs the full pipeline: extract → compute → (calibrate) → assemble.
func (h *Handlers) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.methodNotAllowed(w, http.MethodPost)
		return
	}
	start := time.Now()

	if h.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
	}
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Log.Warn("simulate decode error", "err", err)
		writeError(w, http.StatusBadRequest, kindBadRequest, "request body must be a JSON object with an idfContent field")
		return
	}

	params, diag := idf.Extract(req.IDFContent)

	key := cache.EstimateKey(params.Fingerprint, req.Weather, req.MeasuredAnnualKWh)
	if v, ok := h.Cache.Get(key); ok {
		h.Log.Info("cache hit", "endpoint", "simulate", "fingerprint", params.Fingerprint)
		writeJSON(w, http.StatusOK, v)
		return
	}

	res, err := h.Model.Compute(params, req.Weather)
	if err != nil {
		h.invalidInput(w, err)
		return
	}

	var calibration *report.Calibration
	if req.MeasuredAnnualKWh != nil {
		c, err := report.Calibrate(res, *req.MeasuredAnnualKWh)
		if err != nil {
			h.invalidInput(w, err)
			return
		}
		calibration = &c
	}

	meta := report.RequestMeta{
		RequestID:  uuid.New().String(),
		DurationMS: time.Since(start).Milliseconds(),
		Diag:       diag,
	}
	payload := report.Assemble(params, res, meta)
	payload.Calibration = calibration

	h.Cache.Set(key, payload)
	if h.Metrics != nil {
		h.Metrics.IncEstimate(string(res.Rating), string(params.Category))
	}
	if h.Audit != nil {
		_ = h.Audit.Publish(audit.Event{
			ID:          meta.RequestID,
			Fingerprint: params.Fingerprint,
			Category:    string(params.Category),
			TotalKWh:    res.TotalKWh,
			Rating:      string(res.Rating),
			Ts:          time.Now().UTC(),
		})
	}

	h.Log.Info("computed estimate",
		"fingerprint", params.Fingerprint,
		"category", params.Category,
		"rating", res.Rating,
		"degraded", diag.Degraded,
	)
	writeJSON(w, http.StatusOK, payload)
}

func (h *Handlers) invalidInput(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidFloorArea),
		errors.Is(err, model.ErrInvalidDensity),
		errors.Is(err, model.ErrInvalidWeather),
		errors.Is(err, report.ErrInvalidMeasured):
		h.Log.Warn("invalid input", "err", err)
		writeError(w, http.StatusUnprocessableEntity, kindInvalidInput, err.Error())
	default:
		h.Log.Error("compute error", "err", err)
		writeError(w, http.StatusInternalServerError, "internal", "estimate computation failed")
	}
}

func (h *Handlers) methodNotAllowed(w http.ResponseWriter, allowed string) {
	h.Log.Warn("method not allowed", "allowed", allowed)
	w.Header().Set("Allow", allowed)
	w.WriteHeader(http.StatusMethodNotAllowed)
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, map[string]string{"error": msg, "kind": kind})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
