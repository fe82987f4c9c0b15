package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// handleHealth is a simple liveness check.
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleCatalogue serves the soil and crop catalogues, cached in redis
// when a cache is configured.
func (a *App) handleCatalogue(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "crop_catalogue"

	if a.cache != nil {
		if val, err := a.cache.Get(r.Context(), cacheKey).Result(); err == nil && val != "" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(val))
			return
		}
	}

	resp := catalogueResp{SoilConditions: SoilConditions, CropTypes: CropTypes}
	data, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
		return
	}
	if a.cache != nil {
		_ = a.cache.Set(r.Context(), cacheKey, data, 2*time.Hour).Err()
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// handlePredict runs the prediction flow: normalize the form, submit to the
// prediction service, derive the presentation metrics. A caller that sends
// an X-Form-Instance header gets staleness protection: when a newer submit
// for the same instance has started, the older response is dropped.
func (a *App) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	form := NewFormInput()
	_ = form.Set(FieldLocation, req.Location)
	_ = form.Set(FieldLandArea, string(req.LandArea))
	_ = form.Set(FieldSoilCondition, req.SoilCondition)
	_ = form.Set(FieldCropType, req.CropType)

	norm, err := form.Normalize()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var submitter predictionSubmitter = a.predictor
	if inst := r.Header.Get("X-Form-Instance"); inst != "" {
		submitter = a.predPool.get(inst)
	}

	res, err := submitter.Submit(ctx, norm)
	if err != nil {
		if errors.Is(err, ErrStaleResponse) {
			http.Error(w, "superseded by a newer request", http.StatusConflict)
			return
		}
		var pe *PredictionError
		if errors.As(err, &pe) {
			a.log.Warn("prediction failed", zap.Error(errors.Unwrap(pe)))
			http.Error(w, pe.Message, http.StatusBadGateway)
			return
		}
		http.Error(w, predictionFailedMsg, http.StatusBadGateway)
		return
	}

	_ = json.NewEncoder(w).Encode(predictResp{
		Result:  *res,
		Metrics: DeriveMetrics(*res),
	})
}
