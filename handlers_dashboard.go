package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cropcycle/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// handleDashboard fetches the monthly analytics series and the aggregate
// stats concurrently and joins them: either both succeed or the whole view
// is an error. No partial dataset is ever rendered.
func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "dashboard_view"

	if a.cache != nil {
		if val, err := a.cache.Get(r.Context(), cacheKey).Result(); err == nil && val != "" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(val))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var (
		monthly []MonthlyDatum
		stats   *models.DashboardStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := a.analytics.MonthlyAnalytics(gctx)
		monthly = m
		return err
	})
	g.Go(func() error {
		s, err := a.analytics.Stats(gctx)
		stats = s
		return err
	})
	if err := g.Wait(); err != nil {
		a.log.Warn("dashboard load failed", zap.Error(err))
		http.Error(w, "Failed to load dashboard data", http.StatusBadGateway)
		return
	}

	series := BuildMonthlySeries(monthly)
	resp := dashboardResp{
		Monthly:     series,
		Stats:       *stats,
		Predictions: SynthesizeTrends(series, stats),
	}

	data, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
		return
	}
	if a.cache != nil {
		_ = a.cache.Set(ctx, cacheKey, data, 2*time.Minute).Err()
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
