package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cropcycle/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildMonthlySeries(t *testing.T) {
	raw := []MonthlyDatum{
		{Month: 3, TotalQuantity: 45000, TotalRevenue: 25000},
		{Month: 1, TotalQuantity: 35000, TotalRevenue: 15000},
		{Month: 13, TotalQuantity: 999, TotalRevenue: 999},
	}
	series := BuildMonthlySeries(raw)
	require.Len(t, series, 2)
	assert.Equal(t, "Jan", series[0].Month)
	assert.Equal(t, 35000.0, series[0].Waste)
	assert.Equal(t, 28000.0, series[0].Recycled)
	assert.Equal(t, "Mar", series[1].Month)
}

func TestSynthesizeTrendsPercentages(t *testing.T) {
	series := []models.MonthlyAnalyticsPoint{
		{Month: "Jan", Waste: 1000, Revenue: 5000},
		{Month: "Feb", Waste: 1200, Revenue: 4000},
	}
	stats := &models.DashboardStats{TotalWaste: 2200, TotalRevenue: 9000}

	preds := SynthesizeTrends(series, stats)
	require.Len(t, preds, 3)
	assert.Equal(t, "Expected 20.0% increase in crop waste next month", preds[0].Prediction)
	assert.Equal(t, 85, preds[0].Confidence)
	assert.Equal(t, "Revenue projected to decrease 20.0% next month", preds[1].Prediction)
	assert.Contains(t, preds[2].Prediction, "₹4")
}

func TestSynthesizeTrendsFallsBack(t *testing.T) {
	placeholder := placeholderPredictions()

	// too short a series
	short := []models.MonthlyAnalyticsPoint{{Month: "Jan", Waste: 100, Revenue: 100}}
	assert.Equal(t, placeholder, SynthesizeTrends(short, &models.DashboardStats{}))

	// zero previous waste would divide by zero
	zeroPrev := []models.MonthlyAnalyticsPoint{
		{Month: "Jan", Waste: 0, Revenue: 5000},
		{Month: "Feb", Waste: 1200, Revenue: 4000},
	}
	assert.Equal(t, placeholder, SynthesizeTrends(zeroPrev, &models.DashboardStats{}))

	assert.Equal(t, placeholder, SynthesizeTrends(nil, nil))
}

func TestSynthesizeTrendsZeroTotalWaste(t *testing.T) {
	series := []models.MonthlyAnalyticsPoint{
		{Month: "Jan", Waste: 1000, Revenue: 5000},
		{Month: "Feb", Waste: 1200, Revenue: 4000},
	}
	preds := SynthesizeTrends(series, &models.DashboardStats{TotalWaste: 0, TotalRevenue: 9000})
	require.Len(t, preds, 3)
	assert.Contains(t, preds[2].Prediction, "₹0")
}

func newDashboardApp(upstream string) *App {
	log := zap.NewNop()
	return &App{
		log:       log,
		analytics: NewAnalyticsClient(upstream, log),
	}
}

func TestDashboardHandlerAllOrNothing(t *testing.T) {
	// analytics succeeds, stats fails: the whole view must be the error
	// state with no partial payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dashboards/analytics/monthly":
			_, _ = w.Write([]byte(`{"status":"success","data":{"monthlyData":[{"month":1,"totalQuantity":1000,"totalRevenue":5000}]}}`))
		case "/dashboards/stats":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	a := newDashboardApp(srv.URL)
	rec := httptest.NewRecorder()
	a.handleDashboard(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load dashboard data")
	assert.NotContains(t, rec.Body.String(), "monthly")
}

func TestDashboardHandlerSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dashboards/analytics/monthly":
			_, _ = w.Write([]byte(`{"status":"success","data":{"monthlyData":[
				{"month":1,"totalQuantity":1000,"totalRevenue":5000},
				{"month":2,"totalQuantity":1200,"totalRevenue":4000}]}}`))
		case "/dashboards/stats":
			_, _ = w.Write([]byte(`{"status":"success","data":{"stats":{"totalWaste":2200,"totalRevenue":9000,"statusBreakdown":{"pending":3},"wasteByType":{"straw":1500}}}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	a := newDashboardApp(srv.URL)
	rec := httptest.NewRecorder()
	a.handleDashboard(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dashboardResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Monthly, 2)
	assert.Equal(t, "Jan", resp.Monthly[0].Month)
	assert.Equal(t, 960.0, resp.Monthly[1].Recycled)
	assert.Equal(t, 2200.0, resp.Stats.TotalWaste)
	assert.Equal(t, 3, resp.Stats.StatusBreakdown["pending"])
	require.Len(t, resp.Predictions, 3)
	assert.Contains(t, resp.Predictions[0].Prediction, "20.0% increase")
}
