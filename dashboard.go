package main

import (
	"fmt"
	"math"

	"cropcycle/models"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// recycledRatio is the fixed fraction of waste counted as recycled when
// building the chart series.
const recycledRatio = 0.8

// BuildMonthlySeries transforms raw upstream points into the chart series:
// calendar order, month numbers mapped to names, recycled derived from
// waste. Points with a month outside 1..12 are dropped.
func BuildMonthlySeries(raw []MonthlyDatum) []models.MonthlyAnalyticsPoint {
	byMonth := make(map[int]MonthlyDatum, len(raw))
	for _, d := range raw {
		if d.Month >= 1 && d.Month <= 12 {
			byMonth[d.Month] = d
		}
	}
	out := make([]models.MonthlyAnalyticsPoint, 0, len(byMonth))
	for m := 1; m <= 12; m++ {
		d, ok := byMonth[m]
		if !ok {
			continue
		}
		out = append(out, models.MonthlyAnalyticsPoint{
			Month:    monthNames[m-1],
			Waste:    d.TotalQuantity,
			Revenue:  d.TotalRevenue,
			Recycled: d.TotalQuantity * recycledRatio,
		})
	}
	return out
}

// placeholderPredictions is the graceful-degradation set shown when trend
// synthesis cannot run.
func placeholderPredictions() []models.TrendPrediction {
	return []models.TrendPrediction{
		{Title: "Waste Volume Trend", Prediction: "Expected 15% increase in paddy waste next month", Confidence: 85},
		{Title: "Collection Optimization", Prediction: "3 new efficient routes identified", Confidence: 92},
		{Title: "Price Forecast", Prediction: "Price increase expected for composted waste", Confidence: 78},
	}
}

// pctChange returns the percentage change from prev to cur. ok is false
// when prev is zero.
func pctChange(prev, cur float64) (float64, bool) {
	if prev == 0 {
		return 0, false
	}
	pct := (cur - prev) / prev * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}
	return pct, true
}

func direction(pct float64) string {
	if pct < 0 {
		return "decrease"
	}
	return "increase"
}

// SynthesizeTrends derives three trend predictions from the last two points
// of the series plus the aggregate stats: waste change, revenue change, and
// revenue per ton of waste (floor-divided, zero-guarded). Any condition
// that would make the arithmetic meaningless falls back to the static
// placeholder set instead of failing the view.
func SynthesizeTrends(series []models.MonthlyAnalyticsPoint, stats *models.DashboardStats) []models.TrendPrediction {
	if len(series) < 2 || stats == nil {
		return placeholderPredictions()
	}
	prev, last := series[len(series)-2], series[len(series)-1]

	wastePct, ok := pctChange(prev.Waste, last.Waste)
	if !ok {
		return placeholderPredictions()
	}
	revenuePct, ok := pctChange(prev.Revenue, last.Revenue)
	if !ok {
		return placeholderPredictions()
	}

	var perTon int64
	if stats.TotalWaste > 0 {
		perTon = int64(math.Floor(stats.TotalRevenue / stats.TotalWaste))
	}

	return []models.TrendPrediction{
		{
			Title:      "Waste Volume Trend",
			Prediction: fmt.Sprintf("Expected %.1f%% %s in crop waste next month", math.Abs(wastePct), direction(wastePct)),
			Confidence: 85,
		},
		{
			Title:      "Revenue Trend",
			Prediction: fmt.Sprintf("Revenue projected to %s %.1f%% next month", direction(revenuePct), math.Abs(revenuePct)),
			Confidence: 78,
		},
		{
			Title:      "Revenue Efficiency",
			Prediction: fmt.Sprintf("Earning %s per ton of waste collected", FormatCurrency(float64(perTon))),
			Confidence: 88,
		},
	}
}
