package main

import (
	"fmt"
	"math"

	"cropcycle/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ChartPoint is one named value of a chart dataset.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DerivedMetrics is everything the results panel shows that is computed
// from a PredictionResult rather than fetched: profit shares, the two chart
// datasets, formatted currency, and the insight lines.
type DerivedMetrics struct {
	CropSharePct       float64      `json:"cropSharePct"`
	WasteSharePct      float64      `json:"wasteSharePct"`
	ProfitDistribution []ChartPoint `json:"profitDistribution"`
	PriceComparison    []ChartPoint `json:"priceComparison"`
	TotalProfitDisplay string       `json:"totalProfitDisplay"`
	Insights           []string     `json:"insights"`
}

var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency integer-rounds and renders with thousand separators,
// e.g. ₹10,000.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return currencyPrinter.Sprintf("₹%d", int64(math.Round(v)))
}

// sharePct returns part/total*100, or 0 when total is zero or the result is
// not finite. Upstream data is not contractually complete, so this never
// propagates NaN or Inf.
func sharePct(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	pct := part / total * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	return pct
}

// DeriveMetrics is a pure projection of a PredictionResult; it holds no
// state of its own and must not fail on missing or negative fields.
func DeriveMetrics(res models.PredictionResult) DerivedMetrics {
	cropShare := sharePct(res.CropProfit, res.TotalProfit)
	wasteShare := sharePct(res.WasteProfit, res.TotalProfit)

	return DerivedMetrics{
		CropSharePct:  cropShare,
		WasteSharePct: wasteShare,
		ProfitDistribution: []ChartPoint{
			{Name: "Crop Profit", Value: res.CropProfit},
			{Name: "Waste Profit", Value: res.WasteProfit},
		},
		PriceComparison: []ChartPoint{
			{Name: "Crop Price", Value: res.PricePerTon},
			{Name: "Waste Price", Value: res.WastePricePerTon},
		},
		TotalProfitDisplay: FormatCurrency(res.TotalProfit),
		Insights: []string{
			fmt.Sprintf("Analysis for %s cultivation in %s", res.Crop, res.Location),
			fmt.Sprintf("Main crop revenue contributes %.1f%% of total earnings", cropShare),
			fmt.Sprintf("Waste management adds %s in additional revenue", FormatCurrency(res.WasteProfit)),
			fmt.Sprintf("Price per ton: Crop %s | Waste %s", FormatCurrency(res.PricePerTon), FormatCurrency(res.WastePricePerTon)),
		},
	}
}
