package main

import (
	"fmt"
	"math"
	"testing"

	"cropcycle/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveMetricsZeroTotalProfit(t *testing.T) {
	m := DeriveMetrics(models.PredictionResult{
		CropProfit:  500,
		WasteProfit: 100,
		TotalProfit: 0,
	})
	assert.Equal(t, 0.0, m.CropSharePct)
	assert.Equal(t, 0.0, m.WasteSharePct)
	assert.False(t, math.IsNaN(m.CropSharePct))
}

func TestDeriveMetricsMissingFields(t *testing.T) {
	// an entirely empty result must not panic or produce non-finite values
	m := DeriveMetrics(models.PredictionResult{})
	assert.Equal(t, 0.0, m.CropSharePct)
	assert.Equal(t, "₹0", m.TotalProfitDisplay)
	for _, p := range m.ProfitDistribution {
		assert.False(t, math.IsNaN(p.Value))
	}
}

func TestDeriveMetricsNegativeTolerated(t *testing.T) {
	m := DeriveMetrics(models.PredictionResult{
		CropProfit:  -100,
		WasteProfit: 100,
		TotalProfit: -50,
	})
	assert.False(t, math.IsNaN(m.CropSharePct))
	assert.False(t, math.IsInf(m.CropSharePct, 0))
}

func TestDeriveMetricsCropShare(t *testing.T) {
	m := DeriveMetrics(models.PredictionResult{
		PredictedYield:   5,
		PredictedWaste:   2,
		PricePerTon:      2000,
		WastePricePerTon: 500,
		CropProfit:       10000,
		WasteProfit:      1000,
		TotalProfit:      11000,
		Crop:             "Wheat",
		Location:         "Pune",
	})
	assert.Equal(t, "90.9", fmt.Sprintf("%.1f", m.CropSharePct))

	require.Len(t, m.ProfitDistribution, 2)
	assert.Equal(t, ChartPoint{Name: "Crop Profit", Value: 10000}, m.ProfitDistribution[0])
	assert.Equal(t, ChartPoint{Name: "Waste Profit", Value: 1000}, m.ProfitDistribution[1])

	require.Len(t, m.PriceComparison, 2)
	assert.Equal(t, ChartPoint{Name: "Crop Price", Value: 2000}, m.PriceComparison[0])
	assert.Equal(t, ChartPoint{Name: "Waste Price", Value: 500}, m.PriceComparison[1])

	require.Len(t, m.Insights, 4)
	assert.Equal(t, "Analysis for Wheat cultivation in Pune", m.Insights[0])
	assert.Contains(t, m.Insights[1], "90.9%")
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹10,000", FormatCurrency(10000))
	assert.Equal(t, "₹1,234,568", FormatCurrency(1234567.6))
	assert.Equal(t, "₹0", FormatCurrency(0))
	assert.Equal(t, "₹0", FormatCurrency(math.NaN()))
	assert.Equal(t, "₹-500", FormatCurrency(-500))
}
