package models

// MonthlyAnalyticsPoint is one chart-ready point of the dashboard series.
// Recycled is derived from Waste at transform time, not fetched.
type MonthlyAnalyticsPoint struct {
	Month    string  `json:"month"`
	Waste    float64 `json:"waste"`
	Revenue  float64 `json:"revenue"`
	Recycled float64 `json:"recycled"`
}

// DashboardStats are the aggregate figures fetched once per dashboard load.
type DashboardStats struct {
	TotalWaste      float64            `json:"totalWaste"`
	TotalRevenue    float64            `json:"totalRevenue"`
	StatusBreakdown map[string]int     `json:"statusBreakdown"`
	WasteByType     map[string]float64 `json:"wasteByType"`
}

// TrendPrediction is a client-synthesized trend card. No model inference
// is involved; confidence is presentational.
type TrendPrediction struct {
	Title      string `json:"title"`
	Prediction string `json:"prediction"`
	Confidence int    `json:"confidence"`
}
