package models

// PredictionResult mirrors the prediction service's response exactly.
// Amounts are tons and rupees. The service promises
// total_profit == crop_profit + waste_profit but the client does not
// depend on it; missing numeric fields decode to 0.
type PredictionResult struct {
	PredictedYield   float64 `json:"predicted_yield"`
	PredictedWaste   float64 `json:"predicted_waste"`
	PricePerTon      float64 `json:"price_per_ton"`
	WastePricePerTon float64 `json:"waste_price_per_ton"`
	CropProfit       float64 `json:"crop_profit"`
	WasteProfit      float64 `json:"waste_profit"`
	TotalProfit      float64 `json:"total_profit"`
	Crop             string  `json:"crop"`
	Location         string  `json:"location"`
}
