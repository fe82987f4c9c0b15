package main

import (
	"strings"

	"cropcycle/models"
)

// Request/response DTOs. Keep them minimal and explicit.

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // farmer | buyer
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	Token string `json:"token"`
}

// landArea accepts a JSON number or a quoted string, the way form widgets
// submit it. Validation happens in FormInput.Normalize.
type landArea string

func (l *landArea) UnmarshalJSON(b []byte) error {
	*l = landArea(strings.Trim(strings.TrimSpace(string(b)), `"`))
	return nil
}

type predictReq struct {
	Location      string   `json:"location"`
	LandArea      landArea `json:"land_area"`
	SoilCondition string   `json:"soil_condition"`
	CropType      string   `json:"crop_type"`
}

type predictResp struct {
	Result  models.PredictionResult `json:"result"`
	Metrics DerivedMetrics          `json:"metrics"`
}

type wizardFieldsReq struct {
	Fields map[string]string `json:"fields"`
}

type wizardSubmitResp struct {
	User     *models.RegistrationRecord `json:"user"`
	Redirect string                     `json:"redirect"`
}

type catalogueResp struct {
	SoilConditions []string `json:"soilConditions"`
	CropTypes      []string `json:"cropTypes"`
}

type dashboardResp struct {
	Monthly     []models.MonthlyAnalyticsPoint `json:"monthly"`
	Stats       models.DashboardStats          `json:"stats"`
	Predictions []models.TrendPrediction       `json:"predictions"`
}
