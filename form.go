package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Prediction form field names.
const (
	FieldLocation      = "location"
	FieldLandArea      = "land_area"
	FieldSoilCondition = "soil_condition"
	FieldCropType      = "crop_type"
)

// SoilConditions is the closed set offered by the frontend select. Membership
// is not enforced at submit time; any string is forwarded.
var SoilConditions = []string{"Sandy", "Clay", "Loamy"}

// CropTypes is the crop catalogue offered by the frontend select.
var CropTypes = []string{
	"Rice", "Wheat", "Maize", "Sorghum", "Pearl Millet", "Finger Millet",
	"Chickpeas", "Pigeon Peas", "Lentils", "Black Gram", "Green Gram",
	"Groundnut", "Rapeseed", "Mustard", "Soybean", "Sunflower", "Sesame",
	"Sugarcane", "Cotton", "Jute", "Tobacco", "Tea", "Coffee", "Rubber",
	"Coconut", "Arecanut", "Mango", "Banana", "Apple", "Grapes", "Orange",
	"Pineapple", "Guava", "Papaya", "Litchi", "Pomegranate", "Potato",
	"Tomato", "Onion", "Brinjal", "Okra", "Cabbage", "Cauliflower", "Carrot",
	"Peas", "Spinach", "Chillies", "Turmeric", "Ginger", "Garlic", "Cardamom",
	"Black Pepper", "Coriander", "Cumin", "Fenugreek", "Rose", "Marigold",
	"Jasmine", "Chrysanthemum", "Gladiolus",
}

// FormInput holds the prediction form as entered, one string value per
// field. Set mutates exactly one field; values are read once at submit time
// through Normalize.
type FormInput struct {
	values map[string]string
	rev    int
}

func NewFormInput() *FormInput {
	return &FormInput{values: map[string]string{
		FieldLocation:      "",
		FieldLandArea:      "",
		FieldSoilCondition: "",
		FieldCropType:      "",
	}}
}

// Set updates a single field, leaving all others untouched, and bumps the
// revision counter. Unknown field names are rejected.
func (f *FormInput) Set(name, value string) error {
	if _, ok := f.values[name]; !ok {
		return fmt.Errorf("unknown form field %q", name)
	}
	f.values[name] = value
	f.rev++
	return nil
}

func (f *FormInput) Get(name string) string { return f.values[name] }

// Revision increments on every Set.
func (f *FormInput) Revision() int { return f.rev }

// Snapshot returns a value copy for the submit path.
func (f *FormInput) Snapshot() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// NormalizedForm is the wire shape of a prediction request: land_area as a
// number, enum-like fields lower-cased.
type NormalizedForm struct {
	Location      string  `json:"location"`
	LandArea      float64 `json:"land_area"`
	SoilCondition string  `json:"soil_condition"`
	CropType      string  `json:"crop_type"`
}

// Normalize coerces land_area to a finite number and lower-cases
// soil_condition and crop_type. Enum membership against the catalogues is
// deliberately not checked.
func (f *FormInput) Normalize() (NormalizedForm, error) {
	area, err := strconv.ParseFloat(strings.TrimSpace(f.values[FieldLandArea]), 64)
	if err != nil || math.IsNaN(area) || math.IsInf(area, 0) {
		return NormalizedForm{}, fmt.Errorf("land_area must be a number")
	}
	soil := strings.ToLower(strings.TrimSpace(f.values[FieldSoilCondition]))
	crop := strings.ToLower(strings.TrimSpace(f.values[FieldCropType]))
	if soil == "" {
		return NormalizedForm{}, fmt.Errorf("soil_condition is required")
	}
	if crop == "" {
		return NormalizedForm{}, fmt.Errorf("crop_type is required")
	}
	return NormalizedForm{
		Location:      f.values[FieldLocation],
		LandArea:      area,
		SoilCondition: soil,
		CropType:      crop,
	}, nil
}
