package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cropcycle/models"
)

// Registration wizard steps: Personal Details, Farm Information, Location
// Details.
const WizardTotalSteps = 3

var wizardStepNames = []string{"Personal Details", "Farm Information", "Location Details"}

// WizardStepName returns the display name for a 1-based step.
func WizardStepName(step int) string {
	if step < 1 || step > len(wizardStepNames) {
		return ""
	}
	return wizardStepNames[step-1]
}

func NewWizardSession(id string, now time.Time) *models.WizardSession {
	return &models.WizardSession{
		ID:          id,
		CurrentStep: 1,
		TotalSteps:  WizardTotalSteps,
		Fields:      map[string]string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// WizardNext advances one step. No-op (returns false) on the final step.
// Fields of the step being left are not validated; submit validates.
func WizardNext(s *models.WizardSession) bool {
	if s.CurrentStep >= s.TotalSteps {
		return false
	}
	s.CurrentStep++
	return true
}

// WizardPrevious steps back. No-op (returns false) on the first step.
// Previously entered field values are preserved.
func WizardPrevious(s *models.WizardSession) bool {
	if s.CurrentStep <= 1 {
		return false
	}
	s.CurrentStep--
	return true
}

// WizardSetField writes one field of the shared record.
func WizardSetField(s *models.WizardSession, name, value string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("field name is required")
	}
	if s.Fields == nil {
		s.Fields = map[string]string{}
	}
	s.Fields[name] = value
	return nil
}

// SplitCrops turns a comma-separated crop string into a trimmed list.
// Empty segments are dropped.
func SplitCrops(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// BuildRegistrationRecord assembles the registration payload from the
// accumulated wizard fields. Email, name, and a valid role are required;
// farm details are attached for farmers.
func BuildRegistrationRecord(s *models.WizardSession) (models.RegistrationRecord, error) {
	get := func(k string) string { return strings.TrimSpace(s.Fields[k]) }

	rec := models.RegistrationRecord{
		Email:      get("email"),
		Name:       get("name"),
		Picture:    get("picture"),
		AuthID:     get("auth0Id"),
		Role:       get("role"),
		Phone:      get("phone"),
		Location:   get("location"),
		IsVerified: false,
	}
	if rec.Email == "" || rec.Name == "" {
		return models.RegistrationRecord{}, fmt.Errorf("email and name are required")
	}
	if !models.ValidRole(rec.Role) {
		return models.RegistrationRecord{}, fmt.Errorf("role must be %q or %q", models.RoleFarmer, models.RoleBuyer)
	}

	if rec.Role == models.RoleFarmer {
		spring, _ := strconv.ParseBool(get("harvestSpring"))
		summer, _ := strconv.ParseBool(get("harvestSummer"))
		winter, _ := strconv.ParseBool(get("harvestWinter"))
		rec.FarmDetails = &models.FarmDetails{
			FarmSize:     get("farmSize"),
			PrimaryCrops: SplitCrops(s.Fields["primaryCrops"]),
			Address:      get("farmAddress"),
			FarmType:     get("farmType"),
			HarvestSchedule: models.HarvestSchedule{
				Spring: spring,
				Summer: summer,
				Winter: winter,
			},
		}
	}
	return rec, nil
}
