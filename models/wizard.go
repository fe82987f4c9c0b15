package models

import "time"

// WizardSession is one in-progress registration wizard. Fields accumulate
// across steps and are never reset by navigation; CurrentStep stays within
// 1..TotalSteps.
type WizardSession struct {
	ID          string            `bson:"_id"         json:"id"`
	CurrentStep int               `bson:"currentStep" json:"currentStep"`
	TotalSteps  int               `bson:"totalSteps"  json:"totalSteps"`
	Fields      map[string]string `bson:"fields"      json:"fields"`

	// Written once after a successful submit. These are the two durable
	// entries downstream dashboard views personalize from.
	UserRole string              `bson:"user_role,omitempty" json:"user_role,omitempty"`
	UserData *RegistrationRecord `bson:"user_data,omitempty" json:"user_data,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
