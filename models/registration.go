package models

// HarvestSchedule marks the seasons a farm harvests in.
type HarvestSchedule struct {
	Spring bool `bson:"spring" json:"spring"`
	Summer bool `bson:"summer" json:"summer"`
	Winter bool `bson:"winter" json:"winter"`
}

// FarmDetails carries the farm section of a registration. PrimaryCrops is
// derived from a comma-separated input string; segments are trimmed and
// empty segments dropped.
type FarmDetails struct {
	FarmSize        string          `bson:"farmSize"        json:"farmSize"`
	PrimaryCrops    []string        `bson:"primaryCrops"    json:"primaryCrops"`
	Address         string          `bson:"address"         json:"address"`
	FarmType        string          `bson:"farmType"        json:"farmType"`
	HarvestSchedule HarvestSchedule `bson:"harvestSchedule" json:"harvestSchedule"`
}

// RegistrationRecord is the payload sent to the marketplace backend's
// registration-complete endpoint, and the user record it returns.
type RegistrationRecord struct {
	Email       string       `bson:"email"              json:"email"`
	Name        string       `bson:"name"               json:"name"`
	Picture     string       `bson:"picture,omitempty"  json:"picture,omitempty"`
	AuthID      string       `bson:"auth0Id,omitempty"  json:"auth0Id,omitempty"`
	Role        string       `bson:"role"               json:"role"` // farmer | buyer
	Phone       string       `bson:"phone,omitempty"    json:"phone,omitempty"`
	Location    string       `bson:"location,omitempty" json:"location,omitempty"`
	FarmDetails *FarmDetails `bson:"farmDetails,omitempty" json:"farmDetails,omitempty"`
	IsVerified  bool         `bson:"isVerified"         json:"isVerified"`
}
