package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role of a marketplace account. Farmers list agricultural waste,
// buyers purchase it.
const (
	RoleFarmer = "farmer"
	RoleBuyer  = "buyer"
)

func ValidRole(r string) bool { return r == RoleFarmer || r == RoleBuyer }

// User is a local marketplace account.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name"          json:"name"`
	Email        string             `bson:"email"         json:"email"`
	PasswordHash string             `bson:"passwordHash"  json:"-"`
	Role         string             `bson:"role"          json:"role"` // farmer | buyer
	Picture      string             `bson:"picture,omitempty"  json:"picture,omitempty"`
	Phone        string             `bson:"phone,omitempty"    json:"phone,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"     json:"createdAt"`
}
