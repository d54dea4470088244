package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is an employer profile owned by the registering user.
type Company struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Logo        string             `bson:"logo,omitempty" json:"logo,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
