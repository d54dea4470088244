package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile holds the optional career details attached to a user.
type Profile struct {
	Bio                string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills             []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Resume             string             `bson:"resume,omitempty" json:"resume,omitempty"`
	ResumeOriginalName string             `bson:"resumeOriginalName,omitempty" json:"resumeOriginalName,omitempty"`
	ProfilePhoto       string             `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
	Company            primitive.ObjectID `bson:"company,omitempty" json:"company,omitempty"`
}

// User captures an account identity plus its job-board profile.
// PasswordHash is persisted but never serialized to clients.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FullName     string             `bson:"fullname" json:"fullname"`
	Email        string             `bson:"email" json:"email"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phoneNumber"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Profile      Profile            `bson:"profile" json:"profile"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Sanitized returns a copy with the credential material cleared. The hash is
// already excluded from JSON; zeroing it keeps accidental logging harmless.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
