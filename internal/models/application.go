package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application status values. A recruiter moves an application out of pending.
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Application progress stages, advanced independently of status.
const (
	ProgressApplied   = "applied"
	ProgressInterview = "interview"
	ProgressOffer     = "offer"
)

// Application links an applicant to a job posting.
type Application struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	JobID       primitive.ObjectID `bson:"job" json:"job"`
	ApplicantID primitive.ObjectID `bson:"applicant" json:"applicant"`
	Status      string             `bson:"status" json:"status"`
	Progress    string             `bson:"progress" json:"progress"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidApplicationStatus reports whether s is an accepted status transition target.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// ValidApplicationProgress reports whether p is a known progress stage.
func ValidApplicationProgress(p string) bool {
	switch p {
	case ProgressApplied, ProgressInterview, ProgressOffer:
		return true
	}
	return false
}
