package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is a posting created by a recruiter on behalf of a company.
type Job struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title           string               `bson:"title" json:"title"`
	Description     string               `bson:"description" json:"description"`
	Requirements    []string             `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Salary          int64                `bson:"salary" json:"salary"`
	ExperienceLevel int                  `bson:"experienceLevel" json:"experienceLevel"`
	Location        string               `bson:"location" json:"location"`
	JobType         string               `bson:"jobType" json:"jobType"`
	Position        int                  `bson:"position" json:"position"`
	CompanyID       primitive.ObjectID   `bson:"company" json:"company"`
	CreatedBy       primitive.ObjectID   `bson:"created_by" json:"created_by"`
	Applications    []primitive.ObjectID `bson:"applications,omitempty" json:"applications,omitempty"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}
