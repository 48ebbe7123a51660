package domain

import (
	"errors"
	"time"
)

// JobStatus represents the publication state of a posting.
type JobStatus string

const (
	JobActive JobStatus = "active"
	JobClosed JobStatus = "closed"
	JobDraft  JobStatus = "draft"
)

// JobType classifies the engagement offered by a posting.
type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobInternship JobType = "internship"
	JobContract   JobType = "contract"
)

var ErrJobNotFound = errors.New("job not found")
var ErrJobClosed = errors.New("job is not accepting applications")

// SalaryRange is the annual compensation band attached to a posting.
type SalaryRange struct {
	Min      int64  `json:"min" bson:"min"`
	Max      int64  `json:"max" bson:"max"`
	Currency string `json:"currency" bson:"currency"`
}

// Job is a posting published by an employer.
type Job struct {
	ID                string      `json:"id" bson:"_id,omitempty"`
	Title             string      `json:"title" bson:"title"`
	Company           string      `json:"company" bson:"company"`
	Department        string      `json:"department" bson:"department"`
	Location          string      `json:"location" bson:"location"`
	Type              JobType     `json:"type" bson:"type"`
	Salary            SalaryRange `json:"salary" bson:"salary"`
	Description       string      `json:"description" bson:"description"`
	Requirements      []string    `json:"requirements" bson:"requirements"`
	Skills            []string    `json:"skills" bson:"skills"`
	Deadline          time.Time   `json:"deadline" bson:"deadline"`
	Status            JobStatus   `json:"status" bson:"status"`
	EmployerID        string      `json:"employer_id" bson:"employer_id"`
	PostedDate        time.Time   `json:"posted_date" bson:"posted_date"`
	ApplicationsCount int         `json:"applications_count" bson:"applications_count"`
}
