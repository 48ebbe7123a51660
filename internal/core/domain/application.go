package domain

import (
	"errors"
	"time"
)

// ApplicationStatus represents the review state of a student application.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationInterviewed ApplicationStatus = "interviewed"
	ApplicationSelected    ApplicationStatus = "selected"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// validStatusTransitions defines the allowed review progression.
var validStatusTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:     {ApplicationShortlisted, ApplicationRejected},
	ApplicationShortlisted: {ApplicationInterviewed, ApplicationRejected},
	ApplicationInterviewed: {ApplicationSelected, ApplicationRejected},
}

var ErrInvalidTransition = errors.New("invalid application status transition")
var ErrApplicationNotFound = errors.New("application not found")
var ErrDuplicateApplication = errors.New("application already submitted")

// CanTransitionTo reports whether a review move from s to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application records a student applying to a job posting.
type Application struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	JobID         string            `json:"job_id" bson:"job_id"`
	StudentID     string            `json:"student_id" bson:"student_id"`
	Status        ApplicationStatus `json:"status" bson:"status"`
	AppliedDate   time.Time         `json:"applied_date" bson:"applied_date"`
	Notes         string            `json:"notes,omitempty" bson:"notes,omitempty"`
	Resume        string            `json:"resume,omitempty" bson:"resume,omitempty"`
	CoverLetter   string            `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	InterviewDate time.Time         `json:"interview_date,omitempty" bson:"interview_date,omitempty"`
	Feedback      string            `json:"feedback,omitempty" bson:"feedback,omitempty"`
}
