package domain

import "time"

// PlacementStatus represents the lifecycle state of a confirmed placement.
type PlacementStatus string

const (
	PlacementActive     PlacementStatus = "active"
	PlacementCompleted  PlacementStatus = "completed"
	PlacementTerminated PlacementStatus = "terminated"
)

// PlacementRecord ties a student to the position they were placed in.
type PlacementRecord struct {
	ID             string          `json:"id" bson:"_id,omitempty"`
	StudentID      string          `json:"student_id" bson:"student_id"`
	JobID          string          `json:"job_id" bson:"job_id"`
	Company        string          `json:"company" bson:"company"`
	Position       string          `json:"position" bson:"position"`
	Salary         int64           `json:"salary" bson:"salary"`
	StartDate      time.Time       `json:"start_date" bson:"start_date"`
	Status         PlacementStatus `json:"status" bson:"status"`
	DurationMonths int             `json:"duration_months,omitempty" bson:"duration_months,omitempty"`
}

// SystemStats is the aggregate snapshot rendered on the admin dashboard.
type SystemStats struct {
	TotalStudents     int64   `json:"total_students"`
	TotalEmployers    int64   `json:"total_employers"`
	TotalJobs         int64   `json:"total_jobs"`
	TotalApplications int64   `json:"total_applications"`
	TotalPlacements   int64   `json:"total_placements"`
	PlacementRate     float64 `json:"placement_rate"`
}
