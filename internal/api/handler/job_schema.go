package handler

import "time"

// --- Request / Response types ---

type salaryRequest struct {
	Min      int64  `json:"min"      validate:"required,gt=0"`
	Max      int64  `json:"max"      validate:"required,gtefield=Min"`
	Currency string `json:"currency" validate:"required"`
}

type createJobRequest struct {
	Title        string        `json:"title"        validate:"required"`
	Company      string        `json:"company"      validate:"required"`
	Department   string        `json:"department"`
	Location     string        `json:"location"     validate:"required"`
	Type         string        `json:"type"         validate:"required,oneof=full-time part-time internship contract"`
	Salary       salaryRequest `json:"salary"       validate:"required"`
	Description  string        `json:"description"  validate:"required"`
	Requirements []string      `json:"requirements"`
	Skills       []string      `json:"skills"`
	Deadline     time.Time     `json:"deadline"     validate:"required"`
	Draft        bool          `json:"draft"`
}

type salaryResponse struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

type jobResponse struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Company           string         `json:"company"`
	Department        string         `json:"department"`
	Location          string         `json:"location"`
	Type              string         `json:"type"`
	Salary            salaryResponse `json:"salary"`
	Description       string         `json:"description"`
	Requirements      []string       `json:"requirements"`
	Skills            []string       `json:"skills"`
	Deadline          time.Time      `json:"deadline"`
	Status            string         `json:"status"`
	EmployerID        string         `json:"employer_id"`
	PostedDate        time.Time      `json:"posted_date"`
	ApplicationsCount int            `json:"applications_count"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listJobsResponse struct {
	Data       []jobResponse      `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
