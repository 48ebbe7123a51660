package handler

import (
	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

// --- Request → Service input ---

func toCreateJobInput(req createJobRequest, employerID string) ports.CreateJobInput {
	return ports.CreateJobInput{
		Title:        req.Title,
		Company:      req.Company,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		SalaryMin:    req.Salary.Min,
		SalaryMax:    req.Salary.Max,
		Currency:     req.Salary.Currency,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		Deadline:     req.Deadline,
		Draft:        req.Draft,
		EmployerID:   employerID,
	}
}

// --- Service result → HTTP response ---

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:         j.ID,
		Title:      j.Title,
		Company:    j.Company,
		Department: j.Department,
		Location:   j.Location,
		Type:       string(j.Type),
		Salary: salaryResponse{
			Min:      j.Salary.Min,
			Max:      j.Salary.Max,
			Currency: j.Salary.Currency,
		},
		Description:       j.Description,
		Requirements:      j.Requirements,
		Skills:            j.Skills,
		Deadline:          j.Deadline.UTC(),
		Status:            string(j.Status),
		EmployerID:        j.EmployerID,
		PostedDate:        j.PostedDate.UTC(),
		ApplicationsCount: j.ApplicationsCount,
	}
}

func toListJobsResponse(r *ports.ListJobsResult) listJobsResponse {
	items := make([]jobResponse, len(r.Items))
	for i, j := range r.Items {
		items[i] = toJobResponse(j)
	}
	return listJobsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
