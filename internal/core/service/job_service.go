package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type JobService struct {
	repo   ports.JobRepository
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, logger: logger}
}

// CreateJob publishes a new posting on behalf of an employer.
func (s *JobService) CreateJob(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if input.Title == "" || input.Company == "" || input.EmployerID == "" {
		return nil, errors.New("create job: title, company and employer are required")
	}

	status := domain.JobActive
	if input.Draft {
		status = domain.JobDraft
	}

	job := &domain.Job{
		ID:         uuid.NewString(),
		Title:      input.Title,
		Company:    input.Company,
		Department: input.Department,
		Location:   input.Location,
		Type:       domain.JobType(input.Type),
		Salary: domain.SalaryRange{
			Min:      input.SalaryMin,
			Max:      input.SalaryMax,
			Currency: input.Currency,
		},
		Description:  input.Description,
		Requirements: input.Requirements,
		Skills:       input.Skills,
		Deadline:     input.Deadline,
		Status:       status,
		EmployerID:   input.EmployerID,
		PostedDate:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Str("title", job.Title).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Str("company", job.Company).Msg("job posted")
	return job, nil
}

func (s *JobService) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

// ListJobs returns a filtered, paginated page of postings.
func (s *JobService) ListJobs(ctx context.Context, input ports.ListJobsInput) (*ports.ListJobsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListJobsFilter{
		Status:     input.Status,
		Type:       input.Type,
		EmployerID: input.EmployerID,
		Search:     input.Search,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListJobsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
