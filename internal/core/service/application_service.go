package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

type ApplicationService struct {
	apps       ports.ApplicationRepository
	jobs       ports.JobRepository
	placements ports.PlacementRepository
	logger     zerolog.Logger
}

func NewApplicationService(
	apps ports.ApplicationRepository,
	jobs ports.JobRepository,
	placements ports.PlacementRepository,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, placements: placements, logger: logger}
}

// Apply submits a student application against an active posting. A student
// may apply to a given job at most once.
func (s *ApplicationService) Apply(ctx context.Context, input ports.ApplyInput) (*domain.Application, error) {
	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, fmt.Errorf("apply: %w", err)
	}
	if job.Status != domain.JobActive {
		return nil, domain.ErrJobClosed
	}

	if existing, err := s.apps.FindByJobAndStudent(ctx, input.JobID, input.StudentID); err == nil && existing != nil {
		return nil, domain.ErrDuplicateApplication
	}

	app := &domain.Application{
		ID:          uuid.NewString(),
		JobID:       input.JobID,
		StudentID:   input.StudentID,
		Status:      domain.ApplicationPending,
		AppliedDate: time.Now().UTC(),
		Resume:      input.Resume,
		CoverLetter: input.CoverLetter,
	}

	if err := s.apps.Create(ctx, app); err != nil {
		s.logger.Error().Err(err).Str("job_id", input.JobID).Msg("failed to create application")
		return nil, err
	}

	if err := s.jobs.IncrementApplications(ctx, input.JobID); err != nil {
		s.logger.Warn().Err(err).Str("job_id", input.JobID).Msg("failed to bump applications count")
	}

	s.logger.Info().
		Str("application_id", app.ID).
		Str("job_id", input.JobID).
		Str("student_id", input.StudentID).
		Msg("application submitted")

	return app, nil
}

// UpdateStatus applies a review decision, validating the transition machine.
// A selection additionally creates a placement record.
func (s *ApplicationService) UpdateStatus(ctx context.Context, input ports.UpdateApplicationStatusInput) (*domain.Application, error) {
	app, err := s.apps.FindByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	next := domain.ApplicationStatus(input.Status)
	if !app.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("update status: %w (from %s to %s)", domain.ErrInvalidTransition, app.Status, next)
	}

	app.Status = next
	if input.Notes != "" {
		app.Notes = input.Notes
	}
	if next == domain.ApplicationInterviewed && !input.InterviewDate.IsZero() {
		app.InterviewDate = input.InterviewDate
	}
	if input.Feedback != "" {
		app.Feedback = input.Feedback
	}

	if err := s.apps.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	if next == domain.ApplicationSelected {
		s.recordPlacement(ctx, app)
	}

	s.logger.Info().
		Str("application_id", app.ID).
		Str("status", string(next)).
		Msg("application status updated")

	return app, nil
}

func (s *ApplicationService) ListApplications(ctx context.Context, filter ports.ListApplicationsFilter) ([]*domain.Application, error) {
	return s.apps.List(ctx, filter)
}

// recordPlacement creates the placement record for a selected application.
// Failure here is logged, not surfaced: the selection itself already stands.
func (s *ApplicationService) recordPlacement(ctx context.Context, app *domain.Application) {
	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		s.logger.Warn().Err(err).Str("application_id", app.ID).Msg("placement record skipped, job lookup failed")
		return
	}

	record := &domain.PlacementRecord{
		ID:        uuid.NewString(),
		StudentID: app.StudentID,
		JobID:     app.JobID,
		Company:   job.Company,
		Position:  job.Title,
		Salary:    job.Salary.Min,
		StartDate: time.Now().UTC(),
		Status:    domain.PlacementActive,
	}
	if err := s.placements.Create(ctx, record); err != nil {
		s.logger.Warn().Err(err).Str("application_id", app.ID).Msg("failed to create placement record")
	}
}
