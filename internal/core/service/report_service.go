package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

type ReportService struct {
	directory  ports.DirectoryRepository
	jobs       ports.JobRepository
	apps       ports.ApplicationRepository
	placements ports.PlacementRepository
	logger     zerolog.Logger
}

func NewReportService(
	directory ports.DirectoryRepository,
	jobs ports.JobRepository,
	apps ports.ApplicationRepository,
	placements ports.PlacementRepository,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{directory: directory, jobs: jobs, apps: apps, placements: placements, logger: logger}
}

// Stats aggregates the portal-wide counters shown on the dashboards.
func (s *ReportService) Stats(ctx context.Context) (*domain.SystemStats, error) {
	students, err := s.directory.CountByRole(ctx, domain.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("stats: count students: %w", err)
	}
	employers, err := s.directory.CountByRole(ctx, domain.RoleEmployer)
	if err != nil {
		return nil, fmt.Errorf("stats: count employers: %w", err)
	}
	jobs, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: count jobs: %w", err)
	}
	applications, err := s.apps.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: count applications: %w", err)
	}
	placements, err := s.placements.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: count placements: %w", err)
	}

	var rate float64
	if students > 0 {
		rate = float64(placements) / float64(students) * 100
	}

	return &domain.SystemStats{
		TotalStudents:     students,
		TotalEmployers:    employers,
		TotalJobs:         jobs,
		TotalApplications: applications,
		TotalPlacements:   placements,
		PlacementRate:     rate,
	}, nil
}

func (s *ReportService) ListPlacements(ctx context.Context) ([]*domain.PlacementRecord, error) {
	return s.placements.List(ctx)
}
