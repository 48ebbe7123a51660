package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusworks/placement-portal/internal/core/domain"
	"github.com/campusworks/placement-portal/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubJobRepo struct {
	byID      map[string]*domain.Job
	createErr error
	findErr   error
	bumped    []string // job ids passed to IncrementApplications
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{byID: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, j *domain.Job) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *j
	r.byID[j.ID] = &clone
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	j, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubJobRepo) List(_ context.Context, f ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	var matched []*domain.Job
	for _, j := range r.byID {
		if f.Status != "" && string(j.Status) != f.Status {
			continue
		}
		if f.Type != "" && string(j.Type) != f.Type {
			continue
		}
		if f.EmployerID != "" && j.EmployerID != f.EmployerID {
			continue
		}
		if f.Search != "" {
			titleMatch := strings.Contains(strings.ToLower(j.Title), strings.ToLower(f.Search))
			companyMatch := strings.Contains(strings.ToLower(j.Company), strings.ToLower(f.Search))
			if !titleMatch && !companyMatch {
				continue
			}
		}
		clone := *j
		matched = append(matched, &clone)
	}

	total := int64(len(matched))
	limit := f.Limit
	if limit <= 0 {
		limit = len(matched)
	}
	skip := (f.Page - 1) * limit
	if skip < 0 {
		skip = 0
	}
	if skip > len(matched) {
		return []*domain.Job{}, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubJobRepo) IncrementApplications(_ context.Context, id string) error {
	r.bumped = append(r.bumped, id)
	if j, ok := r.byID[id]; ok {
		j.ApplicationsCount++
	}
	return nil
}

func (r *stubJobRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func postingInput(employerID string) ports.CreateJobInput {
	return ports.CreateJobInput{
		Title:      "Software Engineer Intern",
		Company:    "Infosys Limited",
		Department: "Engineering",
		Location:   "Bangalore, Karnataka",
		Type:       "internship",
		SalaryMin:  300000,
		SalaryMax:  450000,
		Currency:   "INR",
		Deadline:   time.Now().AddDate(0, 3, 0),
		EmployerID: employerID,
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestJobService_Create_Success(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	job, err := svc.CreateJob(context.Background(), postingInput("emp_1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.ID == "" {
		t.Error("job id must be assigned")
	}
	if job.Status != domain.JobActive {
		t.Errorf("expected active, got %s", job.Status)
	}
	if job.PostedDate.IsZero() {
		t.Error("posted date must be set")
	}
	if _, ok := repo.byID[job.ID]; !ok {
		t.Error("job not persisted")
	}
}

func TestJobService_Create_DraftStatus(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())

	input := postingInput("emp_1")
	input.Draft = true
	job, err := svc.CreateJob(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Status != domain.JobDraft {
		t.Errorf("expected draft, got %s", job.Status)
	}
}

func TestJobService_Create_RequiresCoreFields(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())

	input := postingInput("emp_1")
	input.Title = ""
	if _, err := svc.CreateJob(context.Background(), input); err == nil {
		t.Error("expected error for missing title")
	}
}

func TestJobService_List_FiltersAndPaginates(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, zerolog.Nop())

	for i, title := range []string{"Software Engineer Intern", "Data Analyst", "Digital Marketing Intern"} {
		input := postingInput("emp_1")
		input.Title = title
		if i == 1 {
			input.Type = "full-time"
		}
		if _, err := svc.CreateJob(context.Background(), input); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	res, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Search: "intern"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 2 {
		t.Errorf("expected 2 matches for 'intern', got %d", res.Total)
	}

	res, err = svc.ListJobs(context.Background(), ports.ListJobsInput{Type: "full-time"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 1 {
		t.Errorf("expected 1 full-time job, got %d", res.Total)
	}

	res, err = svc.ListJobs(context.Background(), ports.ListJobsInput{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 2 || res.Total != 3 || res.TotalPages != 2 {
		t.Errorf("unexpected page: items=%d total=%d pages=%d", len(res.Items), res.Total, res.TotalPages)
	}
}

func TestJobService_List_DefaultsPagination(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), zerolog.Nop())

	res, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Page: -3, Limit: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Page != 1 || res.Limit != defaultPageLimit {
		t.Errorf("expected defaults, got page=%d limit=%d", res.Page, res.Limit)
	}
}
