package service

import (
	"context"
	"strings"

	"marketplace/internal/models"
	"marketplace/internal/repository"
)

// JobFilter narrows a job listing. Zero values match everything.
type JobFilter struct {
	Query      string
	Type       models.JobType
	Location   string
	Experience string
	CompanyID  int
	Status     models.JobStatus
	Limit      int
	Offset     int
}

func (f JobFilter) matches(j models.Job) bool {
	if f.Query != "" {
		q := strings.TrimSpace(f.Query)
		if !containsFold(j.Title, q) && !containsFold(j.Description, q) && !anyContainsFold(j.Skills, q) {
			return false
		}
	}
	if f.Type != "" && !strings.EqualFold(string(j.Type), string(f.Type)) {
		return false
	}
	if f.Location != "" && !containsFold(j.Location, f.Location) {
		return false
	}
	if f.Experience != "" && !strings.EqualFold(j.Experience, f.Experience) {
		return false
	}
	if f.CompanyID != 0 && j.CompanyID != f.CompanyID {
		return false
	}
	if f.Status != "" && j.Status != f.Status {
		return false
	}
	return true
}

// GetJobs returns every job in fixture order.
func (s *DataService) GetJobs(ctx context.Context) ([]models.Job, error) {
	ctx, end, err := s.begin(ctx, "GetJobs")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Jobs.All(ctx), nil
}

// GetJobByID returns the job with id, or nil.
func (s *DataService) GetJobByID(ctx context.Context, id int) (*models.Job, error) {
	ctx, end, err := s.begin(ctx, "GetJobByID")
	if err != nil {
		return nil, err
	}
	defer end()

	return found(s.store.Jobs.Get(ctx, id)), nil
}

// GetJobsByCompany returns the jobs posted by companyID in fixture order.
func (s *DataService) GetJobsByCompany(ctx context.Context, companyID int) ([]models.Job, error) {
	ctx, end, err := s.begin(ctx, "GetJobsByCompany")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Jobs.Filter(ctx, func(j models.Job) bool { return j.CompanyID == companyID }), nil
}

// ListJobs returns one page of the jobs matching f.
func (s *DataService) ListJobs(ctx context.Context, f JobFilter) (models.Page[models.Job], error) {
	ctx, end, err := s.begin(ctx, "ListJobs")
	if err != nil {
		return models.Page[models.Job]{}, err
	}
	defer end()

	return paginate(s.store.Jobs.Filter(ctx, f.matches), f.Limit, f.Offset), nil
}

// GetJobWithCompany returns the job joined with its company. The company is
// nil when the job's companyId has no match.
func (s *DataService) GetJobWithCompany(ctx context.Context, id int) (*models.JobWithCompany, error) {
	ctx, end, err := s.begin(ctx, "GetJobWithCompany")
	if err != nil {
		return nil, err
	}
	defer end()

	job, ok := s.store.Jobs.Get(ctx, id)
	if !ok {
		return nil, nil
	}
	return &models.JobWithCompany{
		Job:     job,
		Company: found(s.store.Companies.Get(ctx, job.CompanyID)),
	}, nil
}

// CreateJob stores job under a new id (max existing id + 1, or 1 when empty).
// Any id on the input is ignored.
func (s *DataService) CreateJob(ctx context.Context, job models.Job) (*models.Job, error) {
	ctx, end, err := s.begin(ctx, "CreateJob")
	if err != nil {
		return nil, err
	}
	defer end()

	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
	if job.PostedAt == "" {
		job.PostedAt = s.now().UTC().Format(dateLayout)
	}
	created := s.store.Jobs.Insert(ctx, func(existing []models.Job) models.Job {
		job.ID = repository.NextIntID(existing, func(j models.Job) int { return j.ID })
		return job
	})
	return &created, nil
}

// UpdateJob replaces the job with the same id. It reports false when no job
// has that id.
func (s *DataService) UpdateJob(ctx context.Context, job models.Job) (bool, error) {
	ctx, end, err := s.begin(ctx, "UpdateJob")
	if err != nil {
		return false, err
	}
	defer end()

	_, ok := s.store.Jobs.Update(ctx, job.ID, func(stored *models.Job) { *stored = job })
	return ok, nil
}

// MergeJob rewrites the job with id using merge, which receives the stored
// record and runs under the jobs write lock. The id is kept whatever merge
// returns. The result is nil when no job has that id.
func (s *DataService) MergeJob(ctx context.Context, id int, merge func(stored models.Job) models.Job) (*models.Job, error) {
	ctx, end, err := s.begin(ctx, "MergeJob")
	if err != nil {
		return nil, err
	}
	defer end()

	updated, ok := s.store.Jobs.Update(ctx, id, func(stored *models.Job) {
		next := merge(*stored)
		next.ID = id
		*stored = next
	})
	return found(updated, ok), nil
}

// DeleteJob removes the job with id. It reports false when no job has that id.
func (s *DataService) DeleteJob(ctx context.Context, id int) (bool, error) {
	ctx, end, err := s.begin(ctx, "DeleteJob")
	if err != nil {
		return false, err
	}
	defer end()

	return s.store.Jobs.Delete(ctx, id), nil
}
