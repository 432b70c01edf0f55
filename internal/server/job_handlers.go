package server

import (
	"context"
	"strings"

	"marketplace/internal/cache"
	"marketplace/internal/models"
	"marketplace/internal/service"
	"marketplace/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ListJobs handles GET /api/jobs
// @Summary List jobs
// @Description Filter and page through job postings.
// @Tags jobs
// @Produce json
// @Param q query string false "Matches title, description and skills"
// @Param type query string false "Job type"
// @Param location query string false "Location substring"
// @Param experience query string false "Experience level"
// @Param companyId query int false "Company ID"
// @Param status query string false "active, closed or draft"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} models.Page[models.Job]
// @Router /jobs [get]
func (s *Server) ListJobs(c *fiber.Ctx) error {
	p := parsePagination(c, service.DefaultPageLimit)
	filter := service.JobFilter{
		Query:      strings.TrimSpace(c.Query("q")),
		Type:       models.JobType(c.Query("type")),
		Location:   c.Query("location"),
		Experience: c.Query("experience"),
		CompanyID:  c.QueryInt("companyId", 0),
		Status:     models.JobStatus(strings.ToLower(c.Query("status"))),
		Limit:      p.Limit,
		Offset:     p.Offset,
	}

	page, err := cached(c, s, cache.ResourceJobs, func(ctx context.Context) (models.Page[models.Job], error) {
		return s.data.ListJobs(ctx, filter)
	})
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(page)
}

// GetJob handles GET /api/jobs/:id
// @Summary Get job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} models.Job
// @Failure 404 {object} models.ErrorResponse
// @Router /jobs/{id} [get]
func (s *Server) GetJob(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	job, err := s.data.GetJobByID(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	if job == nil {
		return notFound(c, "Job", id)
	}
	return c.JSON(job)
}

// GetJobWithCompany handles GET /api/jobs/:id/company
// The company field is null when the job points at an unknown company.
func (s *Server) GetJobWithCompany(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	joined, err := s.data.GetJobWithCompany(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	if joined == nil {
		return notFound(c, "Job", id)
	}
	return c.JSON(joined)
}

// GetJobTests handles GET /api/jobs/:id/tests
func (s *Server) GetJobTests(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	tests, err := s.data.GetTestsForJob(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(tests)
}

// GetJobApplications handles GET /api/jobs/:id/applications
func (s *Server) GetJobApplications(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	apps, err := s.data.GetJobApplications(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(apps)
}

// CreateJob handles POST /api/admin/jobs
// @Summary Create job
// @Description Requires the admin_crud feature flag.
// @Tags admin
// @Accept json
// @Produce json
// @Param job body models.Job true "Job; id is assigned by the server"
// @Success 201 {object} models.Job
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/jobs [post]
func (s *Server) CreateJob(c *fiber.Ctx) error {
	var job models.Job
	if err := parseBody(c, &job); err != nil {
		return nil
	}
	if err := validation.ValidateJob(job); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(err.Error()))
	}

	created, err := s.data.CreateJob(c.UserContext(), job)
	if err != nil {
		return s.serviceError(c, err)
	}
	cache.InvalidateJobs(c.UserContext())

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateJob handles PUT /api/admin/jobs/:id
// The path id wins over any id in the body.
func (s *Server) UpdateJob(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var job models.Job
	if err := parseBody(c, &job); err != nil {
		return nil
	}
	job.ID = id
	if err := validation.ValidateJob(job); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(err.Error()))
	}

	updated, err := s.data.MergeJob(c.UserContext(), id, keepUnsetJobFields(job))
	if err != nil {
		return s.serviceError(c, err)
	}
	if updated == nil {
		return notFound(c, "Job", id)
	}
	cache.InvalidateJobs(c.UserContext())

	return c.JSON(updated)
}

// keepUnsetJobFields returns a merge that replaces the stored job with update
// but keeps the stored status and posting date when update leaves them empty.
func keepUnsetJobFields(update models.Job) func(models.Job) models.Job {
	return func(stored models.Job) models.Job {
		merged := update
		if merged.Status == "" {
			merged.Status = stored.Status
		}
		if merged.PostedAt == "" {
			merged.PostedAt = stored.PostedAt
		}
		return merged
	}
}

// DeleteJob handles DELETE /api/admin/jobs/:id
func (s *Server) DeleteJob(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	ok, err := s.data.DeleteJob(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	if !ok {
		return notFound(c, "Job", id)
	}
	cache.InvalidateJobs(c.UserContext())

	return c.SendStatus(fiber.StatusNoContent)
}
