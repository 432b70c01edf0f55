package server

import (
	"marketplace/internal/cache"
	"marketplace/internal/models"
	"marketplace/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// StatusUpdateRequest is the body of PATCH /api/applications/:id/status.
type StatusUpdateRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

// GetApplications handles GET /api/applications
func (s *Server) GetApplications(c *fiber.Ctx) error {
	apps, err := cached(c, s, cache.ResourceApplications, s.data.GetApplications)
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(apps)
}

// GetApplication handles GET /api/applications/:id
func (s *Server) GetApplication(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	app, err := s.data.GetApplicationByID(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	if app == nil {
		return notFound(c, "Application", id)
	}
	return c.JSON(app)
}

// CreateApplication handles POST /api/applications
// @Summary Apply for a job
// @Description The id is assigned by the server; status defaults to pending.
// @Tags applications
// @Accept json
// @Produce json
// @Param application body models.NewApplication true "Application"
// @Success 201 {object} models.Application
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /applications [post]
func (s *Server) CreateApplication(c *fiber.Ctx) error {
	var in models.NewApplication
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	if err := validation.ValidateNewApplication(in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(err.Error()))
	}

	app, err := s.data.CreateApplication(c.UserContext(), in)
	if err != nil {
		return s.serviceError(c, err)
	}
	cache.InvalidateApplications(c.UserContext())

	return c.Status(fiber.StatusCreated).JSON(app)
}

// UpdateApplicationStatus handles PATCH /api/applications/:id/status
func (s *Server) UpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req StatusUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	if err := validation.ValidateApplicationStatus(req.Status); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(err.Error()))
	}

	ok, err := s.data.UpdateApplicationStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return s.serviceError(c, err)
	}
	if !ok {
		return notFound(c, "Application", id)
	}
	cache.InvalidateApplications(c.UserContext())

	app, err := s.data.GetApplicationByID(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	if app == nil {
		// deleted between the update and the read
		return notFound(c, "Application", id)
	}
	return c.JSON(app)
}
