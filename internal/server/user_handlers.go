package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.data.GetUsers(c.UserContext())
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(users)
}

// GetUser handles GET /api/users/:id
// @Summary Get user profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.data.GetUserByID(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	if user == nil {
		return notFound(c, "User", id)
	}
	return c.JSON(user)
}

// GetUserApplications handles GET /api/users/:id/applications
func (s *Server) GetUserApplications(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	apps, err := s.data.GetUserApplications(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(apps)
}

// GetUserCertifications handles GET /api/users/:id/certifications
func (s *Server) GetUserCertifications(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	certs, err := s.data.GetUserCertifications(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(certs)
}
