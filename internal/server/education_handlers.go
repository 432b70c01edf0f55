package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetTests handles GET /api/tests
func (s *Server) GetTests(c *fiber.Ctx) error {
	tests, err := s.data.GetTests(c.UserContext())
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(tests)
}

// GetTest handles GET /api/tests/:id
func (s *Server) GetTest(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	test, err := s.data.GetTestByID(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	if test == nil {
		return notFound(c, "Test", id)
	}
	return c.JSON(test)
}

// GetCertifications handles GET /api/certifications
func (s *Server) GetCertifications(c *fiber.Ctx) error {
	certs, err := s.data.GetCertifications(c.UserContext())
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(certs)
}

// GetCertification handles GET /api/certifications/:id
func (s *Server) GetCertification(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	cert, err := s.data.GetCertificationByID(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	if cert == nil {
		return notFound(c, "Certification", id)
	}
	return c.JSON(cert)
}
