package server

import (
	"context"
	"strings"

	"marketplace/internal/cache"
	"marketplace/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCompanies handles GET /api/companies
// @Summary List companies
// @Description A non-empty q matches name, industry and tech stack.
// @Tags companies
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} models.Company
// @Router /companies [get]
func (s *Server) GetCompanies(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))

	companies, err := cached(c, s, cache.ResourceCompanies, func(ctx context.Context) ([]models.Company, error) {
		if q == "" {
			return s.data.GetCompanies(ctx)
		}
		return s.data.SearchCompanies(ctx, q)
	})
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(companies)
}

// GetCompany handles GET /api/companies/:id
func (s *Server) GetCompany(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	company, err := s.data.GetCompanyByID(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	if company == nil {
		return notFound(c, "Company", id)
	}
	return c.JSON(company)
}

// GetCompanyJobs handles GET /api/companies/:id/jobs
// Jobs are matched by companyId alone, so an unknown company yields an empty list.
func (s *Server) GetCompanyJobs(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	jobs, err := s.data.GetJobsByCompany(c.UserContext(), id)
	if err != nil {
		return s.serviceError(c, err)
	}
	return c.JSON(jobs)
}
