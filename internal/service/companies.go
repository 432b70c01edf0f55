package service

import (
	"context"
	"strings"

	"marketplace/internal/models"
)

// GetCompanies returns every company in fixture order.
func (s *DataService) GetCompanies(ctx context.Context) ([]models.Company, error) {
	ctx, end, err := s.begin(ctx, "GetCompanies")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Companies.All(ctx), nil
}

// GetCompanyByID returns the company with id, or nil.
func (s *DataService) GetCompanyByID(ctx context.Context, id int) (*models.Company, error) {
	ctx, end, err := s.begin(ctx, "GetCompanyByID")
	if err != nil {
		return nil, err
	}
	defer end()

	return found(s.store.Companies.Get(ctx, id)), nil
}

// SearchCompanies matches query against name, industry and tech stack.
// A blank query returns every company.
func (s *DataService) SearchCompanies(ctx context.Context, query string) ([]models.Company, error) {
	ctx, end, err := s.begin(ctx, "SearchCompanies")
	if err != nil {
		return nil, err
	}
	defer end()

	q := strings.TrimSpace(query)
	return s.store.Companies.Filter(ctx, func(c models.Company) bool {
		return q == "" || containsFold(c.Name, q) || containsFold(c.Industry, q) || anyContainsFold(c.TechStack, q)
	}), nil
}
