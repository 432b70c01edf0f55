package service

import (
	"context"

	"marketplace/internal/models"
)

// GetDevelopers returns every developer in fixture order.
func (s *DataService) GetDevelopers(ctx context.Context) ([]models.Developer, error) {
	ctx, end, err := s.begin(ctx, "GetDevelopers")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Developers.All(ctx), nil
}

// GetDeveloperByID returns the developer with id, or nil.
func (s *DataService) GetDeveloperByID(ctx context.Context, id int) (*models.Developer, error) {
	ctx, end, err := s.begin(ctx, "GetDeveloperByID")
	if err != nil {
		return nil, err
	}
	defer end()

	return found(s.store.Developers.Get(ctx, id)), nil
}

// GetDevelopersByRarity returns developers of the given rarity tier.
func (s *DataService) GetDevelopersByRarity(ctx context.Context, rarity models.Rarity) ([]models.Developer, error) {
	ctx, end, err := s.begin(ctx, "GetDevelopersByRarity")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Developers.Filter(ctx, func(d models.Developer) bool { return d.Rarity == rarity }), nil
}

// GetDevelopersBySkill returns developers listing skill, ignoring case.
func (s *DataService) GetDevelopersBySkill(ctx context.Context, skill string) ([]models.Developer, error) {
	ctx, end, err := s.begin(ctx, "GetDevelopersBySkill")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Developers.Filter(ctx, func(d models.Developer) bool { return anyEqualFold(d.Skills, skill) }), nil
}
