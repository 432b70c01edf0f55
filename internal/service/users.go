package service

import (
	"context"

	"marketplace/internal/models"
)

// GetUsers returns every user in fixture order.
func (s *DataService) GetUsers(ctx context.Context) ([]models.User, error) {
	ctx, end, err := s.begin(ctx, "GetUsers")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Users.All(ctx), nil
}

// GetUserByID returns the user with id, or nil.
func (s *DataService) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	ctx, end, err := s.begin(ctx, "GetUserByID")
	if err != nil {
		return nil, err
	}
	defer end()

	return found(s.store.Users.Get(ctx, id)), nil
}
