package service

import (
	"context"

	"marketplace/internal/models"
)

// GetTests returns every assessment in fixture order.
func (s *DataService) GetTests(ctx context.Context) ([]models.Assessment, error) {
	ctx, end, err := s.begin(ctx, "GetTests")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Tests.All(ctx), nil
}

// GetTestByID returns the assessment with id, or nil.
func (s *DataService) GetTestByID(ctx context.Context, id int) (*models.Assessment, error) {
	ctx, end, err := s.begin(ctx, "GetTestByID")
	if err != nil {
		return nil, err
	}
	defer end()

	return found(s.store.Tests.Get(ctx, id)), nil
}

// GetTestsForJob resolves a job's requiredTestIds in the order the job lists
// them. Ids without a matching assessment are skipped; an unknown job yields
// an empty slice.
func (s *DataService) GetTestsForJob(ctx context.Context, jobID int) ([]models.Assessment, error) {
	ctx, end, err := s.begin(ctx, "GetTestsForJob")
	if err != nil {
		return nil, err
	}
	defer end()

	tests := []models.Assessment{}
	job, ok := s.store.Jobs.Get(ctx, jobID)
	if !ok {
		return tests, nil
	}
	for _, testID := range job.RequiredTestIDs {
		if test, ok := s.store.Tests.Get(ctx, testID); ok {
			tests = append(tests, test)
		}
	}
	return tests, nil
}

// GetCertifications returns every certification in fixture order.
func (s *DataService) GetCertifications(ctx context.Context) ([]models.Certification, error) {
	ctx, end, err := s.begin(ctx, "GetCertifications")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Certifications.All(ctx), nil
}

// GetCertificationByID returns the certification with id, or nil.
func (s *DataService) GetCertificationByID(ctx context.Context, id int) (*models.Certification, error) {
	ctx, end, err := s.begin(ctx, "GetCertificationByID")
	if err != nil {
		return nil, err
	}
	defer end()

	return found(s.store.Certifications.Get(ctx, id)), nil
}

// GetUserCertifications returns the certifications held by userID.
func (s *DataService) GetUserCertifications(ctx context.Context, userID int) ([]models.Certification, error) {
	ctx, end, err := s.begin(ctx, "GetUserCertifications")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Certifications.Filter(ctx, func(c models.Certification) bool { return c.UserID == userID }), nil
}
