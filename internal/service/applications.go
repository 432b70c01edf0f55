package service

import (
	"context"
	"log/slog"

	"marketplace/internal/models"
	"marketplace/internal/observability"
	"marketplace/internal/repository"
)

const dateLayout = "2006-01-02"

func applicationID(a models.Application) int { return a.ID }

// GetApplications returns every application in insertion order.
func (s *DataService) GetApplications(ctx context.Context) ([]models.Application, error) {
	ctx, end, err := s.begin(ctx, "GetApplications")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Applications.All(ctx), nil
}

// GetApplicationByID returns the application with id, or nil.
func (s *DataService) GetApplicationByID(ctx context.Context, id int) (*models.Application, error) {
	ctx, end, err := s.begin(ctx, "GetApplicationByID")
	if err != nil {
		return nil, err
	}
	defer end()

	return found(s.store.Applications.Get(ctx, id)), nil
}

// GetUserApplications returns the applications submitted by userID.
func (s *DataService) GetUserApplications(ctx context.Context, userID int) ([]models.Application, error) {
	ctx, end, err := s.begin(ctx, "GetUserApplications")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Applications.Filter(ctx, func(a models.Application) bool { return a.UserID == userID }), nil
}

// GetJobApplications returns the applications submitted for jobID.
func (s *DataService) GetJobApplications(ctx context.Context, jobID int) ([]models.Application, error) {
	ctx, end, err := s.begin(ctx, "GetJobApplications")
	if err != nil {
		return nil, err
	}
	defer end()

	return s.store.Applications.Filter(ctx, func(a models.Application) bool { return a.JobID == jobID }), nil
}

// CreateApplication appends a new application and returns it with its id.
// The id is max(existing ids) + 1, starting at 1 for an empty collection.
// Status defaults to pending and AppliedAt to today. UserID and JobID are
// stored as given.
func (s *DataService) CreateApplication(ctx context.Context, in models.NewApplication) (*models.Application, error) {
	ctx, end, err := s.begin(ctx, "CreateApplication")
	if err != nil {
		return nil, err
	}
	defer end()

	app := models.Application{
		UserID:      in.UserID,
		JobID:       in.JobID,
		Status:      in.Status,
		CoverLetter: in.CoverLetter,
		AppliedAt:   in.AppliedAt,
		TestResults: in.TestResults,
	}
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	if app.AppliedAt == "" {
		app.AppliedAt = s.now().UTC().Format(dateLayout)
	}

	created := s.store.Applications.Insert(ctx, func(existing []models.Application) models.Application {
		app.ID = repository.NextIntID(existing, applicationID)
		return app
	})
	return &created, nil
}

// UpdateApplicationStatus sets the status of application id. An unknown id
// is not an error: nothing changes, a warning is logged and false is returned.
func (s *DataService) UpdateApplicationStatus(ctx context.Context, id int, status models.ApplicationStatus) (bool, error) {
	ctx, end, err := s.begin(ctx, "UpdateApplicationStatus")
	if err != nil {
		return false, err
	}
	defer end()

	_, ok := s.store.Applications.Update(ctx, id, func(a *models.Application) { a.Status = status })
	if !ok {
		observability.GlobalLogger.WarnContext(ctx, "status update for unknown application",
			slog.Int("application_id", id),
			slog.String("status", string(status)),
		)
	}
	return ok, nil
}
