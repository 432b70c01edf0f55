// Package service implements the data service the marketplace pages read from.
//
// Every accessor takes a context and reports absence through a nil pointer or
// an empty slice, never through an error. The only error a caller sees is the
// context's own error when it is already done on entry.
package service

import (
	"context"
	"time"

	"marketplace/internal/models"
	"marketplace/internal/observability"
	"marketplace/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

const serviceName = "DataService"

// DataService is the single access point over the fixture collections.
// Construct one per process and hand it to consumers.
type DataService struct {
	store *repository.Store
	now   func() time.Time
}

// Option configures a DataService.
type Option func(*DataService)

// WithClock overrides the clock used to stamp created records.
func WithClock(now func() time.Time) Option {
	return func(s *DataService) {
		s.now = now
	}
}

// NewDataService returns a DataService over store.
func NewDataService(store *repository.Store, opts ...Option) *DataService {
	s := &DataService{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats holds record counts for the community dashboard.
type Stats struct {
	Jobs           int `json:"jobs"`
	ActiveJobs     int `json:"activeJobs"`
	Companies      int `json:"companies"`
	Developers     int `json:"developers"`
	Games          int `json:"games"`
	Users          int `json:"users"`
	Applications   int `json:"applications"`
	Tests          int `json:"tests"`
	Certifications int `json:"certifications"`
}

// Stats returns the size of every collection.
func (s *DataService) Stats(ctx context.Context) (Stats, error) {
	ctx, end, err := s.begin(ctx, "Stats")
	if err != nil {
		return Stats{}, err
	}
	defer end()

	active := s.store.Jobs.Filter(ctx, func(j models.Job) bool { return j.Status == models.JobStatusActive })
	return Stats{
		Jobs:           s.store.Jobs.Len(),
		ActiveJobs:     len(active),
		Companies:      s.store.Companies.Len(),
		Developers:     s.store.Developers.Len(),
		Games:          s.store.Games.Len(),
		Users:          s.store.Users.Len(),
		Applications:   s.store.Applications.Len(),
		Tests:          s.store.Tests.Len(),
		Certifications: s.store.Certifications.Len(),
	}, nil
}

// begin opens the span and latency timer for method. A context that is
// already done ends the span with the context error.
func (s *DataService) begin(ctx context.Context, method string) (context.Context, func(), error) {
	span, ctx := observability.NewSpan(ctx, serviceName+"."+method)
	span.AddAttributes(attribute.String("service.method", method))
	if err := ctx.Err(); err != nil {
		span.SetError(err)
		span.End()
		return ctx, nil, err
	}
	done := observability.TrackOperation(method)
	observability.LogServiceCall(ctx, serviceName, method, nil)
	return ctx, func() {
		done()
		span.End()
	}, nil
}

func found[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}
