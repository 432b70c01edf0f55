package validation

import (
	"strings"
	"testing"

	"marketplace/internal/models"
)

func validJob() models.Job {
	return models.Job{
		Title:     "Backend Engineer",
		CompanyID: 1,
		Type:      models.JobTypeFullTime,
	}
}

func TestValidateJob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(j *models.Job)
		ok     bool
	}{
		{name: "valid", mutate: func(j *models.Job) {}, ok: true},
		{name: "blank title", mutate: func(j *models.Job) { j.Title = "   " }, ok: false},
		{name: "long title", mutate: func(j *models.Job) { j.Title = strings.Repeat("x", 121) }, ok: false},
		{name: "max title", mutate: func(j *models.Job) { j.Title = strings.Repeat("x", 120) }, ok: true},
		{name: "zero company", mutate: func(j *models.Job) { j.CompanyID = 0 }, ok: false},
		{name: "unknown type", mutate: func(j *models.Job) { j.Type = "Gig" }, ok: false},
		{name: "empty type", mutate: func(j *models.Job) { j.Type = "" }, ok: false},
		{name: "draft status", mutate: func(j *models.Job) { j.Status = models.JobStatusDraft }, ok: true},
		{name: "unknown status", mutate: func(j *models.Job) { j.Status = "archived" }, ok: false},
		{name: "bad test id", mutate: func(j *models.Job) { j.RequiredTestIDs = []int{1, 0} }, ok: false},
		{name: "posted date", mutate: func(j *models.Job) { j.PostedAt = "2024-05-01" }, ok: true},
		{name: "bad posted date", mutate: func(j *models.Job) { j.PostedAt = "May 1st" }, ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			j := validJob()
			tc.mutate(&j)
			err := ValidateJob(j)
			if tc.ok && err != nil {
				t.Fatalf("expected valid job, got error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected invalid job, got nil error")
			}
		})
	}
}

func TestValidateNewApplication(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   models.NewApplication
		ok   bool
	}{
		{name: "minimal", in: models.NewApplication{UserID: 1, JobID: 2}, ok: true},
		{name: "explicit status", in: models.NewApplication{UserID: 1, JobID: 2, Status: models.ApplicationStatusReviewing}, ok: true},
		{name: "missing user", in: models.NewApplication{JobID: 2}, ok: false},
		{name: "negative job", in: models.NewApplication{UserID: 1, JobID: -1}, ok: false},
		{name: "unknown status", in: models.NewApplication{UserID: 1, JobID: 2, Status: "hired"}, ok: false},
		{name: "long cover letter", in: models.NewApplication{UserID: 1, JobID: 2, CoverLetter: strings.Repeat("a", 5001)}, ok: false},
		{name: "bad applied date", in: models.NewApplication{UserID: 1, JobID: 2, AppliedAt: "yesterday"}, ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNewApplication(tc.in)
			if tc.ok && err != nil {
				t.Fatalf("expected valid application, got error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected invalid application, got nil error")
			}
		})
	}
}

func TestValidateApplicationStatus(t *testing.T) {
	t.Parallel()

	if err := ValidateApplicationStatus(models.ApplicationStatusAccepted); err != nil {
		t.Fatalf("accepted should be valid: %v", err)
	}
	if err := ValidateApplicationStatus(""); err == nil {
		t.Fatal("empty status should be rejected")
	}
}
