// Package validation checks client-supplied records before they reach the service.
package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace/internal/models"
)

const (
	maxTitleLength       = 120
	maxCoverLetterLength = 5000
	dateLayout           = "2006-01-02"
)

// ValidateJob validates a job submitted through the admin routes.
func ValidateJob(job models.Job) error {
	title := strings.TrimSpace(job.Title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return fmt.Errorf("title must be at most %d characters", maxTitleLength)
	}
	if job.CompanyID <= 0 {
		return fmt.Errorf("companyId must be a positive integer")
	}
	if !job.Type.Valid() {
		return fmt.Errorf("type %q is not a known job type", job.Type)
	}
	switch job.Status {
	case "", models.JobStatusActive, models.JobStatusClosed, models.JobStatusDraft:
	default:
		return fmt.Errorf("status %q is not a known job status", job.Status)
	}
	for _, id := range job.RequiredTestIDs {
		if id <= 0 {
			return fmt.Errorf("requiredTestIds must contain positive integers")
		}
	}
	if job.PostedAt != "" {
		if _, err := time.Parse(dateLayout, job.PostedAt); err != nil {
			return fmt.Errorf("postedAt must be a YYYY-MM-DD date")
		}
	}
	return nil
}

// ValidateNewApplication validates an application submitted by a user.
func ValidateNewApplication(in models.NewApplication) error {
	if in.UserID <= 0 {
		return fmt.Errorf("userId must be a positive integer")
	}
	if in.JobID <= 0 {
		return fmt.Errorf("jobId must be a positive integer")
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("status %q is not a known application status", in.Status)
	}
	if utf8.RuneCountInString(in.CoverLetter) > maxCoverLetterLength {
		return fmt.Errorf("coverLetter must be at most %d characters", maxCoverLetterLength)
	}
	if in.AppliedAt != "" {
		if _, err := time.Parse(dateLayout, in.AppliedAt); err != nil {
			return fmt.Errorf("appliedAt must be a YYYY-MM-DD date")
		}
	}
	return nil
}

// ValidateApplicationStatus validates a status change request.
func ValidateApplicationStatus(status models.ApplicationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("status %q is not a known application status", status)
	}
	return nil
}
