package models

import "slices"

// ApplicationStatus tracks where a job application is in the hiring flow.
type ApplicationStatus string

const (
	// ApplicationStatusPending indicates the application has not been looked at yet
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusReviewing indicates the company is reviewing the application
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	// ApplicationStatusInterview indicates the applicant was invited to interview
	ApplicationStatusInterview ApplicationStatus = "interview"
	// ApplicationStatusAccepted indicates an offer was made
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	// ApplicationStatusRejected indicates the application was declined
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusInterview,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// TestResult is the score a user obtained on one assessment.
type TestResult struct {
	TestID int  `json:"testId" yaml:"testId"`
	Score  int  `json:"score" yaml:"score"`
	Passed bool `json:"passed" yaml:"passed"`
}

// Application links a user to a job they applied for.
// UserID and JobID are matched by value; neither is validated on write.
type Application struct {
	ID          int               `json:"id" yaml:"id"`
	UserID      int               `json:"userId" yaml:"userId"`
	JobID       int               `json:"jobId" yaml:"jobId"`
	Status      ApplicationStatus `json:"status" yaml:"status"`
	CoverLetter string            `json:"coverLetter,omitempty" yaml:"coverLetter,omitempty"`
	AppliedAt   string            `json:"appliedAt" yaml:"appliedAt"`
	TestResults []TestResult      `json:"testResults,omitempty" yaml:"testResults,omitempty"`
}

// NewApplication is the input for creating an application; the id is assigned on insert.
type NewApplication struct {
	UserID      int               `json:"userId"`
	JobID       int               `json:"jobId"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	AppliedAt   string            `json:"appliedAt,omitempty"`
	TestResults []TestResult      `json:"testResults,omitempty"`
}

func (a Application) Clone() Application {
	a.TestResults = slices.Clone(a.TestResults)
	return a
}
