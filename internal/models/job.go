// Package models contains data structures for the marketplace's domain models.
package models

import "slices"

// JobType is the employment arrangement of a job posting.
type JobType string

const (
	// JobTypeFullTime is a permanent full-time position
	JobTypeFullTime JobType = "Full-time"
	// JobTypePartTime is a permanent part-time position
	JobTypePartTime JobType = "Part-time"
	// JobTypeContract is a fixed-term contract
	JobTypeContract JobType = "Contract"
	// JobTypeInternship is an internship
	JobTypeInternship JobType = "Internship"
	// JobTypeRemote is a fully remote position
	JobTypeRemote JobType = "Remote"
)

// Valid reports whether t is one of the known job types.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}

// JobStatus is the publication state of a job posting.
type JobStatus string

const (
	// JobStatusActive indicates the job is open for applications
	JobStatusActive JobStatus = "active"
	// JobStatusClosed indicates the job no longer accepts applications
	JobStatusClosed JobStatus = "closed"
	// JobStatusDraft indicates the job has not been published yet
	JobStatusDraft JobStatus = "draft"
)

// Job represents a job posting on the board.
// CompanyID references Company.ID by convention only; it is never checked.
type Job struct {
	ID               int       `json:"id" yaml:"id"`
	Title            string    `json:"title" yaml:"title"`
	CompanyID        int       `json:"companyId" yaml:"companyId"`
	Location         string    `json:"location" yaml:"location"`
	Type             JobType   `json:"type" yaml:"type"`
	Experience       string    `json:"experience" yaml:"experience"`
	Salary           string    `json:"salary" yaml:"salary"`
	Description      string    `json:"description" yaml:"description"`
	Requirements     []string  `json:"requirements" yaml:"requirements"`
	Responsibilities []string  `json:"responsibilities" yaml:"responsibilities"`
	Skills           []string  `json:"skills" yaml:"skills"`
	Benefits         []string  `json:"benefits" yaml:"benefits"`
	RequiredTestIDs  []int     `json:"requiredTestIds" yaml:"requiredTestIds"`
	Status           JobStatus `json:"status" yaml:"status"`
	PostedAt         string    `json:"postedAt" yaml:"postedAt"`
}

// JobWithCompany pairs a job with its company. Company is nil when the
// job's companyId does not resolve.
type JobWithCompany struct {
	Job
	Company *Company `json:"company"`
}

// Clone returns a copy of j that shares no slices with it.
func (j Job) Clone() Job {
	j.Requirements = slices.Clone(j.Requirements)
	j.Responsibilities = slices.Clone(j.Responsibilities)
	j.Skills = slices.Clone(j.Skills)
	j.Benefits = slices.Clone(j.Benefits)
	j.RequiredTestIDs = slices.Clone(j.RequiredTestIDs)
	return j
}
