package models

// Assessment is a skill test a job may require. The fixture key is "tests".
type Assessment struct {
	ID           int    `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	Skill        string `json:"skill" yaml:"skill"`
	Duration     int    `json:"duration" yaml:"duration"`
	PassingScore int    `json:"passingScore" yaml:"passingScore"`
	Questions    int    `json:"questions" yaml:"questions"`
}

// Certification is a credential held by a user.
type Certification struct {
	ID            int    `json:"id" yaml:"id"`
	UserID        int    `json:"userId" yaml:"userId"`
	Name          string `json:"name" yaml:"name"`
	Issuer        string `json:"issuer" yaml:"issuer"`
	IssuedAt      string `json:"issuedAt" yaml:"issuedAt"`
	ExpiresAt     string `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
	CredentialURL string `json:"credentialUrl,omitempty" yaml:"credentialUrl,omitempty"`
}
