package models

import "slices"

// SocialLinks holds a company's social media profile URLs.
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	GitHub   string `json:"github,omitempty" yaml:"github,omitempty"`
	Facebook string `json:"facebook,omitempty" yaml:"facebook,omitempty"`
}

// Company represents an employer listed in the directory.
type Company struct {
	ID          int         `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Logo        string      `json:"logo" yaml:"logo"`
	Industry    string      `json:"industry" yaml:"industry"`
	Website     string      `json:"website" yaml:"website"`
	Location    string      `json:"location" yaml:"location"`
	Size        string      `json:"size" yaml:"size"`
	Founded     string      `json:"founded" yaml:"founded"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	SocialMedia SocialLinks `json:"socialMedia" yaml:"socialMedia"`
	Benefits    []string    `json:"benefits" yaml:"benefits"`
	TechStack   []string    `json:"techStack" yaml:"techStack"`
}

// Clone returns a copy of c that shares no slices with it.
func (c Company) Clone() Company {
	c.Benefits = slices.Clone(c.Benefits)
	c.TechStack = slices.Clone(c.TechStack)
	return c
}
