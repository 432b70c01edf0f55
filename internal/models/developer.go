package models

import "slices"

// Rarity is the collectible tier shown on a developer card.
type Rarity string

const (
	// RarityCommon is the lowest tier
	RarityCommon Rarity = "common"
	// RarityRare tier
	RarityRare Rarity = "rare"
	// RarityEpic tier
	RarityEpic Rarity = "epic"
	// RarityLegendary is the highest tier
	RarityLegendary Rarity = "legendary"
)

// Valid reports whether r is a known rarity.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// DeveloperStats are the headline numbers on a developer card.
type DeveloperStats struct {
	Projects   int `json:"projects" yaml:"projects"`
	Awards     int `json:"awards" yaml:"awards"`
	Experience int `json:"experience" yaml:"experience"`
}

// Developer is an entry in the developer directory.
type Developer struct {
	ID             int            `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	Role           string         `json:"role" yaml:"role"`
	Image          string         `json:"image" yaml:"image"`
	Rarity         Rarity         `json:"rarity" yaml:"rarity"`
	Stats          DeveloperStats `json:"stats" yaml:"stats"`
	Skills         []string       `json:"skills" yaml:"skills"`
	Certifications []string       `json:"certifications" yaml:"certifications"`
	Projects       []string       `json:"projects" yaml:"projects"`
}

// Clone returns a copy of d that shares no slices with it.
func (d Developer) Clone() Developer {
	d.Skills = slices.Clone(d.Skills)
	d.Certifications = slices.Clone(d.Certifications)
	d.Projects = slices.Clone(d.Projects)
	return d
}
