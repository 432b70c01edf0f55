package models

import "slices"

// Requirements describes one tier of a game's system requirements.
type Requirements struct {
	OS        string `json:"os" yaml:"os"`
	Processor string `json:"processor" yaml:"processor"`
	Memory    string `json:"memory" yaml:"memory"`
	Graphics  string `json:"graphics" yaml:"graphics"`
	Storage   string `json:"storage" yaml:"storage"`
}

// SystemRequirements holds the minimum and recommended tiers.
type SystemRequirements struct {
	Minimum     Requirements `json:"minimum" yaml:"minimum"`
	Recommended Requirements `json:"recommended" yaml:"recommended"`
}

// Game is an entry in the game catalog.
//
// ID is a string, unlike every other collection. Price and PlayerCount are
// free text ("Free to Play", "1.2M"); see the normalize package for how they
// are interpreted.
type Game struct {
	ID                 string             `json:"id" yaml:"id"`
	Title              string             `json:"title" yaml:"title"`
	Image              string             `json:"image" yaml:"image"`
	Genres             []string           `json:"genres" yaml:"genres"`
	Platforms          []string           `json:"platforms" yaml:"platforms"`
	Price              string             `json:"price" yaml:"price"`
	Rating             float64            `json:"rating" yaml:"rating"`
	PlayerCount        string             `json:"playerCount" yaml:"playerCount"`
	ReleaseDate        string             `json:"releaseDate" yaml:"releaseDate"`
	Developer          string             `json:"developer" yaml:"developer"`
	Publisher          string             `json:"publisher" yaml:"publisher"`
	LastPlayed         string             `json:"lastPlayed,omitempty" yaml:"lastPlayed,omitempty"`
	KickstartID        string             `json:"kickstartId,omitempty" yaml:"kickstartId,omitempty"`
	SystemRequirements SystemRequirements `json:"systemRequirements" yaml:"systemRequirements"`
}

// Clone returns a copy of g that shares no slices with it.
func (g Game) Clone() Game {
	g.Genres = slices.Clone(g.Genres)
	g.Platforms = slices.Clone(g.Platforms)
	return g
}
