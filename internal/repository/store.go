package repository

import (
	"marketplace/internal/fixtures"
	"marketplace/internal/models"
)

// Store groups one collection per entity. It is built once from a fixture
// set and shared by everything that serves requests.
type Store struct {
	Jobs           *Collection[models.Job, int]
	Companies      *Collection[models.Company, int]
	Developers     *Collection[models.Developer, int]
	Games          *Collection[models.Game, string]
	Users          *Collection[models.User, int]
	Applications   *Collection[models.Application, int]
	Tests          *Collection[models.Assessment, int]
	Certifications *Collection[models.Certification, int]
}

// NewStore copies ds into fresh collections. Later writes never touch ds
// and records read back never alias the store.
func NewStore(ds *fixtures.Dataset) *Store {
	if ds == nil {
		ds = &fixtures.Dataset{}
	}
	return &Store{
		Jobs:           NewCollection(fixtures.Jobs, ds.Jobs, func(j models.Job) int { return j.ID }, WithClone(models.Job.Clone)),
		Companies:      NewCollection(fixtures.Companies, ds.Companies, func(c models.Company) int { return c.ID }, WithClone(models.Company.Clone)),
		Developers:     NewCollection(fixtures.Developers, ds.Developers, func(d models.Developer) int { return d.ID }, WithClone(models.Developer.Clone)),
		Games:          NewCollection(fixtures.Games, ds.Games, func(g models.Game) string { return g.ID }, WithClone(models.Game.Clone)),
		Users:          NewCollection(fixtures.Users, ds.Users, func(u models.User) int { return u.ID }, WithClone(models.User.Clone)),
		Applications:   NewCollection(fixtures.Applications, ds.Applications, func(a models.Application) int { return a.ID }, WithClone(models.Application.Clone)),
		Tests:          NewCollection(fixtures.Tests, ds.Tests, func(t models.Assessment) int { return t.ID }),
		Certifications: NewCollection(fixtures.Certifications, ds.Certifications, func(c models.Certification) int { return c.ID }),
	}
}
