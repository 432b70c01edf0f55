// Package seed generates fake fixture sets for development and load testing.
package seed

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"marketplace/internal/fixtures"
	"marketplace/internal/models"
	"marketplace/internal/normalize"

	"github.com/brianvoe/gofakeit/v6"
)

// Options controls how many records of each kind Generate produces.
type Options struct {
	Companies      int
	Jobs           int
	Developers     int
	Games          int
	Users          int
	Tests          int
	Applications   int
	Certifications int
	// Seed makes the output reproducible. Zero picks a random seed.
	Seed int64
	// Now anchors generated dates. Zero means time.Now().
	Now time.Time
}

// DefaultOptions is a small but complete fixture set.
func DefaultOptions() Options {
	return Options{
		Companies:      8,
		Jobs:           25,
		Developers:     12,
		Games:          15,
		Users:          10,
		Tests:          6,
		Applications:   20,
		Certifications: 10,
	}
}

var (
	industries  = []string{"Cloud Infrastructure", "Game Development", "Fintech", "Education", "Healthcare", "E-commerce", "Security"}
	sizes       = []string{"1-10", "11-50", "51-200", "201-500", "500+"}
	experiences = []string{"Entry level", "1+ years", "2+ years", "3+ years", "5+ years", "8+ years"}
	jobTypes    = []models.JobType{models.JobTypeFullTime, models.JobTypePartTime, models.JobTypeContract, models.JobTypeInternship, models.JobTypeRemote}
	jobStatuses = []models.JobStatus{models.JobStatusActive, models.JobStatusActive, models.JobStatusActive, models.JobStatusClosed, models.JobStatusDraft}
	rarities    = []models.Rarity{models.RarityCommon, models.RarityCommon, models.RarityRare, models.RarityRare, models.RarityEpic, models.RarityLegendary}
	genres      = []string{"Action", "Adventure", "RPG", "Strategy", "Simulation", "Racing", "Puzzle", "MOBA", "Co-op", "Casual"}
	platforms   = []string{"PC", "PlayStation 5", "Xbox Series X", "Switch", "Mobile"}
	appStatuses = []models.ApplicationStatus{
		models.ApplicationStatusPending, models.ApplicationStatusReviewing, models.ApplicationStatusInterview,
		models.ApplicationStatusAccepted, models.ApplicationStatusRejected,
	}
	issuers = []string{"Cloud Native Foundation", "Linux Institute", "DataCamp", "AWS", "Google Cloud"}
)

// Factory builds fake domain records.
type Factory struct {
	faker *gofakeit.Faker
	now   time.Time
}

// NewFactory creates a Factory. A zero seed gives a different data set on every run.
func NewFactory(seed int64, now time.Time) *Factory {
	if now.IsZero() {
		now = time.Now()
	}
	return &Factory{faker: gofakeit.New(seed), now: now.UTC()}
}

// Generate builds a complete fixture set. References between collections
// (job to company, application to user and job) point at generated records.
func Generate(opts Options) *fixtures.Dataset {
	f := NewFactory(opts.Seed, opts.Now)
	ds := &fixtures.Dataset{
		Companies:      make([]models.Company, 0, opts.Companies),
		Jobs:           make([]models.Job, 0, opts.Jobs),
		Developers:     make([]models.Developer, 0, opts.Developers),
		Games:          make([]models.Game, 0, opts.Games),
		Users:          make([]models.User, 0, opts.Users),
		Tests:          make([]models.Assessment, 0, opts.Tests),
		Applications:   make([]models.Application, 0, opts.Applications),
		Certifications: make([]models.Certification, 0, opts.Certifications),
	}

	for i := 1; i <= opts.Companies; i++ {
		ds.Companies = append(ds.Companies, f.BuildCompany(i))
	}
	for i := 1; i <= opts.Tests; i++ {
		ds.Tests = append(ds.Tests, f.BuildAssessment(i))
	}
	for i := 1; i <= opts.Jobs; i++ {
		ds.Jobs = append(ds.Jobs, f.BuildJob(i, f.pickID(opts.Companies), f.pickIDs(opts.Tests, 2)))
	}
	for i := 1; i <= opts.Developers; i++ {
		ds.Developers = append(ds.Developers, f.BuildDeveloper(i))
	}
	for i := 1; i <= opts.Games; i++ {
		ds.Games = append(ds.Games, f.BuildGame(i))
	}
	for i := 1; i <= opts.Users; i++ {
		ds.Users = append(ds.Users, f.BuildUser(i))
	}
	if opts.Users > 0 && opts.Jobs > 0 {
		for i := 1; i <= opts.Applications; i++ {
			ds.Applications = append(ds.Applications, f.BuildApplication(i, f.pickID(opts.Users), f.pickID(opts.Jobs)))
		}
	}
	if opts.Users > 0 {
		for i := 1; i <= opts.Certifications; i++ {
			ds.Certifications = append(ds.Certifications, f.BuildCertification(i, f.pickID(opts.Users)))
		}
	}

	slog.Debug("generated fixture set",
		slog.Int("companies", len(ds.Companies)),
		slog.Int("jobs", len(ds.Jobs)),
		slog.Int("games", len(ds.Games)),
		slog.Int("applications", len(ds.Applications)),
	)
	return ds
}

// pickID returns a random id in [1, n], or 0 when n is zero.
func (f *Factory) pickID(n int) int {
	if n <= 0 {
		return 0
	}
	return f.faker.IntRange(1, n)
}

// pickIDs returns up to max distinct ids in [1, n].
func (f *Factory) pickIDs(n, max int) []int {
	ids := []int{}
	if n <= 0 {
		return ids
	}
	count := f.faker.IntRange(0, max)
	seen := map[int]bool{}
	for len(ids) < count && len(seen) < n {
		id := f.pickID(n)
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func (f *Factory) words(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.faker.Sentence(f.faker.IntRange(3, 7)))
	}
	return out
}

func (f *Factory) skills(n int) []string {
	seen := map[string]bool{}
	out := make([]string, 0, n)
	for i := 0; i < n*3 && len(out) < n; i++ {
		s := f.faker.ProgrammingLanguage()
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func (f *Factory) pickStrings(from []string, min, max int) []string {
	n := f.faker.IntRange(min, max)
	out := make([]string, 0, n)
	seen := map[string]bool{}
	for i := 0; i < n*3 && len(out) < n; i++ {
		s := f.faker.RandomString(from)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func (f *Factory) pastDate(maxDays int) time.Time {
	return f.faker.DateRange(f.now.AddDate(0, 0, -maxDays), f.now)
}

// BuildCompany constructs a company with the given id.
func (f *Factory) BuildCompany(id int, overrides ...func(*models.Company)) models.Company {
	name := f.faker.Company()
	slug := strings.ToLower(strings.ReplaceAll(f.faker.Username(), " ", ""))
	c := models.Company{
		ID:          id,
		Name:        name,
		Logo:        fmt.Sprintf("https://picsum.photos/seed/company-%d/200/200", id),
		Industry:    f.faker.RandomString(industries),
		Website:     f.faker.URL(),
		Location:    f.faker.City() + ", " + f.faker.StateAbr(),
		Size:        f.faker.RandomString(sizes),
		Founded:     fmt.Sprintf("%d", f.faker.IntRange(1990, f.now.Year())),
		Description: f.faker.Paragraph(1, 2, 12, " "),
		SocialMedia: models.SocialLinks{
			LinkedIn: "https://linkedin.com/company/" + slug,
			GitHub:   "https://github.com/" + slug,
		},
		Benefits:  f.words(f.faker.IntRange(2, 4)),
		TechStack: f.skills(f.faker.IntRange(2, 5)),
	}
	for _, override := range overrides {
		override(&c)
	}
	return c
}

// BuildJob constructs a job posted by companyID that requires testIDs.
func (f *Factory) BuildJob(id, companyID int, testIDs []int, overrides ...func(*models.Job)) models.Job {
	low := f.faker.IntRange(50, 150)
	j := models.Job{
		ID:               id,
		Title:            f.faker.JobTitle(),
		CompanyID:        companyID,
		Location:         f.faker.City() + ", " + f.faker.StateAbr(),
		Type:             jobTypes[f.faker.IntRange(0, len(jobTypes)-1)],
		Experience:       f.faker.RandomString(experiences),
		Salary:           fmt.Sprintf("$%dk - $%dk", low, low+f.faker.IntRange(10, 60)),
		Description:      f.faker.Paragraph(1, 3, 12, " "),
		Requirements:     f.words(f.faker.IntRange(2, 4)),
		Responsibilities: f.words(f.faker.IntRange(2, 4)),
		Skills:           f.skills(f.faker.IntRange(2, 4)),
		Benefits:         f.words(f.faker.IntRange(1, 3)),
		RequiredTestIDs:  testIDs,
		Status:           jobStatuses[f.faker.IntRange(0, len(jobStatuses)-1)],
		PostedAt:         f.pastDate(60).Format("2006-01-02"),
	}
	for _, override := range overrides {
		override(&j)
	}
	return j
}

// BuildDeveloper constructs a developer card.
func (f *Factory) BuildDeveloper(id int, overrides ...func(*models.Developer)) models.Developer {
	d := models.Developer{
		ID:     id,
		Name:   f.faker.Name(),
		Role:   f.faker.JobTitle(),
		Image:  fmt.Sprintf("https://i.pravatar.cc/300?u=dev-%d", id),
		Rarity: rarities[f.faker.IntRange(0, len(rarities)-1)],
		Stats: models.DeveloperStats{
			Projects:   f.faker.IntRange(1, 60),
			Awards:     f.faker.IntRange(0, 12),
			Experience: f.faker.IntRange(1, 20),
		},
		Skills:         f.skills(f.faker.IntRange(2, 5)),
		Certifications: []string{},
		Projects:       []string{f.faker.AppName(), f.faker.AppName()},
	}
	for _, override := range overrides {
		override(&d)
	}
	return d
}

// playerCount renders n the way store listings do ("1.2M", "85K", "300").
func playerCount(n int) string {
	switch {
	case n >= 1_000_000:
		return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(n)/1_000_000), ".0") + "M"
	case n >= 1_000:
		return fmt.Sprintf("%dK", n/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// BuildGame constructs a game. Roughly one in four is free to play and some
// have never been played.
func (f *Factory) BuildGame(id int, overrides ...func(*models.Game)) models.Game {
	price := normalize.PriceFree
	if f.faker.IntRange(1, 4) > 1 {
		price = fmt.Sprintf("$%.2f", f.faker.Float64Range(4.99, 69.99))
	}
	lastPlayed := ""
	if f.faker.IntRange(1, 5) > 1 {
		lastPlayed = f.pastDate(90).Format(time.RFC3339)
	}
	studio := f.faker.Company()

	g := models.Game{
		ID:          fmt.Sprintf("%d", id),
		Title:       titleCase(f.faker.Adjective() + " " + f.faker.Noun()),
		Image:       fmt.Sprintf("https://picsum.photos/seed/game-%d/600/400", id),
		Genres:      f.pickStrings(genres, 1, 3),
		Platforms:   f.pickStrings(platforms, 1, 3),
		Price:       price,
		Rating:      float64(f.faker.IntRange(50, 99)) / 10,
		PlayerCount: playerCount(f.faker.IntRange(100, 5_000_000)),
		ReleaseDate: f.pastDate(3650).Format("2006-01-02"),
		Developer:   studio,
		Publisher:   studio,
		LastPlayed:  lastPlayed,
		SystemRequirements: models.SystemRequirements{
			Minimum: models.Requirements{
				OS: "Windows 10", Processor: "Quad-core 2.5 GHz", Memory: "8 GB RAM",
				Graphics: "GTX 1050", Storage: fmt.Sprintf("%d GB", f.faker.IntRange(10, 80)),
			},
			Recommended: models.Requirements{
				OS: "Windows 11", Processor: "Octa-core 3.5 GHz", Memory: "16 GB RAM",
				Graphics: "RTX 3060", Storage: fmt.Sprintf("%d GB SSD", f.faker.IntRange(20, 120)),
			},
		},
	}
	for _, override := range overrides {
		override(&g)
	}
	return g
}

// BuildUser constructs a user profile.
func (f *Factory) BuildUser(id int, overrides ...func(*models.User)) models.User {
	u := models.User{
		ID:     id,
		Name:   f.faker.Name(),
		Email:  f.faker.Email(),
		Role:   f.faker.JobTitle(),
		Avatar: fmt.Sprintf("https://i.pravatar.cc/150?u=user-%d", id),
		Skills: f.skills(f.faker.IntRange(1, 4)),
	}
	for _, override := range overrides {
		override(&u)
	}
	return u
}

// BuildAssessment constructs a skill test.
func (f *Factory) BuildAssessment(id int, overrides ...func(*models.Assessment)) models.Assessment {
	skill := f.faker.ProgrammingLanguage()
	a := models.Assessment{
		ID:           id,
		Title:        skill + " Fundamentals",
		Description:  f.faker.Sentence(12),
		Skill:        skill,
		Duration:     f.faker.RandomInt([]int{20, 30, 45, 60}),
		PassingScore: f.faker.IntRange(60, 85),
		Questions:    f.faker.IntRange(10, 40),
	}
	for _, override := range overrides {
		override(&a)
	}
	return a
}

// BuildApplication constructs an application from userID to jobID.
func (f *Factory) BuildApplication(id, userID, jobID int, overrides ...func(*models.Application)) models.Application {
	a := models.Application{
		ID:          id,
		UserID:      userID,
		JobID:       jobID,
		Status:      appStatuses[f.faker.IntRange(0, len(appStatuses)-1)],
		CoverLetter: f.faker.Paragraph(1, 3, 10, " "),
		AppliedAt:   f.pastDate(30).Format("2006-01-02"),
	}
	for _, override := range overrides {
		override(&a)
	}
	return a
}

// BuildCertification constructs a certification held by userID.
func (f *Factory) BuildCertification(id, userID int, overrides ...func(*models.Certification)) models.Certification {
	issued := f.pastDate(720)
	c := models.Certification{
		ID:            id,
		UserID:        userID,
		Name:          f.faker.ProgrammingLanguage() + " Professional",
		Issuer:        f.faker.RandomString(issuers),
		IssuedAt:      issued.Format("2006-01-02"),
		ExpiresAt:     issued.AddDate(2, 0, 0).Format("2006-01-02"),
		CredentialURL: "https://credentials.example.com/" + f.faker.UUID(),
	}
	for _, override := range overrides {
		override(&c)
	}
	return c
}
