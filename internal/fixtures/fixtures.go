// Package fixtures loads the static data sets that stand in for a database.
// Each collection lives in its own file holding a single top-level key named
// after the collection, e.g. {"jobs": [...]}.
package fixtures

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"marketplace/internal/models"
	"marketplace/internal/observability"

	"gopkg.in/yaml.v3"
)

// Collection names double as file base names and top-level keys.
const (
	Jobs           = "jobs"
	Companies      = "companies"
	Developers     = "developers"
	Games          = "games"
	Users          = "users"
	Applications   = "applications"
	Tests          = "tests"
	Certifications = "certifications"
)

// Format selects the on-disk encoding of a fixture file.
type Format string

const (
	// FormatJSON writes .json files
	FormatJSON Format = "json"
	// FormatYAML writes .yaml files
	FormatYAML Format = "yaml"
)

//go:embed data/*.json
var embedded embed.FS

// Dataset is every collection loaded from one fixture set.
type Dataset struct {
	Jobs           []models.Job
	Companies      []models.Company
	Developers     []models.Developer
	Games          []models.Game
	Users          []models.User
	Applications   []models.Application
	Tests          []models.Assessment
	Certifications []models.Certification
}

// Default returns the fixture set bundled into the binary.
func Default() (*Dataset, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded fixtures: %w", err)
	}
	return Load(sub)
}

// LoadDir loads a fixture set from a directory on disk.
func LoadDir(dir string) (*Dataset, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("fixtures dir %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixtures dir %q is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads every known collection from fsys. A collection without a file
// is left empty.
func Load(fsys fs.FS) (*Dataset, error) {
	ds := &Dataset{}
	var err error

	if ds.Jobs, err = decodeCollection[models.Job](fsys, Jobs); err != nil {
		return nil, err
	}
	if ds.Companies, err = decodeCollection[models.Company](fsys, Companies); err != nil {
		return nil, err
	}
	if ds.Developers, err = decodeCollection[models.Developer](fsys, Developers); err != nil {
		return nil, err
	}
	if ds.Games, err = decodeCollection[models.Game](fsys, Games); err != nil {
		return nil, err
	}
	if ds.Users, err = decodeCollection[models.User](fsys, Users); err != nil {
		return nil, err
	}
	if ds.Applications, err = decodeCollection[models.Application](fsys, Applications); err != nil {
		return nil, err
	}
	if ds.Tests, err = decodeCollection[models.Assessment](fsys, Tests); err != nil {
		return nil, err
	}
	if ds.Certifications, err = decodeCollection[models.Certification](fsys, Certifications); err != nil {
		return nil, err
	}

	ds.warnDuplicateIDs()
	return ds, nil
}

func decodeCollection[T any](fsys fs.FS, name string) ([]T, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		file := name + ext
		data, err := fs.ReadFile(fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}

		doc := map[string][]T{}
		if ext == ".json" {
			err = json.Unmarshal(data, &doc)
		} else {
			err = yaml.Unmarshal(data, &doc)
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", file, err)
		}

		items, ok := doc[name]
		if !ok {
			return nil, fmt.Errorf("decode %s: missing top-level key %q", file, name)
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	}
	return []T{}, nil
}

// Write stores ds under dir, one file per collection.
func Write(dir string, ds *Dataset, format Format) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create fixtures dir: %w", err)
	}

	docs := map[string]any{
		Jobs:           ds.Jobs,
		Companies:      ds.Companies,
		Developers:     ds.Developers,
		Games:          ds.Games,
		Users:          ds.Users,
		Applications:   ds.Applications,
		Tests:          ds.Tests,
		Certifications: ds.Certifications,
	}

	for name, items := range docs {
		var (
			data []byte
			err  error
			ext  string
		)
		doc := map[string]any{name: items}
		switch format {
		case FormatYAML:
			ext = ".yaml"
			data, err = yaml.Marshal(doc)
		case FormatJSON, "":
			ext = ".json"
			data, err = json.MarshalIndent(doc, "", "  ")
		default:
			return fmt.Errorf("unknown fixture format %q", format)
		}
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name+ext), data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// Names lists the collection file names Load looks for, without extension.
func Names() []string {
	return []string{Jobs, Companies, Developers, Games, Users, Applications, Tests, Certifications}
}

// warnDuplicateIDs logs collections whose ids are not unique. Duplicates are
// kept; lookups return the first match in fixture order.
func (ds *Dataset) warnDuplicateIDs() {
	report := func(name string, dups []string) {
		for _, id := range dups {
			observability.GlobalLogger.Warn("duplicate fixture id",
				slog.String("collection", name),
				slog.String("id", id),
			)
		}
	}

	report(Jobs, DuplicateIDs(ds.Jobs, func(j models.Job) string { return strconv.Itoa(j.ID) }))
	report(Companies, DuplicateIDs(ds.Companies, func(c models.Company) string { return strconv.Itoa(c.ID) }))
	report(Developers, DuplicateIDs(ds.Developers, func(d models.Developer) string { return strconv.Itoa(d.ID) }))
	report(Games, DuplicateIDs(ds.Games, func(g models.Game) string { return g.ID }))
	report(Users, DuplicateIDs(ds.Users, func(u models.User) string { return strconv.Itoa(u.ID) }))
	report(Applications, DuplicateIDs(ds.Applications, func(a models.Application) string { return strconv.Itoa(a.ID) }))
	report(Tests, DuplicateIDs(ds.Tests, func(t models.Assessment) string { return strconv.Itoa(t.ID) }))
	report(Certifications, DuplicateIDs(ds.Certifications, func(c models.Certification) string { return strconv.Itoa(c.ID) }))
}

// DuplicateIDs returns every id that appears more than once, in fixture order.
func DuplicateIDs[T any](items []T, id func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	var dups []string
	for _, item := range items {
		key := id(item)
		if _, ok := seen[key]; ok {
			dups = append(dups, key)
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}
