// Command seed writes a generated fixture set to disk.
package main

import (
	"flag"
	"log"
	"os"

	"marketplace/internal/fixtures"
	"marketplace/internal/observability"
	"marketplace/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()

	out := flag.String("out", "fixtures", "Directory to write fixture files into")
	format := flag.String("format", string(fixtures.FormatJSON), "Output format: json or yaml")
	numJobs := flag.Int("jobs", defaults.Jobs, "Number of jobs to create")
	numCompanies := flag.Int("companies", defaults.Companies, "Number of companies to create")
	numGames := flag.Int("games", defaults.Games, "Number of games to create")
	numDevelopers := flag.Int("developers", defaults.Developers, "Number of developers to create")
	numUsers := flag.Int("users", defaults.Users, "Number of users to create")
	numTests := flag.Int("tests", defaults.Tests, "Number of skill tests to create")
	numApplications := flag.Int("applications", defaults.Applications, "Number of applications to create")
	numCertifications := flag.Int("certifications", defaults.Certifications, "Number of certifications to create")
	seedValue := flag.Int64("seed", 0, "Random seed (0 picks a random one)")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	observability.ConfigureLogging(os.Stderr, "development", level)

	f := fixtures.Format(*format)
	if f != fixtures.FormatJSON && f != fixtures.FormatYAML {
		log.Fatalf("Unknown format %q (want json or yaml)", *format)
	}

	ds := seed.Generate(seed.Options{
		Companies:      *numCompanies,
		Jobs:           *numJobs,
		Developers:     *numDevelopers,
		Games:          *numGames,
		Users:          *numUsers,
		Tests:          *numTests,
		Applications:   *numApplications,
		Certifications: *numCertifications,
		Seed:           *seedValue,
	})

	if err := fixtures.Write(*out, ds, f); err != nil {
		log.Fatalf("Failed to write fixtures: %v", err)
	}

	log.Printf("Wrote %d jobs, %d companies, %d games, %d developers, %d users to %s (%s)",
		len(ds.Jobs), len(ds.Companies), len(ds.Games), len(ds.Developers), len(ds.Users), *out, f)
}
