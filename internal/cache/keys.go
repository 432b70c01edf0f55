package cache

import (
	"context"
	"log/slog"
	"strings"

	"marketplace/internal/observability"
)

const keyPrefix = "marketplace"

// Cached resources. Writes invalidate every key under the resource.
const (
	ResourceJobs         = "jobs"
	ResourceCompanies    = "companies"
	ResourceDevelopers   = "developers"
	ResourceGames        = "games"
	ResourceApplications = "applications"
	ResourceStats        = "stats"
)

// Key builds a cache key for resource from the given parts,
// e.g. Key("jobs", "list", "type=Remote") -> "marketplace:jobs:list:type=Remote".
func Key(resource string, parts ...string) string {
	return strings.Join(append([]string{keyPrefix, resource}, parts...), ":")
}

// Invalidate deletes keys.
func Invalidate(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		observability.GlobalLogger.WarnContext(ctx, "cache invalidation failed", slog.String("error", err.Error()))
	}
}

// InvalidateResource deletes every key cached for the given resources.
func InvalidateResource(ctx context.Context, resources ...string) {
	if client == nil {
		return
	}
	for _, resource := range resources {
		var keys []string
		iter := client.Scan(ctx, 0, Key(resource)+":*", 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			observability.GlobalLogger.WarnContext(ctx, "cache scan failed",
				slog.String("resource", resource),
				slog.String("error", err.Error()),
			)
			continue
		}
		Invalidate(ctx, keys...)
	}
}

// InvalidateJobs drops cached job listings and the dashboard stats.
func InvalidateJobs(ctx context.Context) {
	InvalidateResource(ctx, ResourceJobs, ResourceCompanies, ResourceStats)
}

// InvalidateApplications drops cached application listings and the dashboard stats.
func InvalidateApplications(ctx context.Context) {
	InvalidateResource(ctx, ResourceApplications, ResourceStats)
}
