package service

import (
	"context"
	"sync"
	"testing"

	"marketplace/internal/fixtures"
	"marketplace/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobIDs(jobs []models.Job) []int {
	ids := make([]int, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func TestListJobs(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	tests := []struct {
		name   string
		filter JobFilter
		want   []int
		total  int
		limit  int
	}{
		{name: "defaults", filter: JobFilter{}, want: []int{1, 2, 3, 4, 5, 6}, total: 6, limit: DefaultPageLimit},
		{name: "query matches skills", filter: JobFilter{Query: "go"}, want: []int{1, 6}, total: 2, limit: DefaultPageLimit},
		{name: "type ignores case", filter: JobFilter{Type: "full-time"}, want: []int{1, 3, 6}, total: 3, limit: DefaultPageLimit},
		{name: "location substring", filter: JobFilter{Location: "remote"}, want: []int{2}, total: 1, limit: DefaultPageLimit},
		{name: "company", filter: JobFilter{CompanyID: 1}, want: []int{1, 2}, total: 2, limit: DefaultPageLimit},
		{name: "status", filter: JobFilter{Status: models.JobStatusClosed}, want: []int{4}, total: 1, limit: DefaultPageLimit},
		{name: "page", filter: JobFilter{Limit: 2, Offset: 4}, want: []int{5, 6}, total: 6, limit: 2},
		{name: "limit clamped", filter: JobFilter{Limit: 500}, want: []int{1, 2, 3, 4, 5, 6}, total: 6, limit: MaxPageLimit},
		{name: "negative offset", filter: JobFilter{Limit: 1, Offset: -3}, want: []int{1}, total: 6, limit: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.ListJobs(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, jobIDs(page.Items))
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.limit, page.Limit)
		})
	}
}

func TestJobCRUD(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	created, err := svc.CreateJob(ctx, models.Job{ID: 99, Title: "Platform Engineer", CompanyID: 2, Type: models.JobTypeContract})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, models.JobStatusActive, created.Status)
	assert.Equal(t, "2024-06-01", created.PostedAt)

	created.Title = "Staff Platform Engineer"
	ok, err := svc.UpdateJob(ctx, *created)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.GetJobByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Staff Platform Engineer", got.Title)

	ok, err = svc.UpdateJob(ctx, models.Job{ID: 1234})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.DeleteJob(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.DeleteJob(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	gone, err := svc.GetJobByID(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCreateJobOnEmptyStore(t *testing.T) {
	svc := newTestService(t, &fixtures.Dataset{})

	job, err := svc.CreateJob(context.Background(), models.Job{Title: "First", Status: models.JobStatusDraft})
	require.NoError(t, err)
	assert.Equal(t, 1, job.ID)
	assert.Equal(t, models.JobStatusDraft, job.Status)
}

func TestSearchCompanies(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	byStack, err := svc.SearchCompanies(ctx, "python")
	require.NoError(t, err)
	require.Len(t, byStack, 2)
	assert.Equal(t, 2, byStack[0].ID)
	assert.Equal(t, 4, byStack[1].ID)

	byIndustry, err := svc.SearchCompanies(ctx, "fintech")
	require.NoError(t, err)
	require.Len(t, byIndustry, 1)
	assert.Equal(t, "Ledgerly", byIndustry[0].Name)

	all, err := svc.SearchCompanies(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestDevelopers(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	legendary, err := svc.GetDevelopersByRarity(ctx, models.RarityLegendary)
	require.NoError(t, err)
	require.Len(t, legendary, 1)
	assert.Equal(t, "Ada Moreno", legendary[0].Name)

	gophers, err := svc.GetDevelopersBySkill(ctx, "go")
	require.NoError(t, err)
	require.Len(t, gophers, 2)
	assert.Equal(t, 1, gophers[0].ID)
	assert.Equal(t, 3, gophers[1].ID)

	dev, err := svc.GetDeveloperByID(ctx, 4)
	require.NoError(t, err)
	require.NotNil(t, dev)
	assert.Equal(t, models.RarityCommon, dev.Rarity)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	users, err := svc.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	u, err := svc.GetUserByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Luis Ortega", u.Name)

	missing, err := svc.GetUserByID(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetTestsForJob(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	tests, err := svc.GetTestsForJob(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tests, 2)
	assert.Equal(t, "Go Fundamentals", tests[0].Title)
	assert.Equal(t, "SQL Essentials", tests[1].Title)

	// job 6 requires test 99, which does not exist
	partial, err := svc.GetTestsForJob(ctx, 6)
	require.NoError(t, err)
	require.Len(t, partial, 1)
	assert.Equal(t, 1, partial[0].ID)

	none, err := svc.GetTestsForJob(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	unknown, err := svc.GetTestsForJob(ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestCertifications(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	mine, err := svc.GetUserCertifications(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, 1, mine[0].ID)
	assert.Equal(t, 3, mine[1].ID)

	c, err := svc.GetCertificationByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, 2, c.UserID)

	missing, err := svc.GetCertificationByID(ctx, 9)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMergeJobSeesStoredRecord(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	got, err := svc.MergeJob(ctx, 4, func(stored models.Job) models.Job {
		assert.Equal(t, models.JobStatusClosed, stored.Status)
		stored.Title = "Reopened"
		stored.ID = 400
		return stored
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 4, got.ID)
	assert.Equal(t, "Reopened", got.Title)
	assert.Equal(t, models.JobStatusClosed, got.Status)

	missing, err := svc.MergeJob(ctx, 404, func(stored models.Job) models.Job { return stored })
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestConcurrentMergeJobLosesNoWrites(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fixtures.Dataset{Jobs: []models.Job{{ID: 1, Title: "Counter", Benefits: []string{}}}})

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.MergeJob(ctx, 1, func(stored models.Job) models.Job {
				stored.Benefits = append(stored.Benefits, "perk")
				return stored
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := svc.GetJobByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Benefits, writers)
}
