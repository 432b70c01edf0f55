package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/fixtures"
	"marketplace/internal/models"
	"marketplace/internal/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, ds *fixtures.Dataset) *DataService {
	t.Helper()
	return NewDataService(repository.NewStore(ds), WithClock(func() time.Time { return fixedNow }))
}

func defaultService(t *testing.T) *DataService {
	t.Helper()
	ds, err := fixtures.Default()
	require.NoError(t, err)
	return newTestService(t, ds)
}

func TestGetJobByIDForEveryFixtureJob(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	jobs, err := svc.GetJobs(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, jobs)

	for _, j := range jobs {
		got, err := svc.GetJobByID(ctx, j.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, j.ID, got.ID)
	}

	missing, err := svc.GetJobByID(ctx, 4040)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetJobsByCompanyScenario(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fixtures.Dataset{Jobs: []models.Job{
		{ID: 1, CompanyID: 10},
		{ID: 2, CompanyID: 10},
		{ID: 3, CompanyID: 20},
	}})

	got, err := svc.GetJobsByCompany(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.Job{{ID: 1, CompanyID: 10}, {ID: 2, CompanyID: 10}}, got)

	none, err := svc.GetJobsByCompany(ctx, 30)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestGetJobsByCompanyIsSubsetOfGetJobs(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	all, err := svc.GetJobs(ctx)
	require.NoError(t, err)

	byCompany, err := svc.GetJobsByCompany(ctx, 1)
	require.NoError(t, err)

	var want []models.Job
	for _, j := range all {
		if j.CompanyID == 1 {
			want = append(want, j)
		}
	}
	assert.Equal(t, want, byCompany)
}

func TestCompanyRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	companies, err := svc.GetCompanies(ctx)
	require.NoError(t, err)

	for _, c := range companies {
		got, err := svc.GetCompanyByID(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		if diff := cmp.Diff(c, *got); diff != "" {
			t.Fatalf("company %d mismatch (-want +got):\n%s", c.ID, diff)
		}
	}
}

func TestGetJobWithCompanyHandlesDanglingCompanyID(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	joined, err := svc.GetJobWithCompany(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, joined)
	require.NotNil(t, joined.Company)
	assert.Equal(t, "Nimbus Labs", joined.Company.Name)

	// job 6 points at company 9, which does not exist
	dangling, err := svc.GetJobWithCompany(ctx, 6)
	require.NoError(t, err)
	require.NotNil(t, dangling)
	assert.Nil(t, dangling.Company)

	missing, err := svc.GetJobWithCompany(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateApplicationAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	in := models.NewApplication{UserID: 2, JobID: 3, CoverLetter: "hi"}
	first, err := svc.CreateApplication(ctx, in)
	require.NoError(t, err)
	second, err := svc.CreateApplication(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, 4, first.ID)
	assert.Equal(t, 5, second.ID)
	assert.Equal(t, models.ApplicationStatusPending, first.Status)
	assert.Equal(t, "2024-06-01", first.AppliedAt)

	mine, err := svc.GetUserApplications(ctx, 2)
	require.NoError(t, err)
	ids := make([]int, 0, len(mine))
	for _, a := range mine {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int{2, 4, 5}, ids)
}

func TestCreateApplicationOnEmptyCollectionStartsAtOne(t *testing.T) {
	svc := newTestService(t, &fixtures.Dataset{})

	app, err := svc.CreateApplication(context.Background(), models.NewApplication{UserID: 1, JobID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, app.ID)
}

func TestCreateApplicationConcurrent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &fixtures.Dataset{})

	const n = 40
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(user int) {
			defer wg.Done()
			app, err := svc.CreateApplication(ctx, models.NewApplication{UserID: user, JobID: 1})
			if err == nil {
				ids <- app.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	svc := defaultService(t)

	ok, err := svc.UpdateApplicationStatus(ctx, 2, models.ApplicationStatusInterview)
	require.NoError(t, err)
	assert.True(t, ok)

	app, err := svc.GetApplicationByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusInterview, app.Status)

	ok, err = svc.UpdateApplicationStatus(ctx, 77, models.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := svc.GetApplications(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetJobApplications(t *testing.T) {
	svc := defaultService(t)

	apps, err := svc.GetJobApplications(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, 1, apps[0].UserID)
}

func TestCanceledContextIsTheOnlyError(t *testing.T) {
	svc := defaultService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetJobs(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	job, err := svc.GetJobByID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, job)

	_, err = svc.CreateApplication(ctx, models.NewApplication{UserID: 1, JobID: 1})
	assert.ErrorIs(t, err, context.Canceled)

	apps, err := svc.GetApplications(context.Background())
	require.NoError(t, err)
	assert.Len(t, apps, 3)
}

func TestStats(t *testing.T) {
	svc := defaultService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{
		Jobs:           6,
		ActiveJobs:     4,
		Companies:      4,
		Developers:     4,
		Games:          5,
		Users:          3,
		Applications:   3,
		Tests:          3,
		Certifications: 3,
	}, stats)
}
