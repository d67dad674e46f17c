package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/alexanderramin/checkpoint/internal/repository"
	"github.com/alexanderramin/checkpoint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, observers ...UseCaseObserver) (ChecklistService, *repository.SQLiteCheckRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	checks := repository.NewSQLiteCheckRepo(database)
	svc := NewChecklistService(
		checks,
		repository.NewSQLiteSubmissionRepo(database),
		testutil.NewTestUoW(database),
		observers...,
	)
	return svc, checks
}

func seedCatalogue(t *testing.T, svc ChecklistService) {
	t.Helper()
	n, err := svc.ImportChecks(context.Background(), testutil.Catalogue())
	require.NoError(t, err)
	require.Equal(t, 4, n)
}

func TestChecklistService_ListChecksInPriorityOrder(t *testing.T) {
	svc, _ := newTestService(t)
	seedCatalogue(t, svc)

	checks, err := svc.ListChecks(context.Background())
	require.NoError(t, err)
	var ids []string
	for _, c := range checks {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"aaa", "ccc", "bbb", "ddd"}, ids)
}

func TestChecklistService_AddCheckValidates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	err := svc.AddCheck(ctx, domain.Check{ID: "", Description: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.AddCheck(ctx, domain.Check{ID: "eee", Priority: 1, Description: "Selfie is live"}))
	checks, err := svc.ListChecks(ctx)
	require.NoError(t, err)
	assert.Len(t, checks, 1)
}

func TestChecklistService_RemoveCheck(t *testing.T) {
	svc, _ := newTestService(t)
	seedCatalogue(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.RemoveCheck(ctx, "ddd"))
	assert.ErrorIs(t, svc.RemoveCheck(ctx, "ddd"), repository.ErrNotFound)
}

func TestChecklistService_ImportRejectsDuplicatesWithoutWriting(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ImportChecks(ctx, []domain.Check{
		{ID: "aaa", Priority: 1, Description: "one"},
		{ID: "aaa", Priority: 2, Description: "two"},
		{ID: "", Priority: 2, Description: "three"},
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "duplicate id")
	assert.Contains(t, err.Error(), "checks[2]")

	checks, err := svc.ListChecks(ctx)
	require.NoError(t, err)
	assert.Empty(t, checks)
}

func TestChecklistService_ImportRollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	checks := repository.NewSQLiteCheckRepo(database)
	failUoW := testutil.NewFailingUoW(database, 3, fmt.Errorf("injected write failure"))
	svc := NewChecklistService(checks, repository.NewSQLiteSubmissionRepo(database), failUoW)
	ctx := context.Background()

	_, err := svc.ImportChecks(ctx, testutil.Catalogue())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected write failure")

	list, err := checks.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "no partial catalogue after rollback")
}

func TestChecklistService_RecordSubmission(t *testing.T) {
	svc, _ := newTestService(t)
	seedCatalogue(t, svc)
	ctx := context.Background()

	results := []domain.Result{testutil.Yes("aaa"), testutil.No("ccc")}
	sub, err := svc.RecordSubmission(ctx, "http", results)
	require.NoError(t, err)
	require.NotEmpty(t, sub.ID)

	got, err := svc.GetSubmission(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, results, got.Results)
	assert.Equal(t, "http", got.Origin)

	list, err := svc.ListSubmissions(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestChecklistService_RecordSubmissionValidation(t *testing.T) {
	svc, _ := newTestService(t)
	seedCatalogue(t, svc)
	ctx := context.Background()

	cases := []struct {
		name    string
		results []domain.Result
		want    string
	}{
		{"empty", nil, "at least one result"},
		{"unknown check", []domain.Result{testutil.Yes("zzz")}, "unknown check"},
		{"duplicate", []domain.Result{testutil.Yes("aaa"), testutil.No("aaa")}, "duplicate check"},
		{"bad value", []domain.Result{{CheckID: "aaa", Result: "maybe"}}, "yes or no"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordSubmission(ctx, "test", tc.results)
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	list, err := svc.ListSubmissions(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestChecklistService_RecordSubmissionIsAtomic(t *testing.T) {
	database := testutil.NewTestDB(t)
	checks := repository.NewSQLiteCheckRepo(database)
	subs := repository.NewSQLiteSubmissionRepo(database)
	ctx := context.Background()
	for _, c := range testutil.Catalogue() {
		require.NoError(t, checks.Upsert(ctx, c))
	}

	// Exec #1 inserts the submission row, #2 and #3 its results.
	failUoW := testutil.NewFailingUoW(database, 3, fmt.Errorf("injected result failure"))
	svc := NewChecklistService(checks, subs, failUoW)

	_, err := svc.RecordSubmission(ctx, "test", []domain.Result{testutil.Yes("aaa"), testutil.No("ccc")})
	require.Error(t, err)

	list, err := subs.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestChecklistService_ObserverReceivesEvents(t *testing.T) {
	var buf bytes.Buffer
	svc, _ := newTestService(t, NewLogUseCaseObserver(&buf))
	seedCatalogue(t, svc)

	_, err := svc.RecordSubmission(context.Background(), "cli", []domain.Result{testutil.Yes("zzz")})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "use_case=import-checks")
	assert.Contains(t, out, "use_case=record-submission")
	assert.Contains(t, out, "success=false")
	assert.Contains(t, out, "level=WARN")
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}
