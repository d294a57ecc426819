package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/andreseduardop/listy/internal/domain"
	"github.com/andreseduardop/listy/internal/repository"
	"github.com/andreseduardop/listy/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteListRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteListRepo(database)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	l := &domain.List{
		ID:        uuid.New().String(),
		Kind:      domain.KindSchedule,
		Title:     "Morning",
		EndTime:   domain.NewClock(9, 0),
		EndSet:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, l))

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KindSchedule, got.Kind)
	assert.Equal(t, "Morning", got.Title)
	assert.Equal(t, domain.NewClock(9, 0), got.EndTime)
	assert.True(t, got.EndSet)
}

func TestSQLiteListRepo_EndTimeRoundTrips(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteListRepo(database)
	ctx := context.Background()

	// Never-set stays unset.
	unset := testutil.MakeList(t, database, domain.KindSchedule, "Blank")
	got, err := repo.GetByID(ctx, unset.ID)
	require.NoError(t, err)
	assert.False(t, got.EndSet)

	// A deliberate midnight end is not the same as no end.
	midnight := testutil.MakeList(t, database, domain.KindSchedule, "Night")
	midnight.EndTime = domain.NewClock(0, 0)
	midnight.EndSet = true
	midnight.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, midnight))

	got, err = repo.GetByID(ctx, midnight.ID)
	require.NoError(t, err)
	assert.True(t, got.EndSet)
	assert.Equal(t, domain.NewClock(0, 0), got.EndTime)
}

func TestSQLiteListRepo_GetMissingReturnsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteListRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLiteListRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteListRepo(database)
	ctx := context.Background()

	l := testutil.MakeList(t, database, domain.KindSchedule, "Plan")
	l.Title = "Revised"
	l.EndTime = domain.NewClock(17, 30)
	l.EndSet = true
	l.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, l))

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Revised", got.Title)
	assert.Equal(t, domain.NewClock(17, 30), got.EndTime)
}

func TestSQLiteListRepo_UpdateMissingReturnsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteListRepo(database)

	err := repo.Update(context.Background(), &domain.List{ID: "ghost", UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLiteListRepo_DeleteCascadesToItems(t *testing.T) {
	database := testutil.NewTestDB(t)
	lists := repository.NewSQLiteListRepo(database)
	items := repository.NewSQLiteItemRepo(database)
	ctx := context.Background()

	l := testutil.MakeList(t, database, domain.KindChecklist, "Groceries")
	testutil.MakeItem(t, database, l.ID, "milk", 0)
	testutil.MakeItem(t, database, l.ID, "eggs", 1)

	require.NoError(t, lists.Delete(ctx, l.ID))

	remaining, err := items.ListByList(ctx, l.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestSQLiteListRepo_ListOrdering(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteListRepo(database)

	testutil.MakeList(t, database, domain.KindChecklist, "one")
	testutil.MakeList(t, database, domain.KindSteps, "two")

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
}
