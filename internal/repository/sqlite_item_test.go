package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/andreseduardop/listy/internal/domain"
	"github.com/andreseduardop/listy/internal/repository"
	"github.com/andreseduardop/listy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteItemRepo_ListByListOrderedByPosition(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteItemRepo(database)
	ctx := context.Background()

	l := testutil.MakeList(t, database, domain.KindChecklist, "Groceries")
	// Inserted out of position order on purpose.
	testutil.MakeItem(t, database, l.ID, "third", 2)
	testutil.MakeItem(t, database, l.ID, "first", 0)
	testutil.MakeItem(t, database, l.ID, "second", 1)

	got, err := repo.ListByList(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)
	assert.Equal(t, "third", got[2].Text)
}

func TestSQLiteItemRepo_UpdateTextAndDone(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteItemRepo(database)
	ctx := context.Background()

	l := testutil.MakeList(t, database, domain.KindChecklist, "Tasks")
	it := testutil.MakeItem(t, database, l.ID, "draft", 0)

	it.Text = "final"
	it.Done = true
	it.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, it))

	got, err := repo.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Text)
	assert.True(t, got.Done)
}

func TestSQLiteItemRepo_GetMissingReturnsNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteItemRepo(database)

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLiteItemRepo_ReplaceOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteItemRepo(database)
	ctx := context.Background()

	l := testutil.MakeList(t, database, domain.KindSteps, "Recipe")
	a := testutil.MakeItem(t, database, l.ID, "a", 0)
	b := testutil.MakeItem(t, database, l.ID, "b", 1)
	c := testutil.MakeItem(t, database, l.ID, "c", 2)

	require.NoError(t, repo.ReplaceOrder(ctx, l.ID, []string{c.ID, a.ID, b.ID}))

	got, err := repo.ListByList(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{c.ID, a.ID, b.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestSQLiteItemRepo_ReplaceOrderIgnoresForeignIDs(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteItemRepo(database)
	ctx := context.Background()

	l := testutil.MakeList(t, database, domain.KindSteps, "Recipe")
	other := testutil.MakeList(t, database, domain.KindSteps, "Other")
	a := testutil.MakeItem(t, database, l.ID, "a", 0)
	foreign := testutil.MakeItem(t, database, other.ID, "x", 0)

	require.NoError(t, repo.ReplaceOrder(ctx, l.ID, []string{foreign.ID, a.ID}))

	got, err := repo.GetByID(ctx, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Position, "items of other lists must not be touched")
}

func TestSQLiteItemRepo_SaveSchedule(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteItemRepo(database)
	ctx := context.Background()

	l := testutil.MakeList(t, database, domain.KindSchedule, "Morning")
	a := testutil.MakeTimedItem(t, database, l.ID, "standup", 0, domain.NewClock(8, 0))
	b := testutil.MakeTimedItem(t, database, l.ID, "review", 1, domain.NewClock(8, 30))

	b.Time = domain.NewClock(8, 0)
	a.Time = domain.NewClock(8, 30)
	require.NoError(t, repo.SaveSchedule(ctx, l.ID, []*domain.ScheduleItem{b, a}))

	got, err := repo.ListTimed(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, domain.NewClock(8, 0), got[0].Time)
	assert.Equal(t, a.ID, got[1].ID)
	assert.Equal(t, domain.NewClock(8, 30), got[1].Time)
}
