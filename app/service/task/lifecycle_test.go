package task

import (
	"context"
	"fmt"
	"testing"
	"time"

	"organizer/domain/task"
	gormRepo "organizer/internal/repository/gorm"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&task.Task{}))

	t.Cleanup(func() {
		if sdb, err := db.DB(); err == nil {
			sdb.Close()
		}
	})

	return NewService(gormRepo.NewTaskRepository(db)), db
}

func snapshot(t *testing.T, db *gorm.DB) []task.Task {
	t.Helper()

	var rows []task.Task
	require.NoError(t, db.Order("id").Find(&rows).Error)
	return rows
}

func TestService_Lifecycle(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &Input{
		Title:   "Report",
		DueDate: time.Date(2026, 2, 26, 0, 0, 0, 0, time.UTC),
		Status:  task.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, fetched.Title)
	assert.True(t, created.DueDate.Equal(fetched.DueDate))
	assert.Equal(t, created.Status, fetched.Status)

	byTitle, err := svc.GetByTitle(ctx, "report")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, created.ID, byTitle[0].ID)

	updated, err := svc.Update(ctx, created.ID, &Input{
		Title:   "Report v2",
		DueDate: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC),
		Status:  task.StatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	fetched, err = svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, fetched.Status)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}

func TestService_MissingIDs(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	for _, id := range []uint{1, 2, 1000} {
		_, err := svc.GetByID(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = svc.Update(ctx, id, validInput())
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, id), ErrNotFound)
	}
}

func TestService_RejectedWritesLeaveStorageUntouched(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	existing, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	before := snapshot(t, db)

	bad := []*Input{
		nil,
		{Title: "", DueDate: dueDate},
		{Title: "   ", DueDate: dueDate},
		{Title: "Report"},
	}

	for _, in := range bad {
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = svc.Update(ctx, existing.ID, in)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}

	after := snapshot(t, db)
	require.Len(t, after, len(before))
	assert.Equal(t, before[0].Title, after[0].Title)
	assert.True(t, before[0].UpdatedAt.Equal(after[0].UpdatedAt))
}

func TestService_GetByDateIgnoresTimeOfDay(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	late, err := svc.Create(ctx, &Input{Title: "Late", DueDate: time.Date(2026, 2, 26, 23, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &Input{Title: "Next day", DueDate: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	got, err := svc.GetByDate(ctx, time.Date(2026, 2, 26, 1, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, late.ID, got[0].ID)
}

func TestService_GetByTitleMatchesAnyPosition(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	for _, title := range []string{"Report", "Monthly REPORT", "reporting tools", "Budget"} {
		_, err := svc.Create(ctx, &Input{Title: title, DueDate: dueDate})
		require.NoError(t, err)
	}

	got, err := svc.GetByTitle(ctx, "rEpOrT")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = svc.GetByTitle(ctx, "nothing like it")
	require.NoError(t, err)
	assert.Empty(t, got)
}
