package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourname/sleeplog/internal"
)

func newTestStore(t *testing.T) *SQLiteStorage {
	t.Helper()
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTestUser(t *testing.T, store *SQLiteStorage, email string) *internal.User {
	t.Helper()
	user := &internal.User{Email: email, PasswordHash: "x"}
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func TestCreateUserAssignsID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := &internal.User{Email: "a@example.com", PasswordHash: "hash"}
	require.NoError(t, store.CreateUser(ctx, user))
	assert.Greater(t, user.ID, int64(0))

	got, err := store.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := newTestUser(t, store, "a@example.com")

	err := store.CreateUser(ctx, &internal.User{Email: "a@example.com", PasswordHash: "other"})
	assert.ErrorIs(t, err, internal.ErrDuplicateEmail)

	// The original row is untouched.
	got, err := store.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "x", got.PasswordHash)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetUserByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, internal.ErrNotFound)
}

func TestListSleepRecordsOrderedByDate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, store, "a@example.com")

	for _, date := range []string{"2024-01-03", "2024-01-01", "2024-01-02"} {
		rec := &internal.SleepRecord{
			UserID:        user.ID,
			Date:          date,
			SleepTime:     "23:00",
			WakeTime:      "07:00",
			QualityRating: 5,
			CreatedAt:     time.Now(),
		}
		require.NoError(t, store.SaveSleepRecord(ctx, rec))
		assert.Greater(t, rec.ID, int64(0))
	}

	records, err := store.ListSleepRecords(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-01-01", records[0].Date)
	assert.Equal(t, "2024-01-02", records[1].Date)
	assert.Equal(t, "2024-01-03", records[2].Date)
}

func TestListSleepRecordsScopedToUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	alice := newTestUser(t, store, "alice@example.com")
	bob := newTestUser(t, store, "bob@example.com")

	rec := &internal.SleepRecord{
		UserID:        alice.ID,
		Date:          "2024-01-01",
		SleepTime:     "23:00",
		WakeTime:      "07:00",
		QualityRating: 5,
		CreatedAt:     time.Now(),
	}
	require.NoError(t, store.SaveSleepRecord(ctx, rec))

	records, err := store.ListSleepRecords(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGetSleepRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := newTestUser(t, store, "a@example.com")

	rec := &internal.SleepRecord{
		UserID:        user.ID,
		Date:          "2024-02-10",
		SleepTime:     "23:30",
		WakeTime:      "07:00",
		QualityRating: 8,
		CreatedAt:     time.Now(),
	}
	require.NoError(t, store.SaveSleepRecord(ctx, rec))

	got, err := store.GetSleepRecord(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, "23:30", got.SleepTime)
	assert.Equal(t, "07:00", got.WakeTime)
	assert.Equal(t, 8, got.QualityRating)

	_, err = store.GetSleepRecord(ctx, rec.ID+100)
	assert.ErrorIs(t, err, internal.ErrNotFound)
}
