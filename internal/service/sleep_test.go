package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/sleeplog/internal"
)

type fakeRecordRepo struct {
	records []internal.SleepRecord
	nextID  int64
}

func (f *fakeRecordRepo) SaveSleepRecord(ctx context.Context, rec *internal.SleepRecord) error {
	f.nextID++
	rec.ID = f.nextID
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeRecordRepo) ListSleepRecords(ctx context.Context, userID int64) ([]internal.SleepRecord, error) {
	out := make([]internal.SleepRecord, 0)
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) GetSleepRecord(ctx context.Context, id int64) (*internal.SleepRecord, error) {
	for _, r := range f.records {
		if r.ID == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, internal.ErrNotFound
}

func TestComputeDuration(t *testing.T) {
	cases := []struct {
		name      string
		sleepTime string
		wakeTime  string
		want      time.Duration
	}{
		{"overnight wrap", "23:30", "07:00", 7*time.Hour + 30*time.Minute},
		{"same morning", "01:00", "09:00", 8 * time.Hour},
		{"equal times", "22:00", "22:00", 0},
		{"one minute", "00:00", "00:01", time.Minute},
		{"just before midnight", "00:30", "00:29", 23*time.Hour + 59*time.Minute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeDuration(tc.sleepTime, tc.wakeTime)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComputeDurationRejectsMalformedTimes(t *testing.T) {
	_, err := ComputeDuration("25:00", "07:00")
	assert.Error(t, err)
	_, err = ComputeDuration("23:00", "7 am")
	assert.Error(t, err)
}

func TestValidateSleepRecordForm(t *testing.T) {
	quality := 4
	form := &SleepRecordForm{Date: "2024-01-02", SleepTime: "23:30", WakeTime: "07:00", QualityRating: &quality}
	assert.NoError(t, ValidateSleepRecordForm(form))

	// Out-of-range and negative ratings are accepted on purpose.
	negative := -3
	form.QualityRating = &negative
	assert.NoError(t, ValidateSleepRecordForm(form))

	bad := *form
	bad.Date = "02-01-2024"
	assert.Error(t, ValidateSleepRecordForm(&bad))

	bad = *form
	bad.SleepTime = "23:30:00"
	assert.Error(t, ValidateSleepRecordForm(&bad))

	bad = *form
	bad.WakeTime = ""
	assert.Error(t, ValidateSleepRecordForm(&bad))

	bad = *form
	bad.QualityRating = nil
	assert.Error(t, ValidateSleepRecordForm(&bad))
}

func TestCreateSleepRecord(t *testing.T) {
	repo := &fakeRecordRepo{}
	quality := 7
	form := &SleepRecordForm{Date: "2024-03-10", SleepTime: "23:00", WakeTime: "06:30", QualityRating: &quality}

	rec, err := CreateSleepRecord(context.Background(), repo, 42, form)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, int64(42), rec.UserID)
	assert.Equal(t, "2024-03-10", rec.Date)
	assert.Equal(t, 7, rec.QualityRating)
	assert.False(t, rec.CreatedAt.IsZero())

	records, err := repo.ListSleepRecords(context.Background(), 42)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
