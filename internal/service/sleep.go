package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/yourname/sleeplog/internal"
	"github.com/yourname/sleeplog/internal/storage"
)

var validate = validator.New()

const timeLayout = "15:04"

// SleepRecordForm is the typed shape of the dashboard form. QualityRating
// is a pointer so that zero survives the required check; no range is
// enforced on it.
type SleepRecordForm struct {
	Date          string `form:"date" validate:"required,datetime=2006-01-02"`
	SleepTime     string `form:"sleep_time" validate:"required,datetime=15:04"`
	WakeTime      string `form:"wake_time" validate:"required,datetime=15:04"`
	QualityRating *int   `form:"quality_rating" validate:"required"`
}

func ValidateSleepRecordForm(form *SleepRecordForm) error {
	return validate.Struct(form)
}

func CreateSleepRecord(ctx context.Context, records storage.SleepRecordRepository, userID int64, form *SleepRecordForm) (*internal.SleepRecord, error) {
	rec := &internal.SleepRecord{
		UserID:        userID,
		Date:          form.Date,
		SleepTime:     form.SleepTime,
		WakeTime:      form.WakeTime,
		QualityRating: *form.QualityRating,
		CreatedAt:     time.Now(),
	}
	if err := records.SaveSleepRecord(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ComputeDuration returns wake minus sleep on a shared reference date,
// adding 24h when the result is negative (sleeping past midnight). It is
// computed fresh per view and never persisted.
func ComputeDuration(sleepTime, wakeTime string) (time.Duration, error) {
	s, err := time.Parse(timeLayout, sleepTime)
	if err != nil {
		return 0, err
	}
	w, err := time.Parse(timeLayout, wakeTime)
	if err != nil {
		return 0, err
	}
	d := w.Sub(s)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d, nil
}
