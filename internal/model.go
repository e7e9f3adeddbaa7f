package internal

import "time"

type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// SleepRecord is one logged sleep event. Date is a calendar day (YYYY-MM-DD);
// SleepTime and WakeTime are times of day (HH:MM) with no date component.
type SleepRecord struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Date          string    `json:"date"`
	SleepTime     string    `json:"sleep_time"`
	WakeTime      string    `json:"wake_time"`
	QualityRating int       `json:"quality_rating"`
	CreatedAt     time.Time `json:"created_at"`
}
