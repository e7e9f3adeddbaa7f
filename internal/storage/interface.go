package storage

import (
	"context"

	"github.com/yourname/sleeplog/internal"
)

type UserRepository interface {
	// CreateUser inserts the user and fills in its storage-assigned id.
	// Returns internal.ErrDuplicateEmail when the email is already taken.
	CreateUser(ctx context.Context, user *internal.User) error
	GetUserByEmail(ctx context.Context, email string) (*internal.User, error)
}

type SleepRecordRepository interface {
	// SaveSleepRecord inserts the record and fills in its storage-assigned id.
	SaveSleepRecord(ctx context.Context, rec *internal.SleepRecord) error
	// ListSleepRecords returns all records for the user ordered by date ascending.
	ListSleepRecords(ctx context.Context, userID int64) ([]internal.SleepRecord, error)
	GetSleepRecord(ctx context.Context, id int64) (*internal.SleepRecord, error)
}

// Store is what a backend implementation provides in full.
type Store interface {
	UserRepository
	SleepRecordRepository
	Close() error
}
