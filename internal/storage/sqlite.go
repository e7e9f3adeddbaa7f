package storage

import (
	"context"
	"database/sql"
	"strings"

	"github.com/didi/gendry/builder"
	_ "github.com/mattn/go-sqlite3"

	"github.com/yourname/sleeplog/internal"
)

var recordColumns = []string{"id", "user_id", "date", "sleep_time", "wake_time", "quality_rating", "created_at"}

// SQLiteStorage is the default file-backed store.
type SQLiteStorage struct {
	db     *sql.DB
	logger internal.Logger
}

func NewSQLiteStorage(path string, logger internal.Logger) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		logger.Errorf("failed to open sqlite database: %v", err)
		return nil, err
	}
	if err := db.Ping(); err != nil {
		logger.Errorf("failed to ping sqlite database: %v", err)
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return nil, err
	}
	s := &SQLiteStorage{db: db, logger: logger}
	if err := s.createTables(); err != nil {
		logger.Errorf("failed to create sqlite tables: %v", err)
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStorage) createTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS user (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sleep_record (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES user(id),
			date TEXT NOT NULL,
			sleep_time TEXT NOT NULL,
			wake_time TEXT NOT NULL,
			quality_rating INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- UserRepository ---

func (s *SQLiteStorage) CreateUser(ctx context.Context, user *internal.User) error {
	data := map[string]interface{}{
		"email":         user.Email,
		"password_hash": user.PasswordHash,
	}
	sqlStr, args, err := builder.BuildInsert("user", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return internal.ErrDuplicateEmail
		}
		s.logger.Errorf("failed to insert user: %v", err)
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (s *SQLiteStorage) GetUserByEmail(ctx context.Context, email string) (*internal.User, error) {
	where := map[string]interface{}{"email": email}
	sqlStr, args, err := builder.BuildSelect("user", where, []string{"id", "email", "password_hash"})
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, internal.ErrNotFound
	}
	var u internal.User
	if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
		return nil, err
	}
	return &u, nil
}

// --- SleepRecordRepository ---

func (s *SQLiteStorage) SaveSleepRecord(ctx context.Context, rec *internal.SleepRecord) error {
	data := map[string]interface{}{
		"user_id":        rec.UserID,
		"date":           rec.Date,
		"sleep_time":     rec.SleepTime,
		"wake_time":      rec.WakeTime,
		"quality_rating": rec.QualityRating,
		"created_at":     rec.CreatedAt,
	}
	sqlStr, args, err := builder.BuildInsert("sleep_record", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		s.logger.Errorf("failed to insert sleep record: %v", err)
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	return nil
}

func (s *SQLiteStorage) ListSleepRecords(ctx context.Context, userID int64) ([]internal.SleepRecord, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"_orderby": "date asc",
	}
	sqlStr, args, err := builder.BuildSelect("sleep_record", where, recordColumns)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	records := make([]internal.SleepRecord, 0)
	for rows.Next() {
		var r internal.SleepRecord
		if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.SleepTime, &r.WakeTime, &r.QualityRating, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStorage) GetSleepRecord(ctx context.Context, id int64) (*internal.SleepRecord, error) {
	where := map[string]interface{}{"id": id}
	sqlStr, args, err := builder.BuildSelect("sleep_record", where, recordColumns)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, internal.ErrNotFound
	}
	var r internal.SleepRecord
	if err := rows.Scan(&r.ID, &r.UserID, &r.Date, &r.SleepTime, &r.WakeTime, &r.QualityRating, &r.CreatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// --- Compile-time assertions ---
var _ Store = (*SQLiteStorage)(nil)
