package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yourname/sleeplog/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	p := &PostgresStorage{pool: pool, logger: logger}
	if err := p.createTables(ctx); err != nil {
		logger.Errorf("failed to create postgres tables: %v", err)
		return nil, err
	}
	return p, nil
}

func (p *PostgresStorage) createTables(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS "user" (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sleep_record (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES "user"(id),
			date VARCHAR(10) NOT NULL,
			sleep_time VARCHAR(5) NOT NULL,
			wake_time VARCHAR(5) NOT NULL,
			quality_rating INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- UserRepository ---

func (p *PostgresStorage) CreateUser(ctx context.Context, user *internal.User) error {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO "user" (email, password_hash) VALUES ($1, $2) RETURNING id`,
		user.Email, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return internal.ErrDuplicateEmail
		}
		p.logger.Errorf("failed to insert user: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, email, password_hash FROM "user" WHERE email = $1`, email)
	var u internal.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internal.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- SleepRecordRepository ---

func (p *PostgresStorage) SaveSleepRecord(ctx context.Context, rec *internal.SleepRecord) error {
	err := p.pool.QueryRow(ctx,
		`INSERT INTO sleep_record (user_id, date, sleep_time, wake_time, quality_rating, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		rec.UserID, rec.Date, rec.SleepTime, rec.WakeTime, rec.QualityRating, rec.CreatedAt).Scan(&rec.ID)
	if err != nil {
		p.logger.Errorf("failed to insert sleep record: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListSleepRecords(ctx context.Context, userID int64) ([]internal.SleepRecord, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, user_id, date, sleep_time, wake_time, quality_rating, created_at
		 FROM sleep_record WHERE user_id = $1 ORDER BY date ASC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query sleep records: %v", err)
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

func (p *PostgresStorage) GetSleepRecord(ctx context.Context, id int64) (*internal.SleepRecord, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT id, user_id, date, sleep_time, wake_time, quality_rating, created_at
		 FROM sleep_record WHERE id = $1`, id)
	var r internal.SleepRecord
	if err := row.Scan(&r.ID, &r.UserID, &r.Date, &r.SleepTime, &r.WakeTime, &r.QualityRating, &r.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internal.ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- Compile-time assertions ---
var _ Store = (*PostgresStorage)(nil)
