package db

import (
	"context"
	"fmt"
	"time"

	"github.com/RudraNarayan94/MOK/internal/config"
	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
)

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, cfg.Conn.SSL)
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed apply schema: %w", err)
	}

	return db, nil
}

func applySchema(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		last_login TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS practice_sessions (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		time_taken BIGINT NOT NULL,
		speed DOUBLE PRECISION NOT NULL,
		accuracy DOUBLE PRECISION NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_practice_sessions_user_ts ON practice_sessions(user_id, timestamp);

	CREATE TABLE IF NOT EXISTS daily_statistics (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		total_time BIGINT NOT NULL DEFAULT 0,
		lessons_completed INTEGER NOT NULL DEFAULT 0,
		top_speed DOUBLE PRECISION NOT NULL DEFAULT 0,
		avg_speed DOUBLE PRECISION NOT NULL DEFAULT 0,
		top_accuracy DOUBLE PRECISION NOT NULL DEFAULT 0,
		avg_accuracy DOUBLE PRECISION NOT NULL DEFAULT 0,
		UNIQUE (user_id, date)
	);

	CREATE TABLE IF NOT EXISTS all_time_statistics (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		total_time_spent BIGINT NOT NULL DEFAULT 0,
		total_lessons_completed INTEGER NOT NULL DEFAULT 0,
		top_speed DOUBLE PRECISION NOT NULL DEFAULT 0,
		avg_speed DOUBLE PRECISION NOT NULL DEFAULT 0,
		top_accuracy DOUBLE PRECISION NOT NULL DEFAULT 0,
		avg_accuracy DOUBLE PRECISION NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS text_snippets (
		id BIGSERIAL PRIMARY KEY,
		idx INTEGER NOT NULL UNIQUE,
		content TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS rooms (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		host_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		text TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS participants (
		id BIGSERIAL PRIMARY KEY,
		room_id BIGINT NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		wpm DOUBLE PRECISION,
		accuracy DOUBLE PRECISION,
		finished_at TIMESTAMPTZ,
		UNIQUE (room_id, user_id)
	);
	`

	_, err := db.Exec(schema)
	return err
}
