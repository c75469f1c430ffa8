package models

import (
	"database/sql"
	"time"
)

type Room struct {
	ID        int64     `db:"id"`
	Code      string    `db:"code"`
	HostID    int64     `db:"host_id"`
	Text      string    `db:"text"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

type Participant struct {
	ID         int64           `db:"id"`
	RoomID     int64           `db:"room_id"`
	UserID     int64           `db:"user_id"`
	WPM        sql.NullFloat64 `db:"wpm"`
	Accuracy   sql.NullFloat64 `db:"accuracy"`
	FinishedAt sql.NullTime    `db:"finished_at"`
}

// RoomResult is a finished participant row joined with the username.
type RoomResult struct {
	Username   string    `db:"username" json:"username"`
	WPM        float64   `db:"wpm" json:"wpm"`
	Accuracy   float64   `db:"accuracy" json:"accuracy"`
	FinishedAt time.Time `db:"finished_at" json:"finished_at"`
}
