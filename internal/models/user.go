package models

import (
	"database/sql"
	"time"
)

type User struct {
	ID           int64        `db:"id" json:"id"`
	Email        string       `db:"email" json:"email"`
	Username     string       `db:"username" json:"username"`
	PasswordHash string       `db:"password_hash" json:"-"`
	IsActive     bool         `db:"is_active" json:"-"`
	IsAdmin      bool         `db:"is_admin" json:"-"`
	LastLogin    sql.NullTime `db:"last_login" json:"-"`
	CreatedAt    time.Time    `db:"created_at" json:"-"`
	UpdatedAt    time.Time    `db:"updated_at" json:"-"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
