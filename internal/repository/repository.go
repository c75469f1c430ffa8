package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate row")
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

type Repository struct {
	*UsersR
	*PracticeR
	*RoomsR
	*SnippetsR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		UsersR:    NewUsersRepository(db),
		PracticeR: NewPracticeRepository(db),
		RoomsR:    NewRoomsRepository(db),
		SnippetsR: NewSnippetsRepository(db),
	}
}
