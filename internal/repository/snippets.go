package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RudraNarayan94/MOK/internal/models"
)

type SnippetsR struct {
	db QueryI
}

func NewSnippetsRepository(db QueryI) *SnippetsR {
	return &SnippetsR{db: db}
}

func (s *SnippetsR) CountSnippets(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM text_snippets`
	if err := s.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count snippets: %w", err)
	}
	return count, nil
}

func (s *SnippetsR) SnippetByIndex(ctx context.Context, idx int) (models.TextSnippet, error) {
	query := `SELECT idx, content FROM text_snippets WHERE idx = $1`

	var snippet models.TextSnippet
	err := s.db.GetContext(ctx, &snippet, query, idx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TextSnippet{}, ErrNotFound
		}
		return models.TextSnippet{}, fmt.Errorf("failed to get snippet: %w", err)
	}
	return snippet, nil
}

func (s *SnippetsR) InsertSnippet(ctx context.Context, idx int, content string) error {
	query := `
		INSERT INTO text_snippets (idx, content)
		VALUES ($1, $2)
		ON CONFLICT (idx) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, idx, content); err != nil {
		return fmt.Errorf("failed to insert snippet: %w", err)
	}
	return nil
}
