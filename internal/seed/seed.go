package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// SnippetStore is the slice of the snippets repository seeding needs.
type SnippetStore interface {
	CountSnippets(ctx context.Context) (int, error)
	InsertSnippet(ctx context.Context, idx int, content string) error
}

// SnippetsFromFile ingests practice paragraphs from a CSV file, one
// paragraph per row in the first column. Already-populated tables are
// left alone, so restarts are cheap.
func SnippetsFromFile(ctx context.Context, store SnippetStore, path string, log *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open snippets file: %w", err)
	}
	defer f.Close()

	inserted, err := Snippets(ctx, store, f)
	if err != nil {
		return err
	}

	log.Info("text snippets seeded", zap.String("path", path), zap.Int("inserted", inserted))
	return nil
}

func Snippets(ctx context.Context, store SnippetStore, r io.Reader) (int, error) {
	count, err := store.CountSnippets(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	idx := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return idx, fmt.Errorf("failed to read snippets csv: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		content := strings.TrimSpace(record[0])
		if content == "" || isHeader(idx, content) {
			continue
		}

		if err := store.InsertSnippet(ctx, idx, content); err != nil {
			return idx, err
		}
		idx++
	}

	return idx, nil
}

func isHeader(idx int, content string) bool {
	if idx != 0 {
		return false
	}
	switch strings.ToLower(content) {
	case "paragraph", "content", "text":
		return true
	}
	return false
}
