package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	count    int
	inserted map[int]string
	failOn   int
}

func newFakeStore(count int) *fakeStore {
	return &fakeStore{count: count, inserted: map[int]string{}, failOn: -1}
}

func (s *fakeStore) CountSnippets(ctx context.Context) (int, error) {
	return s.count, nil
}

func (s *fakeStore) InsertSnippet(ctx context.Context, idx int, content string) error {
	if idx == s.failOn {
		return errors.New("insert error")
	}
	s.inserted[idx] = content
	return nil
}

func TestSnippets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		csv      string
		count    int
		want     map[int]string
		inserted int
		wantErr  bool
	}{
		{
			name: "success with header",
			csv:  "paragraph\nthe quick brown fox\njumps over the lazy dog\n",
			want: map[int]string{
				0: "the quick brown fox",
				1: "jumps over the lazy dog",
			},
			inserted: 2,
		},
		{
			name: "success without header",
			csv:  "first paragraph here\nsecond paragraph here\n",
			want: map[int]string{
				0: "first paragraph here",
				1: "second paragraph here",
			},
			inserted: 2,
		},
		{
			name: "skips blank rows and trims whitespace",
			csv:  "paragraph\n  padded text  \n\nanother one\n",
			want: map[int]string{
				0: "padded text",
				1: "another one",
			},
			inserted: 2,
		},
		{
			name: "quoted paragraph with commas stays whole",
			csv:  "paragraph\n\"typing, they say, is a skill\"\n",
			want: map[int]string{
				0: "typing, they say, is a skill",
			},
			inserted: 1,
		},
		{
			name:     "already populated table is left alone",
			csv:      "paragraph\nthe quick brown fox\n",
			count:    5,
			want:     map[int]string{},
			inserted: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newFakeStore(tt.count)

			inserted, err := Snippets(context.Background(), store, strings.NewReader(tt.csv))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.inserted, inserted)
			assert.Equal(t, tt.want, store.inserted)
		})
	}
}

func TestSnippets_InsertFailure(t *testing.T) {
	t.Parallel()

	store := newFakeStore(0)
	store.failOn = 1

	_, err := Snippets(context.Background(), store, strings.NewReader("one\ntwo\nthree\n"))
	require.Error(t, err)
	assert.Equal(t, map[int]string{0: "one"}, store.inserted)
}
