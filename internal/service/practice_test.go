package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RudraNarayan94/MOK/internal/models"
	"github.com/RudraNarayan94/MOK/internal/repository"
	mock_service "github.com/RudraNarayan94/MOK/internal/service/mock"
	"github.com/RudraNarayan94/MOK/internal/worker"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type practiceMocks struct {
	repo     *mock_service.MockPracticeRI
	snippets *mock_service.MockSnippetsRI
	cache    *mock_service.MockCacheI
	queue    *mock_service.MockQueueI
}

func newPracticeServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(practiceMocks)) *PracticeS {
	m := practiceMocks{
		repo:     mock_service.NewMockPracticeRI(ctrl),
		snippets: mock_service.NewMockSnippetsRI(ctrl),
		cache:    mock_service.NewMockCacheI(ctrl),
		queue:    mock_service.NewMockQueueI(ctrl),
	}
	if setupMock != nil {
		setupMock(m)
	}

	return &PracticeS{
		repo:     m.repo,
		snippets: m.snippets,
		cache:    m.cache,
		queue:    m.queue,
		log:      zap.NewNop(),
		now:      func() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) },
	}
}

func ptrInt64(v int64) *int64       { return &v }
func ptrFloat64(v float64) *float64 { return &v }

func TestPracticeS_RandomText(t *testing.T) {
	t.Parallel()

	snippet := models.TextSnippet{Index: 0, Content: "the quick brown fox"}

	tests := []struct {
		name    string
		f       func(practiceMocks)
		want    models.TextSnippet
		wantErr error
	}{
		{
			name: "success from repository",
			f: func(m practiceMocks) {
				m.snippets.EXPECT().CountSnippets(gomock.Any()).Return(1, nil)
				m.cache.EXPECT().Get(gomock.Any(), "text_snippet:0", gomock.Any()).Return(false)
				m.snippets.EXPECT().SnippetByIndex(gomock.Any(), 0).Return(snippet, nil)
				m.cache.EXPECT().Set(gomock.Any(), "text_snippet:0", snippet, snippetCacheTTL)
			},
			want: snippet,
		},
		{
			name: "success from cache",
			f: func(m practiceMocks) {
				m.snippets.EXPECT().CountSnippets(gomock.Any()).Return(1, nil)
				m.cache.EXPECT().Get(gomock.Any(), "text_snippet:0", gomock.Any()).
					DoAndReturn(func(ctx context.Context, key string, dest any) bool {
						*dest.(*models.TextSnippet) = snippet
						return true
					})
			},
			want: snippet,
		},
		{
			name: "failed no snippets",
			f: func(m practiceMocks) {
				m.snippets.EXPECT().CountSnippets(gomock.Any()).Return(0, nil)
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newPracticeServiceMock(t, ctrl, tt.f)

			got, err := svc.RandomText(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPracticeS_RecordSession(t *testing.T) {
	t.Parallel()

	in := SessionInput{TimeTaken: ptrInt64(60000), Speed: ptrFloat64(72.5), Accuracy: ptrFloat64(96)}

	tests := []struct {
		name    string
		in      SessionInput
		f       func(practiceMocks)
		wantErr error
	}{
		{
			name: "success queues recompute",
			in:   in,
			f: func(m practiceMocks) {
				m.repo.EXPECT().CreateSession(gomock.Any(), models.PracticeSession{
					UserID:    1,
					TimeTaken: 60000,
					Speed:     72.5,
					Accuracy:  96,
				}).Return(nil)
				m.queue.EXPECT().Submit(gomock.Any()).Return(nil)
			},
		},
		{
			name: "success recomputes inline when queue is full",
			in:   in,
			f: func(m practiceMocks) {
				m.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)
				m.queue.EXPECT().Submit(gomock.Any()).Return(worker.ErrQueueFull)
				m.repo.EXPECT().RecomputeDaily(gomock.Any(), int64(1), models.DateOf(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))).Return(nil)
				m.repo.EXPECT().RecomputeAllTime(gomock.Any(), int64(1)).Return(nil)
			},
		},
		{
			name: "success even when inline recompute fails",
			in:   in,
			f: func(m practiceMocks) {
				m.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)
				m.queue.EXPECT().Submit(gomock.Any()).Return(worker.ErrQueueFull)
				m.repo.EXPECT().RecomputeDaily(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("query error"))
			},
		},
		{
			name:    "failed missing time taken",
			in:      SessionInput{Speed: ptrFloat64(72.5), Accuracy: ptrFloat64(96)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "failed zero speed",
			in:      SessionInput{TimeTaken: ptrInt64(60000), Speed: ptrFloat64(0), Accuracy: ptrFloat64(96)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "failed accuracy above 100",
			in:      SessionInput{TimeTaken: ptrInt64(60000), Speed: ptrFloat64(72.5), Accuracy: ptrFloat64(101)},
			wantErr: ErrInvalidInput,
		},
		{
			name: "failed insert",
			in:   in,
			f: func(m practiceMocks) {
				m.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(errors.New("exec error"))
			},
			wantErr: errors.New("exec error"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newPracticeServiceMock(t, ctrl, tt.f)

			err := svc.RecordSession(context.Background(), 1, tt.in)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidInput) {
					assert.ErrorIs(t, err, ErrInvalidInput)
				}
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestPracticeS_AllTimeStats(t *testing.T) {
	t.Parallel()

	stats := models.AllTimeStatistics{UserID: 1, TotalTimeSpent: 3600, TopSpeed: 90, AvgSpeed: 75}

	tests := []struct {
		name    string
		f       func(practiceMocks)
		want    models.AllTimeStatistics
		wantErr error
	}{
		{
			name: "success",
			f: func(m practiceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "all_time_stats:1", gomock.Any()).Return(false)
				m.repo.EXPECT().AllTimeStats(gomock.Any(), int64(1)).Return(stats, nil)
				m.cache.EXPECT().Set(gomock.Any(), "all_time_stats:1", stats, allTimeCacheTTL)
			},
			want: stats,
		},
		{
			name: "success lazily rebuilds missing rollup",
			f: func(m practiceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "all_time_stats:1", gomock.Any()).Return(false)
				m.repo.EXPECT().AllTimeStats(gomock.Any(), int64(1)).Return(models.AllTimeStatistics{}, repository.ErrNotFound)
				m.repo.EXPECT().HasDailyStats(gomock.Any(), int64(1)).Return(true, nil)
				m.repo.EXPECT().RecomputeAllTime(gomock.Any(), int64(1)).Return(nil)
				m.repo.EXPECT().AllTimeStats(gomock.Any(), int64(1)).Return(stats, nil)
				m.cache.EXPECT().Set(gomock.Any(), "all_time_stats:1", stats, allTimeCacheTTL)
			},
			want: stats,
		},
		{
			name: "failed no history at all",
			f: func(m practiceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "all_time_stats:1", gomock.Any()).Return(false)
				m.repo.EXPECT().AllTimeStats(gomock.Any(), int64(1)).Return(models.AllTimeStatistics{}, repository.ErrNotFound)
				m.repo.EXPECT().HasDailyStats(gomock.Any(), int64(1)).Return(false, nil)
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newPracticeServiceMock(t, ctrl, tt.f)

			got, err := svc.AllTimeStats(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPracticeS_Streak(t *testing.T) {
	t.Parallel()

	today := models.DateOf(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		f    func(practiceMocks)
		want int
	}{
		{
			name: "three consecutive days",
			f: func(m practiceMocks) {
				m.repo.EXPECT().DayRecorded(gomock.Any(), int64(1), today).Return(true, nil)
				m.repo.EXPECT().DayRecorded(gomock.Any(), int64(1), today.AddDays(-1)).Return(true, nil)
				m.repo.EXPECT().DayRecorded(gomock.Any(), int64(1), today.AddDays(-2)).Return(true, nil)
				m.repo.EXPECT().DayRecorded(gomock.Any(), int64(1), today.AddDays(-3)).Return(false, nil)
			},
			want: 3,
		},
		{
			name: "nothing today means zero",
			f: func(m practiceMocks) {
				m.repo.EXPECT().DayRecorded(gomock.Any(), int64(1), today).Return(false, nil)
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newPracticeServiceMock(t, ctrl, tt.f)

			got, err := svc.Streak(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPracticeS_Rank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(practiceMocks)
		want    models.RankInfo
		wantErr error
	}{
		{
			name: "success second of four",
			f: func(m practiceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "user_rank:1", gomock.Any()).Return(false)
				m.repo.EXPECT().RankedUserIDs(gomock.Any()).Return([]int64{9, 1, 4, 7}, nil)
				m.cache.EXPECT().Set(gomock.Any(), "user_rank:1", gomock.Any(), rankCacheTTL)
			},
			want: models.RankInfo{WorldRank: 2, RankPercentile: 50},
		},
		{
			name: "success top of three",
			f: func(m practiceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "user_rank:1", gomock.Any()).Return(false)
				m.repo.EXPECT().RankedUserIDs(gomock.Any()).Return([]int64{1, 4, 7}, nil)
				m.cache.EXPECT().Set(gomock.Any(), "user_rank:1", gomock.Any(), rankCacheTTL)
			},
			want: models.RankInfo{WorldRank: 1, RankPercentile: 66.67},
		},
		{
			name: "failed unranked user",
			f: func(m practiceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "user_rank:1", gomock.Any()).Return(false)
				m.repo.EXPECT().RankedUserIDs(gomock.Any()).Return([]int64{9, 4}, nil)
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newPracticeServiceMock(t, ctrl, tt.f)

			got, err := svc.Rank(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPracticeS_Graph(t *testing.T) {
	t.Parallel()

	makeHistory := func(days int) []models.DailyStatistics {
		history := make([]models.DailyStatistics, 0, days)
		day := models.DateOf(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
		for i := 0; i < days; i++ {
			history = append(history, models.DailyStatistics{UserID: 1, Date: day.AddDays(-i), LessonsCompleted: 1})
		}
		return history
	}

	tests := []struct {
		name    string
		f       func(practiceMocks)
		wantLen int
		wantErr error
	}{
		{
			name: "success with thirty days",
			f: func(m practiceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "graph_data:1", gomock.Any()).Return(false)
				m.repo.EXPECT().DailyHistory(gomock.Any(), int64(1)).Return(makeHistory(30), nil)
				m.cache.EXPECT().Set(gomock.Any(), "graph_data:1", gomock.Any(), graphCacheTTL)
			},
			wantLen: 30,
		},
		{
			name: "failed not enough days",
			f: func(m practiceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "graph_data:1", gomock.Any()).Return(false)
				m.repo.EXPECT().DailyHistory(gomock.Any(), int64(1)).Return(makeHistory(29), nil)
			},
			wantErr: ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newPracticeServiceMock(t, ctrl, tt.f)

			got, err := svc.Graph(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestPracticeS_Leaderboard(t *testing.T) {
	t.Parallel()

	entries := []models.LeaderboardEntry{
		{Username: "fast", WPM: 120},
		{Username: "steady", WPM: 90},
	}

	tests := []struct {
		name    string
		sortBy  string
		f       func(practiceMocks)
		want    []models.LeaderboardEntry
		wantErr error
	}{
		{
			name:   "success top speed",
			sortBy: "top_speed",
			f: func(m practiceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "leaderboard:top_speed", gomock.Any()).Return(false)
				m.repo.EXPECT().TopStats(gomock.Any(), models.SortByTopSpeed, leaderboardSize).Return(entries, nil)
				m.cache.EXPECT().Set(gomock.Any(), "leaderboard:top_speed", entries, topListCacheTTL)
			},
			want: entries,
		},
		{
			name:   "success avg speed",
			sortBy: "avg_speed",
			f: func(m practiceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "leaderboard:avg_speed", gomock.Any()).Return(false)
				m.repo.EXPECT().TopStats(gomock.Any(), models.SortByAvgSpeed, leaderboardSize).Return(entries, nil)
				m.cache.EXPECT().Set(gomock.Any(), "leaderboard:avg_speed", entries, topListCacheTTL)
			},
			want: entries,
		},
		{
			name:    "failed arbitrary column rejected",
			sortBy:  "password_hash",
			wantErr: ErrInvalidInput,
		},
		{
			name:   "failed empty leaderboard",
			sortBy: "top_speed",
			f: func(m practiceMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "leaderboard:top_speed", gomock.Any()).Return(false)
				m.repo.EXPECT().TopStats(gomock.Any(), models.SortByTopSpeed, leaderboardSize).Return([]models.LeaderboardEntry{}, nil)
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newPracticeServiceMock(t, ctrl, tt.f)

			got, err := svc.Leaderboard(context.Background(), tt.sortBy)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
