package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/RudraNarayan94/MOK/internal/models"
	"github.com/RudraNarayan94/MOK/internal/repository"
	"github.com/RudraNarayan94/MOK/pkg/validator"
	"go.uber.org/zap"
)

type PracticeRI interface {
	CreateSession(ctx context.Context, session models.PracticeSession) error
	RecomputeDaily(ctx context.Context, userID int64, day models.Date) error
	RecomputeAllTime(ctx context.Context, userID int64) error
	DailyStats(ctx context.Context, userID int64, day models.Date) (models.DailyStatistics, error)
	AllTimeStats(ctx context.Context, userID int64) (models.AllTimeStatistics, error)
	HasDailyStats(ctx context.Context, userID int64) (bool, error)
	DayRecorded(ctx context.Context, userID int64, day models.Date) (bool, error)
	DailyHistory(ctx context.Context, userID int64) ([]models.DailyStatistics, error)
	RankedUserIDs(ctx context.Context) ([]int64, error)
	TopStats(ctx context.Context, key models.SortKey, limit int) ([]models.LeaderboardEntry, error)
}

type SnippetsRI interface {
	CountSnippets(ctx context.Context) (int, error)
	SnippetByIndex(ctx context.Context, idx int) (models.TextSnippet, error)
	InsertSnippet(ctx context.Context, idx int, content string) error
}

type SessionInput struct {
	TimeTaken *int64   `json:"time_taken" validate:"required,gt=0"` // ms
	Speed     *float64 `json:"speed" validate:"required,gt=0"`
	Accuracy  *float64 `json:"accuracy" validate:"required,gte=0,lte=100"`
}

const (
	leaderboardSize = 10
	graphMinDays    = 30
	snippetCacheTTL = time.Hour
	allTimeCacheTTL = 5 * time.Minute
	rankCacheTTL    = 5 * time.Minute
	graphCacheTTL   = 15 * time.Minute
	topListCacheTTL = 2 * time.Minute
)

type PracticeS struct {
	repo     PracticeRI
	snippets SnippetsRI
	cache    CacheI
	queue    QueueI
	log      *zap.Logger
	now      func() time.Time
}

func NewPracticeService(repo PracticeRI, snippets SnippetsRI, cache CacheI, queue QueueI, log *zap.Logger) *PracticeS {
	return &PracticeS{
		repo:     repo,
		snippets: snippets,
		cache:    cache,
		queue:    queue,
		log:      log,
		now:      time.Now,
	}
}

func (p *PracticeS) RandomText(ctx context.Context) (models.TextSnippet, error) {
	count, err := p.snippets.CountSnippets(ctx)
	if err != nil {
		return models.TextSnippet{}, err
	}
	if count == 0 {
		return models.TextSnippet{}, notFound("no text snippets available")
	}

	idx := rand.Intn(count)
	cacheKey := fmt.Sprintf("text_snippet:%d", idx)

	var snippet models.TextSnippet
	if p.cache.Get(ctx, cacheKey, &snippet) {
		return snippet, nil
	}

	snippet, err = p.snippets.SnippetByIndex(ctx, idx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.TextSnippet{}, notFound("text snippet not found")
		}
		return models.TextSnippet{}, err
	}

	p.cache.Set(ctx, cacheKey, snippet, snippetCacheTTL)
	return snippet, nil
}

// RecordSession persists the attempt and schedules the daily and
// all-time rollup recompute. When the queue is saturated the recompute
// runs inline; either way the session itself is already durable.
func (p *PracticeS) RecordSession(ctx context.Context, userID int64, in SessionInput) error {
	if err := validator.ValidateStruct(in); err != nil {
		return invalidInput("%v", err)
	}

	session := models.PracticeSession{
		UserID:    userID,
		TimeTaken: *in.TimeTaken,
		Speed:     *in.Speed,
		Accuracy:  *in.Accuracy,
	}
	if err := p.repo.CreateSession(ctx, session); err != nil {
		return err
	}

	day := models.DateOf(p.now())
	job := func(jobCtx context.Context) error {
		return p.recompute(jobCtx, userID, day)
	}

	if err := p.queue.Submit(job); err != nil {
		p.log.Warn("stats queue unavailable, recomputing inline", zap.Int64("user_id", userID), zap.Error(err))
		if err := p.recompute(ctx, userID, day); err != nil {
			p.log.Error("failed to recompute statistics", zap.Int64("user_id", userID), zap.Error(err))
		}
	}
	return nil
}

func (p *PracticeS) recompute(ctx context.Context, userID int64, day models.Date) error {
	if err := p.repo.RecomputeDaily(ctx, userID, day); err != nil {
		return fmt.Errorf("daily recompute: %w", err)
	}
	if err := p.repo.RecomputeAllTime(ctx, userID); err != nil {
		return fmt.Errorf("all-time recompute: %w", err)
	}
	return nil
}

func (p *PracticeS) DailyStats(ctx context.Context, userID int64) (models.DailyStatistics, error) {
	stats, err := p.repo.DailyStats(ctx, userID, models.DateOf(p.now()))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.DailyStatistics{}, notFound("no daily stats found for today")
		}
		return models.DailyStatistics{}, err
	}
	return stats, nil
}

// AllTimeStats reads the all-time rollup, rebuilding it lazily when
// daily rows exist but the rollup row has never been written.
func (p *PracticeS) AllTimeStats(ctx context.Context, userID int64) (models.AllTimeStatistics, error) {
	cacheKey := fmt.Sprintf("all_time_stats:%d", userID)

	var stats models.AllTimeStatistics
	if p.cache.Get(ctx, cacheKey, &stats) {
		return stats, nil
	}

	stats, err := p.repo.AllTimeStats(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		has, hasErr := p.repo.HasDailyStats(ctx, userID)
		if hasErr != nil {
			return models.AllTimeStatistics{}, hasErr
		}
		if !has {
			return models.AllTimeStatistics{}, notFound("no historical data available to compute all-time statistics")
		}
		if err := p.repo.RecomputeAllTime(ctx, userID); err != nil {
			return models.AllTimeStatistics{}, err
		}
		stats, err = p.repo.AllTimeStats(ctx, userID)
	}
	if err != nil {
		return models.AllTimeStatistics{}, err
	}

	p.cache.Set(ctx, cacheKey, stats, allTimeCacheTTL)
	return stats, nil
}

// Streak counts consecutive calendar days ending today with at least
// one recorded session. No activity today means 0.
func (p *PracticeS) Streak(ctx context.Context, userID int64) (int, error) {
	streak := 0
	day := models.DateOf(p.now())

	for {
		recorded, err := p.repo.DayRecorded(ctx, userID, day)
		if err != nil {
			return 0, err
		}
		if !recorded {
			return streak, nil
		}
		streak++
		day = day.AddDays(-1)
	}
}

func (p *PracticeS) Rank(ctx context.Context, userID int64) (models.RankInfo, error) {
	cacheKey := fmt.Sprintf("user_rank:%d", userID)

	var rank models.RankInfo
	if p.cache.Get(ctx, cacheKey, &rank) {
		return rank, nil
	}

	ids, err := p.repo.RankedUserIDs(ctx)
	if err != nil {
		return models.RankInfo{}, err
	}

	position := 0
	for i, id := range ids {
		if id == userID {
			position = i + 1
			break
		}
	}
	if position == 0 {
		return models.RankInfo{}, notFound("no typing data")
	}

	total := len(ids)
	percentile := math.Round(float64(total-position)/float64(total)*100*100) / 100

	rank = models.RankInfo{WorldRank: position, RankPercentile: percentile}
	p.cache.Set(ctx, cacheKey, rank, rankCacheTTL)
	return rank, nil
}

func (p *PracticeS) Graph(ctx context.Context, userID int64) ([]models.DailyStatistics, error) {
	cacheKey := fmt.Sprintf("graph_data:%d", userID)

	var history []models.DailyStatistics
	if p.cache.Get(ctx, cacheKey, &history) {
		return history, nil
	}

	history, err := p.repo.DailyHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(history) < graphMinDays {
		return nil, invalidInput("complete at least %d lessons to unlock the graph", graphMinDays)
	}

	p.cache.Set(ctx, cacheKey, history, graphCacheTTL)
	return history, nil
}

func (p *PracticeS) Leaderboard(ctx context.Context, sortBy string) ([]models.LeaderboardEntry, error) {
	key, ok := models.ParseSortKey(sortBy)
	if !ok {
		return nil, invalidInput("invalid parameter, use 'sort_by=top_speed' or 'sort_by=avg_speed'")
	}

	cacheKey := "leaderboard:" + string(key)

	var entries []models.LeaderboardEntry
	if p.cache.Get(ctx, cacheKey, &entries) {
		return entries, nil
	}

	entries, err := p.repo.TopStats(ctx, key, leaderboardSize)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, notFound("no leaderboard data found for %q", key)
	}

	p.cache.Set(ctx, cacheKey, entries, topListCacheTTL)
	return entries, nil
}
