package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RudraNarayan94/MOK/internal/models"
)

type PracticeR struct {
	db QueryI
}

func NewPracticeRepository(db QueryI) *PracticeR {
	return &PracticeR{db: db}
}

func (p *PracticeR) CreateSession(ctx context.Context, session models.PracticeSession) error {
	query := `
		INSERT INTO practice_sessions (user_id, time_taken, speed, accuracy)
		VALUES ($1, $2, $3, $4)
	`
	_, err := p.db.ExecContext(ctx, query, session.UserID, session.TimeTaken, session.Speed, session.Accuracy)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}

type dailyAgg struct {
	TotalTime        int64   `db:"total_time"`
	LessonsCompleted int     `db:"lessons_completed"`
	TopSpeed         float64 `db:"top_speed"`
	AvgSpeed         float64 `db:"avg_speed"`
	TopAccuracy      float64 `db:"top_accuracy"`
	AvgAccuracy      float64 `db:"avg_accuracy"`
}

// RecomputeDaily rebuilds the daily rollup for (user, day) from raw
// sessions. Sessions with no rows for the day leave existing state
// untouched. Safe to run any number of times.
func (p *PracticeR) RecomputeDaily(ctx context.Context, userID int64, day models.Date) error {
	aggQuery := `
		SELECT
			COALESCE(SUM(time_taken), 0) AS total_time,
			COUNT(*) AS lessons_completed,
			COALESCE(MAX(speed), 0) AS top_speed,
			COALESCE(AVG(speed), 0) AS avg_speed,
			COALESCE(MAX(accuracy), 0) AS top_accuracy,
			COALESCE(AVG(accuracy), 0) AS avg_accuracy
		FROM practice_sessions
		WHERE user_id = $1 AND timestamp >= $2 AND timestamp < $3
	`

	var agg dailyAgg
	dayStart := day.Time
	dayEnd := day.AddDays(1).Time
	if err := p.db.GetContext(ctx, &agg, aggQuery, userID, dayStart, dayEnd); err != nil {
		return fmt.Errorf("failed to aggregate daily sessions: %w", err)
	}

	if agg.LessonsCompleted == 0 {
		return nil
	}

	upsert := `
		INSERT INTO daily_statistics
			(user_id, date, total_time, lessons_completed, top_speed, avg_speed, top_accuracy, avg_accuracy)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, date) DO UPDATE SET
			total_time = EXCLUDED.total_time,
			lessons_completed = EXCLUDED.lessons_completed,
			top_speed = EXCLUDED.top_speed,
			avg_speed = EXCLUDED.avg_speed,
			top_accuracy = EXCLUDED.top_accuracy,
			avg_accuracy = EXCLUDED.avg_accuracy
	`

	// time_taken is stored in ms, rollups hold whole seconds
	_, err := p.db.ExecContext(ctx, upsert,
		userID, day, agg.TotalTime/1000, agg.LessonsCompleted,
		agg.TopSpeed, agg.AvgSpeed, agg.TopAccuracy, agg.AvgAccuracy)
	if err != nil {
		return fmt.Errorf("failed to upsert daily statistics: %w", err)
	}
	return nil
}

type allTimeAgg struct {
	TotalTimeSpent        int64   `db:"total_time_spent"`
	TotalLessonsCompleted int     `db:"total_lessons_completed"`
	Days                  int     `db:"days"`
	TopSpeed              float64 `db:"top_speed"`
	AvgSpeed              float64 `db:"avg_speed"`
	TopAccuracy           float64 `db:"top_accuracy"`
	AvgAccuracy           float64 `db:"avg_accuracy"`
}

// RecomputeAllTime rebuilds the user's all-time rollup from daily
// rollups. Averages are means of per-day means, weighting every day
// equally regardless of how many sessions it had.
func (p *PracticeR) RecomputeAllTime(ctx context.Context, userID int64) error {
	aggQuery := `
		SELECT
			COALESCE(SUM(total_time), 0) AS total_time_spent,
			COALESCE(SUM(lessons_completed), 0) AS total_lessons_completed,
			COUNT(*) AS days,
			COALESCE(MAX(top_speed), 0) AS top_speed,
			COALESCE(AVG(avg_speed), 0) AS avg_speed,
			COALESCE(MAX(top_accuracy), 0) AS top_accuracy,
			COALESCE(AVG(avg_accuracy), 0) AS avg_accuracy
		FROM daily_statistics
		WHERE user_id = $1
	`

	var agg allTimeAgg
	if err := p.db.GetContext(ctx, &agg, aggQuery, userID); err != nil {
		return fmt.Errorf("failed to aggregate daily statistics: %w", err)
	}

	if agg.Days == 0 {
		return nil
	}

	upsert := `
		INSERT INTO all_time_statistics
			(user_id, total_time_spent, total_lessons_completed, top_speed, avg_speed, top_accuracy, avg_accuracy)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			total_time_spent = EXCLUDED.total_time_spent,
			total_lessons_completed = EXCLUDED.total_lessons_completed,
			top_speed = EXCLUDED.top_speed,
			avg_speed = EXCLUDED.avg_speed,
			top_accuracy = EXCLUDED.top_accuracy,
			avg_accuracy = EXCLUDED.avg_accuracy
	`

	_, err := p.db.ExecContext(ctx, upsert,
		userID, agg.TotalTimeSpent, agg.TotalLessonsCompleted,
		agg.TopSpeed, agg.AvgSpeed, agg.TopAccuracy, agg.AvgAccuracy)
	if err != nil {
		return fmt.Errorf("failed to upsert all-time statistics: %w", err)
	}
	return nil
}

func (p *PracticeR) DailyStats(ctx context.Context, userID int64, day models.Date) (models.DailyStatistics, error) {
	query := `
		SELECT user_id, date, total_time, lessons_completed, top_speed, avg_speed, top_accuracy, avg_accuracy
		FROM daily_statistics
		WHERE user_id = $1 AND date = $2
	`

	var stats models.DailyStatistics
	err := p.db.GetContext(ctx, &stats, query, userID, day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DailyStatistics{}, ErrNotFound
		}
		return models.DailyStatistics{}, fmt.Errorf("failed to get daily statistics: %w", err)
	}
	return stats, nil
}

func (p *PracticeR) AllTimeStats(ctx context.Context, userID int64) (models.AllTimeStatistics, error) {
	query := `
		SELECT user_id, total_time_spent, total_lessons_completed, top_speed, avg_speed, top_accuracy, avg_accuracy
		FROM all_time_statistics
		WHERE user_id = $1
	`

	var stats models.AllTimeStatistics
	err := p.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AllTimeStatistics{}, ErrNotFound
		}
		return models.AllTimeStatistics{}, fmt.Errorf("failed to get all-time statistics: %w", err)
	}
	return stats, nil
}

func (p *PracticeR) HasDailyStats(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM daily_statistics WHERE user_id = $1)`
	if err := p.db.GetContext(ctx, &exists, query, userID); err != nil {
		return false, fmt.Errorf("failed to check daily statistics: %w", err)
	}
	return exists, nil
}

func (p *PracticeR) DayRecorded(ctx context.Context, userID int64, day models.Date) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM daily_statistics WHERE user_id = $1 AND date = $2)`
	if err := p.db.GetContext(ctx, &exists, query, userID, day); err != nil {
		return false, fmt.Errorf("failed to check day: %w", err)
	}
	return exists, nil
}

func (p *PracticeR) DailyHistory(ctx context.Context, userID int64) ([]models.DailyStatistics, error) {
	query := `
		SELECT user_id, date, total_time, lessons_completed, top_speed, avg_speed, top_accuracy, avg_accuracy
		FROM daily_statistics
		WHERE user_id = $1
		ORDER BY date DESC
	`

	stats := make([]models.DailyStatistics, 0)
	if err := p.db.SelectContext(ctx, &stats, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get daily history: %w", err)
	}
	return stats, nil
}

// RankedUserIDs returns the ids of every user with a positive top
// speed, fastest first.
func (p *PracticeR) RankedUserIDs(ctx context.Context) ([]int64, error) {
	query := `
		SELECT user_id
		FROM all_time_statistics
		WHERE top_speed > 0
		ORDER BY top_speed DESC
	`

	ids := make([]int64, 0)
	if err := p.db.SelectContext(ctx, &ids, query); err != nil {
		return nil, fmt.Errorf("failed to get ranked users: %w", err)
	}
	return ids, nil
}

func (p *PracticeR) TopStats(ctx context.Context, key models.SortKey, limit int) ([]models.LeaderboardEntry, error) {
	var column string
	switch key {
	case models.SortByTopSpeed:
		column = "top_speed"
	case models.SortByAvgSpeed:
		column = "avg_speed"
	default:
		return nil, fmt.Errorf("unknown sort key %q", key)
	}

	query := fmt.Sprintf(`
		SELECT u.username AS username, a.%[1]s AS wpm
		FROM all_time_statistics a
		JOIN users u ON u.id = a.user_id
		WHERE a.%[1]s > 0
		ORDER BY a.%[1]s DESC
		LIMIT $1
	`, column)

	entries := make([]models.LeaderboardEntry, 0, limit)
	if err := p.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return entries, nil
}
