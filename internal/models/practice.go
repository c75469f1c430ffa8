package models

import "time"

type PracticeSession struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	TimeTaken int64     `db:"time_taken"` // ms
	Speed     float64   `db:"speed"`
	Accuracy  float64   `db:"accuracy"`
	Timestamp time.Time `db:"timestamp"`
}

type DailyStatistics struct {
	UserID           int64   `db:"user_id" json:"-"`
	Date             Date    `db:"date" json:"date"`
	TotalTime        int64   `db:"total_time" json:"total_time"` // seconds
	LessonsCompleted int     `db:"lessons_completed" json:"lessons_completed"`
	TopSpeed         float64 `db:"top_speed" json:"top_speed"`
	AvgSpeed         float64 `db:"avg_speed" json:"avg_speed"`
	TopAccuracy      float64 `db:"top_accuracy" json:"top_accuracy"`
	AvgAccuracy      float64 `db:"avg_accuracy" json:"avg_accuracy"`
}

type AllTimeStatistics struct {
	UserID                int64   `db:"user_id" json:"-"`
	TotalTimeSpent        int64   `db:"total_time_spent" json:"total_time_spent"`
	TotalLessonsCompleted int     `db:"total_lessons_completed" json:"total_lessons_completed"`
	TopSpeed              float64 `db:"top_speed" json:"top_speed"`
	AvgSpeed              float64 `db:"avg_speed" json:"avg_speed"`
	TopAccuracy           float64 `db:"top_accuracy" json:"top_accuracy"`
	AvgAccuracy           float64 `db:"avg_accuracy" json:"avg_accuracy"`
}

type LeaderboardEntry struct {
	Username string  `db:"username" json:"username"`
	WPM      float64 `db:"wpm" json:"wpm"`
}

type RankInfo struct {
	WorldRank      int     `json:"world_rank"`
	RankPercentile float64 `json:"rank_percentile"`
}

type TextSnippet struct {
	Index   int    `db:"idx" json:"index"`
	Content string `db:"content" json:"content"`
}

// SortKey is the closed set of leaderboard orderings.
type SortKey string

const (
	SortByTopSpeed SortKey = "top_speed"
	SortByAvgSpeed SortKey = "avg_speed"
)

func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortByTopSpeed:
		return SortByTopSpeed, true
	case SortByAvgSpeed:
		return SortByAvgSpeed, true
	}
	return "", false
}
