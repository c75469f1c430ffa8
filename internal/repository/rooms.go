package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/RudraNarayan94/MOK/internal/models"
)

type RoomsR struct {
	db QueryI
}

func NewRoomsRepository(db QueryI) *RoomsR {
	return &RoomsR{db: db}
}

func (r *RoomsR) CreateRoom(ctx context.Context, code string, hostID int64, text string) (models.Room, error) {
	query := `
		INSERT INTO rooms (code, host_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, code, host_id, text, is_active, created_at
	`

	var room models.Room
	err := r.db.GetContext(ctx, &room, query, code, hostID, text)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Room{}, ErrDuplicate
		}
		return models.Room{}, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

func (r *RoomsR) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM rooms WHERE code = $1)`
	if err := r.db.GetContext(ctx, &exists, query, code); err != nil {
		return false, fmt.Errorf("failed to check room code: %w", err)
	}
	return exists, nil
}

func (r *RoomsR) RoomByCode(ctx context.Context, code string) (models.Room, error) {
	query := `
		SELECT id, code, host_id, text, is_active, created_at
		FROM rooms
		WHERE code = $1
	`
	return r.getRoom(ctx, query, code)
}

func (r *RoomsR) ActiveRoomByCode(ctx context.Context, code string) (models.Room, error) {
	query := `
		SELECT id, code, host_id, text, is_active, created_at
		FROM rooms
		WHERE code = $1 AND is_active = TRUE
	`
	return r.getRoom(ctx, query, code)
}

func (r *RoomsR) getRoom(ctx context.Context, query, code string) (models.Room, error) {
	var room models.Room
	err := r.db.GetContext(ctx, &room, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Room{}, ErrNotFound
		}
		return models.Room{}, fmt.Errorf("failed to get room: %w", err)
	}
	return room, nil
}

func (r *RoomsR) DeactivateRoom(ctx context.Context, roomID int64) error {
	query := `UPDATE rooms SET is_active = FALSE WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, roomID); err != nil {
		return fmt.Errorf("failed to deactivate room: %w", err)
	}
	return nil
}

// EnsureParticipant joins the user to the room. Joining twice is a
// no-op: the unique (room, user) constraint resolves the race and the
// conflict is swallowed.
func (r *RoomsR) EnsureParticipant(ctx context.Context, roomID, userID int64) error {
	query := `
		INSERT INTO participants (room_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (room_id, user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, roomID, userID); err != nil {
		return fmt.Errorf("failed to join room: %w", err)
	}
	return nil
}

func (r *RoomsR) ParticipantExists(ctx context.Context, roomID, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM participants WHERE room_id = $1 AND user_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, roomID, userID); err != nil {
		return false, fmt.Errorf("failed to check participant: %w", err)
	}
	return exists, nil
}

// UpdateResult partially updates the participant's result: nil fields
// keep their stored value.
func (r *RoomsR) UpdateResult(ctx context.Context, roomID, userID int64, wpm, accuracy *float64, finishedAt time.Time) error {
	query := `
		UPDATE participants
		SET wpm = COALESCE($3, wpm),
			accuracy = COALESCE($4, accuracy),
			finished_at = $5
		WHERE room_id = $1 AND user_id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, roomID, userID, wpm, accuracy, finishedAt); err != nil {
		return fmt.Errorf("failed to update result: %w", err)
	}
	return nil
}

func (r *RoomsR) RoomResults(ctx context.Context, roomID int64) ([]models.RoomResult, error) {
	query := `
		SELECT u.username AS username, p.wpm AS wpm,
			COALESCE(p.accuracy, 0) AS accuracy, p.finished_at AS finished_at
		FROM participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.room_id = $1 AND p.wpm IS NOT NULL
		ORDER BY p.wpm DESC
	`

	results := make([]models.RoomResult, 0)
	if err := r.db.SelectContext(ctx, &results, query, roomID); err != nil {
		return nil, fmt.Errorf("failed to get room results: %w", err)
	}
	return results, nil
}
