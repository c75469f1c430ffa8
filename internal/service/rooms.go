package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/RudraNarayan94/MOK/internal/models"
	"github.com/RudraNarayan94/MOK/internal/repository"
	"github.com/RudraNarayan94/MOK/pkg/validator"
	"go.uber.org/zap"
)

type RoomsRI interface {
	CreateRoom(ctx context.Context, code string, hostID int64, text string) (models.Room, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	RoomByCode(ctx context.Context, code string) (models.Room, error)
	ActiveRoomByCode(ctx context.Context, code string) (models.Room, error)
	DeactivateRoom(ctx context.Context, roomID int64) error
	EnsureParticipant(ctx context.Context, roomID, userID int64) error
	ParticipantExists(ctx context.Context, roomID, userID int64) (bool, error)
	UpdateResult(ctx context.Context, roomID, userID int64, wpm, accuracy *float64, finishedAt time.Time) error
	RoomResults(ctx context.Context, roomID int64) ([]models.RoomResult, error)
}

type ResultInput struct {
	WPM      *float64 `json:"wpm" validate:"omitempty,gte=0"`
	Accuracy *float64 `json:"accuracy" validate:"omitempty,gte=0,lte=100"`
}

const (
	roomCodeLength    = 8
	roomCodeCharset   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxCodeAttempts   = 10
	roomTextCacheTTL  = 5 * time.Minute
	roomBoardCacheTTL = 2 * time.Minute
)

type RoomsS struct {
	repo  RoomsRI
	cache CacheI
	log   *zap.Logger
}

func NewRoomsService(repo RoomsRI, cache CacheI, log *zap.Logger) *RoomsS {
	return &RoomsS{repo: repo, cache: cache, log: log}
}

// Create persists a room under a freshly generated code, regenerating
// on the rare collision. The unique constraint on rooms.code settles
// concurrent generators; the loser just draws again.
func (r *RoomsS) Create(ctx context.Context, hostID int64, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", invalidInput("text is required")
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateRoomCode(roomCodeLength)
		if err != nil {
			return "", err
		}

		exists, err := r.repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if exists {
			continue
		}

		room, err := r.repo.CreateRoom(ctx, code, hostID, text)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return "", err
		}
		return room.Code, nil
	}

	return "", fmt.Errorf("failed to generate a unique room code after %d attempts", maxCodeAttempts)
}

// Join is idempotent: joining a room twice leaves a single participant
// row and still succeeds.
func (r *RoomsS) Join(ctx context.Context, userID int64, code string) error {
	room, err := r.repo.ActiveRoomByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("room not found or is no longer active")
		}
		return err
	}

	return r.repo.EnsureParticipant(ctx, room.ID, userID)
}

func (r *RoomsS) Text(ctx context.Context, code string) (string, error) {
	cacheKey := "room_text:" + code

	var text string
	if r.cache.Get(ctx, cacheKey, &text) {
		return text, nil
	}

	room, err := r.repo.RoomByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", notFound("room not found")
		}
		return "", err
	}

	r.cache.Set(ctx, cacheKey, room.Text, roomTextCacheTTL)
	return room.Text, nil
}

func (r *RoomsS) SubmitResult(ctx context.Context, userID int64, code string, in ResultInput) error {
	if err := validator.ValidateStruct(in); err != nil {
		return invalidInput("%v", err)
	}

	room, err := r.repo.RoomByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("room not found")
		}
		return err
	}

	joined, err := r.repo.ParticipantExists(ctx, room.ID, userID)
	if err != nil {
		return err
	}
	if !joined {
		return invalidInput("you are not a participant in this room")
	}

	return r.repo.UpdateResult(ctx, room.ID, userID, in.WPM, in.Accuracy, time.Now())
}

func (r *RoomsS) Leaderboard(ctx context.Context, code string) ([]models.RoomResult, error) {
	cacheKey := "room_leaderboard:" + code

	var results []models.RoomResult
	if r.cache.Get(ctx, cacheKey, &results) {
		return results, nil
	}

	room, err := r.repo.RoomByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("room not found")
		}
		return nil, err
	}

	results, err = r.repo.RoomResults(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, notFound("no results submitted yet")
	}

	r.cache.Set(ctx, cacheKey, results, roomBoardCacheTTL)
	return results, nil
}

func generateRoomCode(length int) (string, error) {
	code := make([]byte, length)
	max := big.NewInt(int64(len(roomCodeCharset)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}
		code[i] = roomCodeCharset[n.Int64()]
	}
	return string(code), nil
}
