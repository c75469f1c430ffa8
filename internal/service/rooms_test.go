package service

import (
	"context"
	"errors"
	"testing"

	"github.com/RudraNarayan94/MOK/internal/models"
	"github.com/RudraNarayan94/MOK/internal/repository"
	mock_service "github.com/RudraNarayan94/MOK/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type roomsMocks struct {
	repo  *mock_service.MockRoomsRI
	cache *mock_service.MockCacheI
}

func newRoomsServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(roomsMocks)) *RoomsS {
	m := roomsMocks{
		repo:  mock_service.NewMockRoomsRI(ctrl),
		cache: mock_service.NewMockCacheI(ctrl),
	}
	if setupMock != nil {
		setupMock(m)
	}

	return &RoomsS{repo: m.repo, cache: m.cache, log: zap.NewNop()}
}

func TestRoomsS_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		f       func(roomsMocks)
		wantErr error
	}{
		{
			name: "success",
			text: "the quick brown fox",
			f: func(m roomsMocks) {
				m.repo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), int64(7), "the quick brown fox").
					DoAndReturn(func(ctx context.Context, code string, hostID int64, text string) (models.Room, error) {
						return models.Room{ID: 1, Code: code, HostID: hostID, Text: text, IsActive: true}, nil
					})
			},
		},
		{
			name: "success after code collision",
			text: "the quick brown fox",
			f: func(m roomsMocks) {
				m.repo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), int64(7), gomock.Any()).
					DoAndReturn(func(ctx context.Context, code string, hostID int64, text string) (models.Room, error) {
						return models.Room{ID: 1, Code: code, IsActive: true}, nil
					})
			},
		},
		{
			name: "success after insert race",
			text: "the quick brown fox",
			f: func(m roomsMocks) {
				m.repo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
				m.repo.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Room{}, repository.ErrDuplicate)
				m.repo.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, code string, hostID int64, text string) (models.Room, error) {
						return models.Room{ID: 1, Code: code, IsActive: true}, nil
					})
			},
		},
		{
			name:    "failed blank text",
			text:    "   ",
			wantErr: ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newRoomsServiceMock(t, ctrl, tt.f)

			code, err := svc.Create(context.Background(), 7, tt.text)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, code, roomCodeLength)
			for _, c := range code {
				assert.Contains(t, roomCodeCharset, string(c))
			}
		})
	}
}

func TestRoomsS_Join(t *testing.T) {
	t.Parallel()

	room := models.Room{ID: 1, Code: "A1B2C3D4", IsActive: true}

	tests := []struct {
		name    string
		f       func(roomsMocks)
		wantErr error
	}{
		{
			name: "success",
			f: func(m roomsMocks) {
				m.repo.EXPECT().ActiveRoomByCode(gomock.Any(), "A1B2C3D4").Return(room, nil)
				m.repo.EXPECT().EnsureParticipant(gomock.Any(), int64(1), int64(7)).Return(nil)
			},
		},
		{
			name: "failed inactive room",
			f: func(m roomsMocks) {
				m.repo.EXPECT().ActiveRoomByCode(gomock.Any(), "A1B2C3D4").Return(models.Room{}, repository.ErrNotFound)
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

			svc := newRoomsServiceMock(t, ctrl, tt.f)

			err := svc.Join(context.Background(), 7, "A1B2C3D4")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRoomsS_Text(t *testing.T) {
	t.Parallel()

	room := models.Room{ID: 1, Code: "A1B2C3D4", Text: "the quick brown fox", IsActive: true}

	tests := []struct {
		name    string
		f       func(roomsMocks)
		want    string
		wantErr error
	}{
		{
			name: "success from repository",
			f: func(m roomsMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "room_text:A1B2C3D4", gomock.Any()).Return(false)
				m.repo.EXPECT().RoomByCode(gomock.Any(), "A1B2C3D4").Return(room, nil)
				m.cache.EXPECT().Set(gomock.Any(), "room_text:A1B2C3D4", room.Text, roomTextCacheTTL)
			},
			want: "the quick brown fox",
		},
		{
			name: "success from cache",
			f: func(m roomsMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "room_text:A1B2C3D4", gomock.Any()).
					DoAndReturn(func(ctx context.Context, key string, dest any) bool {
						*dest.(*string) = "cached text"
						return true
					})
			},
			want: "cached text",
		},
		{
			name: "failed unknown room",
			f: func(m roomsMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "room_text:A1B2C3D4", gomock.Any()).Return(false)
				m.repo.EXPECT().RoomByCode(gomock.Any(), "A1B2C3D4").Return(models.Room{}, repository.ErrNotFound)
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

			svc := newRoomsServiceMock(t, ctrl, tt.f)

			got, err := svc.Text(context.Background(), "A1B2C3D4")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoomsS_SubmitResult(t *testing.T) {
	t.Parallel()

	room := models.Room{ID: 1, Code: "A1B2C3D4", IsActive: true}
	in := ResultInput{WPM: ptrFloat64(84.5), Accuracy: ptrFloat64(97)}

	tests := []struct {
		name    string
		in      ResultInput
		f       func(roomsMocks)
		wantErr error
	}{
		{
			name: "success",
			in:   in,
			f: func(m roomsMocks) {
				m.repo.EXPECT().RoomByCode(gomock.Any(), "A1B2C3D4").Return(room, nil)
				m.repo.EXPECT().ParticipantExists(gomock.Any(), int64(1), int64(7)).Return(true, nil)
				m.repo.EXPECT().UpdateResult(gomock.Any(), int64(1), int64(7), in.WPM, in.Accuracy, gomock.Any()).Return(nil)
			},
		},
		{
			name:    "failed negative wpm",
			in:      ResultInput{WPM: ptrFloat64(-1)},
			wantErr: ErrInvalidInput,
		},
		{
			name: "failed unknown room",
			in:   in,
			f: func(m roomsMocks) {
				m.repo.EXPECT().RoomByCode(gomock.Any(), "A1B2C3D4").Return(models.Room{}, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "failed not a participant",
			in:   in,
			f: func(m roomsMocks) {
				m.repo.EXPECT().RoomByCode(gomock.Any(), "A1B2C3D4").Return(room, nil)
				m.repo.EXPECT().ParticipantExists(gomock.Any(), int64(1), int64(7)).Return(false, nil)
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

			svc := newRoomsServiceMock(t, ctrl, tt.f)

			err := svc.SubmitResult(context.Background(), 7, "A1B2C3D4", tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRoomsS_Leaderboard(t *testing.T) {
	t.Parallel()

	room := models.Room{ID: 1, Code: "A1B2C3D4", IsActive: true}
	results := []models.RoomResult{
		{Username: "fast", WPM: 95, Accuracy: 98},
		{Username: "steady", WPM: 80, Accuracy: 92},
	}

	tests := []struct {
		name    string
		f       func(roomsMocks)
		want    []models.RoomResult
		wantErr error
	}{
		{
			name: "success",
			f: func(m roomsMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "room_leaderboard:A1B2C3D4", gomock.Any()).Return(false)
				m.repo.EXPECT().RoomByCode(gomock.Any(), "A1B2C3D4").Return(room, nil)
				m.repo.EXPECT().RoomResults(gomock.Any(), int64(1)).Return(results, nil)
				m.cache.EXPECT().Set(gomock.Any(), "room_leaderboard:A1B2C3D4", results, roomBoardCacheTTL)
			},
			want: results,
		},
		{
			name: "failed no results yet",
			f: func(m roomsMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "room_leaderboard:A1B2C3D4", gomock.Any()).Return(false)
				m.repo.EXPECT().RoomByCode(gomock.Any(), "A1B2C3D4").Return(room, nil)
				m.repo.EXPECT().RoomResults(gomock.Any(), int64(1)).Return([]models.RoomResult{}, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "failed query",
			f: func(m roomsMocks) {
				m.cache.EXPECT().Get(gomock.Any(), "room_leaderboard:A1B2C3D4", gomock.Any()).Return(false)
				m.repo.EXPECT().RoomByCode(gomock.Any(), "A1B2C3D4").Return(room, nil)
				m.repo.EXPECT().RoomResults(gomock.Any(), int64(1)).Return(nil, errors.New("query error"))
			},
			wantErr: errors.New("query error"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newRoomsServiceMock(t, ctrl, tt.f)

			got, err := svc.Leaderboard(context.Background(), "A1B2C3D4")
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
