package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/RudraNarayan94/MOK/internal/models"
	mock_repository "github.com/RudraNarayan94/MOK/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoomsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *RoomsR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &RoomsR{db: db}
}

func TestRoomsR_CreateRoom(t *testing.T) {
	t.Parallel()

	created := models.Room{
		ID:       1,
		Code:     "A1B2C3D4",
		HostID:   7,
		Text:     "the quick brown fox",
		IsActive: true,
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.Room
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&created), gomock.Any(), "A1B2C3D4", int64(7), "the quick brown fox").
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.Room) = created
						return nil
					})
			},
			want: created,
		},
		{
			name: "failed code collision",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr: ErrDuplicate,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newRoomsMock(t, ctrl, tt.f)

			room, err := repo.CreateRoom(context.Background(), "A1B2C3D4", 7, "the quick brown fox")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, room)
		})
	}
}

func TestRoomsR_ActiveRoomByCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "A1B2C3D4").
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Contains(t, query, "is_active = TRUE")
						*dest.(*models.Room) = models.Room{ID: 1, Code: "A1B2C3D4", IsActive: true}
						return nil
					})
			},
		},
		{
			name: "failed inactive or missing",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
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

			repo := newRoomsMock(t, ctrl, tt.f)

			_, err := repo.ActiveRoomByCode(context.Background(), "A1B2C3D4")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRoomsR_EnsureParticipant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(1), int64(7)).Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newRoomsMock(t, ctrl, tt.f)

			err := repo.EnsureParticipant(context.Background(), 1, 7)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRoomsR_UpdateResult(t *testing.T) {
	t.Parallel()

	wpm := 84.5
	finishedAt := time.Now()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// accuracy is nil: COALESCE in the query keeps the stored value
	repo := newRoomsMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(1), int64(7), &wpm, (*float64)(nil), finishedAt).
			Return(nil, nil)
	})

	require.NoError(t, repo.UpdateResult(context.Background(), 1, 7, &wpm, nil, finishedAt))
}

func TestRoomsR_RoomResults(t *testing.T) {
	t.Parallel()

	results := []models.RoomResult{
		{Username: "fast", WPM: 95, Accuracy: 98, FinishedAt: time.Now()},
		{Username: "steady", WPM: 80, Accuracy: 0, FinishedAt: time.Now()},
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    []models.RoomResult
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(1)).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*[]models.RoomResult) = results
						return nil
					})
			},
			want: results,
		},
		{
			name: "failed query",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("query error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newRoomsMock(t, ctrl, tt.f)

			got, err := repo.RoomResults(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
