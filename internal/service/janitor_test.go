package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mock_service "github.com/aliskhannn/vocab-deck-bot/internal/service/mock"
)

func TestSessionJanitor_Sweep(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		result  int64
		err     error
		want    int64
		wantErr bool
	}{
		{name: "abandons stale sessions", result: 2, want: 2},
		{name: "nothing to do", result: 0, want: 0},
		{name: "repository error", err: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mock_service.NewMockQuizRepository(gomock.NewController(t))
			repo.EXPECT().AbandonStale(gomock.Any(), now.Add(-24*time.Hour)).Return(tt.result, tt.err)

			j := NewSessionJanitor(repo, 24*time.Hour, "", zap.NewNop())
			j.now = func() time.Time { return now }

			got, err := j.Sweep(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionJanitor_StartRejectsBadSchedule(t *testing.T) {
	t.Parallel()

	repo := mock_service.NewMockQuizRepository(gomock.NewController(t))
	j := NewSessionJanitor(repo, time.Hour, "not a schedule", zap.NewNop())

	err := j.Start(context.Background())
	assert.ErrorContains(t, err, "add cron job")
}

func TestSessionJanitor_StartStopsWithContext(t *testing.T) {
	t.Parallel()

	repo := mock_service.NewMockQuizRepository(gomock.NewController(t))
	j := NewSessionJanitor(repo, time.Hour, DefaultJanitorSchedule, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, j.Start(ctx))
}
