package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/vocab-deck-bot/internal/domain/entities"
)

func TestUserRepository_Save(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	user := entities.NewUser(42, 100)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(int64(42), int64(100), true, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created"}).AddRow(true))

	created, err := repo.Save(context.Background(), user)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Exists(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.Exists(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`FROM users`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
