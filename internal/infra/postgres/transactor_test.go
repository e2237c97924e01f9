package postgres

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock
}

func TestTransactor_WithinTx(t *testing.T) {
	t.Run("commits and hands the tx to repositories", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE users").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		err := NewTransactor(mock).WithinTx(context.Background(), func(ctx context.Context) error {
			exec := Executor(ctx, nil)
			require.NotNil(t, exec)
			_, err := exec.Exec(ctx, "UPDATE users SET is_active = true")
			return err
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := NewTransactor(mock).WithinTx(context.Background(), func(ctx context.Context) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		err := NewTransactor(mock).WithinTx(context.Background(), func(ctx context.Context) error {
			t.Fatal("fn must not run")
			return nil
		})

		assert.ErrorContains(t, err, "begin tx")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nested call joins the outer tx", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		tr := NewTransactor(mock)
		calls := 0
		err := tr.WithinTx(context.Background(), func(ctx context.Context) error {
			return tr.WithinTx(ctx, func(ctx context.Context) error {
				calls++
				return nil
			})
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestExecutor_WithoutTx(t *testing.T) {
	mock := newMockPool(t)
	assert.Equal(t, DBTX(mock), Executor(context.Background(), mock))
}
