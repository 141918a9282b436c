package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStore_Nil(t *testing.T) {
	assert.NoError(t, FromStore("repo.Get", nil))
}

func TestFromStore_NoRows(t *testing.T) {
	err := FromStore("repo.Get", pgx.ErrNoRows)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "repo.Get")
}

func TestFromStore_UniqueViolation(t *testing.T) {
	err := FromStore("repo.Create", &pgconn.PgError{Code: "23505"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestFromStore_ConstraintViolations(t *testing.T) {
	// Нарушения внешнего ключа и check-ограничения считаются ошибками запроса
	for _, code := range []string{"23503", "23514"} {
		err := FromStore("repo.Create", &pgconn.PgError{Code: code})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestFromStore_ContextErrors(t *testing.T) {
	for _, cause := range []error{context.Canceled, context.DeadlineExceeded} {
		err := FromStore("repo.Get", cause)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrStore)
		assert.NotErrorIs(t, err, ErrNotFound)
	}
}

func TestFromStore_UnknownError(t *testing.T) {
	err := FromStore("repo.Get", fmt.Errorf("connection reset"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStore)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestWrap(t *testing.T) {
	err := Wrap("repo.Get", ErrNotFound)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "repo.Get: not found", err.Error())
}

func TestRollbackFailed_DistinctFromStore(t *testing.T) {
	assert.False(t, errors.Is(ErrRollbackFailed, ErrStore))
	assert.False(t, errors.Is(ErrStore, ErrRollbackFailed))
}
