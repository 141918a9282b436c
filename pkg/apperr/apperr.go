package apperr

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Сентинельные виды ошибок. Слои выше проверяют их через errors.Is
// и отображают на HTTP-статусы.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrStore      = errors.New("store failure")
	// ErrRollbackFailed — компенсация после захвата тревоги не прошла.
	// Общество остаётся помеченным как горящее без назначенной станции,
	// поэтому этот вид обязан быть отличим от обычного ErrStore.
	ErrRollbackFailed = errors.New("rollback failed")
)

// Wrap оборачивает ошибку с контекстом операции
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// FromStore переводит ошибку хранилища в сентинельный вид
func FromStore(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %v: %w", op, err, ErrStore)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrConflict)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrValidation)
		}
	}
	return fmt.Errorf("%s: %v: %w", op, err, ErrStore)
}
