package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/categorias-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isUnavailable detecta fallos de conexión o de tiempo: el almacén no pudo atender la petición.
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 08xxx connection_exception, 53300 too_many_connections, 57P0x shutdown/cannot_connect_now
		return strings.HasPrefix(pgErr.Code, "08") || pgErr.Code == "53300" || strings.HasPrefix(pgErr.Code, "57P0")
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// wrapErr clasifica err y lo envuelve en *domain.PersistenceError. No reintenta.
func wrapErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		err = fmt.Errorf("%w: %w", domain.ErrDuplicate, err)
	case isUnavailable(err):
		err = fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return &domain.PersistenceError{Op: op, Err: err}
}
