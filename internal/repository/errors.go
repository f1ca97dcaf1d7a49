package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the row does not exist or belongs to another owner.
	ErrNotFound = errors.New("registro no encontrado")

	// ErrEnUso means a delete was blocked by rows that still reference the record.
	ErrEnUso = errors.New("el registro está en uso")

	// ErrDuplicado means a unique constraint rejected the write.
	ErrDuplicado = errors.New("el registro ya existe")
)

// PostgreSQL SQLSTATE codes.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translate maps driver errors onto the package sentinels. Unknown errors are
// returned unchanged so callers still see the store failure.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrEnUso
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicado
	}

	// TranslateError may be off (e.g. a *gorm.DB built by a caller); fall back to pgconn.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return ErrEnUso
		case pgUniqueViolation:
			return ErrDuplicado
		}
	}

	// SQLite reports ON DELETE RESTRICT as a trigger constraint (1811), which the
	// gorm sqlite translator does not map.
	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) && sqErr.Code == sqlite3.ErrConstraint {
		switch sqErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintTrigger:
			return ErrEnUso
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ErrDuplicado
		}
	}
	return err
}

// conn returns tx when the caller is inside a transaction, r.db otherwise.
func conn(ctx context.Context, db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// deleted turns a delete result into ErrNotFound when no row matched.
func deleted(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
