package infra

import (
	"errors"
	"log/slog"

	"field-booking/internal/pkg/errs"
	"field-booking/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err (DB_FAILURE unless kind is given) and marks it
// with the matching errs sentinel so use cases can test it with errs.Is.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	if k == KindDBFailure {
		slog.Error("Repository error: "+msg, slog.String("kind", string(k)), slog.Any("error", err))
	} else {
		slog.Debug("Repository error: "+msg, slog.String("kind", string(k)))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	repoErr := RepositoryError{Kind: k, Constraint: pgconv.ConstraintName(err), msg: msg, err: err}
	return errs.Mark(repoErr, sentinelFor(k))
}

// ClassifyPgErr picks the kind from the driver error and wraps it.
func ClassifyPgErr(msg string, err error) error {
	switch {
	case pgconv.IsNoRows(err):
		return WrapRepoErr(msg, err, KindNotFound)
	case pgconv.IsUniqueViolation(err):
		return WrapRepoErr(msg, err, KindDuplicateKey)
	case pgconv.IsForeignKeyViolation(err):
		return WrapRepoErr(msg, err, KindForeignKeyViolated)
	default:
		return WrapRepoErr(msg, err)
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func sentinelFor(kind RepositoryErrorKind) error {
	switch kind {
	case KindNotFound:
		return errs.ErrRecordNotFound
	case KindDuplicateKey:
		return errs.ErrDuplicateRecord
	case KindForeignKeyViolated:
		return errs.ErrRecordReferenced
	default:
		return errs.ErrDatabaseOperationFailed
	}
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)
