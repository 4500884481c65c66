package user

import (
	"errors"
	"strings"

	usererrors "go-leave/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const emailUniqueConstraint = "uq_users_email"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == emailUniqueConstraint {
			return usererrors.ErrUserAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, emailUniqueConstraint) {
		return usererrors.ErrUserAlreadyExists
	}

	return err
}
