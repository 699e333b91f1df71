package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-achieve-portal/internal/logger"
)

// sessionRepository keeps the single session row. The table is constrained
// to id=1, so every save replaces whatever was there.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, token, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("sessions").
		Columns("id", "token", "user_id", "saved_at").
		Values(1, token, userID, time.Now().UTC()).
		Suffix("ON CONFLICT(id) DO UPDATE SET token = excluded.token, user_id = excluded.user_id, saved_at = excluded.saved_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: save session: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("user_id", userID).
			Msg("failed to upsert session row")
		return fmt.Errorf("%w: save session: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) LoadSession(ctx context.Context) (string, string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("token", "user_id").
		From("sessions").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return "", "", fmt.Errorf("%w: load session: %v", ErrBuildingSQLQuery, err)
	}

	var token, userID string
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&token, &userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", ErrSessionNotFound
		}
		log.Err(err).
			Str("func", "sessionRepository.LoadSession").
			Msg("failed to scan session row")
		return "", "", fmt.Errorf("%w: load session: %v", ErrScanningRow, err)
	}

	return token, userID, nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("sessions").Where(sq.Eq{"id": 1}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: clear session: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.ClearSession").
			Msg("failed to delete session row")
		return fmt.Errorf("%w: clear session: %v", ErrExecutingQuery, err)
	}

	return nil
}
