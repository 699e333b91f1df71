package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/models"
)

// handoffRepository keeps the single draft-handoff slot. The draft activity
// is stored as a JSON document; the slot survives restarts so an interrupted
// edit can resume.
type handoffRepository struct {
	*DB
	logger *logger.Logger
}

func NewHandoffRepository(db *DB, logger *logger.Logger) HandoffRepository {
	return &handoffRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *handoffRepository) SaveHandoff(ctx context.Context, handoff models.DraftHandoff) error {
	log := logger.FromContext(ctx)

	if handoff.SavedAt.IsZero() {
		handoff.SavedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(handoff.Activity)
	if err != nil {
		return fmt.Errorf("encode draft handoff: %w", err)
	}

	query, args, err := sq.Insert("draft_handoff").
		Columns("id", "activity", "saved_at").
		Values(1, string(payload), handoff.SavedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET activity = excluded.activity, saved_at = excluded.saved_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: save handoff: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "handoffRepository.SaveHandoff").
			Str("activity_id", handoff.Activity.ID).
			Msg("failed to upsert draft handoff slot")
		return fmt.Errorf("%w: save handoff: %v", ErrExecutingQuery, err)
	}

	return nil
}

func (r *handoffRepository) LoadHandoff(ctx context.Context) (models.DraftHandoff, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("activity", "saved_at").
		From("draft_handoff").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.DraftHandoff{}, fmt.Errorf("%w: load handoff: %v", ErrBuildingSQLQuery, err)
	}

	var payload string
	var savedAt time.Time
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&payload, &savedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DraftHandoff{}, ErrHandoffNotFound
		}
		log.Err(err).
			Str("func", "handoffRepository.LoadHandoff").
			Msg("failed to scan draft handoff row")
		return models.DraftHandoff{}, fmt.Errorf("%w: load handoff: %v", ErrScanningRow, err)
	}

	var handoff models.DraftHandoff
	if err = json.Unmarshal([]byte(payload), &handoff.Activity); err != nil {
		return models.DraftHandoff{}, fmt.Errorf("decode draft handoff: %w", err)
	}
	handoff.SavedAt = savedAt

	return handoff, nil
}

func (r *handoffRepository) ClearHandoff(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("draft_handoff").Where(sq.Eq{"id": 1}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: clear handoff: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "handoffRepository.ClearHandoff").
			Msg("failed to delete draft handoff row")
		return fmt.Errorf("%w: clear handoff: %v", ErrExecutingQuery, err)
	}

	return nil
}
