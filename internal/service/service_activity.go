package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-achieve-portal/internal/adapter"
	"github.com/MKhiriev/go-achieve-portal/internal/filter"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/store"
	"github.com/MKhiriev/go-achieve-portal/internal/validators"
	"github.com/MKhiriev/go-achieve-portal/models"
)

type activityService struct {
	adapter   adapter.ActivityAPI
	handoff   store.HandoffRepository
	validator validators.Validator
	logger    *logger.Logger

	mu       sync.RWMutex
	cache    []models.Activity
	selected *models.Activity
}

func NewActivityService(activityAPI adapter.ActivityAPI, handoff store.HandoffRepository, validator validators.Validator, log *logger.Logger) ActivityService {
	return &activityService{
		adapter:   activityAPI,
		handoff:   handoff,
		validator: validator,
		logger:    log,
	}
}

// Refresh replaces the cache with the backend's current list. Overlapping
// refreshes are not coordinated: the last response to arrive wins.
func (s *activityService) Refresh(ctx context.Context) ([]models.Activity, error) {
	list, err := s.adapter.GetAllActivities(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	s.mu.Lock()
	s.cache = list
	s.refreshSelectionLocked()
	s.mu.Unlock()

	return s.List(), nil
}

func (s *activityService) RefreshArchived(ctx context.Context) ([]models.Activity, error) {
	list, err := s.adapter.GetArchived(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return list, nil
}

func (s *activityService) List() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Activity, len(s.cache))
	copy(out, s.cache)
	return out
}

func (s *activityService) Filtered(c filter.Criteria) []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter.Apply(s.cache, c)
}

func (s *activityService) Select(id string) (models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cache {
		if s.cache[i].ID == id {
			selected := s.cache[i]
			s.selected = &selected
			return selected, nil
		}
	}
	return models.Activity{}, ErrActivityNotInCache
}

func (s *activityService) Selected() (models.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return models.Activity{}, false
	}
	return *s.selected, true
}

func (s *activityService) ClearSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

func (s *activityService) Submit(ctx context.Context, sub models.Submission) (models.Activity, error) {
	sub.SaveStatus = models.SaveStatusComplete
	if err := s.validator.Validate(ctx, sub); err != nil {
		return models.Activity{}, err
	}

	var (
		saved models.Activity
		err   error
	)
	if sub.ID == "" {
		saved, err = s.adapter.AddActivity(ctx, sub)
	} else {
		saved, err = s.adapter.UpdateActivity(ctx, sub)
	}
	if err != nil {
		return models.Activity{}, mapAdapterError(err)
	}

	// A finalized record ends any draft edit in progress: the handoff slot
	// is cleared here the same way SaveDraft clears it.
	if clearErr := s.handoff.ClearHandoff(ctx); clearErr != nil {
		s.logger.Warn().Err(clearErr).Str("func", "activityService.Submit").Msg("could not clear handoff slot")
	}

	s.logger.Info().Str("func", "activityService.Submit").Str("activity_id", saved.ID).Msg("submission saved")
	return saved, nil
}

func (s *activityService) Stats(ctx context.Context) (models.ActivityStats, error) {
	stats, err := s.adapter.GetActivityStats(ctx)
	if err != nil {
		return models.ActivityStats{}, mapAdapterError(err)
	}
	return stats, nil
}

func (s *activityService) Recent(ctx context.Context) ([]models.RecentAchievement, error) {
	recent, err := s.adapter.GetRecentAchievements(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return recent, nil
}

func (s *activityService) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.cache {
		if s.cache[i].ID == id {
			return true
		}
	}
	return false
}

// ApplyStatusPatch is the server-confirmed patch operation: it mutates the
// cached record in place and mirrors the change into an open detail
// selection with the same id.
func (s *activityService) ApplyStatusPatch(id string, status models.Status, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.cache {
		if s.cache[i].ID == id {
			s.cache[i].Status = status
			s.cache[i].ReasonForRejection = reason
			found = true
			break
		}
	}
	if found && s.selected != nil && s.selected.ID == id {
		s.selected.Status = status
		s.selected.ReasonForRejection = reason
	}
	return found
}

func (s *activityService) Splice(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cache {
		if s.cache[i].ID == id {
			s.cache = append(s.cache[:i], s.cache[i+1:]...)
			if s.selected != nil && s.selected.ID == id {
				s.selected = nil
			}
			return true
		}
	}
	return false
}

// refreshSelectionLocked re-points the detail selection at the refreshed
// record, or drops it when the record is gone. Caller holds mu.
func (s *activityService) refreshSelectionLocked() {
	if s.selected == nil {
		return
	}
	for i := range s.cache {
		if s.cache[i].ID == s.selected.ID {
			selected := s.cache[i]
			s.selected = &selected
			return
		}
	}
	s.selected = nil
}
