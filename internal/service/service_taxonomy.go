package service

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-achieve-portal/internal/adapter"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/session"
	"github.com/MKhiriev/go-achieve-portal/models"
)

type taxonomyService struct {
	admin    adapter.AdminAPI
	criteria adapter.CriteriaAPI
	session  *session.Context
	logger   *logger.Logger

	// subCache backs the local delete guard for main criteria. Refreshed on
	// every SubCriteria call.
	mu       sync.RWMutex
	subCache []models.SubCriterion
}

func NewTaxonomyService(adminAPI adapter.AdminAPI, criteriaAPI adapter.CriteriaAPI, sessionCtx *session.Context, log *logger.Logger) TaxonomyService {
	return &taxonomyService{
		admin:    adminAPI,
		criteria: criteriaAPI,
		session:  sessionCtx,
		logger:   log,
	}
}

// ---- criteria ----

func (t *taxonomyService) MainCriteria(ctx context.Context) ([]models.MainCriterion, error) {
	list, err := t.criteria.GetMainCriteria(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return list, nil
}

func (t *taxonomyService) AddMainCriterion(ctx context.Context, req models.AddMainCriterionRequest) (models.MainCriterion, error) {
	if !t.session.IsAdmin() {
		return models.MainCriterion{}, ErrNotAdmin
	}
	if strings.TrimSpace(req.Name) == "" {
		return models.MainCriterion{}, ErrEmptyCriterionName
	}

	created, err := t.criteria.AddMainCriterion(ctx, req)
	if err != nil {
		return models.MainCriterion{}, mapAdapterError(err)
	}
	return created, nil
}

func (t *taxonomyService) UpdateMainCriterion(ctx context.Context, req models.UpdateMainCriterionRequest) (models.MainCriterion, error) {
	if !t.session.IsAdmin() {
		return models.MainCriterion{}, ErrNotAdmin
	}
	if strings.TrimSpace(req.Name) == "" {
		return models.MainCriterion{}, ErrEmptyCriterionName
	}

	updated, err := t.criteria.UpdateMainCriterion(ctx, req)
	if err != nil {
		return models.MainCriterion{}, mapAdapterError(err)
	}
	return updated, nil
}

// DeleteMainCriterion refuses locally while any cached sub criterion still
// references the main criterion, before any confirmation or network call.
func (t *taxonomyService) DeleteMainCriterion(ctx context.Context, id string, confirm func() bool) error {
	if !t.session.IsAdmin() {
		return ErrNotAdmin
	}
	if t.referencedBySubCriteria(id) {
		return ErrCriterionInUse
	}
	if confirm != nil && !confirm() {
		return ErrConfirmationDeclined
	}

	if err := t.criteria.DeleteMainCriterion(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	t.logger.Info().Str("func", "taxonomyService.DeleteMainCriterion").Str("criterion_id", id).Msg("main criterion deleted")
	return nil
}

func (t *taxonomyService) SubCriteria(ctx context.Context) ([]models.SubCriterion, error) {
	list, err := t.criteria.GetSubCriteria(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	t.mu.Lock()
	t.subCache = list
	t.mu.Unlock()

	return list, nil
}

func (t *taxonomyService) AddSubCriterion(ctx context.Context, req models.AddSubCriterionRequest) (models.SubCriterion, error) {
	if !t.session.IsAdmin() {
		return models.SubCriterion{}, ErrNotAdmin
	}
	if strings.TrimSpace(req.Name) == "" {
		return models.SubCriterion{}, ErrEmptyCriterionName
	}

	created, err := t.criteria.AddSubCriterion(ctx, req)
	if err != nil {
		return models.SubCriterion{}, mapAdapterError(err)
	}

	t.mu.Lock()
	t.subCache = append(t.subCache, created)
	t.mu.Unlock()

	return created, nil
}

func (t *taxonomyService) UpdateSubCriterion(ctx context.Context, id, name string) (models.SubCriterion, error) {
	if !t.session.IsAdmin() {
		return models.SubCriterion{}, ErrNotAdmin
	}
	if strings.TrimSpace(name) == "" {
		return models.SubCriterion{}, ErrEmptyCriterionName
	}

	updated, err := t.criteria.UpdateSubCriterion(ctx, id, name)
	if err != nil {
		return models.SubCriterion{}, mapAdapterError(err)
	}

	t.mu.Lock()
	for i := range t.subCache {
		if t.subCache[i].ID == id {
			t.subCache[i] = updated
			break
		}
	}
	t.mu.Unlock()

	return updated, nil
}

func (t *taxonomyService) DeleteSubCriterion(ctx context.Context, id string, confirm func() bool) error {
	if !t.session.IsAdmin() {
		return ErrNotAdmin
	}
	if confirm != nil && !confirm() {
		return ErrConfirmationDeclined
	}

	if err := t.criteria.DeleteSubCriterion(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	t.mu.Lock()
	for i := range t.subCache {
		if t.subCache[i].ID == id {
			t.subCache = append(t.subCache[:i], t.subCache[i+1:]...)
			break
		}
	}
	t.mu.Unlock()

	return nil
}

func (t *taxonomyService) referencedBySubCriteria(mainID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, sub := range t.subCache {
		if sub.BelongsTo(mainID) {
			return true
		}
	}
	return false
}

// ---- sectors ----

func (t *taxonomyService) Sectors(ctx context.Context) ([]models.Sector, error) {
	list, err := t.admin.GetAllSectors(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return list, nil
}

func (t *taxonomyService) AddSector(ctx context.Context, name string) (models.Sector, error) {
	if !t.session.IsAdmin() {
		return models.Sector{}, ErrNotAdmin
	}
	if strings.TrimSpace(name) == "" {
		return models.Sector{}, ErrEmptySectorName
	}

	created, err := t.admin.AddSector(ctx, name)
	if err != nil {
		return models.Sector{}, mapAdapterError(err)
	}
	return created, nil
}

func (t *taxonomyService) UpdateSector(ctx context.Context, id, name string) (models.Sector, error) {
	if !t.session.IsAdmin() {
		return models.Sector{}, ErrNotAdmin
	}
	if strings.TrimSpace(name) == "" {
		return models.Sector{}, ErrEmptySectorName
	}

	updated, err := t.admin.UpdateSector(ctx, id, name)
	if err != nil {
		return models.Sector{}, mapAdapterError(err)
	}
	return updated, nil
}

func (t *taxonomyService) DeleteSector(ctx context.Context, id string, confirm func() bool) error {
	if !t.session.IsAdmin() {
		return ErrNotAdmin
	}
	if confirm != nil && !confirm() {
		return ErrConfirmationDeclined
	}

	if err := t.admin.DeleteSector(ctx, id); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

// ---- department accounts ----

func (t *taxonomyService) Users(ctx context.Context) ([]models.User, error) {
	list, err := t.admin.GetAllUsers(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return list, nil
}

func (t *taxonomyService) AddDepartment(ctx context.Context, dept models.User) (models.User, error) {
	if !t.session.IsAdmin() {
		return models.User{}, ErrNotAdmin
	}

	created, err := t.admin.AddDepartment(ctx, dept)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	t.logger.Info().Str("func", "taxonomyService.AddDepartment").Str("user_id", created.ID).Msg("department account created")
	return created, nil
}

func (t *taxonomyService) ToggleAccountStatus(ctx context.Context, id, status string) (models.User, error) {
	if !t.session.IsAdmin() {
		return models.User{}, ErrNotAdmin
	}

	updated, err := t.admin.UpdateAccountStatus(ctx, id, status)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return updated, nil
}

func (t *taxonomyService) UpdateUser(ctx context.Context, id string, data models.User) (models.User, error) {
	if !t.session.IsAdmin() {
		return models.User{}, ErrNotAdmin
	}

	updated, err := t.admin.UpdateUser(ctx, id, data)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return updated, nil
}

func (t *taxonomyService) DeleteUser(ctx context.Context, id string, confirm func() bool) error {
	if !t.session.IsAdmin() {
		return ErrNotAdmin
	}
	if confirm != nil && !confirm() {
		return ErrConfirmationDeclined
	}

	if err := t.admin.DeleteUser(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	t.logger.Info().Str("func", "taxonomyService.DeleteUser").Str("user_id", id).Msg("account deleted")
	return nil
}

func (t *taxonomyService) UserStats(ctx context.Context) (models.UserStats, error) {
	stats, err := t.admin.GetUserStats(ctx)
	if err != nil {
		return models.UserStats{}, mapAdapterError(err)
	}
	return stats, nil
}
