package service

import (
	"github.com/MKhiriev/go-achieve-portal/internal/adapter"
	"github.com/MKhiriev/go-achieve-portal/internal/logger"
	"github.com/MKhiriev/go-achieve-portal/internal/session"
	"github.com/MKhiriev/go-achieve-portal/internal/store"
	"github.com/MKhiriev/go-achieve-portal/internal/utils"
	"github.com/MKhiriev/go-achieve-portal/internal/validators"
	"github.com/MKhiriev/go-achieve-portal/models"
)

// ClientServices bundles every view-model service the TUI depends on.
type ClientServices struct {
	AuthService         AuthService
	ActivityService     ActivityService
	ReviewService       ReviewService
	DraftService        DraftService
	TaxonomyService     TaxonomyService
	ReportService       ReportService
	NotificationService NotificationFeed
	NotificationJob     NotificationJob
}

// NewClientServices wires the full service graph over one portal adapter,
// one session context and the local storages. dialPush builds a fresh push
// connection per attempt; pass nil to run without live notifications.
func NewClientServices(
	storages *store.ClientStorages,
	portal adapter.PortalAdapter,
	sessionCtx *session.Context,
	dialPush func(out chan<- models.Notification) (PushRunner, error),
	log *logger.Logger,
) *ClientServices {
	validator := validators.NewSubmissionValidator()

	activitySvc := NewActivityService(portal, storages.Handoff, validator, log)
	notificationSvc := NewNotificationService(portal, utils.NewUUIDGenerator(), log)

	services := &ClientServices{
		AuthService:         NewAuthService(portal, sessionCtx, storages.Session, validator, log),
		ActivityService:     activitySvc,
		ReviewService:       NewReviewService(portal, sessionCtx, activitySvc, log),
		DraftService:        NewDraftService(portal, storages.Handoff, validator, log),
		TaxonomyService:     NewTaxonomyService(portal, portal, sessionCtx, log),
		ReportService:       NewReportService(portal, log),
		NotificationService: notificationSvc,
	}
	if dialPush != nil {
		services.NotificationJob = NewNotificationJob(notificationSvc, dialPush, log)
	}
	return services
}
