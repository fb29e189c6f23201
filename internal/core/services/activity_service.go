package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/google/uuid"
)

const defaultActivityLimit = 10

type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityRepositoryFacade
}

// NewActivityService creates the audit log service.
func NewActivityService(repo portsrepo.ActivityRepositoryFacade) portssvc.ActivitySvcFacade {
	return &activityService{activityRepo: repo}
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

func (s *activityService) Record(ctx context.Context, activityType domain.ActivityType, description, entityID, userID string) {
	entry := domain.ActivityLog{
		ActivityID:  uuid.NewString(),
		Type:        activityType,
		Description: description,
		EntityID:    entityID,
		UserID:      userID,
		CreatedAt:   s.Now(),
	}
	if err := s.activityRepo.SaveActivity(ctx, entry); err != nil {
		// the audited mutation already committed; losing the entry must not fail it
		s.LogError(ctx, err, "Failed to record activity",
			slog.String("activity_type", string(activityType)),
			slog.String("entity_id", entityID))
	}
}

func (s *activityService) RecentActivity(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	entries, err := s.activityRepo.ListRecentActivity(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent activity", slog.Int("limit", limit))
		return nil, fmt.Errorf("failed to list recent activity: %w", err)
	}
	return entries, nil
}
