package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wearloop/wearloop-backend/internal/logger"
	"github.com/wearloop/wearloop-backend/internal/observability"
	"github.com/wearloop/wearloop-backend/internal/repos"
	"github.com/wearloop/wearloop-backend/internal/types"
)

// InteractionService records and reads the user-product interaction log.
// Record is fire-and-forget from the recommendation path's point of view:
// the read side only ever sees whatever has already been appended.
type InteractionService interface {
	Record(ctx context.Context, userID, productID uuid.UUID, kind string) (*types.Interaction, error)
	ForUser(ctx context.Context, userID uuid.UUID) ([]*types.Interaction, error)
	ForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*types.Interaction, error)
}

type interactionService struct {
	db              *gorm.DB
	log             *logger.Logger
	interactionRepo repos.InteractionRepo
	metrics         *observability.Metrics
}

func NewInteractionService(db *gorm.DB, log *logger.Logger, interactionRepo repos.InteractionRepo, metrics *observability.Metrics) InteractionService {
	serviceLog := log.With("service", "InteractionService")
	return &interactionService{
		db:              db,
		log:             serviceLog,
		interactionRepo: interactionRepo,
		metrics:         metrics,
	}
}

func (is *interactionService) Record(ctx context.Context, userID, productID uuid.UUID, kind string) (*types.Interaction, error) {
	if !types.ValidInteractionType(kind) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInteractionKind, kind)
	}
	if userID == uuid.Nil || productID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id and product id required", ErrInvalidArgument)
	}

	// Duplicates are kept: the log is an append-only history, not a set.
	interaction := &types.Interaction{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Type:      kind,
	}
	created, err := is.interactionRepo.Create(ctx, nil, []*types.Interaction{interaction})
	if err != nil {
		is.log.Warn("Failed to append interaction", "user_id", userID.String(), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	is.metrics.IncInteractionRecorded(kind)
	return created[0], nil
}

func (is *interactionService) ForUser(ctx context.Context, userID uuid.UUID) ([]*types.Interaction, error) {
	results, err := is.interactionRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return results, nil
}

func (is *interactionService) ForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*types.Interaction, error) {
	if len(userIDs) == 0 {
		return []*types.Interaction{}, nil
	}
	results, err := is.interactionRepo.GetByUserIDs(ctx, nil, userIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return results, nil
}
