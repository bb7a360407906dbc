package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wearloop/wearloop-backend/internal/logger"
	"github.com/wearloop/wearloop-backend/internal/types"
)

// InteractionRepo is an append-and-read interface: the interaction log is an
// immutable history, so there are no update or delete operations.
type InteractionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, interactions []*types.Interaction) ([]*types.Interaction, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Interaction, error)
	GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Interaction, error)
}

type interactionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInteractionRepo(db *gorm.DB, baseLog *logger.Logger) InteractionRepo {
	repoLog := baseLog.With("repo", "InteractionRepo")
	return &interactionRepo{db: db, log: repoLog}
}

func (ir *interactionRepo) Create(ctx context.Context, tx *gorm.DB, interactions []*types.Interaction) ([]*types.Interaction, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	if len(interactions) == 0 {
		return []*types.Interaction{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}

func (ir *interactionRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Interaction, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var results []*types.Interaction
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *interactionRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Interaction, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	// Empty peer sets are common (new cohorts); skip the round trip.
	var results []*types.Interaction
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
