package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wearloop/wearloop-backend/internal/repos"
	"github.com/wearloop/wearloop-backend/internal/types"
)

// panicRepo fails the test if the service reaches storage at all. Used to
// verify that validation happens before any write.
type panicRepo struct {
	t *testing.T
}

func (p *panicRepo) Create(ctx context.Context, tx *gorm.DB, interactions []*types.Interaction) ([]*types.Interaction, error) {
	p.t.Fatal("Create reached storage for invalid input")
	return nil, nil
}

func (p *panicRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Interaction, error) {
	p.t.Fatal("GetByUserID reached storage unexpectedly")
	return nil, nil
}

func (p *panicRepo) GetByUserIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Interaction, error) {
	p.t.Fatal("GetByUserIDs reached storage unexpectedly")
	return nil, nil
}

func TestRecordRejectsInvalidKind(t *testing.T) {
	log := newTestLogger(t)
	svc := NewInteractionService(nil, log, &panicRepo{t: t}, nil)

	cases := []string{"", "click", "VIEW", "favourite"}
	for _, kind := range cases {
		t.Run("kind="+kind, func(t *testing.T) {
			_, err := svc.Record(context.Background(), uuid.New(), uuid.New(), kind)
			if !errors.Is(err, ErrInvalidInteractionKind) {
				t.Fatalf("Record(%q) err = %v, want ErrInvalidInteractionKind", kind, err)
			}
		})
	}
}

func TestRecordRejectsMissingIDs(t *testing.T) {
	log := newTestLogger(t)
	svc := NewInteractionService(nil, log, &panicRepo{t: t}, nil)

	_, err := svc.Record(context.Background(), uuid.Nil, uuid.New(), types.InteractionView)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Record with nil user id err = %v, want ErrInvalidArgument", err)
	}
	_, err = svc.Record(context.Background(), uuid.New(), uuid.Nil, types.InteractionLike)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Record with nil product id err = %v, want ErrInvalidArgument", err)
	}
}

func TestForUsersEmptyShortCircuit(t *testing.T) {
	log := newTestLogger(t)
	svc := NewInteractionService(nil, log, &panicRepo{t: t}, nil)

	results, err := svc.ForUsers(context.Background(), nil)
	if err != nil {
		t.Fatalf("ForUsers(nil) err = %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("ForUsers(nil) returned %d interactions, want 0", len(results))
	}
}

func TestRecordThenForUserRoundTrip(t *testing.T) {
	db := newTestDB(t)
	log := newTestLogger(t)
	repo := repos.NewInteractionRepo(db, log)
	svc := NewInteractionService(db, log, repo, nil)
	ctx := context.Background()

	userID := uuid.New()
	productID := uuid.New()

	// Same product twice on purpose: the log keeps duplicates.
	for _, kind := range []string{types.InteractionView, types.InteractionView, types.InteractionPurchase} {
		created, err := svc.Record(ctx, userID, productID, kind)
		if err != nil {
			t.Fatalf("Record(%q): %v", kind, err)
		}
		if created.ID == uuid.Nil {
			t.Fatal("Record returned interaction without id")
		}
	}

	results, err := svc.ForUser(ctx, userID)
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("ForUser returned %d interactions, want 3", len(results))
	}
	for _, interaction := range results {
		if interaction.UserID != userID || interaction.ProductID != productID {
			t.Fatalf("interaction carries wrong ids: %+v", interaction)
		}
	}

	other, err := svc.ForUser(ctx, uuid.New())
	if err != nil {
		t.Fatalf("ForUser(other): %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("ForUser(other) returned %d interactions, want 0", len(other))
	}
}
