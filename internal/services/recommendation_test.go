package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wearloop/wearloop-backend/internal/repos"
	"github.com/wearloop/wearloop-backend/internal/types"
)

func seedUser(t *testing.T, db *gorm.DB, email string, age *int) *types.User {
	t.Helper()
	user := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "x",
		Name:     email,
		Age:      age,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, sellerID uuid.UUID, listed bool) *types.Product {
	t.Helper()
	product := &types.Product{
		ID:          uuid.New(),
		Name:        name,
		Price:       25,
		CreatedByID: sellerID,
		Listed:      listed,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
	return product
}

func seedInteraction(t *testing.T, db *gorm.DB, userID, productID uuid.UUID, kind string) {
	t.Helper()
	interaction := &types.Interaction{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Type:      kind,
	}
	if err := db.Create(interaction).Error; err != nil {
		t.Fatalf("seed interaction: %v", err)
	}
}

func newRecommendationService(t *testing.T, db *gorm.DB) RecommendationService {
	t.Helper()
	log := newTestLogger(t)
	return NewRecommendationService(
		db,
		log,
		repos.NewUserRepo(db, log),
		repos.NewProductRepo(db, log),
		repos.NewInteractionRepo(db, log),
		nil,
		5*time.Second,
	)
}

func productIDs(products []*types.Product) map[uuid.UUID]bool {
	ids := make(map[uuid.UUID]bool, len(products))
	for _, p := range products {
		ids[p.ID] = true
	}
	return ids
}

func TestRecommendationsAcrossCohort(t *testing.T) {
	db := newTestDB(t)
	svc := newRecommendationService(t, db)
	ctx := context.Background()

	age25, age28, age45 := 25, 28, 45
	u1 := seedUser(t, db, "u1@example.com", &age25)
	u2 := seedUser(t, db, "u2@example.com", &age28)
	u3 := seedUser(t, db, "u3@example.com", &age45)

	p1 := seedProduct(t, db, "denim jacket", u3.ID, true)
	p2 := seedProduct(t, db, "wool scarf", u3.ID, true)
	p3 := seedProduct(t, db, "leather boots", u3.ID, true)

	seedInteraction(t, db, u1.ID, p1.ID, types.InteractionView)
	seedInteraction(t, db, u2.ID, p2.ID, types.InteractionLike)
	seedInteraction(t, db, u3.ID, p3.ID, types.InteractionPurchase)

	got, err := svc.RecommendationsFor(ctx, u1.ID)
	if err != nil {
		t.Fatalf("RecommendationsFor: %v", err)
	}
	ids := productIDs(got)
	if len(ids) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(ids))
	}
	if !ids[p1.ID] || !ids[p2.ID] {
		t.Fatalf("expected own and peer products, got %v", ids)
	}
	if ids[p3.ID] {
		t.Fatal("product from outside the cohort leaked into recommendations")
	}
}

func TestRecommendationsDropUnlistedAndVanished(t *testing.T) {
	db := newTestDB(t)
	svc := newRecommendationService(t, db)
	ctx := context.Background()

	age := 33
	user := seedUser(t, db, "buyer@example.com", &age)
	seller := seedUser(t, db, "seller@example.com", nil)

	listed := seedProduct(t, db, "listed coat", seller.ID, true)
	unlisted := seedProduct(t, db, "withdrawn coat", seller.ID, false)
	vanished := uuid.New()

	seedInteraction(t, db, user.ID, listed.ID, types.InteractionView)
	seedInteraction(t, db, user.ID, unlisted.ID, types.InteractionView)
	seedInteraction(t, db, user.ID, vanished, types.InteractionView)

	got, err := svc.RecommendationsFor(ctx, user.ID)
	if err != nil {
		t.Fatalf("RecommendationsFor: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(got))
	}
	if got[0].ID != listed.ID {
		t.Fatalf("got product %s, want %s", got[0].ID, listed.ID)
	}
}

func TestRecommendationsDeduplicateSharedCandidates(t *testing.T) {
	db := newTestDB(t)
	svc := newRecommendationService(t, db)
	ctx := context.Background()

	age22, age29 := 22, 29
	user := seedUser(t, db, "a@example.com", &age22)
	peer := seedUser(t, db, "b@example.com", &age29)

	shared := seedProduct(t, db, "vintage tee", peer.ID, true)

	seedInteraction(t, db, user.ID, shared.ID, types.InteractionView)
	seedInteraction(t, db, user.ID, shared.ID, types.InteractionPurchase)
	seedInteraction(t, db, peer.ID, shared.ID, types.InteractionLike)

	got, err := svc.RecommendationsFor(ctx, user.ID)
	if err != nil {
		t.Fatalf("RecommendationsFor: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("shared product should appear once, got %d results", len(got))
	}
}

func TestRecommendationsEmptyCases(t *testing.T) {
	db := newTestDB(t)
	svc := newRecommendationService(t, db)
	ctx := context.Background()

	age := 27
	noAge := seedUser(t, db, "noage@example.com", nil)
	noHistory := seedUser(t, db, "fresh@example.com", &age)

	cases := []struct {
		name   string
		userID uuid.UUID
	}{
		{"unknown user", uuid.New()},
		{"user without age", noAge.ID},
		{"user with no interactions and no peers", noHistory.ID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.RecommendationsFor(ctx, tc.userID)
			if err != nil {
				t.Fatalf("RecommendationsFor: %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("expected empty recommendations, got %d", len(got))
			}
		})
	}
}

func TestRecommendationsExcludeRequesterAsPeer(t *testing.T) {
	db := newTestDB(t)
	svc := newRecommendationService(t, db)
	ctx := context.Background()

	// Two cohorts, one user each: neither should see the other's history.
	age20, age41 := 20, 41
	young := seedUser(t, db, "young@example.com", &age20)
	older := seedUser(t, db, "older@example.com", &age41)

	youngPick := seedProduct(t, db, "cropped hoodie", older.ID, true)
	olderPick := seedProduct(t, db, "tweed blazer", older.ID, true)

	seedInteraction(t, db, young.ID, youngPick.ID, types.InteractionView)
	seedInteraction(t, db, older.ID, olderPick.ID, types.InteractionView)

	got, err := svc.RecommendationsFor(ctx, young.ID)
	if err != nil {
		t.Fatalf("RecommendationsFor: %v", err)
	}
	ids := productIDs(got)
	if !ids[youngPick.ID] || ids[olderPick.ID] {
		t.Fatalf("cohort isolation violated: %v", ids)
	}
}
