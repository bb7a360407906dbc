package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/wearloop/wearloop-backend/internal/logger"
	"github.com/wearloop/wearloop-backend/internal/observability"
	"github.com/wearloop/wearloop-backend/internal/repos"
	"github.com/wearloop/wearloop-backend/internal/types"
)

const defaultRecommendationTimeout = 10 * time.Second

// RecommendationService produces the cohort-based recommendation list:
// union of the requester's own interacted products and those of same-cohort
// peers, deduplicated, resolved, and filtered down to listed products.
type RecommendationService interface {
	RecommendationsFor(ctx context.Context, userID uuid.UUID) ([]*types.Product, error)
}

type recommendationService struct {
	db              *gorm.DB
	log             *logger.Logger
	userRepo        repos.UserRepo
	productRepo     repos.ProductRepo
	interactionRepo repos.InteractionRepo
	metrics         *observability.Metrics
	timeout         time.Duration
}

func NewRecommendationService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	productRepo repos.ProductRepo,
	interactionRepo repos.InteractionRepo,
	metrics *observability.Metrics,
	timeout time.Duration,
) RecommendationService {
	serviceLog := log.With("service", "RecommendationService")
	if timeout <= 0 {
		timeout = defaultRecommendationTimeout
	}
	return &recommendationService{
		db:              db,
		log:             serviceLog,
		userRepo:        userRepo,
		productRepo:     productRepo,
		interactionRepo: interactionRepo,
		metrics:         metrics,
		timeout:         timeout,
	}
}

func (rs *recommendationService) RecommendationsFor(ctx context.Context, userID uuid.UUID) ([]*types.Product, error) {
	start := time.Now()
	products, candidateCount, err := rs.recommendationsFor(ctx, userID)
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case len(products) == 0:
		outcome = "empty"
	}
	rs.metrics.ObserveRecommendation(outcome, candidateCount, time.Since(start))
	return products, err
}

func (rs *recommendationService) recommendationsFor(ctx context.Context, userID uuid.UUID) ([]*types.Product, int, error) {
	ctx, cancel := context.WithTimeout(ctx, rs.timeout)
	defer cancel()

	users, err := rs.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: fetching profile: %v", ErrRecommendationUnavailable, err)
	}
	if len(users) == 0 {
		rs.log.Debug("No profile for requester, returning empty recommendations", "user_id", userID.String())
		return []*types.Product{}, 0, nil
	}

	cohort, ok := CohortForAge(users[0].Age)
	if !ok {
		// A user without a recorded age simply gets no recommendations.
		rs.log.Debug("Requester has no recorded age, returning empty recommendations", "user_id", userID.String())
		return []*types.Product{}, 0, nil
	}

	peerIDs, err := rs.cohortPeers(ctx, userID, cohort)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: discovering cohort peers: %v", ErrRecommendationUnavailable, err)
	}

	var own, peers []*types.Interaction
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var fetchErr error
		own, fetchErr = rs.interactionRepo.GetByUserID(gctx, nil, userID)
		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		peers, fetchErr = rs.interactionRepo.GetByUserIDs(gctx, nil, peerIDs)
		return fetchErr
	})
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("%w: fetching interactions: %v", ErrRecommendationUnavailable, err)
	}

	candidates := BuildCandidates(own, peers)
	if len(candidates) == 0 {
		return []*types.Product{}, 0, nil
	}

	resolved, err := rs.productRepo.GetByIDs(ctx, nil, candidates.IDs())
	if err != nil {
		return nil, len(candidates), fmt.Errorf("%w: resolving products: %v", ErrRecommendationUnavailable, err)
	}

	// Unlisted products are dropped here; candidate ids that no longer
	// resolve never come back from the store and vanish silently. Order is
	// whatever the store returned.
	recommendations := make([]*types.Product, 0, len(resolved))
	for _, product := range resolved {
		if product.Listed {
			recommendations = append(recommendations, product)
		}
	}

	rs.log.Debug("Built recommendations",
		"user_id", userID.String(),
		"cohort", string(cohort),
		"peers", len(peerIDs),
		"candidates", len(candidates),
		"recommended", len(recommendations),
	)
	return recommendations, len(candidates), nil
}

// cohortPeers scans every profile with a recorded age, classifies each with
// the same classifier used for the requester, and keeps ids in the
// requester's cohort. The requester never counts as their own peer.
func (rs *recommendationService) cohortPeers(ctx context.Context, userID uuid.UUID, cohort Cohort) ([]uuid.UUID, error) {
	profiles, err := rs.userRepo.ListWithAge(ctx, nil)
	if err != nil {
		return nil, err
	}
	peerIDs := make([]uuid.UUID, 0, len(profiles))
	for _, profile := range profiles {
		if profile.ID == userID {
			continue
		}
		peerCohort, ok := CohortForAge(&profile.Age)
		if ok && peerCohort == cohort {
			peerIDs = append(peerIDs, profile.ID)
		}
	}
	return peerIDs, nil
}
