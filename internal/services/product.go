package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wearloop/wearloop-backend/internal/logger"
	"github.com/wearloop/wearloop-backend/internal/repos"
	"github.com/wearloop/wearloop-backend/internal/types"
)

// ProductService is the thin read surface the market pages use. Listing
// management, uploads and reports live outside this service.
type ProductService interface {
	ListListed(ctx context.Context) ([]*types.Product, error)
	GetByID(ctx context.Context, productID uuid.UUID) (*types.Product, error)
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{db: db, log: serviceLog, productRepo: productRepo}
}

func (ps *productService) ListListed(ctx context.Context) ([]*types.Product, error) {
	products, err := ps.productRepo.ListListed(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	return products, nil
}

func (ps *productService) GetByID(ctx context.Context, productID uuid.UUID) (*types.Product, error) {
	found, err := ps.productRepo.GetByIDs(ctx, nil, []uuid.UUID{productID})
	if err != nil {
		return nil, fmt.Errorf("error fetching product: %w", err)
	}
	if len(found) == 0 || found[0] == nil || !found[0].Listed {
		return nil, fmt.Errorf("%w: product does not exist", ErrNotFound)
	}
	return found[0], nil
}
