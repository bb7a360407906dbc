package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wearloop/wearloop-backend/internal/http/response"
	"github.com/wearloop/wearloop-backend/internal/logger"
	"github.com/wearloop/wearloop-backend/internal/services"
)

type ProductHandler struct {
	log        *logger.Logger
	productSvc services.ProductService
}

func NewProductHandler(log *logger.Logger, productSvc services.ProductService) *ProductHandler {
	return &ProductHandler{
		log:        log.With("handler", "ProductHandler"),
		productSvc: productSvc,
	}
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productSvc.ListListed(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "products_failed", errors.New("failed to list products"))
		return
	}
	response.RespondOK(c, products)
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_product_id", errors.New("invalid product id"))
		return
	}
	product, err := h.productSvc.GetByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "product_not_found", errors.New("product not found"))
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "product_failed", errors.New("failed to fetch product"))
		return
	}
	response.RespondOK(c, product)
}
