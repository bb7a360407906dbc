package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wearloop/wearloop-backend/internal/logger"
	"github.com/wearloop/wearloop-backend/internal/requestdata"
	"github.com/wearloop/wearloop-backend/internal/services"
	"github.com/wearloop/wearloop-backend/internal/types"
)

type stubInteractionService struct {
	recordErr error
}

func (s *stubInteractionService) Record(ctx context.Context, userID, productID uuid.UUID, kind string) (*types.Interaction, error) {
	if s.recordErr != nil {
		return nil, s.recordErr
	}
	return &types.Interaction{ID: uuid.New(), UserID: userID, ProductID: productID, Type: kind}, nil
}

func (s *stubInteractionService) ForUser(ctx context.Context, userID uuid.UUID) ([]*types.Interaction, error) {
	return nil, nil
}

func (s *stubInteractionService) ForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*types.Interaction, error) {
	return nil, nil
}

func trackRequest(t *testing.T, svc services.InteractionService, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	handler := NewInteractionHandler(log, svc)

	router := gin.New()
	router.POST("/api/interactions", func(c *gin.Context) {
		if authed {
			rd := &requestdata.RequestData{UserID: uuid.New()}
			c.Request = c.Request.WithContext(requestdata.WithRequestData(c.Request.Context(), rd))
		}
		handler.Track(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/interactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTrackStatusMapping(t *testing.T) {
	productID := uuid.New().String()

	cases := []struct {
		name       string
		svc        *stubInteractionService
		body       string
		authed     bool
		wantStatus int
	}{
		{
			name:       "valid interaction",
			svc:        &stubInteractionService{},
			body:       `{"product_id":"` + productID + `","type":"view"}`,
			authed:     true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid kind",
			svc:        &stubInteractionService{recordErr: services.ErrInvalidInteractionKind},
			body:       `{"product_id":"` + productID + `","type":"click"}`,
			authed:     true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage down",
			svc:        &stubInteractionService{recordErr: services.ErrStorageUnavailable},
			body:       `{"product_id":"` + productID + `","type":"view"}`,
			authed:     true,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "malformed product id",
			svc:        &stubInteractionService{},
			body:       `{"product_id":"not-a-uuid","type":"view"}`,
			authed:     true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unauthenticated",
			svc:        &stubInteractionService{},
			body:       `{"product_id":"` + productID + `","type":"view"}`,
			authed:     false,
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := trackRequest(t, tc.svc, tc.body, tc.authed)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
		})
	}
}
