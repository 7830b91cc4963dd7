package routes

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recurring_finance/internal/adapter/http/handlers"
	"recurring_finance/internal/adapter/http/handlers/mocks"
	"recurring_finance/internal/adapter/http/middleware"
	"recurring_finance/internal/config"
	"recurring_finance/internal/domain/entities"
	"recurring_finance/internal/infrastructure/ledger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPingRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addPingRoutes(r.Group("/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRecurringItemRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "test-secret"

	build := func(t *testing.T) (*gin.Engine, *mocks.MockIRecurringItemUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRecurringItemUseCase(ctrl)
		r := gin.New()
		addRecurringItemRoutes(r.Group("/v1"), middleware.SpaceAuth(secret, discardLogger()), handlers.NewRecurringItemHandler(uc))
		return r, uc
	}

	t.Run("requires a token", func(t *testing.T) {
		r, _ := build(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/spaces/space-1/recurring-items", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("summary is not routed as an id", func(t *testing.T) {
		r, uc := build(t)
		uc.EXPECT().Summary(gomock.Any(), entities.Scope{OwnerSpaceID: "space-1", ActorID: "user-1"}).
			Return(entities.MonthlySummary{OwnerSpaceID: "space-1"}, nil)

		token, err := middleware.SignToken(secret, "user-1", []string{"space-1"}, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		if err != nil {
			t.Fatalf("unexpected sign error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/spaces/space-1/recurring-items/summary", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestNewLedgerPublisher(t *testing.T) {
	t.Run("no broker configured", func(t *testing.T) {
		publisher, closeFn := newLedgerPublisher(&config.Config{}, discardLogger())
		defer closeFn()
		if _, ok := publisher.(*ledger.FallbackPublisher); !ok {
			t.Fatalf("expected fallback publisher, got %T", publisher)
		}
	})

	t.Run("invalid broker url", func(t *testing.T) {
		publisher, closeFn := newLedgerPublisher(&config.Config{AMQPURL: "http://broker:5672"}, discardLogger())
		defer closeFn()
		if _, ok := publisher.(*ledger.FallbackPublisher); !ok {
			t.Fatalf("expected fallback publisher, got %T", publisher)
		}
	})
}
