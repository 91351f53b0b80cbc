package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payout-service/config"
	"github.com/jeffleon2/draftea-payout-service/internal/handlers"
	"github.com/jeffleon2/draftea-payout-service/internal/handlers/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := &App{Router: gin.New()}

	a.RegisterRoutes(
		handlers.NewCashOutHandler(mocks.NewMockCashOutService(t)),
		handlers.NewPayoutHandler(mocks.NewMockPayoutService(t)),
		handlers.NewWalletHandler(mocks.NewMockWalletService(t)),
	)

	registered := map[string]bool{}
	for _, r := range a.Router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"POST /cashout-requests/:userId",
		"GET /cashout-requests",
		"GET /cashout-requests/user/:userId",
		"GET /cashout-requests/:requestId",
		"PATCH /cashout-requests/:requestId/approve",
		"PATCH /cashout-requests/:requestId/reject",
		"GET /payout/vendor/:vendor_id/stats",
		"GET /payout/vendor/:vendor_id/history",
		"POST /payout/vendor/:vendor_id/request",
		"PATCH /payout/:payout_id/status",
		"GET /wallets/user/:userId",
		"GET /wallets/user/:userId/transactions",
		"GET /health",
	} {
		assert.True(t, registered[route], route)
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPHandler_AnswersCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := &App{
		config: &config.Config{APP: config.APP{CORSORIGINS: "https://admin.example.com"}},
		Router: gin.New(),
	}

	req := httptest.NewRequest(http.MethodOptions, "/cashout-requests/1/approve", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()

	a.httpHandler().ServeHTTP(rec, req)

	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}
