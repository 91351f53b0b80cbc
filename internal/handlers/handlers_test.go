package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payout-service/internal/handlers"
	"github.com/jeffleon2/draftea-payout-service/internal/handlers/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

type api struct {
	router   *gin.Engine
	cashOuts *mocks.MockCashOutService
	payouts  *mocks.MockPayoutService
	wallets  *mocks.MockWalletService
}

func newAPI(t *testing.T) *api {
	a := &api{
		router:   gin.New(),
		cashOuts: mocks.NewMockCashOutService(t),
		payouts:  mocks.NewMockPayoutService(t),
		wallets:  mocks.NewMockWalletService(t),
	}

	cashOut := handlers.NewCashOutHandler(a.cashOuts)
	requests := a.router.Group("/cashout-requests")
	requests.POST("/:userId", cashOut.CreateRequest)
	requests.GET("", cashOut.ListRequests)
	requests.GET("/user/:userId", cashOut.ListUserRequests)
	requests.GET("/:requestId", cashOut.GetRequest)
	requests.PATCH("/:requestId/approve", cashOut.ApproveRequest)
	requests.PATCH("/:requestId/reject", cashOut.RejectRequest)

	payout := handlers.NewPayoutHandler(a.payouts)
	payouts := a.router.Group("/payout")
	payouts.GET("/vendor/:vendor_id/stats", payout.Stats)
	payouts.GET("/vendor/:vendor_id/history", payout.History)
	payouts.POST("/vendor/:vendor_id/request", payout.CreateRequest)
	payouts.PATCH("/:payout_id/status", payout.UpdateStatus)

	wallet := handlers.NewWalletHandler(a.wallets)
	wallets := a.router.Group("/wallets")
	wallets.GET("/user/:userId", wallet.GetByUser)
	wallets.GET("/user/:userId/transactions", wallet.Transactions)

	return a
}

func (a *api) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec, decoded
}

func amountOf(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func reasonOf(s string) interface{} {
	return mock.MatchedBy(func(r *string) bool { return r != nil && *r == s })
}

var noReason = (*string)(nil)
