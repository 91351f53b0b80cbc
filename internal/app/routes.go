package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	handlers "github.com/jeffleon2/draftea-payout-service/internal/handlers"
)

func (a *App) RegisterRoutes(cashOut *handlers.CashOutHandler, payout *handlers.PayoutHandler, wallet *handlers.WalletHandler) {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requests := a.Router.Group("/cashout-requests")
	requests.POST("/:userId", cashOut.CreateRequest)
	requests.GET("", cashOut.ListRequests)
	requests.GET("/user/:userId", cashOut.ListUserRequests)
	requests.GET("/:requestId", cashOut.GetRequest)
	requests.PATCH("/:requestId/approve", cashOut.ApproveRequest)
	requests.PATCH("/:requestId/reject", cashOut.RejectRequest)

	payouts := a.Router.Group("/payout")
	payouts.GET("/vendor/:vendor_id/stats", payout.Stats)
	payouts.GET("/vendor/:vendor_id/history", payout.History)
	payouts.POST("/vendor/:vendor_id/request", payout.CreateRequest)
	payouts.PATCH("/:payout_id/status", payout.UpdateStatus)

	wallets := a.Router.Group("/wallets")
	wallets.GET("/user/:userId", wallet.GetByUser)
	wallets.GET("/user/:userId/transactions", wallet.Transactions)
}
