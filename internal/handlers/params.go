package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payout-service/internal/models"
)

const (
	defaultPageLimit    = 10
	defaultPayoutsLimit = 20
)

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pageRequest reads page and limit from the query string. Malformed values fall
// back to the defaults and out-of-range ones are clamped.
func pageRequest(c *gin.Context, defaultLimit int) models.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return models.NewPageRequest(page, limit, defaultLimit)
}

func statusFilter(c *gin.Context) models.CashOutStatus {
	return models.CashOutStatus(c.Query("status"))
}

func paginated(itemsKey string, items interface{}, pagination models.Pagination) gin.H {
	return gin.H{
		itemsKey:     items,
		"pagination": pagination,
	}
}
