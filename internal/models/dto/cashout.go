package dto

import (
	"strings"

	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/shopspring/decimal"
)

// CashOut is the body of POST /cashout-requests/:userId and POST /payout/vendor/:vendor_id/request.
type CashOut struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

func (c *CashOut) Sanitize() {
	c.Reason = strings.TrimSpace(c.Reason)
}

// Decision is the body of the reject and payout status routes.
type Decision struct {
	Status string  `json:"status"`
	Reason *string `json:"reason"`
}

func (d *Decision) Sanitize() {
	d.Status = strings.ToLower(strings.TrimSpace(d.Status))
	if d.Reason != nil {
		reason := strings.TrimSpace(*d.Reason)
		if reason == "" {
			d.Reason = nil
			return
		}
		d.Reason = &reason
	}
}

func (d *Decision) CashOutStatus() models.CashOutStatus {
	return models.CashOutStatus(d.Status)
}
