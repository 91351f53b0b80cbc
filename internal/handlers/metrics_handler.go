package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jeffleon2/draftea-payout-service/internal/metrics"
	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/sirupsen/logrus"
)

// MetricsHandler turns cashout lifecycle events into Prometheus samples.
type MetricsHandler struct{}

func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

func (h *MetricsHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	var event string
	switch topic {
	case models.CashOutRequestedTopic:
		event = "requested"
	case models.CashOutApprovedTopic:
		event = "approved"
	case models.CashOutRejectedTopic:
		event = "rejected"
	default:
		logrus.Warnf("Ignoring event from unexpected topic %s", topic)
		return nil
	}

	var evt models.CashOutEvent
	if err := json.Unmarshal(value, &evt); err != nil {
		logrus.Errorf("Error parsing cashout event from %s: %s", topic, err.Error())
		return fmt.Errorf("error parsing cashout event %w", err)
	}

	amount := evt.Amount.InexactFloat64()
	status := string(evt.Status)
	if status == "" {
		status = "unknown"
	}

	metrics.CashOutEventsTotal.WithLabelValues(event).Inc()
	metrics.CashOutAmounts.WithLabelValues(status).Observe(amount)
	if topic == models.CashOutApprovedTopic {
		metrics.WalletDebits.Observe(amount)
	}

	return nil
}
