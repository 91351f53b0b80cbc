package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CashOutEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cashout_events_total",
			Help: "Total cashout lifecycle events consumed, by event",
		},
		[]string{"event"},
	)

	CashOutAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cashout_amounts",
			Help:    "Distribution of cashout request amounts, by status",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
		[]string{"status"},
	)

	WalletDebits = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wallet_debits",
			Help:    "Distribution of wallet debits applied by approved cashouts",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		CashOutEventsTotal,
		CashOutAmounts,
		WalletDebits,
	)
}
