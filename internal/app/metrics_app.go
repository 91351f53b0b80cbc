package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-payout-service/config"
	"github.com/jeffleon2/draftea-payout-service/internal/handlers"
	"github.com/jeffleon2/draftea-payout-service/internal/metrics"
	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/jeffleon2/draftea-payout-service/internal/publisher"
	"github.com/jeffleon2/draftea-payout-service/internal/subscriber"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// MetricsApp consumes cashout lifecycle events and exposes them as Prometheus metrics.
type MetricsApp struct {
	config   *config.Config
	consumer *subscriber.KafkaConsumer
	dlq      *publisher.KafkaPublisher
	handler  *handlers.MetricsHandler
	Router   *gin.Engine
}

func (a *MetricsApp) Initialize(cfg *config.Config) {
	a.config = cfg

	metrics.RegisterMetrics()
	a.handler = handlers.NewMetricsHandler()

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	topics := strings.Split(cfg.Kafka.SubscriberTopics, ",")
	retry := cfg.Kafka.GetRetryConfig()

	a.dlq = publisher.NewKafkaPublisher(brokers, []string{models.CashOutDLQTopic}, retry)
	a.consumer = subscriber.NewMultiTopicConsumer(brokers, topics, cfg.Kafka.MetricsGroup, a.dlq, retry)

	a.Router = gin.Default()
	a.RegisterRoutes()
}

func (a *MetricsApp) RegisterRoutes() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Run consumes and serves /metrics until ctx is done.
func (a *MetricsApp) Run(ctx context.Context) error {
	go a.consumer.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		logrus.Debugf("Received message topic=%s value=%s", topic, string(value))
		return a.handler.HandleEvents(ctx, topic, value)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.config.APP.METRICSPORT),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Metrics listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error shutting down metrics server")
	}
	if err := a.consumer.Close(); err != nil {
		logrus.WithError(err).Error("Error closing kafka readers")
	}
	return a.dlq.Close()
}
