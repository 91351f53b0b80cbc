package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/jeffleon2/draftea-payout-service/config"
	"github.com/jeffleon2/draftea-payout-service/internal/database"
	"github.com/jeffleon2/draftea-payout-service/internal/handlers"
	"github.com/jeffleon2/draftea-payout-service/internal/models"
	"github.com/jeffleon2/draftea-payout-service/internal/publisher"
	"github.com/jeffleon2/draftea-payout-service/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-payout-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type eventPublisher interface {
	service.Publisher
	Close() error
}

// App is the payout HTTP API.
type App struct {
	config    *config.Config
	publisher eventPublisher
	Router    *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	decimal.MarshalJSONWithoutQuotes = true

	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Vendor{},
		&models.Wallet{},
		&models.Transaction{},
		&models.Order{},
		&models.CashOutRequest{},
	); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	if cfg.APP.IsLocal() {
		if err := database.Seed(db); err != nil {
			logrus.Warnf("failed to seed database: %v", err)
		}
	}

	a.publisher = a.newPublisher()
	repos := newRepositories(db)
	transactor := posgrest.NewTransactor(db, func(tx *gorm.DB) service.TxRepos {
		return service.TxRepos{
			CashOuts:     posgrest.NewCashOutRepository(tx),
			Wallets:      posgrest.NewWalletRepository(tx),
			Transactions: posgrest.NewTransactionRepository(tx),
		}
	})

	cashOutService := service.NewCashOutService(repos, transactor, a.publisher)
	payoutService := service.NewPayoutService(repos, cashOutService)
	walletService := service.NewWalletService(repos)

	a.Router = gin.Default()
	a.RegisterRoutes(
		handlers.NewCashOutHandler(cashOutService),
		handlers.NewPayoutHandler(payoutService),
		handlers.NewWalletHandler(walletService),
	)
}

// Run serves until ctx is done, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler:           a.httpHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Payout API listening on %s", srv.Addr)
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
		return fmt.Errorf("error shutting down server: %w", err)
	}
	if err := a.publisher.Close(); err != nil {
		logrus.WithError(err).Error("Error closing kafka writers")
	}
	return nil
}

// httpHandler wraps the router with CORS for the browser-based admin console.
func (a *App) httpHandler() http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(a.config.APP.CORSORIGINS, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	})(a.Router)
}

func (a *App) newPublisher() eventPublisher {
	if !a.config.Kafka.Enabled {
		logrus.Warn("Kafka disabled, cashout events will not be published")
		return publisher.NoopPublisher{}
	}
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.PublishTopics, ",")
	return publisher.NewKafkaPublisher(brokers, topics, a.config.Kafka.GetRetryConfig())
}

func newRepositories(db *gorm.DB) service.Repositories {
	return service.Repositories{
		Users:        posgrest.NewUserRepository(db),
		Vendors:      posgrest.NewVendorRepository(db),
		Wallets:      posgrest.NewWalletRepository(db),
		Transactions: posgrest.NewTransactionRepository(db),
		CashOuts:     posgrest.NewCashOutRepository(db),
		Orders:       posgrest.NewOrderRepository(db),
	}
}
