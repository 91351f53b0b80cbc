package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/draftea-payout-service/config"
	"github.com/jeffleon2/draftea-payout-service/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	metricsApp := &app.MetricsApp{}
	metricsApp.Initialize(cfg)
	if err := metricsApp.Run(ctx); err != nil {
		logrus.Fatalf("payout metrics stopped: %v", err)
	}

	logrus.Info("Payout metrics stopped")
}
