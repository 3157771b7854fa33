package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Triol19/pizza-orders/internal/catalog"
	"github.com/Triol19/pizza-orders/internal/config"
	"github.com/Triol19/pizza-orders/internal/httpx"
	kafkax "github.com/Triol19/pizza-orders/internal/kafka"
	"github.com/Triol19/pizza-orders/internal/orders"
	"github.com/Triol19/pizza-orders/internal/postgres"
	"github.com/Triol19/pizza-orders/internal/redisx"
)

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	created := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCreated, 1024)
	created.Start(ctx)
	updated := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderUpdated, 1024)
	updated.Start(ctx)
	deleted := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderDeleted, 1024)
	deleted.Start(ctx)

	svc := orders.NewService(&orders.Repo{DB: db}, &catalog.Lookup{DB: db})

	router := httpx.NewRouter()
	oh := &httpx.OrdersHandler{
		Service:     svc,
		Redis:       rdb,
		Created:     created,
		Updated:     updated,
		Deleted:     deleted,
		ServiceName: cfg.ServiceName,
	}
	oh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		slog.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("listen failed", "err", err)
			os.Exit(1)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)

	// flush remaining events before exit
	for _, p := range []*kafkax.Producer{created, updated, deleted} {
		p.Close()
	}
	for _, p := range []*kafkax.Producer{created, updated, deleted} {
		p.WaitClosed()
	}
}
