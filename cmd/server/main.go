package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bistro-serving/internal/config"
	"bistro-serving/internal/es"
	"bistro-serving/internal/events"
	"bistro-serving/internal/handlers"
	"bistro-serving/internal/logging"
	loggingmw "bistro-serving/internal/middleware/logging"
	"bistro-serving/internal/payments"
	"bistro-serving/internal/service/search"
	"bistro-serving/internal/store"
	"bistro-serving/internal/token"
	httpserver "bistro-serving/internal/transport/http"
)

func main() {
	logger := logging.New(os.Getenv("LOG_LEVEL"))

	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	logger.Info("connected to document store", "db", configuration.DB_NAME)

	tokens := token.NewService([]byte(configuration.JWT_SECRET))
	prod := events.NewProducer([]string{configuration.KAFKA_ADDRESS})
	stripeClient := payments.NewStripeClient(configuration.STRIPE_SECRET_KEY)

	esClient, err := es.NewClient(configuration)
	if err != nil {
		log.Fatal(err)
	}
	menuIndex := &search.Indexer{ES: esClient, Index: "menu"}

	userRepo := store.NewUserRepo(db)
	cartRepo := store.NewCartRepo(db)
	paymentRepo := store.NewPaymentRepo(db)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger), middleware.CORS())

	deps := httpserver.Deps{
		Tokens:         tokens,
		Roles:          userRepo,
		TokenHandler:   &handlers.TokenHandler{Tokens: tokens},
		MenuHandler:    &handlers.MenuHandler{Store: store.NewMenuRepo(db), Index: menuIndex, Producer: prod},
		ReviewHandler:  &handlers.ReviewHandler{Store: store.NewReviewRepo(db)},
		CartHandler:    &handlers.CartHandler{Store: cartRepo, Producer: prod},
		UserHandler:    &handlers.UserHandler{Store: userRepo, Producer: prod},
		PaymentHandler: &handlers.PaymentHandler{Store: paymentRepo, Carts: cartRepo, Intents: stripeClient, Producer: prod},
		StatsHandler:   &handlers.StatsHandler{Store: store.NewStatsRepo(db)},
		SearchHandler:  &handlers.SearchHandler{ES: esClient, Index: "menu"},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("server is running", "port", configuration.PORT)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		logger.Error("db disconnect error", "err", err)
	}
	if err := prod.Close(); err != nil {
		logger.Error("kafka close error", "err", err)
	}

	logger.Info("shutdown complete")
}
