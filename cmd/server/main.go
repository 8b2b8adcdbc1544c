package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Oukrim2590-maker/oukrimmeals/internal/cart"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/catalog"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/checkout"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/config"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/es"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/handlers"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/logging"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/mykafka"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/ratings"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/session"
	"github.com/Oukrim2590-maker/oukrimmeals/internal/storage"
	httpserver "github.com/Oukrim2590-maker/oukrimmeals/internal/transport/http"
)

const mealsIndex = "meals"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	store, err := storage.NewGormStore(db)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}

	prod, err := mykafka.NewProducer(strings.Split(configuration.KAFKA_ADDRESS, ","))
	if err != nil {
		log.Fatal(err)
	}

	catalogSvc := catalog.NewService(store)
	cartSvc := cart.NewService(store)
	ratingsSvc := ratings.NewService(store)
	checkoutSvc := checkout.NewService(store, cartSvc, configuration.WHATSAPP_LINK)
	sessions := session.NewManager([]byte(configuration.JWT_SECRET))

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), logging.Middleware(logger))

	deps := httpserver.Deps{
		CatalogHandler:  &handlers.CatalogHandler{Catalog: catalogSvc, Producer: prod, Index: mealsIndex},
		CartHandler:     &handlers.CartHandler{Cart: cartSvc, Catalog: catalogSvc, Producer: prod},
		RatingsHandler:  &handlers.RatingsHandler{Ratings: ratingsSvc},
		CheckoutHandler: &handlers.CheckoutHandler{Checkout: checkoutSvc, Producer: prod},
		AdminHandler:    &handlers.AdminHandler{PasswordHash: configuration.ADMIN_PASSWORD_HASH, Sessions: sessions},
		Sessions:        sessions,
	}

	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		deps.SearchHandler = handlers.NewSearchHandler(esClient, mealsIndex)
		deps.CatalogHandler.ES = esClient
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
