package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads a .env file into the environment in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/fyyur/fyyur/internal/config"     // Internal config loaders
	"github.com/fyyur/fyyur/internal/database"   // MySQL connection pool
	"github.com/fyyur/fyyur/internal/handler"    // HTTP handlers
	"github.com/fyyur/fyyur/internal/middleware" // Redis cache and rate limit middleware
	"github.com/fyyur/fyyur/internal/queue"      // show.listed consumer
	"github.com/fyyur/fyyur/internal/repository" // Data access layer
	"github.com/fyyur/fyyur/internal/router"     // Route registration
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	venueRepo := repository.NewVenueRepo(db)
	artistRepo := repository.NewArtistRepo(db)
	showRepo := repository.NewShowRepo(db)

	venues := handler.NewVenueHandler(venueRepo, showRepo)
	artists := handler.NewArtistHandler(artistRepo, showRepo)
	shows := handler.NewShowHandler(showRepo, venueRepo, artistRepo)

	e := echo.New()

	// Redis is optional: when unreachable the middleware degrade to
	// pass-through and the API serves straight from MySQL.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	browseCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterVenues(e, venues, browseCache)
	router.RegisterArtists(e, artists, browseCache)
	router.RegisterShows(e, shows, browseCache)

	// Consume show.listed events in the background; the loop reconnects
	// on broker failures and never takes the API down with it.
	go func() {
		if err := queue.StartShowConsumer(); err != nil {
			log.Printf("show consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
