package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/tripglide/car-recommendation-service/internal/cache"
	"github.com/tripglide/car-recommendation-service/internal/catalog"
	"github.com/tripglide/car-recommendation-service/internal/config"
	"github.com/tripglide/car-recommendation-service/internal/domain"
	"github.com/tripglide/car-recommendation-service/internal/handler"
	"github.com/tripglide/car-recommendation-service/internal/recommender"
	"github.com/tripglide/car-recommendation-service/internal/repository"
	"github.com/tripglide/car-recommendation-service/internal/router"
	"github.com/tripglide/car-recommendation-service/internal/service"
	"github.com/tripglide/car-recommendation-service/seeds"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	ctx := context.Background()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to parse database config %v", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatalf("failed to connect to database %v", err)
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool); err != nil {
		log.Fatalf("database not ready: %v", err)
	}
	log.Println("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := migrateDown(ctx, pool); err != nil {
			log.Fatalf("failed to migrate down %v", err)
		}
		log.Println("migrations dropped")
		return
	}

	if err := migrateUp(ctx, pool); err != nil {
		log.Fatalf("failed to migrate up %v", err)
	}

	// ------------ Setup Seed Data ---------------
	if err := checkSeed(ctx, pool); err != nil {
		log.Fatalf("failed to check seed %v", err)
	}

	// ------------ Catalog Snapshot ---------------
	// Loaded once; an unavailable table degrades to an empty snapshot and
	// the pipelines report "no data" failures instead of crashing.
	repo := repository.NewRepository(pool)
	snap := loadSnapshot(ctx, repo)
	log.Printf("catalog snapshot loaded: %d cars, %d rentals, %d locations",
		len(snap.Cars()), len(snap.Rentals()), len(snap.Locations()))

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to parse redis url %v", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	recCache := cache.NewCache(redisClient, cfg.CacheTTL)
	if err := recCache.Ping(ctx); err != nil {
		log.Printf("redis not reachable, caching degraded: %v", err)
	} else {
		log.Println("connected to Redis")
	}

	// ---------------- Server --------------------
	engine := recommender.NewEngine(snap)
	svc := service.NewService(snap, engine, recCache)
	h := handler.NewHandler(svc)

	log.Printf("Server running on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), router.Setup(h, cfg.RequestTimeout)))
}

func loadSnapshot(ctx context.Context, repo *repository.Repository) *catalog.Snapshot {
	cars, err := repo.LoadCars(ctx)
	if err != nil {
		log.Printf("failed to load cars, continuing with empty catalog: %v", err)
		cars = []domain.Car{}
	}
	rentals, err := repo.LoadRentals(ctx)
	if err != nil {
		log.Printf("failed to load rentals, continuing with empty history: %v", err)
		rentals = []domain.Rental{}
	}
	return catalog.NewSnapshot(cars, rentals)
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Printf("waiting for database... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.down.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations dropped successfully")
	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.up.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations applied successfully")
	return nil
}

func checkSeed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM cars").Scan(&count); err != nil {
		return fmt.Errorf("check cars count: %w", err)
	}
	if count > 0 {
		log.Printf("database already seeded (%d cars), skipping", count)
		return nil
	}
	return seeds.Setup(ctx, pool)
}
