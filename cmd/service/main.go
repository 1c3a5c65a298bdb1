// File: cmd/service/main.go
// @title        Service Market API
// @version      1.0
// @description  REST API каталога услуг: анкеты исполнителей, поиск и админ-панель
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"service-market/internal/cache"
	"service-market/internal/database"
	"service-market/internal/router"
	"service-market/internal/seed"
	"service-market/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "service-market/docs" // swag artifact

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	seedFn          = seed.Run
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is not set")
	}

	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB: %v", err)
		}
		redisIndex = i
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	workerCount := 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return fmt.Errorf("invalid WORKER_COUNT: %v", err)
		}
		workerCount = c
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("database connect: %v", err)
	}
	defer db.Close()

	sessions, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("redis connect: %v", err)
	}
	defer sessions.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("migrations: %v", err)
	}

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	if os.Getenv("SEED_DB") == "1" {
		if err := seedFn(context.Background(), db, wp); err != nil {
			return fmt.Errorf("seed: %v", err)
		}
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, sessions)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, addr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
