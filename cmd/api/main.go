package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sujithsojan/etrackerbackend/internal/auth"
	"github.com/sujithsojan/etrackerbackend/internal/config"
	"github.com/sujithsojan/etrackerbackend/internal/expense"
	apphttp "github.com/sujithsojan/etrackerbackend/internal/http"
	"github.com/sujithsojan/etrackerbackend/internal/router"
	"github.com/sujithsojan/etrackerbackend/internal/users"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	app := newApp(cfg, pool)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func newApp(cfg *config.Config, pool *pgxpool.Pool) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger())

	app.Get("/health", healthz)
	app.Get("/healthz", healthz)

	userRepo := users.NewPostgresRepository(pool)
	hasher := auth.NewBcryptHasher()
	issuer := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authService := auth.NewService(userRepo, hasher, issuer)
	authHandler := &apphttp.AuthHandler{Service: authService, Users: userRepo}

	expenseRepo := expense.NewRepository(pool)
	expenseHandler := expense.NewHandler(expenseRepo)

	r := &router.Router{
		AuthHandler:    authHandler,
		ExpenseHandler: expenseHandler,
		AuthMW:         auth.Middleware(issuer),
	}
	r.RegisterRoutes(app)

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{"message": message})
}

func healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
