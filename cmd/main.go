package main

import (
	"context"
	"log"

	"github.com/authcore-id/auth-backend/config"
	"github.com/authcore-id/auth-backend/db"
	"github.com/authcore-id/auth-backend/internal/auth/handler"
	authpg "github.com/authcore-id/auth-backend/internal/auth/repository/postgres"
	"github.com/authcore-id/auth-backend/internal/auth/service"
	"github.com/authcore-id/auth-backend/internal/mailer"
	producthandler "github.com/authcore-id/auth-backend/internal/product/handler"
	productpg "github.com/authcore-id/auth-backend/internal/product/repository/postgres"
	productservice "github.com/authcore-id/auth-backend/internal/product/service"
	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.Migrate(cfg.DBURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()

	userRepo := authpg.NewUserRepository(pool)
	tokenRepo := authpg.NewTokenRepository(pool)
	attemptRepo := authpg.NewAttemptRepository(pool)
	securityLogRepo := authpg.NewSecurityLogRepository(pool)
	productRepo := productpg.NewProductRepository(pool)

	brevo := mailer.NewBrevoMailer(cfg.MailAPIKey, cfg.MailSender)

	securityLogger := service.NewSecurityLogger(securityLogRepo, clock)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.AccessExpiryMin, cfg.VerifyTokenExpiryHours, clock)
	userService := service.NewUserService(userRepo, tokenRepo, attemptRepo, securityLogger, tokenService, brevo, clock, cfg)
	resetService := service.NewResetService(userRepo, tokenRepo, attemptRepo, securityLogger, brevo, clock, cfg)
	productService := productservice.NewProductService(productRepo, clock)

	authHandler := handler.NewAuthHandler(userService, resetService)
	adminHandler := handler.NewAdminHandler(userService, securityLogger)
	productHandler := producthandler.NewProductHandler(productService)
	authMiddleware := handler.NewAuthMiddleware(tokenService, userService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, adminHandler, productHandler, authMiddleware)

	log.Printf("Starting server on port %s (%s)", cfg.Port, cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
