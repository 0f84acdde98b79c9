// Command remainders-api runs the personal remainder and account web API.
// It wires configuration, the database pool, migrations, the feature modules
// and the HTTP router, then serves until interrupted.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/user/remainders-go/apperror"
	"github.com/user/remainders-go/auth"
	"github.com/user/remainders-go/config"
	"github.com/user/remainders-go/db"
	"github.com/user/remainders-go/remainders"
	"github.com/user/remainders-go/users"
)

func main() {
	// .env support is a development convenience; production sets real env vars.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Manual dependency injection, store -> service -> handlers per feature.
	userService := users.NewService(users.NewPostgresStore(pool), cfg.Auth)
	userHandlers := users.NewHandlers(userService)

	remainderService := remainders.NewService(remainders.NewPostgresStore(pool))
	remainderHandler := remainders.NewHandler(remainderService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Router-level fallbacks so 404 and 405 use the same JSON error shape as
	// everything else. The 405 matters: POST or DELETE on /users/me must be
	// rejected as a method mismatch, not routed anywhere.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		auth.WriteError(w, req, apperror.NewNotFoundError("resource not found", nil))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		auth.WriteError(w, req, apperror.NewMethodNotAllowedError("method not allowed", nil))
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", userHandlers.HandleRegister())
		r.Post("/token", userHandlers.HandleIssueToken())

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(cfg.Auth))

			r.Get("/me", userHandlers.HandleGetMe())
			r.Patch("/me", userHandlers.HandleUpdateMe())
			r.Patch("/me/changepassword", userHandlers.HandleChangePassword())
			r.Delete("/me/delete", userHandlers.HandleDeleteMe())
		})
	})

	r.Route("/remainders", func(r chi.Router) {
		r.Use(auth.Middleware(cfg.Auth))
		remainderHandler.RegisterRoutes(r)
	})

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
