// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/folio/internal/auth"
	"github.com/olegiv/folio/internal/config"
	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/handler"
	"github.com/olegiv/folio/internal/handler/admin"
	"github.com/olegiv/folio/internal/handler/api"
	"github.com/olegiv/folio/internal/logging"
	"github.com/olegiv/folio/internal/middleware"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/internal/scheduler"
	"github.com/olegiv/folio/internal/service"
	"github.com/olegiv/folio/internal/session"
	"github.com/olegiv/folio/internal/store"
	"github.com/olegiv/folio/internal/version"
	"github.com/olegiv/folio/web"
)

const (
	// adminFailureRate limits failed admin logins per client IP.
	adminFailureRate  = 0.1
	adminFailureBurst = 5
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	hashPassword := flag.Bool("hash-password", false, "Read a password from stdin and print its argon2id hash")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "folio - multilingual portfolio CMS\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_SESSION_SECRET       Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_DB_PATH              SQLite database path (default: ./data/folio.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_SERVER_PORT          Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_ENV                  Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_DEFAULT_LANGUAGE     Language used when none is configured (default: en)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_ADMIN_PASSWORD_HASH  argon2id hash enabling the admin API\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FOLIO_DO_SEED              Seed demo content into an empty database\n")
	}

	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("folio %s (built: %s)\n", version.Get(), version.BuildTime)
		os.Exit(0)
	}

	if *hashPassword {
		if err := printPasswordHash(); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func printPasswordHash() error {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("reading password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return errors.New("password must not be empty")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	_, _ = fmt.Println(hash)
	return nil
}

func run() error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	isDev := cfg.IsDevelopment()

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(textHandler))

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// WARN and ERROR records also go to the event log from here on.
	logger := slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("database ready", "version", version.Get().String())

	ctx := context.Background()
	if cfg.DoSeed {
		if err := store.Seed(ctx, db); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
		slog.Info("demo content seeded")
	}

	sessionManager := session.New(db, isDev)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          isDev,
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	site := handler.NewSite(db, content.MediaURLs{MediaPrefix: cfg.MediaURL, StaticPrefix: cfg.StaticURL},
		cfg.DefaultLanguage, logger)
	contactService := service.NewContactService(site.Queries, logger)
	eventService := service.NewEventService(db)

	frontend := handler.NewFrontendHandler(site, renderer, contactService, cfg.StaticURL, logger)
	apiHandler := api.NewHandler(site, contactService, isDev, logger)
	contactLimiter := middleware.NewRateLimiter(cfg.ContactRateLimit, cfg.ContactRateBurst)
	language := middleware.Language(site.Languages, isDev)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(isDev)))
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.SkipCSRF("/api/"))
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), isDev, cfg.TrustedOrigins)))

	if strings.HasPrefix(cfg.StaticURL, "/") {
		staticFS, err := fs.Sub(web.Static, "static")
		if err != nil {
			return fmt.Errorf("getting static fs: %w", err)
		}
		prefix := ensureSlash(cfg.StaticURL)
		r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.FS(staticFS))))
	}
	if strings.HasPrefix(cfg.MediaURL, "/") {
		prefix := ensureSlash(cfg.MediaURL)
		r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.MediaDir))))
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(language)
		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			api.WriteNotFound(w, "Not found.")
		})
		apiHandler.Routes(r, contactLimiter.Middleware())

		if cfg.AdminEnabled() {
			creds := auth.Credentials{User: cfg.AdminUser, PasswordHash: cfg.AdminPasswordHash}
			if !creds.Valid() {
				slog.Warn("FOLIO_ADMIN_PASSWORD_HASH is not an argon2id hash; admin API will reject every request")
			}
			failures := middleware.NewRateLimiter(adminFailureRate, adminFailureBurst)
			adminHandler := admin.NewHandler(site, eventService, logger)
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminAuth(creds, failures))
				adminHandler.Routes(r)
			})
			slog.Info("admin API enabled", "user", cfg.AdminUser)
		}
	})

	r.Group(func(r chi.Router) {
		r.Use(sessionManager.LoadAndSave)
		r.Use(language)
		r.Get("/", frontend.Home)
		r.With(contactLimiter.HTMLMiddleware()).Post("/contact/", frontend.Contact)
		r.Get("/{slug}/", frontend.Page)
	})

	// Unmatched page paths without a trailing slash get their canonical URL.
	r.NotFound(sessionManager.LoadAndSave(language(middleware.AddTrailingSlash(http.HandlerFunc(frontend.NotFound)))).ServeHTTP)

	sched := scheduler.New(eventService, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func ensureSlash(prefix string) string {
	if !strings.HasSuffix(prefix, "/") {
		return prefix + "/"
	}
	return prefix
}
