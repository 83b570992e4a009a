package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"bizdesk/internal/server"
	"bizdesk/internal/storage"
	"bizdesk/internal/storage/memstore"
	"bizdesk/internal/storage/postgres"
	"bizdesk/internal/storage/sqlite"
	"bizdesk/internal/util"
)

func main() {
	// .env is optional; flags and real environment win.
	_ = godotenv.Load()

	addrFlag := flag.String("addr", util.EnvOrDefault("BIZDESK_ADDR", ":8080"), "HTTP listen address")
	dbFlag := flag.String("db", util.EnvOrDefault("BIZDESK_DB_PATH", "data/bizdesk.db"), "Path to sqlite database file")
	pgFlag := flag.String("pg-dsn", util.EnvOrDefault("BIZDESK_PG_DSN", ""), "Postgres DSN for the task/board area (optional)")
	staticFlag := flag.String("static", util.EnvOrDefault("BIZDESK_STATIC_DIR", "web/dist"), "Directory with built frontend")
	memFlag := flag.Bool("mem", false, "Use the seeded in-memory store instead of sqlite")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger.Info("bizdesk backend starting")

	store, err := openStore(*memFlag, *dbFlag, *pgFlag, logger)
	if err != nil {
		logger.Error("unable to open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	auth := server.NewAuthenticator(
		util.EnvOrDefault("BIZDESK_ADMIN_EMAIL", "admin@example.com"),
		util.EnvOrDefault("BIZDESK_ADMIN_PASSWORD", "admin"),
		os.Getenv("BIZDESK_JWT_SECRET"),
	)

	srv := server.New(store, auth, logger, *staticFlag)

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	httpServer := &http.Server{
		Addr:    *addrFlag,
		Handler: corsWrapper.Handler(srv.Engine()),
	}

	go func() {
		logger.Info("starting server", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

// openStore picks the backend: seeded memory, sqlite, or sqlite with
// the task/board area overlaid onto Postgres.
func openStore(mem bool, dbPath, pgDSN string, logger *slog.Logger) (storage.Store, error) {
	if mem {
		logger.Info("using seeded in-memory store")
		return memstore.NewSeeded(), nil
	}

	base, err := sqlite.Open(dbPath, logger)
	if err != nil {
		return nil, err
	}
	if pgDSN == "" {
		return base, nil
	}

	overlay, err := postgres.Connect(context.Background(), pgDSN, logger)
	if err != nil {
		_ = base.Close()
		return nil, err
	}
	logger.Info("tasks and boards served from postgres")
	return storage.Compose(base, overlay), nil
}
