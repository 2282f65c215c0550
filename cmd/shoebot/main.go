package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kykylib/shoebot/internal/api"
	"github.com/kykylib/shoebot/internal/catalog"
	"github.com/kykylib/shoebot/internal/flow"
	"github.com/kykylib/shoebot/internal/messaging"
	"github.com/kykylib/shoebot/internal/order"
	"github.com/kykylib/shoebot/internal/util"
)

// Default configuration constants
const (
	// DefaultStateDir is the default directory for shoebot state data
	DefaultStateDir = "/var/lib/shoebot"
	// DefaultDBFileName is the default SQLite database filename
	DefaultDBFileName = "shoebot.db"
	// DefaultAPIAddr is the default operational API listen address
	DefaultAPIAddr = ":8080"
)

// Config holds environment configuration
type Config struct {
	DBDriver string
	DBDSN    string
	StateDir string
	FeedURL  string
	APIAddr  string
	Debug    bool
}

func main() {
	config := loadEnvironmentConfig()
	initializeLogger(config.Debug)

	dbDriver := flag.String("db-driver", config.DBDriver, "catalog store driver: sqlite, postgres, or memory")
	dbDSN := flag.String("db-dsn", config.DBDSN, "catalog database DSN")
	feedURL := flag.String("feed-url", config.FeedURL, "remote catalog feed URL (empty for fixture-only)")
	apiAddr := flag.String("api-addr", config.APIAddr, "operational API listen address (empty to disable)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := buildCatalogStore(*dbDriver, *dbDSN)
	if err != nil {
		slog.Error("Failed to initialize catalog store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	var feeder catalog.Feeder
	if *feedURL != "" {
		fetcher := catalog.NewFetcher(*feedURL)
		defer fetcher.Close()
		feeder = fetcher
	}
	if err := catalog.Bootstrap(ctx, store, feeder); err != nil {
		slog.Error("Catalog bootstrap failed", "error", err)
		os.Exit(1)
	}

	sessions := flow.NewSessionStore()
	engine := flow.NewEngine(sessions, store, order.NewResolver(store))

	console := messaging.NewConsoleService(os.Stdin, os.Stdout)
	if err := console.Start(ctx); err != nil {
		slog.Error("Failed to start console transport", "error", err)
		os.Exit(1)
	}
	dispatcher := messaging.NewDispatcher(console, engine)
	dispatcher.Start(ctx)

	if *apiAddr != "" {
		server := api.NewServer(*apiAddr, store, sessions)
		go func() {
			if err := server.Start(); err != nil {
				slog.Error("API server failed", "error", err)
			}
		}()
		defer func() {
			if err := server.Shutdown(context.Background()); err != nil {
				slog.Error("API server shutdown failed", "error", err)
			}
		}()
	}

	slog.Info("shoebot running", "db_driver", *dbDriver, "feed_set", *feedURL != "", "api_addr", *apiAddr)
	<-ctx.Done()
	dispatcher.Wait()
	slog.Info("shoebot exited")
}

// initializeLogger sets up structured logging.
func initializeLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadEnvironmentConfig loads configuration from environment variables and .env file.
func loadEnvironmentConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	}

	config := Config{
		DBDriver: util.EnvOrDefault("SHOEBOT_DB_DRIVER", "sqlite"),
		DBDSN:    os.Getenv("SHOEBOT_DB_DSN"),
		StateDir: util.EnvOrDefault("SHOEBOT_STATE_DIR", DefaultStateDir),
		FeedURL:  os.Getenv("SHOEBOT_FEED_URL"),
		APIAddr:  util.EnvOrDefault("SHOEBOT_API_ADDR", DefaultAPIAddr),
		Debug:    util.ParseBoolEnv("SHOEBOT_DEBUG", false),
	}

	// Default to SQLite in the state directory when no DSN is provided.
	if config.DBDSN == "" && config.DBDriver == "sqlite" {
		config.DBDSN = filepath.Join(config.StateDir, DefaultDBFileName)
	}

	return config
}

// buildCatalogStore selects the catalog backend by configuration.
func buildCatalogStore(driver, dsn string) (catalog.Store, error) {
	switch driver {
	case "postgres":
		return catalog.NewPostgresStore(catalog.WithDSN(dsn))
	case "memory":
		return catalog.NewInMemoryStore(), nil
	default:
		return catalog.NewSQLiteStore(catalog.WithDSN(dsn))
	}
}
