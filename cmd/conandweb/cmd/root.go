package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"conandweb/config"
)

var rootCmd = &cobra.Command{
	Use:   "conandweb",
	Short: "CONAND community website backend",
	Long: `conandweb serves the localized page view models of the CONAND website,
relays contact form messages and manages the content store.

Commands:
  serve        - HTTP server (pages, contact relay, admin API)
  migrate      - apply the database schema
  seed         - import a YAML content document
  user create  - create an operator account`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// app holds what every command needs: configuration and a logger.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &app{cfg: cfg, logger: config.NewLogger(cfg.Environment)}, nil
}

// openDB opens the PostgreSQL pool and checks connectivity.
func (a *app) openDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("postgres", a.cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
