package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/Adinayykka/Space-Weather/internal/store"
	"github.com/Adinayykka/Space-Weather/internal/ui"
	"github.com/Adinayykka/Space-Weather/internal/util"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg, err := util.FromEnv()
	if err != nil {
		log.Fatal("parse environment", "err", err)
	}

	dsn := flag.String("dsn", cfg.DSN, "PostgreSQL DSN for the mission archive (optional)")
	theme := flag.String("theme", cfg.Theme, "Color theme: catppuccin|dracula|gruvbox|solarized_dark")
	certDir := flag.String("cert-dir", cfg.CertDir, "Directory for exported certificates")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "stormwatch [--dsn DSN] [--theme name] [--cert-dir dir] | migrate up|down | version\n")
	}
	flag.Parse()
	cfg.DSN = *dsn
	cfg.Theme = *theme
	cfg.CertDir = *certDir

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Println("stormwatch", version)
			return
		case "migrate":
			if len(args) < 2 {
				logger.Fatal("migrate requires 'up' or 'down'")
			}
			runMigrate(logger, cfg.DSN, args[1])
			return
		default:
			logger.Fatal("unknown command", "cmd", args[0])
		}
	}

	ctx := context.Background()

	// The archive is strictly optional: no DSN, or an unreachable database,
	// degrades to an in-memory-only session.
	var db *store.DB
	if cfg.DSN != "" {
		openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		db, err = store.Open(openCtx, cfg)
		cancel()
		if err != nil {
			logger.Warn("mission archive unavailable", "err", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	if err := ui.Run(ctx, db, cfg); err != nil {
		logger.Fatal("ui", "err", err)
	}
}

func runMigrate(logger *log.Logger, dsn, action string) {
	if dsn == "" {
		logger.Fatal("migrate requires a DSN (set DATABASE_URL or --dsn)")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	migrator, err := store.NewMigrator(dsn)
	if err != nil {
		logger.Fatal("migrator", "err", err)
	}
	switch action {
	case "up":
		if err := migrator.Up(ctx); err != nil && err != store.ErrNoChange {
			logger.Fatal("migrate up", "err", err)
		}
		fmt.Println("Migrations applied")
	case "down":
		if err := migrator.Down(ctx); err != nil && err != store.ErrNoChange {
			logger.Fatal("migrate down", "err", err)
		}
		fmt.Println("Migrations rolled back")
	default:
		logger.Fatal("unknown migrate action; use up|down")
	}
}
