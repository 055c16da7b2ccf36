package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/meltforce/hybrid/internal/config"
	"github.com/meltforce/hybrid/internal/rebuild"
	"github.com/meltforce/hybrid/internal/service"
	"github.com/meltforce/hybrid/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	startStr := flag.String("start", "", "inclusive start date YYYY-MM-DD (required)")
	endStr := flag.String("end", "", "inclusive end date YYYY-MM-DD (defaults to start)")
	stateDir := flag.String("state-dir", ".hybrid-rebuild", "directory for the rebuild journal")
	force := flag.Bool("force", false, "rebuild even if the journal says the range is done")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *startStr == "" {
		fmt.Fprintf(os.Stderr, "Usage: hybrid-rebuild -config config.yaml -start 2025-01-06 [-end 2025-02-02] [-force]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	start, err := time.Parse("2006-01-02", *startStr)
	if err != nil {
		log.Error("invalid start date", "start", *startStr, "error", err)
		os.Exit(1)
	}
	end := start
	if *endStr != "" {
		end, err = time.Parse("2006-01-02", *endStr)
		if err != nil {
			log.Error("invalid end date", "end", *endStr, "error", err)
			os.Exit(1)
		}
	}
	if end.Before(start) {
		log.Error("end date precedes start date", "start", *startStr, "end", *endStr)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	userID := cfg.Load.DefaultUserID

	// Open journal
	state, err := rebuild.OpenStateDB(*stateDir)
	if err != nil {
		log.Error("failed to open rebuild journal", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	if !*force {
		done, err := state.IsRebuilt(userID, start, end)
		if err != nil {
			log.Error("journal lookup failed", "error", err)
			os.Exit(1)
		}
		if done {
			log.Info("range already rebuilt, skipping (use -force to redo)",
				"start", *startStr, "end", end.Format("2006-01-02"))
			return
		}
	}

	// Connect database
	ctx := context.Background()
	db, err := storage.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	svc := service.New(db, log)
	svc.WeighModifiers = cfg.Load.WeighModifiers

	rows, err := svc.RebuildDailyLoads(ctx, userID, start, end)
	if err != nil {
		log.Error("rebuild failed", "error", err)
		os.Exit(1)
	}

	if err := state.MarkRebuilt(userID, start, end, rows); err != nil {
		log.Warn("failed to journal completed rebuild", "error", err)
	}

	log.Info("rebuild complete",
		"start", *startStr,
		"end", end.Format("2006-01-02"),
		"rows_written", rows,
	)
}
