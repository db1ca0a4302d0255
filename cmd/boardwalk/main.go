// Command boardwalk runs a full board-economy simulation: players take
// turns until all but one are bankrupt, then the run is persisted and
// the standings printed.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/talgya/boardwalk/internal/api"
	"github.com/talgya/boardwalk/internal/config"
	"github.com/talgya/boardwalk/internal/entropy"
	"github.com/talgya/boardwalk/internal/game"
	"github.com/talgya/boardwalk/internal/gamelog"
	"github.com/talgya/boardwalk/internal/ledger"
	"github.com/talgya/boardwalk/internal/persistence"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults apply if empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("Boardwalk — board-economy simulation",
		"players", len(cfg.Players), "seed", cfg.Seed)

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var src entropy.Source = entropy.NewSeeded(cfg.Seed)
	if cfg.RandomOrgKey != "" {
		src = entropy.NewClient(cfg.RandomOrgKey)
		slog.Info("using random.org entropy")
	}

	glog := gamelog.New(logger)
	g := game.New(cfg.Players, src, glog, ledger.NewTracker())

	var mu sync.Mutex
	if cfg.APIPort > 0 {
		srv := &api.Server{Game: g, Mu: &mu, Port: cfg.APIPort}
		srv.Start()
	}

	delay := time.Duration(cfg.TurnDelayMS) * time.Millisecond
	for turns := 0; !g.Over() && turns < cfg.MaxTurns; turns++ {
		mu.Lock()
		g.RunNextTurn()
		mu.Unlock()
		if delay > 0 {
			time.Sleep(delay)
		}
	}

	mu.Lock()
	defer mu.Unlock()

	fmt.Println()
	fmt.Print(g.Standings())

	if err := db.SaveRun(g); err != nil {
		slog.Error("failed to save run", "error", err)
	}
	if cfg.HTMLLogPath != "" {
		if err := glog.SaveHTML(cfg.HTMLLogPath); err != nil {
			slog.Error("failed to write HTML log", "error", err)
		} else {
			slog.Info("HTML log written", "path", cfg.HTMLLogPath)
		}
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
