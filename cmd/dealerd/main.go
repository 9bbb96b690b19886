package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/openpoker/dealerd/internal/dealer"
	"github.com/openpoker/dealerd/internal/game"
	"github.com/openpoker/dealerd/internal/server"
	"github.com/openpoker/dealerd/internal/store"
)

var CLI struct {
	Config    string `short:"c" long:"config" default:"dealerd.hcl" help:"Path to HCL configuration file"`
	Addr      string `short:"a" long:"addr" help:"Server address to bind to (overrides config)"`
	LogLevel  string `short:"l" long:"log-level" help:"Log level (overrides config)"`
	DealerURL string `short:"d" long:"dealer-url" help:"Remote dealer base URL (overrides config)"`
	Database  string `long:"database" help:"SQLite snapshot database path (overrides config)"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Pick up a local .env when present
	_ = godotenv.Load()

	cfg, err := server.LoadConfig(CLI.Config)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		ctx.Exit(1)
	}

	// Apply command line and environment overrides
	if CLI.Addr != "" {
		cfg.Server.Address = CLI.Addr
	}
	if CLI.LogLevel != "" {
		cfg.Server.LogLevel = CLI.LogLevel
	}
	if CLI.DealerURL != "" {
		cfg.Dealer.URL = CLI.DealerURL
	}
	if url := os.Getenv("DEALER_API_URL"); url != "" && cfg.Dealer.URL == "" {
		cfg.Dealer.URL = url
	}
	if CLI.Database != "" {
		cfg.Database = &server.DatabaseSettings{Path: CLI.Database}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		ctx.Exit(1)
	}

	logger := log.New(os.Stderr)
	switch cfg.Server.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	logger.Info("Starting dealerd",
		"addr", cfg.ListenAddress(),
		"dealer", cfg.Dealer.URL,
		"persistence", cfg.Database != nil)

	session := game.NewSession(game.Config{
		StartingBalance: cfg.Game.StartingBalance,
		DebugTopUp:      cfg.Game.DebugTopUp,
	}, logger)

	var (
		remote *dealer.Client
		pinger server.DealerPinger
	)
	if cfg.Dealer.URL != "" {
		remote = dealer.NewClient(cfg.Dealer.URL, cfg.DealerTimeout(), quartz.NewReal(), logger)
		pinger = remote
	}

	local := dealer.NewLocal(session)
	var authority dealer.Authority = local
	if remote != nil {
		authority = dealer.NewFailover(remote, local, logger)
	}

	var snapshots server.SnapshotStore
	if cfg.Database != nil && cfg.Database.Path != "" {
		db, err := store.Open(cfg.Database.Path, logger)
		if err != nil {
			logger.Error("Failed to open snapshot database", "error", err)
			ctx.Exit(1)
		}
		defer func() { _ = db.Close() }()
		snapshots = db
	}

	srv := server.NewServer(cfg.ListenAddress(), session, authority, pinger, snapshots, logger)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server failed", "error", err)
		ctx.Exit(1)
	}
}
