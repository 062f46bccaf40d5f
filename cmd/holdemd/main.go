package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemcore/internal/randutil"
	"github.com/lox/holdemcore/internal/server"
)

var CLI struct {
	Config   string `short:"c" help:"Path to HCL configuration file"`
	Addr     string `short:"a" help:"Bind address (overrides config)"`
	Port     int    `short:"p" help:"Bind port (overrides config)"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("holdemd"),
		kong.Description("Texas hold'em websocket server."))

	cfg := server.DefaultConfig()
	if CLI.Config != "" {
		loaded, err := server.LoadConfig(CLI.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
			kctx.Exit(1)
		}
		cfg = loaded
	}
	if CLI.Addr != "" {
		cfg.Server.Address = CLI.Addr
	}
	if CLI.Port != 0 {
		cfg.Server.Port = CLI.Port
	}
	if CLI.LogLevel != "" {
		cfg.Server.LogLevel = CLI.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		kctx.Exit(1)
	}

	logger := log.New(os.Stderr)
	switch cfg.Server.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	logger.Info("starting holdemd", "addr", cfg.ListenAddress(), "tables", len(cfg.Tables))

	rng := randutil.New(time.Now().UnixNano())
	srv := server.New(cfg, logger, rng, quartz.NewReal())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("server failed", "err", err)
		kctx.Exit(1)
	}
}
