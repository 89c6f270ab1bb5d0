package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mysql-mcp/config"
	"mysql-mcp/mcp"
	"mysql-mcp/telemetry"
)

var flags struct {
	transport string
	httpAddr  string
	driver    string
	logLevel  string
}

var rootCmd = &cobra.Command{
	Use:   "mysql-mcp",
	Short: "MCP server exposing a MySQL database and a notes table",
	Long: `mysql-mcp serves the Model Context Protocol over stdio or HTTP.
Notes stored in the database are published as note:/// resources and the
database itself is reachable through table inspection and raw SQL tools.`,
	Version:       mcp.ServerVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyFlags(cmd, &cfg)
		return run(cmd.Context(), cfg)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		config.Exitf("mysql-mcp: %v", err)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flags.transport, "transport", "", "transport to serve: stdio or http (env MCP_TRANSPORT)")
	rootCmd.Flags().StringVar(&flags.httpAddr, "http-addr", "", "listen address for the http transport (env MCP_HTTP_ADDR)")
	rootCmd.Flags().StringVar(&flags.driver, "driver", "", "database driver (env DB_DRIVER)")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (env MCP_LOG_LEVEL)")
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("transport") {
		cfg.Transport = flags.transport
	}
	if cmd.Flags().Changed("http-addr") {
		cfg.HTTPAddr = flags.httpAddr
	}
	if cmd.Flags().Changed("driver") {
		cfg.Driver = flags.driver
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
}

func run(ctx context.Context, cfg config.Config) error {
	// stdout carries the protocol; logs go to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	shutdown, err := telemetry.Setup(ctx, mcp.ServerName, mcp.ServerVersion, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	driver := mcp.NormalizeDriver(cfg.Driver)
	if driver == "" {
		return fmt.Errorf("%w: '%s'", mcp.ErrInvalidDriver, cfg.Driver)
	}
	if cfg.Transport != mcp.TransportStdio && cfg.Transport != mcp.TransportHTTP {
		return fmt.Errorf("unknown transport %q", cfg.Transport)
	}
	dsn, err := cfg.DSN()
	if err != nil {
		return err
	}

	db, err := mcp.OpenDB(ctx, driver, dsn)
	if err != nil {
		return err
	}

	adapter, err := mcp.NewAdapter(db, driver, cfg.DatabaseName())
	if err != nil {
		db.Close()
		return err
	}

	srv := mcp.NewMcpServer(adapter, logger)
	defer srv.Close()

	if err = adapter.Bootstrap(ctx); err != nil {
		return err
	}
	logger.Debug("database ready", "driver", adapter.Driver(), "database", cfg.DatabaseName())

	if err = srv.SyncResources(ctx); err != nil {
		logger.Warn("resource sync failed", "error", err)
	}

	switch cfg.Transport {
	case mcp.TransportStdio:
		err = srv.ServeStdio(ctx, os.Stdin, os.Stdout)
	case mcp.TransportHTTP:
		err = srv.ServeHTTP(ctx, cfg.HTTPAddr)
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
