package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/linkscout/linkedin-mcp-server/internal/app"
	"github.com/linkscout/linkedin-mcp-server/internal/config"
	"github.com/linkscout/linkedin-mcp-server/internal/logging"
	"github.com/linkscout/linkedin-mcp-server/internal/version"
)

// The stdio entrypoint: MCP clients spawn this binary and speak
// newline-delimited JSON-RPC over its stdin/stdout. All logging goes to
// stderr so the protocol stream stays clean.
func main() {
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get().String())
		return
	}

	logger := logging.NewStderr("mcp-stdio")

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infof("linkedin-mcp-server %s serving MCP over stdio", version.Get().Version)
	if err := app.RunStdio(ctx, cfg, os.Stdin, os.Stdout, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("stdio server error: %v", err)
	}
}
