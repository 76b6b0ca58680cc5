package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/linkscout/linkedin-mcp-server/internal/app"
	"github.com/linkscout/linkedin-mcp-server/internal/config"
	"github.com/linkscout/linkedin-mcp-server/internal/logging"
)

// The HTTP entrypoint: serves the same dispatcher over POST for curl
// and integration harnesses that don't want to manage a stdio child.
func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	httpAddr := flag.String("http", cfg.HTTPAddr, "MCP HTTP listen address (e.g., :3333)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, cleanup, err := logging.New("mcp-http")
	if err != nil {
		log.Printf("file logging unavailable, using stderr: %v", err)
		logger = logging.NewStderr("mcp-http")
	} else {
		defer cleanup()
	}

	if err := app.RunMCPHTTP(cfg, *httpAddr, logger); err != nil {
		logger.Fatalf("MCP server error: %v", err)
	}
}
