// Package app assembles the server from configuration: it is the one
// place that turns a Config into a wired toolbox and MCP server.
package app

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/linkscout/linkedin-mcp-server/internal/apify"
	"github.com/linkscout/linkedin-mcp-server/internal/config"
	"github.com/linkscout/linkedin-mcp-server/internal/mcp"
	"github.com/linkscout/linkedin-mcp-server/internal/tools"
)

// NewToolbox builds the toolbox with the profile fetcher wired to the
// configured scraping backend.
func NewToolbox(cfg config.Config) *mcp.Toolbox {
	client := apify.NewClient(cfg.BaseURL, cfg.Actor, cfg.Token, cfg.Timeout)
	return mcp.NewToolbox(
		tools.FetchProfile(client),
	)
}

// NewMCPServer constructs an MCP server from configuration.
func NewMCPServer(cfg config.Config) *mcp.Server {
	return mcp.NewServer(NewToolbox(cfg))
}

// RunStdio serves the MCP protocol over the given streams until the
// input closes or ctx is cancelled.
func RunStdio(ctx context.Context, cfg config.Config, r io.Reader, w io.Writer, log *logrus.Entry) error {
	return mcp.RunStdio(ctx, r, w, NewMCPServer(cfg), log)
}

// RunMCPHTTP starts the MCP HTTP server on the provided address.
func RunMCPHTTP(cfg config.Config, addr string, log *logrus.Entry) error {
	return mcp.RunHTTP(NewMCPServer(cfg), addr, log)
}
