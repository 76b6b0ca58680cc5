package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/linkscout/linkedin-mcp-server/internal/protocol"
	"github.com/linkscout/linkedin-mcp-server/internal/version"
)

// Method names served by the dispatcher. The switch in Handle covers
// exactly this set; anything else gets a method-not-found error.
const (
	methodInitialize = "initialize"
	methodPing       = "ping"
	methodToolsList  = "tools/list"
	methodToolsCall  = "tools/call"
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "linkedin-mcp-server"
)

// Server handles MCP JSON-RPC requests against a toolbox.
type Server struct {
	toolbox *Toolbox
}

// NewServer wires a toolbox into an MCP server.
func NewServer(tb *Toolbox) *Server {
	return &Server{toolbox: tb}
}

// Handle routes a single request and always returns a response carrying
// the request's id verbatim. Every failure, including a panicking tool,
// surfaces as the response's Error; the caller never sees a Go error.
// Notifications are filtered out by the transports before this point.
func (s *Server) Handle(ctx context.Context, req protocol.Request) (resp protocol.Response) {
	defer func() {
		if r := recover(); r != nil {
			err := protocol.Internalf("%s failed", req.Method).WithData(fmt.Sprint(r))
			resp = protocol.NewError(req.ID, err)
		}
	}()

	if req.JSONRPC != "" && req.JSONRPC != protocol.Version {
		return protocol.NewError(req.ID, protocol.Internalf("unsupported jsonrpc version %q", req.JSONRPC))
	}

	switch req.Method {
	case methodInitialize:
		return protocol.NewResult(req.ID, protocol.InitializeResult{
			ProtocolVersion: protocolVersion,
			ServerInfo: protocol.ServerInfo{
				Name:    serverName,
				Version: version.Get().Version,
			},
		})
	case methodPing:
		return protocol.NewResult(req.ID, map[string]any{})
	case methodToolsList:
		return protocol.NewResult(req.ID, protocol.ListResult{Tools: s.toolbox.Describe()})
	case methodToolsCall:
		var params protocol.CallParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				return protocol.NewError(req.ID, protocol.Internalf("invalid tools/call params").WithData(err.Error()))
			}
		}
		if params.Name == "" {
			return protocol.NewError(req.ID, protocol.Internalf("tool name is required"))
		}
		result, toolErr := s.toolbox.Call(ctx, params.Name, params.Args)
		if toolErr != nil {
			return protocol.NewError(req.ID, toolErr)
		}
		return protocol.NewResult(req.ID, result)
	default:
		return protocol.NewError(req.ID, protocol.Internalf("method not found: %s", req.Method))
	}
}
