package mcp

import (
	"context"
	"encoding/json"

	"github.com/linkscout/linkedin-mcp-server/internal/protocol"
)

// Tool is a single MCP tool: it can describe itself for tools/list and
// execute a call. Invoke reports failures through *protocol.ResponseError
// so the dispatcher can hand them straight back to the client.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, args json.RawMessage) (protocol.CallResult, *protocol.ResponseError)
}

// Toolbox holds the registered tools and dispatches calls by name.
// Descriptors are listed in registration order so clients see a stable
// tool listing across runs.
type Toolbox struct {
	order []string
	tools map[string]Tool
}

// NewToolbox constructs a toolbox with the provided tools. A duplicate
// name replaces the earlier registration but keeps its listing position.
func NewToolbox(tools ...Tool) *Toolbox {
	tb := &Toolbox{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		name := t.Descriptor().Name
		if _, exists := tb.tools[name]; !exists {
			tb.order = append(tb.order, name)
		}
		tb.tools[name] = t
	}
	return tb
}

// Describe returns the descriptors of all registered tools.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	descriptors := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, name := range tb.order {
		descriptors = append(descriptors, tb.tools[name].Descriptor())
	}
	return descriptors
}

// Call invokes the named tool with the raw argument payload.
func (tb *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	tool, ok := tb.tools[name]
	if !ok {
		return protocol.CallResult{}, protocol.Internalf("unknown tool %q", name)
	}
	return tool.Invoke(ctx, args)
}
