package protocol

import (
	"encoding/json"
	"fmt"
)

// Version is the JSON-RPC protocol marker carried by every message.
const Version = "2.0"

// Error codes used on the wire. Transport-level decode failures report
// CodeParse; every other failure, dispatcher-level included, reports
// CodeInternal with a distinguishing message.
const (
	CodeParse    = -32700
	CodeInternal = -32603
)

// Request represents a minimal JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string          `json:"jsonrpc,omitempty"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification reports whether the request carries no id. Absent and
// explicit-null ids both decode to nil and are never answered. An id of
// 0 or "" still demands a response.
func (r Request) IsNotification() bool {
	return r.ID == nil
}

// Response models a JSON-RPC 2.0 response. Exactly one of Result/Error
// is set; use NewResult/NewError so that holds by construction.
type Response struct {
	JSONRPC string         `json:"jsonrpc,omitempty"`
	ID      any            `json:"id"`
	Result  any            `json:"result,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
}

// NewResult builds a success response echoing the request id.
func NewResult(id any, result any) Response {
	return Response{JSONRPC: Version, ID: id, Result: result}
}

// NewError builds a failure response. A nil id marshals as null, which
// is the required echo for requests whose id could not be recovered.
func NewError(id any, err *ResponseError) Response {
	return Response{JSONRPC: Version, ID: id, Error: err}
}

// ResponseError holds JSON-RPC error data. Data carries the diagnostic
// detail (upstream status, body excerpts, wrapped error text) and is
// only ever embedded in the error payload, never printed elsewhere.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// WithData returns a copy of the error carrying diagnostic data.
func (e *ResponseError) WithData(data any) *ResponseError {
	dup := *e
	dup.Data = data
	return &dup
}

// Internalf builds the application-level error every failed dispatch
// branch reports.
func Internalf(format string, args ...any) *ResponseError {
	return &ResponseError{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// ParseErrorf builds the transport-level decode failure.
func ParseErrorf(format string, args ...any) *ResponseError {
	return &ResponseError{Code: CodeParse, Message: fmt.Sprintf(format, args...)}
}

// ToolDescriptor describes a tool available from the MCP server.
type ToolDescriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema *JSONSchema `json:"inputSchema,omitempty"`
}

// JSONSchema is a minimal subset to describe tool input shapes.
type JSONSchema struct {
	Type                 string                `json:"type,omitempty"`
	Properties           map[string]JSONSchema `json:"properties,omitempty"`
	Required             []string              `json:"required,omitempty"`
	Items                *JSONSchema           `json:"items,omitempty"`
	Enum                 []string              `json:"enum,omitempty"`
	Description          string                `json:"description,omitempty"`
	AdditionalProperties any                   `json:"additionalProperties,omitempty"`
}

// InitializeResult is the payload for initialize.
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    Capabilities `json:"capabilities"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
}

// Capabilities declares what the server supports. Tools only.
type Capabilities struct {
	Tools struct{} `json:"tools"`
}

// ServerInfo identifies the server to the client.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ListResult is the payload for tools/list.
type ListResult struct {
	Tools []ToolDescriptor `json:"tools"`
}

// CallParams represents parameters for tools/call.
type CallParams struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"arguments,omitempty"`
}

// ContentPart is a single piece of tool output.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallResult is the payload for a successful tool invocation.
type CallResult struct {
	Content []ContentPart `json:"content"`
}
