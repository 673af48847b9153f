// Package mcp implements the JSON-RPC 2.0 tool-calling protocol surface:
// wire types, the declared tool catalog, and the dispatcher that routes
// tools/call requests into the service layer.
package mcp

import "encoding/json"

// JSONRPCVersion is the only protocol version accepted on the wire.
const JSONRPCVersion = "2.0"

// ProtocolVersion is the MCP protocol revision advertised on initialize.
const ProtocolVersion = "2025-11-25"

// JSON-RPC error codes.
const (
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// Request is an incoming JSON-RPC request. ID is kept raw so numeric and
// string ids echo back unchanged; a missing id marks a notification.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  CallParams      `json:"params"`
}

// IsNotification reports whether the request carries no id and therefore
// expects no response body.
func (r Request) IsNotification() bool {
	return len(r.ID) == 0 || string(r.ID) == "null"
}

// CallParams carries the tools/call parameters; other methods ignore them.
type CallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Response is an outgoing JSON-RPC response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

// ErrorObject is a JSON-RPC error payload.
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewResponse builds a success response echoing the request id.
func NewResponse(id json.RawMessage, result any) Response {
	return Response{JSONRPC: JSONRPCVersion, ID: id, Result: result}
}

// NewErrorResponse builds an error response echoing the request id.
func NewErrorResponse(id json.RawMessage, code int, message string) Response {
	if len(id) == 0 {
		id = json.RawMessage("null")
	}
	return Response{JSONRPC: JSONRPCVersion, ID: id, Error: &ErrorObject{Code: code, Message: message}}
}

// InitializeResult answers the initialize handshake.
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    Capabilities `json:"capabilities"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
}

// Capabilities advertises what the server supports. Only tools, and with no
// optional features.
type Capabilities struct {
	Tools struct{} `json:"tools"`
}

// ServerInfo identifies the server in the initialize handshake.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Tool is one declared tool in the tools/list catalog.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema Schema `json:"inputSchema"`
}

// Schema is a JSON-Schema object declaration for tool arguments.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Property is one argument declaration within a tool schema.
type Property struct {
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Enum        []string  `json:"enum,omitempty"`
	Items       *Property `json:"items,omitempty"`
}

// ToolsListResult answers tools/list.
type ToolsListResult struct {
	Tools []Tool `json:"tools"`
}

// ToolResult is the content-wrapped payload of one tool call.
type ToolResult struct {
	Content []ContentItem `json:"content"`
}

// ContentItem is one piece of tool output. Everything this server emits is
// JSON rendered as text.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// textResult wraps a payload as the single JSON text content item of a tool
// result.
func textResult(payload any) (ToolResult, error) {
	text, err := json.Marshal(payload)
	if err != nil {
		return ToolResult{}, err
	}
	return ToolResult{Content: []ContentItem{{Type: "text", Text: string(text)}}}, nil
}
