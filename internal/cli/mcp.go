package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/colthorp/primes-cli-go/internal/core"
	"github.com/colthorp/primes-cli-go/internal/prime"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mcpCmd starts the MCP server
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server exposing the primality tools on stdio",
	Args:  cobra.NoArgs,
	RunE:  handleMCP,
}

func handleMCP(cmd *cobra.Command, args []string) error {
	srv := &mcpServer{out: cmd.OutOrStdout(), maxBound: maxBound, logger: logger.Named("mcp")}
	return srv.serve(cmd.InOrStdin())
}

// MCP Protocol types
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type MCPToolInfo struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

type MCPServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type MCPInitializeResult struct {
	ProtocolVersion string        `json:"protocolVersion"`
	ServerInfo      MCPServerInfo `json:"serverInfo"`
	Capabilities    interface{}   `json:"capabilities"`
}

// NumberParams are the parameters shared by the is_prime and primes_below tools.
// N stays a json.Number so fractional or oversized values are rejected
// instead of silently truncated.
type NumberParams struct {
	N json.Number `json:"n"`
}

// JSON-RPC error codes
const (
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

type mcpServer struct {
	out      io.Writer
	maxBound int64
	logger   *zap.Logger
}

// serve handles newline-delimited JSON-RPC requests until in is exhausted.
func (s *mcpServer) serve(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	const maxCapacity = 1024 * 1024
	scanner.Buffer(make([]byte, 0, 64*1024), maxCapacity)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			// Without an ID a response would only confuse clients.
			s.logger.Warn("parse error", zap.Error(err))
			continue
		}

		s.handleRequest(&req)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}

func (s *mcpServer) handleRequest(req *MCPRequest) {
	s.logger.Debug("request", zap.String("method", req.Method), zap.Any("id", req.ID))

	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "initialized", "notifications/initialized":
		return
	case "tools/list":
		s.handleToolsList(req)
	case "tools/call":
		s.handleToolsCall(req)
	default:
		// Notifications (no ID) are ignored per JSON-RPC
		if req.ID != nil {
			s.sendError(req.ID, codeMethodNotFound, "Method not found", req.Method)
		}
	}
}

func (s *mcpServer) handleInitialize(req *MCPRequest) {
	result := MCPInitializeResult{
		ProtocolVersion: "2024-11-05",
		ServerInfo: MCPServerInfo{
			Name:    "primes-cli",
			Version: core.Version,
		},
		Capabilities: map[string]interface{}{
			"tools": map[string]interface{}{},
		},
	}
	s.sendResponse(req.ID, result)
}

func numberSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"n": map[string]interface{}{
				"type":        "integer",
				"description": description,
			},
		},
		"required": []string{"n"},
	}
}

func (s *mcpServer) handleToolsList(req *MCPRequest) {
	tools := []MCPToolInfo{
		{
			Name:        "is_prime",
			Description: "Report whether an integer is prime.\n\nArgs:\n    n: Any 64-bit signed integer\n\nReturns:\n    Object with n and is_prime",
			InputSchema: numberSchema("Integer to test"),
		},
		{
			Name:        "primes_below",
			Description: fmt.Sprintf("List every prime strictly less than n in ascending order.\n\nArgs:\n    n: Exclusive upper bound (at most %d)\n\nReturns:\n    Object with n, count and primes", s.maxBound),
			InputSchema: numberSchema("Exclusive upper bound"),
		},
	}

	s.sendResponse(req.ID, map[string]interface{}{"tools": tools})
}

func (s *mcpServer) handleToolsCall(req *MCPRequest) {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}

	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.sendError(req.ID, codeInvalidParams, "Invalid params", err.Error())
		return
	}

	switch params.Name {
	case "is_prime":
		s.handleIsPrime(req.ID, params.Arguments)
	case "primes_below":
		s.handlePrimesBelow(req.ID, params.Arguments)
	default:
		s.sendError(req.ID, codeInvalidParams, "Unknown tool", params.Name)
	}
}

func (s *mcpServer) parseNumber(argsJSON json.RawMessage) (int64, error) {
	var args NumberParams
	if len(argsJSON) > 0 {
		if err := json.Unmarshal(argsJSON, &args); err != nil {
			return 0, err
		}
	}
	if args.N == "" {
		return 0, errors.New("n is required")
	}
	n, err := core.ParseInteger(args.N.String())
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *mcpServer) handleIsPrime(id interface{}, argsJSON json.RawMessage) {
	n, err := s.parseNumber(argsJSON)
	if err != nil {
		s.sendToolError(id, fmt.Sprintf("Invalid arguments: %v", err))
		return
	}

	s.sendToolResult(id, map[string]interface{}{
		"n":        n,
		"is_prime": prime.IsPrime(n),
	})
}

func (s *mcpServer) handlePrimesBelow(id interface{}, argsJSON json.RawMessage) {
	n, err := s.parseNumber(argsJSON)
	if err != nil {
		s.sendToolError(id, fmt.Sprintf("Invalid arguments: %v", err))
		return
	}
	if err := core.CheckBound(n, s.maxBound); err != nil {
		s.sendToolError(id, fmt.Sprintf("Cannot list primes below %d: %v", n, err))
		return
	}

	primes := prime.PrimesBelow(n)
	s.sendToolResult(id, map[string]interface{}{
		"n":      n,
		"count":  len(primes),
		"primes": primes,
	})
}

func (s *mcpServer) write(resp MCPResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("encoding response", zap.Error(err))
		return
	}
	fmt.Fprintln(s.out, string(data))
}

func (s *mcpServer) sendResponse(id interface{}, result interface{}) {
	s.write(MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

func (s *mcpServer) sendError(id interface{}, code int, message, data string) {
	s.write(MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	})
}

func (s *mcpServer) sendToolResult(id interface{}, result interface{}) {
	s.sendResponse(id, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshal(result),
			},
		},
	})
}

func (s *mcpServer) sendToolError(id interface{}, message string) {
	s.sendResponse(id, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": message,
			},
		},
		"isError": true,
	})
}

func mustMarshal(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}
