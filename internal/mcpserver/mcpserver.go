// Package mcpserver exposes the interpreter as a Model Context Protocol
// tool surface, for use by MCP-aware clients that want to evaluate
// MicroScheme snippets without spawning the CLI. Unlike the socket-based
// module servers this interpreter descends from, there is no persistent
// core process to dial: every tool call runs the evaluator in-process
// against a shared, single-threaded global environment for the lifetime of
// the server.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	interp "github.com/JoshuaCrotts/MicroScheme/internal/interp"
)

// Server wraps one evaluator and its global environment behind MCP tools.
type Server struct {
	ev *interp.Evaluator
	mc *server.MCPServer
}

// New builds a Server with a fresh global environment.
func New() *Server {
	s := &Server{
		ev: interp.NewEvaluator(),
		mc: server.NewMCPServer("microscheme", "1.0.0", server.WithToolCapabilities(false)),
	}
	s.mc.AddTool(
		mcp.NewTool("microscheme_eval",
			mcp.WithDescription("Evaluate one or more MicroScheme top-level forms against a persistent session environment. Returns the printed form of the last result."),
			mcp.WithString("expr",
				mcp.Required(),
				mcp.Description("Source text to parse and evaluate, e.g. (+ 1 2)"),
			),
		),
		s.handleEval,
	)
	s.mc.AddTool(
		mcp.NewTool("microscheme_reset",
			mcp.WithDescription("Discard the session environment and start a fresh one."),
		),
		s.handleReset,
	)
	return s
}

func (s *Server) handleEval(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expr, err := request.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	v, err := interp.RunSource(s.ev, expr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(v.String()), nil
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.ev = interp.NewEvaluator()
	return mcp.NewToolResultText("session reset"), nil
}

// ServeStdio blocks, serving MCP requests over stdio.
func (s *Server) ServeStdio() error {
	if err := server.ServeStdio(s.mc); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
