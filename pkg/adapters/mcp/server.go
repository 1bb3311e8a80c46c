package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/samuel"
	"github.com/aretw0/samuel/internal/logging"
	"github.com/aretw0/samuel/internal/presentation/graph"
	"github.com/aretw0/samuel/pkg/adapters/file"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/aretw0/samuel/pkg/session"
	"github.com/aretw0/samuel/pkg/snapshot"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SolveResponse is the structured output of solve_stage.
type SolveResponse struct {
	Result *samuel.Result         `json:"result" jsonschema_description:"Expected submission, position, rewritten sequence and trace"`
	Cross  domain.CrossStageState `json:"cross" jsonschema_description:"Cross-stage flags to pass to the next stage"`
}

// PuzzleResponse is the structured output of the puzzle tools.
type PuzzleResponse struct {
	Puzzle *domain.PuzzleState `json:"puzzle" jsonschema_description:"The stored puzzle after the call"`
	Stage  *samuel.Stage       `json:"stage,omitempty" jsonschema_description:"The stage just computed, if any"`
}

// Server exposes the engine as MCP tools.
type Server struct {
	sessions   *session.Manager
	puzzleOpts []samuel.Option
	logger     *slog.Logger
	mcpServer  *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithPuzzleOptions applies opts to every puzzle and stateless solve.
func WithPuzzleOptions(opts ...samuel.Option) Option {
	return func(s *Server) {
		s.puzzleOpts = append(s.puzzleOpts, opts...)
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		sessions:  sessions,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("samuel-mcp", strings.TrimSpace(samuel.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the MCP SSE transport on addr until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, addr, baseURL string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: solve_stage
	solveTool := mcp.NewTool("solve_stage",
		mcp.WithDescription("Compute the expected submission for one stage of Samuel Says without storing anything."),
		mcp.WithString("displayed", mcp.Required(), mcp.Description("Displayed sequence as colour initial plus symbol tokens, e.g. 'r. y- g. b-'")),
		mcp.WithNumber("stage", mcp.Required(), mcp.Description("Stage number, 1 to 4")),
		mcp.WithString("snapshot", mcp.Description("JSON object of bomb counters (battery_count, total_ports, ...)")),
		mcp.WithString("cross", mcp.Description("JSON object of cross-stage flags returned by the previous stage")),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolveStage))

	// TOOL: create_puzzle
	createTool := mcp.NewTool("create_puzzle",
		mcp.WithDescription("Create a stored puzzle from a bomb description or a snapshot."),
		mcp.WithString("bomb", mcp.Description("JSON bomb description: modules, batteries, ports, indicators {lit, unlit}, serial")),
		mcp.WithString("snapshot", mcp.Description("JSON object of bomb counters, used when no bomb is given")),
		mcp.WithOutputSchema[PuzzleResponse](),
	)
	s.mcpServer.AddTool(createTool, mcp.NewStructuredToolHandler(s.handleCreatePuzzle))

	// TOOL: advance_puzzle
	advanceTool := mcp.NewTool("advance_puzzle",
		mcp.WithDescription("Advance a stored puzzle to its next stage."),
		mcp.WithString("puzzle_id", mcp.Required(), mcp.Description("ID returned by create_puzzle")),
		mcp.WithString("displayed", mcp.Description("Displayed sequence; generated when omitted")),
		mcp.WithOutputSchema[PuzzleResponse](),
	)
	s.mcpServer.AddTool(advanceTool, mcp.NewStructuredToolHandler(s.handleAdvancePuzzle))

	// TOOL: list_rules
	s.mcpServer.AddTool(mcp.NewTool("list_rules",
		mcp.WithDescription("List the twenty rule table rows in colour order."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(samuel.Rules())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode rules: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleSolveStage(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SolveResponse, error) {
	text, _ := args["displayed"].(string)
	displayed, err := domain.ParseSequence(text)
	if err != nil {
		return SolveResponse{}, err
	}

	stage, ok := args["stage"].(float64)
	if !ok {
		return SolveResponse{}, errors.New("stage is required")
	}

	var snap domain.Snapshot
	if raw, ok := args["snapshot"].(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			return SolveResponse{}, fmt.Errorf("invalid snapshot: %w", err)
		}
	}
	var cross domain.CrossStageState
	if raw, ok := args["cross"].(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &cross); err != nil {
			return SolveResponse{}, fmt.Errorf("invalid cross: %w", err)
		}
	}

	res, err := samuel.ExpectedSubmission(ctx, displayed, int(stage), snap, &cross, s.puzzleOpts...)
	if err != nil {
		s.logger.Warn("MCP solve_stage failed", "err", err)
		return SolveResponse{}, fmt.Errorf("solve failed: %w", err)
	}
	return SolveResponse{Result: res, Cross: cross}, nil
}

func (s *Server) handleCreatePuzzle(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PuzzleResponse, error) {
	var snap domain.Snapshot
	if raw, ok := args["bomb"].(string); ok && raw != "" {
		bomb, err := file.Parse([]byte(raw), "json")
		if err != nil {
			return PuzzleResponse{}, err
		}
		snap = snapshot.Capture(bomb)
	} else if raw, ok := args["snapshot"].(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			return PuzzleResponse{}, fmt.Errorf("invalid snapshot: %w", err)
		}
	} else {
		return PuzzleResponse{}, errors.New("either bomb or snapshot is required")
	}

	state, err := s.sessions.Create(ctx, snap)
	if err != nil {
		return PuzzleResponse{}, err
	}
	return PuzzleResponse{Puzzle: state}, nil
}

func (s *Server) handleAdvancePuzzle(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PuzzleResponse, error) {
	id, _ := args["puzzle_id"].(string)

	var displayed domain.Sequence
	if text, ok := args["displayed"].(string); ok && strings.TrimSpace(text) != "" {
		var err error
		if displayed, err = domain.ParseSequence(text); err != nil {
			return PuzzleResponse{}, err
		}
	}

	var stage *samuel.Stage
	state, err := s.sessions.Update(ctx, id, func(ctx context.Context, state *domain.PuzzleState) error {
		p := samuel.FromState(state, s.puzzleOpts...)
		var err error
		if displayed == nil {
			stage, err = p.Advance(ctx)
		} else {
			stage, err = p.AdvanceWith(ctx, displayed)
		}
		if err != nil {
			return err
		}
		*state = *p.State()
		return nil
	})
	if err != nil {
		return PuzzleResponse{}, fmt.Errorf("advance failed: %w", err)
	}
	return PuzzleResponse{Puzzle: state, Stage: stage}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: samuel://rules
	s.mcpServer.AddResource(mcp.NewResource("samuel://rules", "Rule Tables",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(samuel.Rules())
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "samuel://rules",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})

	// EXPOSE: samuel://rules.mmd
	s.mcpServer.AddResource(mcp.NewResource("samuel://rules.mmd", "Rule Tables Diagram",
		mcp.WithMIMEType("text/vnd.mermaid"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "samuel://rules.mmd",
				MIMEType: "text/vnd.mermaid",
				Text:     graph.GenerateMermaid(samuel.Rules(), nil),
			},
		}, nil
	})
}
