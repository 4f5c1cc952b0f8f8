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

	"github.com/aretw0/fling"
	"github.com/aretw0/fling/internal/logging"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/ports"
	"github.com/aretw0/fling/pkg/simulate"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SimulateResponse is the structured result of the simulate_gesture tool.
type SimulateResponse struct {
	Outcome    string `json:"outcome" jsonschema_description:"commit, abort or none when no gesture was released"`
	Direction  string `json:"direction,omitempty" jsonschema_description:"left or right, for commits"`
	Action     string `json:"action,omitempty" jsonschema_description:"pass or like, for commits"`
	Dispatches int    `json:"dispatches" jsonschema_description:"Number of commit actions fired"`
	Frames     int    `json:"frames" jsonschema_description:"Number of visible frame changes"`
	FinalCSS   string `json:"final_css" jsonschema_description:"CSS transform of the card at the end of the run"`
	Report     string `json:"report" jsonschema_description:"Markdown summary with the frame timeline"`
}

// Server exposes the gesture simulator (and optionally the swipe journal)
// as an MCP Server.
type Server struct {
	store     ports.SwipeStore
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithStore enables the swipe journal tools.
func WithStore(store ports.SwipeStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLifecycleHooks attaches hooks to every simulated card.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(opts ...Option) *Server {
	s := &Server{
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("fling-mcp", strings.TrimSpace(fling.Version)),
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

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

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

		s.logger.Info("shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: simulate_gesture
	simulateTool := mcp.NewTool("simulate_gesture",
		mcp.WithDescription("Replay a scripted swipe gesture on a virtual clock and report whether the card commits or snaps back."),
		mcp.WithString("trace", mcp.Required(), mcp.Description(`JSON trace: {"name": "...", "viewport": 1024, "steps": [{"action": "down|move|up|cancel|button|wait", "x": 0, "y": 0, "after": 16, "direction": "left|right", "for": 100}]}`)),
		mcp.WithOutputSchema[SimulateResponse](),
	)
	s.mcpServer.AddTool(simulateTool, mcp.NewStructuredToolHandler(s.handleSimulate))

	if s.store == nil {
		return
	}

	// TOOL: list_swipes
	s.mcpServer.AddTool(mcp.NewTool("list_swipes",
		mcp.WithDescription("List the IDs of every card with a recorded swipe."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cards, err := s.store.List(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(cards)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: get_swipe
	s.mcpServer.AddTool(mcp.NewTool("get_swipe",
		mcp.WithDescription("Show the recorded swipe of a card."),
		mcp.WithString("card_id", mcp.Required(), mcp.Description("Card ID")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cardID, _ := request.GetArguments()["card_id"].(string)
		rec, err := s.store.Load(ctx, cardID)
		if err != nil {
			if errors.Is(err, domain.ErrSwipeNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("card %q has no swipe", cardID)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(rec)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SimulateResponse, error) {
	raw, _ := args["trace"].(string)

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return SimulateResponse{}, fmt.Errorf("trace is not a JSON object: %w", err)
	}
	trace, err := simulate.Decode(doc)
	if err != nil {
		return SimulateResponse{}, err
	}

	rep, err := simulate.Run(ctx, trace, simulate.Options{Logger: s.logger, Hooks: s.hooks})
	if err != nil {
		s.logger.Error("MCP simulate failed", "error", err)
		return SimulateResponse{}, fmt.Errorf("simulation failed: %w", err)
	}

	resp := SimulateResponse{
		Outcome:    rep.Outcome,
		Dispatches: rep.Dispatched(),
		Frames:     len(rep.Timeline),
		FinalCSS:   rep.Final.CSS(),
		Report:     rep.Markdown(),
	}
	if rep.Direction != nil {
		resp.Direction = rep.Direction.String()
		resp.Action = rep.Direction.Action()
	}
	return resp, nil
}

func (s *Server) registerResources() {
	// EXPOSE: fling://thresholds
	s.mcpServer.AddResource(mcp.NewResource("fling://thresholds", "Gesture Thresholds",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return s.thresholdsResource()
	})
}

func (s *Server) thresholdsResource() ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(domain.DefaultThresholds())
	if err != nil {
		return nil, fmt.Errorf("failed to encode thresholds: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "fling://thresholds",
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
