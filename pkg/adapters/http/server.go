package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/fling"
	"github.com/aretw0/fling/internal/logging"
	"github.com/aretw0/fling/pkg/domain"
	"github.com/aretw0/fling/pkg/ports"
	"github.com/aretw0/fling/pkg/simulate"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// maxBody bounds request bodies (traces are small).
const maxBody = 1 << 20

// Server serves the simulation and swipe journal API.
type Server struct {
	Store   ports.SwipeStore
	Streams *StreamManager
	hooks   domain.LifecycleHooks
	metrics http.Handler
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures the Server.
type Option func(*Server)

// WithStore enables the /swipes routes.
func WithStore(store ports.SwipeStore) Option {
	return func(s *Server) {
		s.Store = store
	}
}

// WithLifecycleHooks attaches hooks to every simulated card.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// WithMetricsHandler mounts h at /metrics (typically promhttp).
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
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

// NewHandler creates a new HTTP handler. Requests to documented operations
// are validated against the embedded OpenAPI document.
func NewHandler(opts ...Option) http.Handler {
	server := &Server{
		Streams: NewStreamManager(),
		logger:  logging.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(server)
	}
	server.Streams.logger = server.logger

	specRouter, err := loadRouter()
	if err != nil {
		// The document is embedded at build time.
		panic(err)
	}

	r := chi.NewRouter()
	r.Use(validateRequests(specRouter, server.logger))

	r.Get("/openapi.yaml", server.ServeSpec)
	r.Get("/swagger", server.ServeSwagger)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Get("/thresholds", server.GetThresholds)
	r.Post("/simulate", server.Simulate)
	r.Get("/events", server.SubscribeEvents)

	if server.Store != nil {
		r.Route("/swipes", func(r chi.Router) {
			r.Get("/", server.ListSwipes)
			r.Post("/", server.RecordSwipe)
			r.Get("/{cardID}", server.GetSwipe)
			r.Delete("/{cardID}", server.DeleteSwipe)
		})
	}
	if server.metrics != nil {
		r.Handle("/metrics", server.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "fling-http",
		"version": strings.TrimSpace(fling.Version),
	})
}

// GetThresholds handles the GET /thresholds request.
func (s *Server) GetThresholds(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, domain.DefaultThresholds())
}

// Simulate handles the POST /simulate request: it replays the posted trace
// and broadcasts the frame timeline to /events subscribers of the trace name.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Simulate: Invalid request body", "error", err)
		return
	}

	trace, err := simulate.Decode(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	rep, err := simulate.Run(r.Context(), trace, simulate.Options{
		Logger: s.logger,
		Hooks:  s.hooks,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Simulation error: %v", err), http.StatusInternalServerError)
		s.logger.Error("Simulate failed", "error", err)
		return
	}

	if trace.Name != "" {
		for _, e := range rep.Timeline {
			if data, err := json.Marshal(e.Diff); err == nil {
				s.Streams.Broadcast(trace.Name, string(data))
			}
		}
	}

	s.writeJSON(w, http.StatusOK, rep)
}

// swipeRequest is the body of POST /swipes.
type swipeRequest struct {
	CardID    string           `json:"card_id"`
	Direction domain.Direction `json:"direction"`
	Source    domain.Source    `json:"source"`
}

// RecordSwipe handles the POST /swipes request. It is the commit sink for
// remote cards and answers 409 when the card was already swiped.
func (s *Server) RecordSwipe(w http.ResponseWriter, r *http.Request) {
	var body swipeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("RecordSwipe: Invalid request body", "error", err)
		return
	}
	if body.Source == "" {
		body.Source = domain.SourceDrag
	}

	rec := domain.NewSwipeRecord(body.CardID, body.Direction, body.Source, s.now().UTC())
	if err := s.Store.Record(r.Context(), rec); err != nil {
		if errors.Is(err, domain.ErrAlreadySwiped) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, fmt.Sprintf("Record error: %v", err), http.StatusInternalServerError)
		s.logger.Error("RecordSwipe failed", "error", err, "card", body.CardID)
		return
	}
	s.writeJSON(w, http.StatusCreated, rec)
}

// ListSwipes handles the GET /swipes request.
func (s *Server) ListSwipes(w http.ResponseWriter, r *http.Request) {
	cards, err := s.Store.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.logger.Error("ListSwipes failed", "error", err)
		return
	}
	if cards == nil {
		cards = []string{}
	}
	s.writeJSON(w, http.StatusOK, cards)
}

// GetSwipe handles the GET /swipes/{cardID} request.
func (s *Server) GetSwipe(w http.ResponseWriter, r *http.Request) {
	cardID, ok := s.cardID(w, r)
	if !ok {
		return
	}
	rec, err := s.Store.Load(r.Context(), cardID)
	if err != nil {
		if errors.Is(err, domain.ErrSwipeNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.logger.Error("GetSwipe failed", "error", err, "card", cardID)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

// DeleteSwipe handles the DELETE /swipes/{cardID} request.
func (s *Server) DeleteSwipe(w http.ResponseWriter, r *http.Request) {
	cardID, ok := s.cardID(w, r)
	if !ok {
		return
	}
	if err := s.Store.Delete(r.Context(), cardID); err != nil {
		http.Error(w, fmt.Sprintf("Delete error: %v", err), http.StatusInternalServerError)
		s.logger.Error("DeleteSwipe failed", "error", err, "card", cardID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// cardID binds the {cardID} path parameter, unescaping it.
func (s *Server) cardID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var cardID string
	err := runtime.BindStyledParameterWithOptions("simple", "cardID", chi.URLParam(r, "cardID"), &cardID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid format for parameter cardID: %v", err), http.StatusBadRequest)
		return "", false
	}
	return cardID, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// StreamManager handles active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // trace name -> set of channels
	logger      *slog.Logger
}

func NewStreamManager() *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
		logger:      logging.NewNop(),
	}
}

func (sm *StreamManager) Subscribe(topic string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 64)
	if _, ok := sm.subscribers[topic]; !ok {
		sm.subscribers[topic] = make(map[chan<- string]struct{})
	}
	sm.subscribers[topic][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[topic]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, topic)
			}
		}
	}
}

// Subscribers returns the number of listeners on topic.
func (sm *StreamManager) Subscribers(topic string) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers[topic])
}

func (sm *StreamManager) Broadcast(topic string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[topic] {
		select {
		case ch <- msg:
		default:
			// Drop message if channel is full (slow client)
			sm.logger.Warn("SSE: Client buffer full, dropping message", "trace", topic)
		}
	}
}

// SubscribeEvents handles the GET /events?trace=<name> request (SSE).
// The optional watch parameter ("transform,feedback,phase,cursor") keeps only
// frame diffs touching one of the listed fields.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	topic := r.URL.Query().Get("trace")
	if topic == "" {
		http.Error(w, "trace parameter is required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe(topic)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	var watchList []string
	if watch := r.URL.Query().Get("watch"); watch != "" {
		watchList = strings.Split(watch, ",")
	}

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE Client Disconnected", "trace", topic)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if len(watchList) > 0 && !watched(msg, watchList) {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func watched(msg string, fields []string) bool {
	var diff domain.FrameDiff
	if err := json.Unmarshal([]byte(msg), &diff); err != nil {
		return true
	}
	for _, field := range fields {
		switch strings.TrimSpace(field) {
		case "transform":
			if diff.Transform != nil {
				return true
			}
		case "feedback":
			if diff.Feedback != nil {
				return true
			}
		case "phase":
			if diff.Phase != nil {
				return true
			}
		case "cursor":
			if diff.Cursor != nil {
				return true
			}
		}
	}
	return false
}
