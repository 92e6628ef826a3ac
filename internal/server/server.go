package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/statuslight/statuslight/internal/broadcast"
	"github.com/statuslight/statuslight/internal/store"
)

const (
	// sseWriteTimeout is the maximum time allowed for a single SSE write
	// operation. This prevents goroutine leaks when clients are slow or
	// disconnected. Must be <= shutdown timeout to ensure clean shutdown.
	sseWriteTimeout = 5 * time.Second

	// defaultTitle is used when no custom title is configured.
	defaultTitle = "StatusLight"

	// titlePlaceholder is the marker in HTML that gets replaced with the
	// actual title.
	titlePlaceholder = "{{.Title}}"
)

// Response bodies for the mutating routes. The wording is part of the
// external contract; automation scripts grep for these.
const (
	bodyIdle       = "OK - Status: IDLE (Red LED)"
	bodyProcessing = "OK - Status: PROCESSING (Yellow LED)"
	bodyWaiting    = "OK - Status: WAITING (Yellow LED - Blinking)"
	bodyComplete   = "OK - Status: COMPLETE (Green LED)"
)

// statusPayload is the wire shape shared by the read endpoint and the SSE
// stream: {"status":"<value>"}.
type statusPayload struct {
	Status string `json:"status"`
}

// Server handles HTTP requests for the status API, the event stream, and
// the dashboard.
//
// Server provides these endpoints:
//   - GET /red /idle /yellow /processing /waiting /prompt /green /complete:
//     set the corresponding status and broadcast it
//   - GET /status: current status as JSON
//   - GET /events: Server-Sent Events stream of status changes
//   - GET / and /index.html: the embedded dashboard HTML
//
// Every response carries permissive CORS headers so a dashboard served from
// anywhere (or file://) can call the API. The server is designed for
// graceful shutdown via context cancellation.
type Server struct {
	store       *store.StatusStore
	registry    *broadcast.Registry
	broadcaster *broadcast.Broadcaster
	port        int
	httpServer  *http.Server
	assets      fs.FS
	title       string
	logger      *slog.Logger
}

// NewServer creates a new HTTP [Server].
//
// Parameters:
//   - st: store holding the current status
//   - reg: registry of attached stream clients
//   - bc: broadcaster invoked by the mutating routes
//   - port: TCP port to listen on
//   - assets: embedded filesystem with dashboard assets (may be nil)
//   - title: dashboard title (defaults to "StatusLight" if empty)
//   - logger: logger for server events
//
// The server is not started until [Server.Start] is called.
func NewServer(st *store.StatusStore, reg *broadcast.Registry, bc *broadcast.Broadcaster, port int, assets fs.FS, title string, logger *slog.Logger) *Server {
	return &Server{
		store:       st,
		registry:    reg,
		broadcaster: bc,
		port:        port,
		assets:      assets,
		title:       title,
		logger:      logger,
	}
}

// Handler returns the fully routed HTTP handler, including the CORS and
// pre-flight layer. Exposed so tests can drive the router without a
// listening socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// mutating routes; each status has two path aliases
	mux.HandleFunc("/red", s.handleSet("idle", bodyIdle))
	mux.HandleFunc("/idle", s.handleSet("idle", bodyIdle))
	mux.HandleFunc("/yellow", s.handleSet("processing", bodyProcessing))
	mux.HandleFunc("/processing", s.handleSet("processing", bodyProcessing))
	mux.HandleFunc("/waiting", s.handleSet("waiting", bodyWaiting))
	mux.HandleFunc("/prompt", s.handleSet("waiting", bodyWaiting))
	mux.HandleFunc("/green", s.handleSet("complete", bodyComplete))
	mux.HandleFunc("/complete", s.handleSet("complete", bodyComplete))

	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/events", s.handleEvents)

	// "/" also catches every unmatched path; handleDashboard 404s those
	mux.HandleFunc("/", s.handleDashboard)

	return s.withCORS(mux)
}

// Start begins serving HTTP requests in a background goroutine.
//
// Start is non-blocking and returns immediately after confirming the server
// is listening. The server will continue running until the context is
// cancelled, at which point it initiates a graceful shutdown with a
// 5-second timeout.
//
// Returns an error if the server fails to bind to the configured port.
func (s *Server) Start(ctx context.Context) error {
	// create listener first to verify port availability synchronously
	addr := fmt.Sprintf(":%d", s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind to port %d: %w", s.port, err)
	}

	s.httpServer = &http.Server{
		Handler: s.Handler(),
		// BaseContext derives all request contexts from the server context.
		// When ctx is cancelled, all request contexts are also cancelled,
		// enabling graceful shutdown of long-running handlers like SSE.
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server error", "error", err)
		}
	}()

	// shutdown on context cancellation
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown error", "error", err)
		}
	}()

	return nil
}

// withCORS sets permissive cross-origin headers on every response and
// answers pre-flight requests. An OPTIONS request on any path yields an
// empty 200 without touching status.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleSet returns a handler that broadcasts the given status and answers
// with the route's acknowledgement body.
func (s *Server) handleSet(status, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.broadcaster.Broadcast(status)

		w.Header().Set("Content-Type", "text/plain")
		if _, err := fmt.Fprint(w, body); err != nil {
			s.logger.Error("failed to write ack response", "error", err)
		}
	}
}

// handleStatus returns the current status as JSON.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	payload := statusPayload{Status: s.store.Current()}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode status response", "error", err)
	}
}

// handleEvents streams status updates via Server-Sent Events.
//
// The handler sends the status captured at attach time as its first
// message, so a newly attached observer is never left without a value,
// then registers with the client registry and relays every broadcast until
// the peer disconnects. Write deadlines prevent goroutine leaks when
// clients are slow or disconnected: without them, a blocked write would
// prevent the handler from detecting context cancellation.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	// check if flushing is supported
	if _, ok := w.(http.Flusher); !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	// ResponseController provides deadline-aware write and flush operations.
	rc := http.NewResponseController(w)

	// track if write deadlines are supported (may not be for some
	// ResponseWriter impls)
	deadlinesSupported := true

	// writeEvent writes one SSE message with a deadline so a slow or
	// disconnected peer times the write out instead of blocking the handler
	// forever.
	writeEvent := func(status string) error {
		if deadlinesSupported {
			if err := rc.SetWriteDeadline(time.Now().Add(sseWriteTimeout)); err != nil {
				// deadline not supported by underlying connection, continue without
				s.logger.Warn("sse write deadlines not supported", "error", err)
				deadlinesSupported = false
			}
		}

		data, err := json.Marshal(statusPayload{Status: status})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return err
		}

		// ResponseController.Flush respects the write deadline
		return rc.Flush()
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// initial replay: the status current at the moment of attachment
	if err := writeEvent(s.store.Current()); err != nil {
		return
	}

	client := s.registry.Register()
	defer s.registry.Unregister(client.ID)

	s.logger.Info("client connected", "client_id", client.ID)
	defer s.logger.Info("client disconnected", "client_id", client.ID)

	for {
		select {
		case status, ok := <-client.Events():
			if !ok {
				return
			}
			if err := writeEvent(status); err != nil {
				// write failure terminates only this client; the registry
				// entry is removed by the deferred Unregister
				s.logger.Warn("sse write failed",
					"client_id", client.ID,
					"error", err,
				)
				return
			}

		case <-r.Context().Done():
			// request context is derived from server context via BaseContext,
			// so this fires on both client disconnect AND server shutdown
			return
		}
	}
}

// handleDashboard serves the main dashboard page.
//
// The mux routes every otherwise-unmatched path here, so anything that is
// not exactly "/" or "/index.html" yields a 404.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}

	if s.assets == nil {
		http.Error(w, "Error loading page", http.StatusInternalServerError)
		return
	}

	// read index.html from embedded assets
	content, err := fs.ReadFile(s.assets, "assets/index.html")
	if err != nil {
		http.Error(w, "Error loading page", http.StatusInternalServerError)
		return
	}

	// apply title substitution with HTML escaping to prevent XSS
	title := s.title
	if title == "" {
		title = defaultTitle
	}
	safeTitle := html.EscapeString(title)
	rendered := strings.ReplaceAll(string(content), titlePlaceholder, safeTitle)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err = w.Write([]byte(rendered)); err != nil {
		s.logger.Error("failed to write dashboard response", "error", err)
	}
}
