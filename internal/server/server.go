package server

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jpalmerr/rosterboard/internal/roster"
)

const (
	// sseWriteTimeout is the maximum time allowed for a single SSE write operation.
	// Must be <= shutdown timeout to ensure clean shutdown.
	sseWriteTimeout = 5 * time.Second

	// shutdownTimeout bounds graceful shutdown of in-flight requests.
	shutdownTimeout = 5 * time.Second

	// maxBodySize limits request bodies for add and edit commits.
	maxBodySize = 1 << 20 // 1MB

	// defaultTitle is used when no custom title is configured.
	defaultTitle = "RosterBoard"

	// titlePlaceholder is the marker in HTML that gets replaced with the actual title.
	titlePlaceholder = "{{.Title}}"

	// sessionCookie carries the session id.
	sessionCookie = "rosterboard_session"

	requestIDHeader = "X-Request-ID"
)

// Sessions resolves a request's session to its roster store.
type Sessions interface {
	// Acquire returns the store for id, starting a new session when id is
	// empty or unknown. The returned id replaces the caller's.
	Acquire(id string) (sessionID string, store *roster.Store, created bool)

	// Release ends the hold taken by Acquire.
	Release(id string)

	// End discards a session.
	End(id string) bool
}

// Server handles HTTP requests for the roster page and API.
//
// The server is designed for graceful shutdown via context cancellation.
type Server struct {
	sessions   Sessions
	port       int
	httpServer *http.Server
	assets     fs.FS
	title      string
	logger     *slog.Logger
}

// NewServer creates a new HTTP [Server].
//
// Parameters:
//   - sessions: session registry owning the per-session stores
//   - port: TCP port to listen on
//   - assets: embedded filesystem containing the page (may be nil)
//   - title: page title (defaults to "RosterBoard" if empty)
//   - logger: logger for server events
//
// The server is not started until [Server.Start] is called.
func NewServer(sessions Sessions, port int, assets fs.FS, title string, logger *slog.Logger) *Server {
	return &Server{
		sessions: sessions,
		port:     port,
		assets:   assets,
		title:    title,
		logger:   logger,
	}
}

// Handler returns the server's routes wrapped in the request-id and session
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/roster", s.handleRoster)
	mux.HandleFunc("/api/students", s.handleStudents)
	mux.HandleFunc("/api/session", s.handleSession)
	mux.HandleFunc("/api/sse", s.handleSSE)
	mux.HandleFunc("/api/export", s.handleExport)

	if s.assets != nil {
		mux.HandleFunc("/", s.handleDashboard)
	}

	return s.withRequestID(s.withSession(mux))
}

// Start begins serving HTTP requests in a background goroutine.
//
// Start is non-blocking and returns immediately after confirming the server
// is listening. The server will continue running until the context is
// cancelled, at which point it initiates a graceful shutdown with a 5-second
// timeout.
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
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// request contexts derive from ctx so SSE handlers exit on shutdown
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown error", "error", err)
		}
	}()

	return nil
}

// handleDashboard serves the roster page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.assets == nil {
		http.Error(w, "Page not found", http.StatusInternalServerError)
		return
	}

	content, err := fs.ReadFile(s.assets, "assets/index.html")
	if err != nil {
		http.Error(w, "Page not found", http.StatusInternalServerError)
		return
	}

	// title is escaped to prevent XSS
	title := s.title
	if title == "" {
		title = defaultTitle
	}
	rendered := strings.ReplaceAll(string(content), titlePlaceholder, html.EscapeString(title))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err = w.Write([]byte(rendered)); err != nil {
		s.logger.Error("failed to write page response", "error", err)
	}
}

type ctxKey int

const (
	sessionKey ctxKey = iota
	requestIDKey
)

type sessionInfo struct {
	id    string
	store *roster.Store
}

// withRequestID echoes X-Request-ID, generating one when absent.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// withSession binds API requests to a session, issuing a cookie when a new
// session is started. The page itself is served without touching sessions.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			next.ServeHTTP(w, r)
			return
		}

		var current string
		if c, err := r.Cookie(sessionCookie); err == nil {
			current = c.Value
		}

		id, store, created := s.sessions.Acquire(current)
		defer s.sessions.Release(id)
		if created || id != current {
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey, sessionInfo{id: id, store: store})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session bound by withSession.
func sessionFrom(r *http.Request) (sessionInfo, bool) {
	info, ok := r.Context().Value(sessionKey).(sessionInfo)
	return info, ok
}

func requestIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}
