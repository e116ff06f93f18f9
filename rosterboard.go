package rosterboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jpalmerr/rosterboard/dashboard"
	"github.com/jpalmerr/rosterboard/internal/export"
	"github.com/jpalmerr/rosterboard/internal/roster"
	"github.com/jpalmerr/rosterboard/internal/server"
	"github.com/jpalmerr/rosterboard/internal/session"
)

const (
	defaultPort          = 8080
	defaultSessionTTL    = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

// RosterBoard serves the roster page and owns the per-session rosters.
//
// It is created using [New] with functional options and started with
// [RosterBoard.Start]:
//
//	rb, err := rosterboard.New(rosterboard.WithVariant("graded"))
//	if err != nil {
//	    slog.Error("failed to create rosterboard", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//
//	rb.Start(ctx) // blocks until context cancelled
type RosterBoard struct {
	title           string
	variant         roster.Variant
	seed            []roster.Record
	rating          roster.Rating
	port            int
	sessionTTL      time.Duration
	sweepInterval   time.Duration
	logger          *slog.Logger
	changeCallbacks []func(ChangeEvent)
}

// New creates a new [RosterBoard] instance with the given options.
//
// Defaults:
//   - Variant: "editable"
//   - Port: 8080
//   - Session TTL: 30 minutes, swept every minute
//
// Returns an error if any option is invalid, or if a configured student does
// not fit the variant (score outside its domain, grade or class on a variant
// without those columns).
func New(opts ...Option) (*RosterBoard, error) {
	cfg := &rbConfig{
		variant:       roster.DefaultVariant,
		port:          defaultPort,
		sessionTTL:    defaultSessionTTL,
		sweepInterval: defaultSweepInterval,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	v, ok := roster.Lookup(cfg.variant)
	if !ok {
		return nil, fmt.Errorf("unknown variant %q", cfg.variant)
	}

	seed := v.Seed
	if len(cfg.students) > 0 {
		seed = make([]roster.Record, len(cfg.students))
		for i, s := range cfg.students {
			if err := checkFits(s, v); err != nil {
				return nil, fmt.Errorf("students[%d] (%s): %w", i, s.name, err)
			}
			seed[i] = s.record()
		}
	}

	if cfg.port < 1 || cfg.port > 65535 {
		return nil, fmt.Errorf("port must be between 1 and 65535, got %d", cfg.port)
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	title := cfg.title
	if title == "" {
		title = v.Title
	}

	return &RosterBoard{
		title:           title,
		variant:         v,
		seed:            seed,
		rating:          cfg.rating.internal(),
		port:            cfg.port,
		sessionTTL:      cfg.sessionTTL,
		sweepInterval:   cfg.sweepInterval,
		logger:          logger,
		changeCallbacks: cfg.changeCallbacks,
	}, nil
}

// checkFits reports whether a student can be shown by variant v.
func checkFits(s Student, v roster.Variant) error {
	if s.score < v.ScoreMin || s.score > v.ScoreMax {
		return fmt.Errorf("score %v outside %v-%v for variant %q", s.score, v.ScoreMin, v.ScoreMax, v.Name)
	}
	if !v.OnStep(s.score) {
		return fmt.Errorf("score %v is not a multiple of %v for variant %q", s.score, v.ScoreStep, v.Name)
	}
	if !v.Graded && (s.grade != 0 || s.class != 0) {
		return fmt.Errorf("variant %q has no grade or class columns", v.Name)
	}
	return nil
}

// Start serves the roster page until the context is cancelled.
//
// During execution:
//
//   - Each browser session gets its own roster, seeded on first visit
//   - Idle sessions are discarded after the session TTL
//   - Roster changes are logged and passed to change callbacks
//   - The page is available at http://localhost:<port>
//
// Returns nil on graceful shutdown. Returns an error if the HTTP server fails to start.
func (rb *RosterBoard) Start(ctx context.Context) error {
	rb.logger.Info("rosterboard starting", "variant", rb.variant.Name, "seed_rows", len(rb.seed))
	rb.logger.Info("sessions configured", "ttl", rb.sessionTTL.String(), "sweep_interval", rb.sweepInterval.String())
	rb.logger.Info("page available", "url", fmt.Sprintf("http://localhost:%d", rb.port))

	// check if context already cancelled
	if ctx.Err() != nil {
		return nil
	}

	registry := session.NewRegistry(rb.newStore, rb.sessionTTL, rb.handleChange, rb.logger)

	sweeper := session.NewSweeper(registry, rb.sweepInterval, rb.logger)
	sweeper.Start(ctx)

	httpServer := server.NewServer(registry, rb.port, dashboard.Assets, rb.title, rb.logger)
	if err := httpServer.Start(ctx); err != nil {
		sweeper.Stop()
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	<-ctx.Done()
	sweeper.Stop()
	rb.logger.Info("rosterboard stopped", "sessions", registry.Len())
	return nil
}

// newStore builds the roster store for a new session.
func (rb *RosterBoard) newStore(observer func(roster.Change)) *roster.Store {
	return roster.NewStore(rb.variant,
		roster.WithSeed(rb.seed),
		roster.WithRating(rb.rating),
		roster.WithObserver(observer),
	)
}

// handleChange logs a roster change and fans it out to the callbacks.
func (rb *RosterBoard) handleChange(c session.Change) {
	rb.logger.Debug("roster changed",
		"session_id", c.SessionID,
		"kind", string(c.Kind),
		"rows", c.Rows,
		"ops", len(c.Patch),
	)

	if len(rb.changeCallbacks) == 0 {
		return
	}
	event := toChangeEvent(c)
	for _, cb := range rb.changeCallbacks {
		invokeCallbackSafe(cb, event, rb.logger)
	}
}

// Title returns the page title.
func (rb *RosterBoard) Title() string {
	return rb.title
}

// Variant returns the name of the configured variant.
func (rb *RosterBoard) Variant() string {
	return rb.variant.Name
}

// Port returns the configured HTTP port.
func (rb *RosterBoard) Port() int {
	return rb.port
}

// SessionTTL returns how long an idle session is kept.
func (rb *RosterBoard) SessionTTL() time.Duration {
	return rb.sessionTTL
}

// Students returns the roster each new session starts with.
func (rb *RosterBoard) Students() []Student {
	out := make([]Student, len(rb.seed))
	for i, r := range rb.seed {
		var score float64
		if r.Score != nil {
			score = *r.Score
		}
		out[i] = Student{name: r.Name, age: r.Age, score: score, grade: r.Grade, class: r.Class}
	}
	return out
}

// RenderRating returns the rating glyphs for score as the page draws them.
func (rb *RosterBoard) RenderRating(score float64) string {
	return rb.rating.Render(&score)
}

// WriteSpreadsheet writes the roster a new session starts with as an .xlsx
// workbook, with the same columns the page shows.
func (rb *RosterBoard) WriteSpreadsheet(w io.Writer) error {
	store := rb.newStore(nil)
	return export.WriteXLSX(w, rb.variant.Columns(), store.Project())
}

// invokeCallbackSafe calls a change callback with panic recovery.
// Panics are logged but do not propagate.
func invokeCallbackSafe(cb func(ChangeEvent), event ChangeEvent, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("change callback panicked",
				"panic", r,
				"session_id", event.SessionID,
			)
		}
	}()
	cb(event)
}

// Variants returns the names of the available page variants, sorted.
func Variants() []string {
	return roster.Names()
}
