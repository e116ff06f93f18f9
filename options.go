package rosterboard

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jpalmerr/rosterboard/internal/roster"
)

// rbConfig holds mutable state during RosterBoard construction.
type rbConfig struct {
	title           string
	variant         string
	students        []Student
	rating          Rating
	port            int
	sessionTTL      time.Duration
	sweepInterval   time.Duration
	logger          *slog.Logger
	changeCallbacks []func(ChangeEvent)
}

// Rating configures how a score is drawn in the rating column.
//
// One Glyph is repeated per whole score point, at most Cap times; scores
// above Cap get OverflowSuffix appended. Zero fields take the defaults
// ("⭐", 10, "(MAX)").
type Rating struct {
	Glyph          string
	Cap            int
	OverflowSuffix string
}

func (r Rating) internal() roster.Rating {
	return roster.Rating{
		Glyph:          r.Glyph,
		Cap:            r.Cap,
		OverflowSuffix: r.OverflowSuffix,
	}
}

// Option is a function that configures a [RosterBoard] instance during construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
type Option func(*rbConfig) error

// WithTitle sets the page title displayed in the browser tab and header.
//
// If not specified, the variant's title is used.
func WithTitle(title string) Option {
	return func(cfg *rbConfig) error {
		cfg.title = title
		return nil
	}
}

// WithVariant selects the page configuration by preset name: "slider",
// "stepped", "integer", "counted", "graded" or "editable" (the default).
//
// Returns an error for an unknown name.
func WithVariant(name string) Option {
	return func(cfg *rbConfig) error {
		if _, ok := roster.Lookup(name); !ok {
			return fmt.Errorf("unknown variant %q (available: %s)", name, strings.Join(roster.Names(), ", "))
		}
		cfg.variant = name
		return nil
	}
}

// WithStudents sets the roster every new session starts with, replacing the
// variant's built-in seed rows. Can be called multiple times; students are
// appended in order.
//
// Example:
//
//	a, _ := rosterboard.NewStudent("김철수", 14, 3)
//	b, _ := rosterboard.NewStudent("이영희", 15, 9)
//	rb, err := rosterboard.New(rosterboard.WithStudents(a, b))
func WithStudents(students ...Student) Option {
	return func(cfg *rbConfig) error {
		cfg.students = append(cfg.students, students...)
		return nil
	}
}

// WithRating customises the rating column.
//
// Returns an error if the cap is negative.
func WithRating(r Rating) Option {
	return func(cfg *rbConfig) error {
		if r.Cap < 0 {
			return errors.New("rating cap cannot be negative")
		}
		cfg.rating = r
		return nil
	}
}

// WithPort sets the HTTP port for the page server.
//
// Defaults to 8080 if not specified.
//
// Returns an error if the port is outside the valid range (1-65535).
func WithPort(port int) Option {
	return func(cfg *rbConfig) error {
		if port < 1 || port > 65535 {
			return errors.New("port must be between 1 and 65535")
		}
		cfg.port = port
		return nil
	}
}

// WithSessionTTL sets how long an idle browser session keeps its roster.
// After that the session is discarded and the next visit starts from the
// seed rows. Defaults to 30 minutes.
//
// Returns an error if the duration is zero or negative.
func WithSessionTTL(d time.Duration) Option {
	return func(cfg *rbConfig) error {
		if d <= 0 {
			return errors.New("session TTL must be positive")
		}
		cfg.sessionTTL = d
		return nil
	}
}

// WithSweepInterval sets how often idle sessions are looked for.
// Defaults to 1 minute.
//
// Returns an error if the duration is zero or negative.
func WithSweepInterval(d time.Duration) Option {
	return func(cfg *rbConfig) error {
		if d <= 0 {
			return errors.New("sweep interval must be positive")
		}
		cfg.sweepInterval = d
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the RosterBoard instance.
//
// If not specified, [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *rbConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithChangeCallback registers a function called after every roster change
// in any session.
//
// Multiple callbacks may be registered; they execute in registration order.
//
// IMPORTANT: Callbacks run on the goroutine serving the request that made the
// change and must not block. Panics within callbacks are recovered and logged.
//
// Example:
//
//	rb, err := rosterboard.New(
//	    rosterboard.WithChangeCallback(func(e rosterboard.ChangeEvent) {
//	        log.Printf("%s: %s, %d rows", e.SessionID, e.Kind, e.Rows)
//	    }),
//	)
//
// Nil callbacks are silently ignored.
func WithChangeCallback(cb func(ChangeEvent)) Option {
	return func(cfg *rbConfig) error {
		if cb == nil {
			return nil
		}
		cfg.changeCallbacks = append(cfg.changeCallbacks, cb)
		return nil
	}
}
