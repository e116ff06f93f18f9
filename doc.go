// Package rosterboard provides an embeddable, browser-based student roster
// editor.
//
// Each browser session gets its own roster of students (name, age, score
// and, in some variants, grade and class). Students are added through a form
// or, in the editable variant, changed in an inline grid whose edits are
// merged back into the roster. Every row shows a rating drawn with one glyph
// per whole score point, and the page shows the mean score.
//
// # Quick Start
//
//	rb, _ := rosterboard.New()
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	rb.Start(ctx) // blocks until context is cancelled
//
// # Configuration
//
// RosterBoard uses the functional options pattern for configuration:
//
//	kim, _ := rosterboard.NewStudent("김철수", 14, 3, rosterboard.WithGrade(1), rosterboard.WithClass(3))
//	lee, _ := rosterboard.NewStudent("이영희", 15, 9, rosterboard.WithGrade(2), rosterboard.WithClass(1))
//
//	rb, err := rosterboard.New(
//	    rosterboard.WithVariant("graded"),
//	    rosterboard.WithStudents(kim, lee),
//	    rosterboard.WithRating(rosterboard.Rating{Glyph: "★"}),
//	    rosterboard.WithSessionTTL(time.Hour),
//	    rosterboard.WithPort(9090),
//	)
//
// # Variants
//
// The page comes in six presets, from a 1-5 slider form to an editable grid:
// "slider", "stepped", "integer", "counted", "graded" and "editable".
//
// # Architecture
//
//   - internal/roster: The per-session store, projection, rating and edit reconciliation
//   - internal/session: Session registry and idle-session sweeper
//   - internal/server: HTTP server with JSON API and Server-Sent Events
//   - internal/export: Spreadsheet export
//   - dashboard: Embedded page assets
//
// The internal packages are not part of the public API and may change
// without notice.
package rosterboard
