package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jpalmerr/rosterboard"
)

func main() {
	// a graded roster with two custom seed rows
	kim, err := rosterboard.NewStudent("김철수", 14, 3, rosterboard.WithGrade(1), rosterboard.WithClass(3))
	if err != nil {
		slog.Error("failed to create student", "error", err)
		os.Exit(1)
	}
	lee, err := rosterboard.NewStudent("이영희", 15, 9, rosterboard.WithGrade(2), rosterboard.WithClass(1))
	if err != nil {
		slog.Error("failed to create student", "error", err)
		os.Exit(1)
	}

	rb, err := rosterboard.New(
		rosterboard.WithVariant("editable"),
		rosterboard.WithStudents(kim, lee),
		rosterboard.WithSessionTTL(10*time.Minute),
		rosterboard.WithPort(8080),
		rosterboard.WithChangeCallback(func(e rosterboard.ChangeEvent) {
			for _, op := range e.Ops {
				slog.Info("roster edit", "session_id", e.SessionID, "op", op.Op, "path", op.Path)
			}
		}),
	)
	if err != nil {
		slog.Error("failed to create rosterboard", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("  RosterBoard Demo")
	fmt.Println()
	fmt.Println("  Open http://localhost:8080 in your browser")
	fmt.Println("  Each browser gets its own roster; edits are logged below.")
	fmt.Println("  Press Ctrl+C to stop")
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rb.Start(ctx); err != nil {
		slog.Error("rosterboard stopped with error", "error", err)
		os.Exit(1)
	}
}
