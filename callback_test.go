package rosterboard

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/jpalmerr/rosterboard/internal/roster"
	"github.com/jpalmerr/rosterboard/internal/session"
)

// newTestRegistry wires a registry to rb the same way Start does.
func newTestRegistry(rb *RosterBoard) *session.Registry {
	return session.NewRegistry(rb.newStore, rb.sessionTTL, rb.handleChange, rb.logger)
}

func TestWithChangeCallback_InvokedOnAdd(t *testing.T) {
	var events []ChangeEvent
	rb, err := New(
		WithVariant("integer"),
		WithChangeCallback(func(e ChangeEvent) { events = append(events, e) }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	id, store, _ := newTestRegistry(rb).Acquire("")
	if _, err := store.Add(roster.Candidate{Name: "홍길동", Age: 14, Score: 5}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("callback invoked %d times, want 1", len(events))
	}
	e := events[0]
	if e.SessionID != id || e.Kind != ChangeAdd || e.Rows != 5 || len(e.Ops) != 0 {
		t.Errorf("event = %+v", e)
	}
}

func TestWithChangeCallback_EditCarriesOps(t *testing.T) {
	var got ChangeEvent
	rb, err := New(
		WithVariant("editable"),
		WithChangeCallback(func(e ChangeEvent) { got = e }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, store, _ := newTestRegistry(rb).Acquire("")
	edited := roster.EditedProjection(store.Project())
	edited[1].Score = roster.Float(1)

	res, err := store.Reconcile(edited)
	if err != nil || !res.Changed {
		t.Fatalf("Reconcile() = %+v, %v", res, err)
	}

	if got.Kind != ChangeEdit {
		t.Fatalf("Kind = %q, want %q", got.Kind, ChangeEdit)
	}
	if len(got.Ops) != 1 || got.Ops[0].Op != "replace" || got.Ops[0].Path != "/1/score" {
		t.Errorf("Ops = %+v, want one replace of /1/score", got.Ops)
	}
}

func TestWithChangeCallback_PanicRecovery(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	normalCalled := false
	rb, err := New(
		WithVariant("integer"),
		WithLogger(logger),
		WithChangeCallback(func(ChangeEvent) { panic("intentional test panic") }),
		WithChangeCallback(func(ChangeEvent) { normalCalled = true }), // should still be called after panic
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, store, _ := newTestRegistry(rb).Acquire("")
	if _, err := store.Add(roster.Candidate{Name: "홍길동", Age: 14, Score: 5}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if !normalCalled {
		t.Error("subsequent callbacks should still run after panic")
	}
	if !strings.Contains(logBuf.String(), "change callback panicked") {
		t.Errorf("panic not logged, got: %s", logBuf.String())
	}
}

func TestWithChangeCallback_NilIsSafe(t *testing.T) {
	rb, err := New(WithChangeCallback(nil))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(rb.changeCallbacks) != 0 {
		t.Errorf("nil callback registered")
	}
}

func TestWithChangeCallback_ExecutionOrder(t *testing.T) {
	var order []int
	rb, err := New(
		WithVariant("integer"),
		WithChangeCallback(func(ChangeEvent) { order = append(order, 1) }),
		WithChangeCallback(func(ChangeEvent) { order = append(order, 2) }),
		WithChangeCallback(func(ChangeEvent) { order = append(order, 3) }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, store, _ := newTestRegistry(rb).Acquire("")
	if _, err := store.Add(roster.Candidate{Name: "홍길동", Age: 14, Score: 5}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("execution order = %v, want [1 2 3]", order)
	}
}
