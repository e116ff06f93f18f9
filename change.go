package rosterboard

import (
	"github.com/wI2L/jsondiff"

	"github.com/jpalmerr/rosterboard/internal/session"
)

// ChangeKind names the operation that changed a roster.
type ChangeKind string

const (
	// ChangeAdd is a student appended through the add form.
	ChangeAdd ChangeKind = "add"

	// ChangeEdit is a grid-edit commit that replaced the roster.
	ChangeEdit ChangeKind = "edit"
)

// String returns the string representation of the kind.
func (k ChangeKind) String() string {
	return string(k)
}

// PatchOp is one JSON Patch (RFC 6902) operation of an edit.
type PatchOp struct {
	// Op is the operation type: "add", "remove" or "replace".
	Op string

	// Path is the JSON Pointer of the changed location, such as "/1/score".
	Path string
}

// ChangeEvent describes one change to a session's roster.
//
// ChangeEvent is delivered to callbacks registered with [WithChangeCallback]
// after the change has been applied and published to the page.
type ChangeEvent struct {
	// SessionID identifies the browser session whose roster changed.
	SessionID string

	// Kind is the operation that caused the change.
	Kind ChangeKind

	// Rows is the number of students after the change.
	Rows int

	// Ops lists what an edit changed. Empty for adds.
	Ops []PatchOp
}

// toChangeEvent converts a session change to the public event type.
func toChangeEvent(c session.Change) ChangeEvent {
	return ChangeEvent{
		SessionID: c.SessionID,
		Kind:      ChangeKind(c.Kind),
		Rows:      c.Rows,
		Ops:       toPatchOps(c.Patch),
	}
}

func toPatchOps(p jsondiff.Patch) []PatchOp {
	if len(p) == 0 {
		return nil
	}
	ops := make([]PatchOp, len(p))
	for i, op := range p {
		ops[i] = PatchOp{Op: op.Type, Path: op.Path}
	}
	return ops
}
