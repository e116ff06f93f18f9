package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jpalmerr/rosterboard/internal/export"
	"github.com/jpalmerr/rosterboard/internal/roster"
)

// limits are the add-form input bounds shown by the page.
type limits struct {
	AgeMin     int `json:"age_min"`
	AgeMax     int `json:"age_max"`
	AgeDefault int `json:"age_default"`
	GradeMin   int `json:"grade_min"`
	GradeMax   int `json:"grade_max"`
	ClassMin   int `json:"class_min"`
	ClassMax   int `json:"class_max"`
}

var formLimits = limits{
	AgeMin:     roster.MinAge,
	AgeMax:     roster.MaxAge,
	AgeDefault: roster.DefaultAge,
	GradeMin:   roster.MinGrade,
	GradeMax:   roster.MaxGrade,
	ClassMin:   roster.MinClass,
	ClassMax:   roster.MaxClass,
}

// view is everything the page needs to render the roster.
type view struct {
	Variant roster.Variant    `json:"variant"`
	Limits  limits            `json:"limits"`
	Columns []roster.Column   `json:"columns"`
	Rows    roster.Projection `json:"rows"`
	Stats   roster.Stats      `json:"stats"`
}

func newView(v roster.Variant, snap roster.Snapshot) view {
	return view{
		Variant: v,
		Limits:  formLimits,
		Columns: v.Columns(),
		Rows:    snap.Rows,
		Stats:   snap.Stats,
	}
}

// addResponse answers an add-form submission.
type addResponse struct {
	OK       bool   `json:"ok"`
	Message  string `json:"message,omitempty"`
	Warning  string `json:"warning,omitempty"`
	Position int    `json:"position"`
	View     *view  `json:"view,omitempty"`
}

// editRequest is a grid-edit commit.
type editRequest struct {
	Rows roster.EditedProjection `json:"rows"`
}

// editResponse answers a grid-edit commit.
type editResponse struct {
	Changed bool `json:"changed"`
	Ops     int  `json:"ops"`
	View    view `json:"view"`
}

// commitBinding adapts one PUT request to the grid binding protocol: the
// request body is the commit, and a render captures the fresh projection.
type commitBinding struct {
	edited     roster.EditedProjection
	projection roster.Projection
	rendered   bool
}

func (b *commitBinding) OnEditCommit() (roster.EditedProjection, bool) {
	return b.edited, true
}

func (b *commitBinding) Render(p roster.Projection) {
	b.projection = p
	b.rendered = true
}

// handleRoster returns the current view (GET) or applies a grid-edit commit (PUT).
func (s *Server) handleRoster(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFrom(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.writeJSON(w, http.StatusOK, newView(sess.store.Variant(), sess.store.Snapshot()))
	case http.MethodPut:
		s.commitEdit(w, r, sess)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) commitEdit(w http.ResponseWriter, r *http.Request, sess sessionInfo) {
	v := sess.store.Variant()
	if !v.Editable {
		http.Error(w, "Roster is read-only for this variant", http.StatusConflict)
		return
	}

	var req editRequest
	if err := decodeBody(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Rows == nil {
		req.Rows = roster.EditedProjection{}
	}

	b := &commitBinding{edited: req.Rows}
	res, err := roster.Sync(sess.store, b)
	if err != nil {
		s.logger.Error("failed to reconcile edit",
			"session_id", sess.id,
			"request_id", requestIDFrom(r),
			"error", err,
		)
		http.Error(w, "Failed to apply edit", http.StatusInternalServerError)
		return
	}

	s.logger.Debug("edit committed",
		"session_id", sess.id,
		"request_id", requestIDFrom(r),
		"changed", res.Changed,
		"ops", len(res.Patch),
	)

	snap := sess.store.Snapshot()
	if b.rendered {
		snap.Rows = b.projection
	}
	s.writeJSON(w, http.StatusOK, editResponse{
		Changed: res.Changed,
		Ops:     len(res.Patch),
		View:    newView(v, snap),
	})
}

// handleStudents applies an add-form submission.
func (s *Server) handleStudents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, ok := sessionFrom(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	var c roster.Candidate
	if err := decodeBody(w, r, &c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v := sess.store.Variant()
	res, err := sess.store.Add(v.Clamp(c))

	var warning *roster.ValidationWarning
	if errors.As(err, &warning) {
		s.logger.Warn("add rejected",
			"session_id", sess.id,
			"request_id", requestIDFrom(r),
			"field", warning.Field,
		)
		s.writeJSON(w, http.StatusUnprocessableEntity, addResponse{Warning: warning.Message, Position: -1})
		return
	}
	if err != nil {
		http.Error(w, "Failed to add student", http.StatusInternalServerError)
		return
	}

	s.logger.Debug("student added",
		"session_id", sess.id,
		"request_id", requestIDFrom(r),
		"position", res.Position,
	)

	vw := newView(v, sess.store.Snapshot())
	s.writeJSON(w, http.StatusCreated, addResponse{
		OK:       true,
		Message:  res.Message,
		Position: res.Position,
		View:     &vw,
	})
}

// handleSession ends the caller's session. The next request starts a fresh
// one with the seed data.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, ok := sessionFrom(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	s.sessions.End(sess.id)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

// handleExport streams the current projection as a spreadsheet.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess, ok := sessionFrom(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("roster_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+fileName)

	if err := export.WriteXLSX(w, sess.store.Variant().Columns(), sess.store.Project()); err != nil {
		s.logger.Error("failed to write export", "session_id", sess.id, "error", err)
	}
}

// writeJSON encodes v with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// decodeBody decodes a size-limited JSON body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
