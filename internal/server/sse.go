package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// handleSSE streams the session's view via Server-Sent Events: the current
// view first, then a new one after every change.
//
// Writes use deadlines so a slow or disconnected client cannot block the
// handler past shutdown. The stream ends when the session is discarded.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	if _, ok := w.(http.Flusher); !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}
	sess, ok := sessionFrom(r)
	if !ok {
		http.Error(w, "No session", http.StatusInternalServerError)
		return
	}

	rc := http.NewResponseController(w)

	// track if write deadlines are supported (may not be for some ResponseWriter impls)
	deadlinesSupported := true

	writeAndFlush := func(data []byte) error {
		if deadlinesSupported {
			if err := rc.SetWriteDeadline(time.Now().Add(sseWriteTimeout)); err != nil {
				s.logger.Debug("sse write deadlines not supported", "error", err)
				deadlinesSupported = false
			}
		}

		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return err
		}
		return rc.Flush()
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	store := sess.store
	v := store.Variant()

	// subscribe before the initial write so no change is missed in between
	ch := store.Subscribe()
	defer store.Unsubscribe(ch)

	data, err := json.Marshal(newView(v, store.Snapshot()))
	if err != nil {
		s.logger.Error("failed to encode view", "error", err)
		return
	}
	if err := writeAndFlush(data); err != nil {
		return
	}

	for {
		select {
		case snap, ok := <-ch:
			if !ok {
				return
			}
			data, err := json.Marshal(newView(v, snap))
			if err != nil {
				continue
			}
			if err := writeAndFlush(data); err != nil {
				return
			}

		case <-r.Context().Done():
			// fires on client disconnect and on server shutdown (BaseContext)
			return
		}
	}
}
