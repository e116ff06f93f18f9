package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jpalmerr/rosterboard/internal/roster"
)

// Change is a store mutation observed in a particular session.
type Change struct {
	SessionID string
	roster.Change
}

// StoreFactory builds a new, uninitialized store for a session. The observer
// must be passed to the store so mutations are reported.
type StoreFactory func(observer func(roster.Change)) *roster.Store

type entry struct {
	store    *roster.Store
	lastSeen time.Time

	// inUse counts Acquire calls not yet matched by Release.
	inUse int
}

// Registry owns the stores of all live sessions.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry

	factory  StoreFactory
	ttl      time.Duration
	onChange func(Change)
	logger   *slog.Logger
	now      func() time.Time
}

// NewRegistry creates an empty [Registry].
//
// Parameters:
//   - factory: builds the store for each new session
//   - ttl: idle time after which [Registry.Sweep] discards a session (<= 0 disables expiry)
//   - onChange: called after every mutation in any session (may be nil)
//   - logger: logger for session lifecycle events
func NewRegistry(factory StoreFactory, ttl time.Duration, onChange func(Change), logger *slog.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		factory:  factory,
		ttl:      ttl,
		onChange: onChange,
		logger:   logger,
		now:      time.Now,
	}
}

// Acquire returns the store for session id, touching its idle timer and
// holding the session until the matching [Registry.Release]. A held session
// is never swept.
//
// If id is empty or unknown a new session is started under a freshly
// generated id; client-chosen ids are never adopted. The returned id is the
// one the caller must use from now on, and created reports whether a new
// session was started.
func (r *Registry) Acquire(id string) (sessionID string, store *roster.Store, created bool) {
	r.mu.Lock()
	now := r.now()
	if e, ok := r.sessions[id]; ok && id != "" {
		e.lastSeen = now
		e.inUse++
		r.mu.Unlock()
		return id, e.store, false
	}

	sessionID = uuid.NewString()
	store = r.factory(r.observerFor(sessionID))
	store.Initialize()
	r.sessions[sessionID] = &entry{store: store, lastSeen: now, inUse: 1}
	count := len(r.sessions)
	r.mu.Unlock()

	r.logger.Debug("session started", "session_id", sessionID, "sessions", count)
	return sessionID, store, true
}

// Lookup returns the store for an existing session without creating one.
func (r *Registry) Lookup(id string) (*roster.Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.store, true
}

// Release ends one hold taken by [Registry.Acquire] and restarts the idle
// timer. Unknown or ended sessions are ignored.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok || e.inUse == 0 {
		return
	}
	e.inUse--
	e.lastSeen = r.now()
}

// End discards a session and closes its subscribers. It reports whether the
// session existed.
func (r *Registry) End(id string) bool {
	r.mu.Lock()
	e, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	e.store.Close()
	r.logger.Debug("session ended", "session_id", id)
	return true
}

// Sweep discards every session that is not held and has been idle for longer
// than the TTL as of now, and returns how many were removed.
func (r *Registry) Sweep(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}

	var expired []*entry
	r.mu.Lock()
	for id, e := range r.sessions {
		if e.inUse == 0 && now.Sub(e.lastSeen) > r.ttl {
			delete(r.sessions, id)
			expired = append(expired, e)
		}
	}
	r.mu.Unlock()

	for _, e := range expired {
		e.store.Close()
	}
	return len(expired)
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// observerFor tags store changes with the session id before forwarding them.
func (r *Registry) observerFor(sessionID string) func(roster.Change) {
	return func(c roster.Change) {
		if r.onChange != nil {
			r.onChange(Change{SessionID: sessionID, Change: c})
		}
	}
}
