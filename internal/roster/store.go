package roster

import (
	"fmt"
	"sync"

	"github.com/wI2L/jsondiff"
)

// subscriberBuffer is the per-subscriber channel capacity. Each snapshot is
// the full table, so a dropped one is superseded by the next.
const subscriberBuffer = 16

// ChangeKind names the operation that mutated a store.
type ChangeKind string

const (
	// ChangeAdd is an append from the add form.
	ChangeAdd ChangeKind = "add"

	// ChangeEdit is a wholesale replace from a grid-edit commit.
	ChangeEdit ChangeKind = "edit"
)

// Change describes one mutation of a store.
type Change struct {
	Kind ChangeKind

	// Rows is the collection length after the change.
	Rows int

	// Patch holds the RFC 6902 operations that turn the previous collection
	// into the new one. Only set for edits.
	Patch jsondiff.Patch
}

// Snapshot is what a re-render needs: the projection and its summary.
type Snapshot struct {
	Rows  Projection `json:"rows"`
	Stats Stats      `json:"stats"`
}

// AddResult is the outcome of a successful [Store.Add].
type AddResult struct {
	// Position is the 0-based index of the new row.
	Position int

	// Message is the one-time confirmation for the user.
	Message string

	// Rerender is always true after a mutation.
	Rerender bool
}

// ReconcileResult is the outcome of [Store.Reconcile].
type ReconcileResult struct {
	// Changed reports whether the collection was replaced. Callers re-render
	// only when it is true.
	Changed bool

	// Patch lists the differences that were applied.
	Patch jsondiff.Patch
}

// Store is the canonical, ordered student collection of one session.
//
// A Store starts uninitialized and is seeded exactly once, either by an
// explicit [Store.Initialize] or by the first operation that touches it.
// Projections are recomputed from the collection on demand and never stored.
//
// Store is safe for concurrent use; every operation is a complete
// read-modify-write under the store's lock. Subscribers and the observer are
// notified after the new projection has been built, in mutation order.
type Store struct {
	mu       sync.RWMutex
	variant  Variant
	rating   Rating
	seed     []Record
	records  []Record
	ready    bool
	observer func(Change)

	// pubMu is taken before mu is released so that snapshots and changes
	// go out in the order the mutations were applied.
	pubMu sync.Mutex

	subMu       sync.RWMutex
	subscribers map[chan Snapshot]struct{}
}

// StoreOption configures a [Store] at construction.
type StoreOption func(*Store)

// WithRating sets the glyph rendering used by projections.
func WithRating(r Rating) StoreOption {
	return func(s *Store) {
		s.rating = r
	}
}

// WithSeed replaces the variant's seed rows.
func WithSeed(records []Record) StoreOption {
	return func(s *Store) {
		s.seed = cloneRecords(records)
	}
}

// WithObserver registers a function called after every mutation, in the
// order the mutations were applied. It runs on the mutating goroutine outside
// the store's lock, and must not call back into the store.
func WithObserver(fn func(Change)) StoreOption {
	return func(s *Store) {
		s.observer = fn
	}
}

// NewStore creates an uninitialized store for variant v.
func NewStore(v Variant, opts ...StoreOption) *Store {
	s := &Store{
		variant:     v,
		rating:      DefaultRating(),
		seed:        cloneRecords(v.Seed),
		subscribers: make(map[chan Snapshot]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Variant returns the store's widget configuration.
func (s *Store) Variant() Variant {
	return s.variant
}

// Initialize seeds the collection if it has not been seeded yet. It reports
// whether this call did the seeding; later calls are no-ops.
func (s *Store) Initialize() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureReadyLocked()
}

// Ready reports whether the store has been initialized.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *Store) ensureReadyLocked() bool {
	if s.ready {
		return false
	}
	s.records = cloneRecords(s.seed)
	s.ready = true
	return true
}

// Records returns a copy of the canonical collection.
func (s *Store) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureReadyLocked()
	return cloneRecords(s.records)
}

// Len returns the number of rows.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureReadyLocked()
	return len(s.records)
}

// Add appends a new row built from c.
//
// The only check is a non-empty name (surrounding whitespace is trimmed).
// A missing name returns a [*ValidationWarning] and leaves the collection
// untouched. On success subscribers receive the new snapshot.
func (s *Store) Add(c Candidate) (AddResult, error) {
	name, err := validateCandidate(c)
	if err != nil {
		return AddResult{}, err
	}

	s.mu.Lock()
	s.ensureReadyLocked()
	s.records = append(s.records, c.record(name))
	pos := len(s.records) - 1
	snap := s.snapshotLocked()
	s.pubMu.Lock()
	s.mu.Unlock()

	s.publish(snap)
	s.observe(Change{Kind: ChangeAdd, Rows: len(snap.Rows)})
	s.pubMu.Unlock()

	return AddResult{
		Position: pos,
		Message:  fmt.Sprintf("%s 학생이 추가되었습니다!", name),
		Rerender: true,
	}, nil
}

// Reconcile merges an edited projection back into the collection.
//
// The rating glyph and display row number are discarded, and what remains is
// compared with the current collection as a whole, position by position. If
// they differ the collection is replaced by the edited rows and the result
// reports Changed; otherwise nothing happens.
func (s *Store) Reconcile(edited EditedProjection) (ReconcileResult, error) {
	next := edited.Records()

	s.mu.Lock()
	s.ensureReadyLocked()

	patch, err := jsondiff.Compare(s.records, next)
	if err != nil {
		s.mu.Unlock()
		return ReconcileResult{}, fmt.Errorf("compare edited roster: %w", err)
	}
	if len(patch) == 0 {
		s.mu.Unlock()
		return ReconcileResult{}, nil
	}

	s.records = next
	snap := s.snapshotLocked()
	s.pubMu.Lock()
	s.mu.Unlock()

	s.publish(snap)
	s.observe(Change{Kind: ChangeEdit, Rows: len(snap.Rows), Patch: patch})
	s.pubMu.Unlock()

	return ReconcileResult{Changed: true, Patch: patch}, nil
}

// Project returns the display projection of the current collection.
func (s *Store) Project() Projection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureReadyLocked()
	return Project(s.records, s.variant, s.rating)
}

// Stats returns the summary of the current collection.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureReadyLocked()
	return Summarize(s.records, s.variant)
}

// Snapshot returns the projection and summary computed from the same state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureReadyLocked()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Rows:  Project(s.records, s.variant, s.rating),
		Stats: Summarize(s.records, s.variant),
	}
}

// Subscribe returns a channel that receives a snapshot after every mutation.
//
// Sends are non-blocking; a subscriber whose buffer is full misses that
// snapshot. Callers must [Store.Unsubscribe] when done.
func (s *Store) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, subscriberBuffer)

	s.subMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.subMu.Unlock()

	return ch
}

// Unsubscribe removes a subscription and closes its channel. Unknown or
// already removed channels are ignored.
func (s *Store) Unsubscribe(ch <-chan Snapshot) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for subCh := range s.subscribers {
		if subCh == ch {
			delete(s.subscribers, subCh)
			close(subCh)
			break
		}
	}
}

// Close closes every subscriber channel. The store stays usable, but
// listeners learn that the session is gone.
func (s *Store) Close() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}

func (s *Store) publish(snap Snapshot) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()

	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// slow subscriber, the next snapshot supersedes this one
		}
	}
}

func (s *Store) observe(c Change) {
	if s.observer != nil {
		s.observer(c)
	}
}
