package roster

// Binding is the presentation side of an editable grid. Render shows a
// projection; OnEditCommit hands back the user's edited copy, or false when
// nothing was committed.
//
// The store never assumes anything about how the grid is drawn.
type Binding interface {
	Render(p Projection)
	OnEditCommit() (EditedProjection, bool)
}

// Sync runs one edit round trip between a store and a binding. The binding is
// re-rendered with a fresh projection only when the edit changed the store.
func Sync(s *Store, b Binding) (ReconcileResult, error) {
	edited, ok := b.OnEditCommit()
	if !ok {
		return ReconcileResult{}, nil
	}

	res, err := s.Reconcile(edited)
	if err != nil {
		return ReconcileResult{}, err
	}
	if res.Changed {
		b.Render(s.Project())
	}
	return res, nil
}
