package roster

import (
	"errors"
	"strings"
)

// ErrEmptyName is wrapped by the [ValidationWarning] returned when an add is
// attempted without a name.
var ErrEmptyName = errors.New("name is required")

// emptyNameMessage is the user-facing warning for a rejected add.
const emptyNameMessage = "이름을 입력해주세요."

// Record is one student row in the canonical collection.
//
// Score is a pointer because a grid edit may clear the cell; a nil score is
// carried through unchanged and renders without glyphs. Grade and Class are
// zero when the variant does not use them.
type Record struct {
	Name  string   `json:"name"`
	Age   int      `json:"age"`
	Score *float64 `json:"score"`
	Grade int      `json:"grade,omitempty"`
	Class int      `json:"class,omitempty"`
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// clone returns a copy of r that shares no memory with it.
func (r Record) clone() Record {
	if r.Score != nil {
		r.Score = Float(*r.Score)
	}
	return r
}

// cloneRecords deep-copies a record slice. The result is never nil.
func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.clone()
	}
	return out
}

// Candidate is an add-form submission.
//
// Numeric fields are expected to be clamped already (see [Variant.Clamp]);
// the store does no range checking of its own.
type Candidate struct {
	Name  string  `json:"name"`
	Age   int     `json:"age"`
	Score float64 `json:"score"`
	Grade int     `json:"grade,omitempty"`
	Class int     `json:"class,omitempty"`
}

// record converts the candidate to a stored row using the given name.
func (c Candidate) record(name string) Record {
	return Record{
		Name:  name,
		Age:   c.Age,
		Score: Float(c.Score),
		Grade: c.Grade,
		Class: c.Class,
	}
}

// ValidationWarning reports a rejected operation that left the store untouched.
//
// It is meant to be shown to the user as is; it never indicates a fault.
type ValidationWarning struct {
	// Field is the input that failed validation.
	Field string

	// Message is the user-facing text.
	Message string

	err error
}

// Error implements the error interface.
func (w *ValidationWarning) Error() string {
	return w.Field + ": " + w.Message
}

// Unwrap returns the underlying sentinel, such as [ErrEmptyName].
func (w *ValidationWarning) Unwrap() error {
	return w.err
}

// validateCandidate checks the one precondition the store enforces and returns
// the normalised name.
func validateCandidate(c Candidate) (string, error) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return "", &ValidationWarning{Field: "name", Message: emptyNameMessage, err: ErrEmptyName}
	}
	return name, nil
}
