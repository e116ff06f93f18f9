package roster

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProject_RowNumbers(t *testing.T) {
	records := integerSeed()

	editable, _ := Lookup("editable")
	for i, row := range Project(records, editable, DefaultRating()) {
		if row.Number != i+1 {
			t.Errorf("row %d Number = %d, want %d", i, row.Number, i+1)
		}
	}

	integer, _ := Lookup("integer")
	for i, row := range Project(records, integer, DefaultRating()) {
		if row.Number != 0 {
			t.Errorf("row %d Number = %d, want 0 for a read-only variant", i, row.Number)
		}
	}
}

func TestProject_RatingColumn(t *testing.T) {
	integer, _ := Lookup("integer")
	p := Project(integerSeed(), integer, DefaultRating())

	want := []int{3, 9, 7, 5}
	for i, row := range p {
		if got := strings.Count(row.Rating, DefaultGlyph); got != want[i] {
			t.Errorf("row %d glyphs = %d, want %d", i, got, want[i])
		}
	}
}

func TestEditedProjection_JSONRoundTripStripsDerived(t *testing.T) {
	body := `[
		{"row": 1, "name": "김철수", "age": 14, "score": 4, "grade": 1, "class": 3, "rating": "⭐⭐⭐"},
		{"row": 2, "name": "새 학생", "age": 9, "score": null, "rating": ""}
	]`

	var edited EditedProjection
	if err := json.Unmarshal([]byte(body), &edited); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := []Record{
		{Name: "김철수", Age: 14, Score: Float(4), Grade: 1, Class: 3},
		{Name: "새 학생", Age: 9},
	}
	if diff := cmp.Diff(want, edited.Records()); diff != "" {
		t.Errorf("Records() mismatch (-want +got):\n%s", diff)
	}
}

func TestMean(t *testing.T) {
	records := []Record{
		{Score: Float(3)}, {Score: Float(9)}, {Score: Float(7)}, {Score: Float(5)}, {Score: nil},
	}
	mean, ok := Mean(records)
	if !ok || mean != 6.0 {
		t.Errorf("Mean() = %v, %v; want 6.0, true", mean, ok)
	}

	if _, ok := Mean(nil); ok {
		t.Error("Mean(nil) ok = true, want false")
	}
}
