package roster

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookup_AllPresets(t *testing.T) {
	names := Names()
	if len(names) != 6 {
		t.Fatalf("Names() = %v, want 6 presets", names)
	}

	for _, name := range names {
		v, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) not found", name)
			continue
		}
		if v.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, v.Name)
		}
		if n := len(v.Seed); n < 4 || n > 5 {
			t.Errorf("%s: seed has %d rows, want 4-5", name, n)
		}
		for _, r := range v.Seed {
			if r.Name == "" || r.Age < MinAge || r.Age > MaxAge {
				t.Errorf("%s: invalid seed row %+v", name, r)
			}
		}
	}

	if _, ok := Lookup(DefaultVariant); !ok {
		t.Errorf("default variant %q is not a preset", DefaultVariant)
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) found a preset")
	}
}

func TestLookup_ReturnsCopies(t *testing.T) {
	a, _ := Lookup("slider")
	a.Seed[0].Name = "changed"
	*a.Seed[1].Score = 100

	b, _ := Lookup("slider")
	if b.Seed[0].Name != "김철수" || *b.Seed[1].Score != 5 {
		t.Errorf("preset seed was mutated through a lookup: %+v", b.Seed[:2])
	}
}

func TestVariant_SeedMeans(t *testing.T) {
	for _, name := range []string{"stepped", "integer", "counted", "graded", "editable"} {
		v, _ := Lookup(name)
		mean, ok := Mean(v.Seed)
		if !ok || math.Abs(mean-6.0) > 1e-9 {
			t.Errorf("%s: seed mean = %v, want 6.0", name, mean)
		}
	}
}

func TestVariant_Clamp(t *testing.T) {
	editable, _ := Lookup("editable")
	stepped, _ := Lookup("stepped")
	slider, _ := Lookup("slider")

	tests := []struct {
		name string
		v    Variant
		in   Candidate
		want Candidate
	}{
		{
			name: "age below range",
			v:    editable,
			in:   Candidate{Name: "a", Age: 3, Score: 5, Grade: 1, Class: 1},
			want: Candidate{Name: "a", Age: 7, Score: 5, Grade: 1, Class: 1},
		},
		{
			name: "age above range",
			v:    editable,
			in:   Candidate{Name: "a", Age: 30, Score: 5, Grade: 1, Class: 1},
			want: Candidate{Name: "a", Age: 20, Score: 5, Grade: 1, Class: 1},
		},
		{
			name: "integer score snaps to step",
			v:    editable,
			in:   Candidate{Name: "a", Age: 14, Score: 6.6, Grade: 9, Class: 0},
			want: Candidate{Name: "a", Age: 14, Score: 7, Grade: 6, Class: 1},
		},
		{
			name: "decimal score keeps one place",
			v:    stepped,
			in:   Candidate{Name: "a", Age: 14, Score: 7.34},
			want: Candidate{Name: "a", Age: 14, Score: 7.3},
		},
		{
			name: "score above domain",
			v:    stepped,
			in:   Candidate{Name: "a", Age: 14, Score: 12},
			want: Candidate{Name: "a", Age: 14, Score: 10},
		},
		{
			name: "slider floor is one",
			v:    slider,
			in:   Candidate{Name: "a", Age: 14, Score: 0},
			want: Candidate{Name: "a", Age: 14, Score: 1},
		},
		{
			name: "ungraded variant drops grade and class",
			v:    slider,
			in:   Candidate{Name: "a", Age: 14, Score: 4, Grade: 2, Class: 3},
			want: Candidate{Name: "a", Age: 14, Score: 4},
		},
		{
			name: "nan score falls back to default",
			v:    slider,
			in:   Candidate{Name: "a", Age: 14, Score: math.NaN()},
			want: Candidate{Name: "a", Age: 14, Score: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Clamp(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Clamp() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVariant_Columns(t *testing.T) {
	keys := func(cols []Column) []string {
		out := make([]string, len(cols))
		for i, c := range cols {
			out[i] = c.Key
		}
		return out
	}

	slider, _ := Lookup("slider")
	if diff := cmp.Diff([]string{"name", "age", "score", "rating"}, keys(slider.Columns())); diff != "" {
		t.Errorf("slider columns (-want +got):\n%s", diff)
	}

	editable, _ := Lookup("editable")
	want := []string{"row", "name", "age", "grade", "class", "score", "rating"}
	if diff := cmp.Diff(want, keys(editable.Columns())); diff != "" {
		t.Errorf("editable columns (-want +got):\n%s", diff)
	}

	for _, c := range editable.Columns() {
		derived := c.Key == ColumnRow || c.Key == ColumnRating
		if c.Editable == derived {
			t.Errorf("column %q Editable = %v", c.Key, c.Editable)
		}
	}

	if got := slider.Columns()[2].Title; got != "점수 (1-5)" {
		t.Errorf("slider score title = %q, want %q", got, "점수 (1-5)")
	}
}

func TestVariant_FormatMean(t *testing.T) {
	integer, _ := Lookup("integer")
	stepped, _ := Lookup("stepped")

	if got := integer.FormatMean(6, true); got != "6.0점" {
		t.Errorf("integer FormatMean(6) = %q, want %q", got, "6.0점")
	}
	if got := stepped.FormatMean(6, true); got != "6.00점" {
		t.Errorf("stepped FormatMean(6) = %q, want %q", got, "6.00점")
	}
	if got := integer.FormatMean(0, false); got != "-" {
		t.Errorf("FormatMean(no scores) = %q, want %q", got, "-")
	}
}

func TestVariant_FormatScore(t *testing.T) {
	stepped, _ := Lookup("stepped")
	if got := stepped.FormatScore(Float(4.8)); got != "4.8" {
		t.Errorf("FormatScore(4.8) = %q", got)
	}
	if got := stepped.FormatScore(nil); got != "" {
		t.Errorf("FormatScore(nil) = %q, want empty", got)
	}
}

func TestVariant_OnStep(t *testing.T) {
	tests := []struct {
		variant string
		score   float64
		want    bool
	}{
		{"slider", 3, true},
		{"slider", 3.5, false},
		{"slider", 0, false},
		{"integer", 10, true},
		{"integer", 7.2, false},
		{"stepped", 6.7, true},
		{"stepped", 4.85, false},
		{"stepped", 10.1, false},
		{"stepped", math.NaN(), false},
	}

	for _, tt := range tests {
		v, _ := Lookup(tt.variant)
		if got := v.OnStep(tt.score); got != tt.want {
			t.Errorf("%s OnStep(%v) = %v, want %v", tt.variant, tt.score, got, tt.want)
		}
	}
}
