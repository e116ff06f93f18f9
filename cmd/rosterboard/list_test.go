package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jpalmerr/rosterboard"
)

func mustStudent(t *testing.T, name string, age int, score float64) rosterboard.Student {
	t.Helper()
	s, err := rosterboard.NewStudent(name, age, score)
	if err != nil {
		t.Fatalf("NewStudent(%q) error = %v", name, err)
	}
	return s
}

func names(students []rosterboard.Student) []string {
	out := make([]string, len(students))
	for i, s := range students {
		out[i] = s.Name()
	}
	return out
}

func TestSortStudents(t *testing.T) {
	tests := []struct {
		by   string
		want []string
	}{
		{"", []string{"학생10", "학생2", "학생1", "학생3"}},
		{"name", []string{"학생1", "학생2", "학생3", "학생10"}},
		{"age", []string{"학생1", "학생3", "학생10", "학생2"}},
		{"score", []string{"학생2", "학생3", "학생10", "학생1"}},
	}

	for _, tt := range tests {
		t.Run("by "+tt.by, func(t *testing.T) {
			students := []rosterboard.Student{
				mustStudent(t, "학생10", 14, 7),
				mustStudent(t, "학생2", 16, 9),
				mustStudent(t, "학생1", 12, 3),
				mustStudent(t, "학생3", 14, 7),
			}

			if err := sortStudents(students, tt.by); err != nil {
				t.Fatalf("sortStudents() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, names(students)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortStudents_UnknownKey(t *testing.T) {
	if err := sortStudents(nil, "height"); err == nil {
		t.Error("sortStudents() expected error for unknown key, got nil")
	}
}

func TestPrintStudents(t *testing.T) {
	rb, err := rosterboard.New(rosterboard.WithVariant("integer"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var buf bytes.Buffer
	if err := printStudents(&buf, rb, []rosterboard.Student{mustStudent(t, "김철수", 14, 4.8)}); err != nil {
		t.Fatalf("printStudents() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1", len(lines))
	}
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Errorf("header = %q", lines[0])
	}
	fields := strings.Fields(lines[1])
	want := []string{"김철수", "14", "-", "-", "4.8", "⭐⭐⭐⭐"}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestRunList(t *testing.T) {
	configPath := writeFile(t, "config.yaml", "variant: integer\n")

	output, err := executeCmd(t, "list", "-c", configPath, "--sort", "score")
	if err != nil {
		t.Fatalf("list command error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header + 4\n%s", len(lines), output)
	}
	if !strings.HasPrefix(lines[1], "이영희") {
		t.Errorf("highest score not first: %q", lines[1])
	}
}
