package rosterboard

import (
	"strings"
	"testing"
)

func TestNewStudent_Valid(t *testing.T) {
	s, err := NewStudent("  김철수 ", 14, 3.5)
	if err != nil {
		t.Fatalf("NewStudent() error = %v", err)
	}

	if s.Name() != "김철수" {
		t.Errorf("Name() = %q, want %q", s.Name(), "김철수")
	}
	if s.Age() != 14 {
		t.Errorf("Age() = %d, want 14", s.Age())
	}
	if s.Score() != 3.5 {
		t.Errorf("Score() = %v, want 3.5", s.Score())
	}
	if s.Grade() != 0 || s.Class() != 0 {
		t.Errorf("Grade()/Class() = %d/%d, want unset", s.Grade(), s.Class())
	}
}

func TestNewStudent_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		student string
		age     int
		score   float64
		opts    []StudentOption
		wantErr string
	}{
		{"empty name", "", 14, 5, nil, "name cannot be empty"},
		{"blank name", "   ", 14, 5, nil, "name cannot be empty"},
		{"too young", "A", 6, 5, nil, "age must be between"},
		{"too old", "A", 21, 5, nil, "age must be between"},
		{"negative score", "A", 14, -1, nil, "score must be between"},
		{"score above ten", "A", 14, 10.5, nil, "score must be between"},
		{"grade zero", "A", 14, 5, []StudentOption{WithGrade(0)}, "grade must be between"},
		{"grade seven", "A", 14, 5, []StudentOption{WithGrade(7)}, "grade must be between"},
		{"class too high", "A", 14, 5, []StudentOption{WithClass(21)}, "class must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStudent(tt.student, tt.age, tt.score, tt.opts...)
			if err == nil {
				t.Fatal("NewStudent() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewStudent_GradeAndClass(t *testing.T) {
	s, err := NewStudent("이영희", 15, 9, WithGrade(2), WithClass(11))
	if err != nil {
		t.Fatalf("NewStudent() error = %v", err)
	}
	if s.Grade() != 2 || s.Class() != 11 {
		t.Errorf("Grade()/Class() = %d/%d, want 2/11", s.Grade(), s.Class())
	}

	rec := s.record()
	if rec.Score == nil || *rec.Score != 9 || rec.Grade != 2 || rec.Class != 11 {
		t.Errorf("record() = %+v", rec)
	}
}
