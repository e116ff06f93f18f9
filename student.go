package rosterboard

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jpalmerr/rosterboard/internal/roster"
)

// Student is one seed row of the roster.
//
// Student is immutable after creation via [NewStudent]. Grade and class are
// optional and only shown by variants with those columns; see
// [WithGrade] and [WithClass].
type Student struct {
	name  string
	age   int
	score float64
	grade int
	class int
}

// Name returns the student's display name.
func (s Student) Name() string {
	return s.name
}

// Age returns the student's age.
func (s Student) Age() int {
	return s.age
}

// Score returns the student's score.
func (s Student) Score() float64 {
	return s.score
}

// Grade returns the student's grade, or 0 when unset.
func (s Student) Grade() int {
	return s.grade
}

// Class returns the student's class, or 0 when unset.
func (s Student) Class() int {
	return s.class
}

// NewStudent creates a [Student] with the given name, age and score.
//
// The name must be non-empty after trimming whitespace, the age must be
// between 7 and 20, and the score between 0 and 10. Whether the score fits
// the configured variant's narrower domain is checked by [New].
//
// Example:
//
//	s, err := rosterboard.NewStudent("김철수", 14, 3,
//	    rosterboard.WithGrade(1),
//	    rosterboard.WithClass(3),
//	)
func NewStudent(name string, age int, score float64, opts ...StudentOption) (Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Student{}, errors.New("student name cannot be empty")
	}
	if age < roster.MinAge || age > roster.MaxAge {
		return Student{}, fmt.Errorf("age must be between %d and %d, got %d", roster.MinAge, roster.MaxAge, age)
	}
	if math.IsNaN(score) || score < 0 || score > 10 {
		return Student{}, fmt.Errorf("score must be between 0 and 10, got %v", score)
	}

	cfg := &studentConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return Student{}, err
		}
	}

	return Student{
		name:  name,
		age:   age,
		score: score,
		grade: cfg.grade,
		class: cfg.class,
	}, nil
}

// record converts the student to a stored row.
func (s Student) record() roster.Record {
	return roster.Record{
		Name:  s.name,
		Age:   s.age,
		Score: roster.Float(s.score),
		Grade: s.grade,
		Class: s.class,
	}
}
