package rosterboard

import (
	"fmt"

	"github.com/jpalmerr/rosterboard/internal/roster"
)

// studentConfig holds mutable state during student construction.
type studentConfig struct {
	grade int
	class int
}

// StudentOption is a function that configures a [Student] during construction.
//
// Built-in options: [WithGrade], [WithClass].
type StudentOption func(*studentConfig) error

// WithGrade sets the student's grade (1-6).
//
// Returns an error if the grade is out of range.
func WithGrade(grade int) StudentOption {
	return func(cfg *studentConfig) error {
		if grade < roster.MinGrade || grade > roster.MaxGrade {
			return fmt.Errorf("grade must be between %d and %d, got %d", roster.MinGrade, roster.MaxGrade, grade)
		}
		cfg.grade = grade
		return nil
	}
}

// WithClass sets the student's class (1-20).
//
// Returns an error if the class is out of range.
func WithClass(class int) StudentOption {
	return func(cfg *studentConfig) error {
		if class < roster.MinClass || class > roster.MaxClass {
			return fmt.Errorf("class must be between %d and %d, got %d", roster.MinClass, roster.MaxClass, class)
		}
		cfg.class = class
		return nil
	}
}
