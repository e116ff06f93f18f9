package config

import (
	"fmt"

	"github.com/jpalmerr/rosterboard"
)

// BuildOptions converts parsed configuration into SDK options.
//
// The logger and change callbacks are left to the caller.
func BuildOptions(cfg *Config) ([]rosterboard.Option, error) {
	opts := []rosterboard.Option{
		rosterboard.WithPort(cfg.Port),
		rosterboard.WithVariant(cfg.Variant),
		rosterboard.WithSessionTTL(cfg.SessionTTL.Duration()),
		rosterboard.WithSweepInterval(cfg.SweepInterval.Duration()),
		rosterboard.WithRating(rosterboard.Rating{
			Glyph:          cfg.Rating.Glyph,
			Cap:            cfg.Rating.Cap,
			OverflowSuffix: cfg.Rating.OverflowSuffix,
		}),
	}
	if cfg.Title != "" {
		opts = append(opts, rosterboard.WithTitle(cfg.Title))
	}

	students, err := BuildStudents(cfg)
	if err != nil {
		return nil, err
	}
	if len(students) > 0 {
		opts = append(opts, rosterboard.WithStudents(students...))
	}

	return opts, nil
}

// BuildStudents converts the configured seed rows into SDK students.
func BuildStudents(cfg *Config) ([]rosterboard.Student, error) {
	students := make([]rosterboard.Student, 0, len(cfg.Students))
	for i, sc := range cfg.Students {
		s, err := buildStudent(sc)
		if err != nil {
			return nil, fmt.Errorf("students[%d] (%s): %w", i, sc.Name, err)
		}
		students = append(students, s)
	}
	return students, nil
}

func buildStudent(sc StudentConfig) (rosterboard.Student, error) {
	var opts []rosterboard.StudentOption
	if sc.Grade != 0 {
		opts = append(opts, rosterboard.WithGrade(sc.Grade))
	}
	if sc.Class != 0 {
		opts = append(opts, rosterboard.WithClass(sc.Class))
	}
	return rosterboard.NewStudent(sc.Name, sc.Age, sc.Score, opts...)
}
