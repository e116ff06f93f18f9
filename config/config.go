// Package config provides YAML configuration parsing for RosterBoard.
//
// This package enables running RosterBoard as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
//
// Example configuration:
//
//	title: "${ROSTER_TITLE:-3학년 2반 별점 보드}"
//	port: 8080
//	variant: graded
//	session_ttl: 30m
//
//	rating:
//	  glyph: "★"
//
//	students:
//	  - name: 김철수
//	    age: 14
//	    score: 3
//	    grade: 1
//	    class: 3
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jpalmerr/rosterboard"
)

const (
	defaultPort          = 8080
	defaultVariant       = "editable"
	defaultSessionTTL    = 30 * time.Minute
	defaultSweepInterval = time.Minute

	// minSessionDuration bounds session_ttl and sweep_interval from below.
	minSessionDuration = time.Second
)

// Config is the root configuration structure for RosterBoard.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Title is the page title. Defaults to the variant's title if not set.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}
	Title string `yaml:"title"`

	// Port is the HTTP server port. Defaults to 8080.
	Port int `yaml:"port" validate:"min=1,max=65535"`

	// Variant is the page preset. Defaults to "editable".
	Variant string `yaml:"variant"`

	// SessionTTL is how long an idle browser session keeps its roster.
	// Accepts duration strings like "30m", "1h". Defaults to 30m.
	SessionTTL Duration `yaml:"session_ttl"`

	// SweepInterval is how often idle sessions are looked for. Defaults to 1m.
	SweepInterval Duration `yaml:"sweep_interval"`

	// Rating customises the rating column.
	Rating RatingConfig `yaml:"rating"`

	// Students replaces the variant's seed rows when non-empty.
	Students []StudentConfig `yaml:"students" validate:"dive"`
}

// RatingConfig configures the rating glyphs.
type RatingConfig struct {
	// Glyph is repeated once per whole score point. Defaults to "⭐".
	// Supports environment variable substitution.
	Glyph string `yaml:"glyph"`

	// Cap is the most glyphs drawn. Defaults to 10.
	Cap int `yaml:"cap" validate:"gte=0,lte=100"`

	// OverflowSuffix follows the glyphs when a score exceeds Cap.
	// Defaults to "(MAX)" when no glyph is configured.
	OverflowSuffix string `yaml:"overflow_suffix"`
}

// StudentConfig is one seed row.
type StudentConfig struct {
	Name  string  `yaml:"name" validate:"required"`
	Age   int     `yaml:"age" validate:"min=7,max=20"`
	Score float64 `yaml:"score" validate:"gte=0,lte=10"`

	// Grade and Class are only allowed for variants with those columns.
	Grade int `yaml:"grade" validate:"omitempty,min=1,max=6"`
	Class int `yaml:"class" validate:"omitempty,min=1,max=20"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// validate checks struct tags, reporting fields by their YAML names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads and parses a YAML configuration file.
//
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Environment variables are expanded in the title and rating fields.
// Defaults are applied for Port (8080), Variant ("editable"),
// SessionTTL (30m) and SweepInterval (1m).
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Variant == "" {
		cfg.Variant = defaultVariant
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = Duration(defaultSessionTTL)
	}
	if cfg.SweepInterval == 0 {
		cfg.SweepInterval = Duration(defaultSweepInterval)
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	var err error
	if c.Title, err = expandEnvVars(c.Title); err != nil {
		return fmt.Errorf("title: %w", err)
	}
	if c.Rating.Glyph, err = expandEnvVars(c.Rating.Glyph); err != nil {
		return fmt.Errorf("rating.glyph: %w", err)
	}
	if c.Rating.OverflowSuffix, err = expandEnvVars(c.Rating.OverflowSuffix); err != nil {
		return fmt.Errorf("rating.overflow_suffix: %w", err)
	}

	if !slices.Contains(rosterboard.Variants(), c.Variant) {
		return fmt.Errorf("variant %q is unknown (available: %s)", c.Variant, strings.Join(rosterboard.Variants(), ", "))
	}

	if c.SessionTTL.Duration() < minSessionDuration {
		return fmt.Errorf("session_ttl must be at least %s, got %s", minSessionDuration, c.SessionTTL.Duration())
	}
	if c.SweepInterval.Duration() < minSessionDuration {
		return fmt.Errorf("sweep_interval must be at least %s, got %s", minSessionDuration, c.SweepInterval.Duration())
	}

	for i := range c.Students {
		s := &c.Students[i]
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			return fmt.Errorf("students[%d]: name is required", i)
		}
	}

	if err := validate.Struct(c); err != nil {
		return describeValidation(err)
	}
	return nil
}

// describeValidation turns validator errors into one readable error per field.
func describeValidation(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, fieldMessage(fe)))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
