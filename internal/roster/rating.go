package roster

import (
	"math"
	"strings"
)

const (
	// DefaultGlyph is the character repeated once per whole score point.
	DefaultGlyph = "⭐"

	// DefaultCap is the most glyphs a single rating renders.
	DefaultCap = 10

	// DefaultOverflowSuffix follows the capped glyphs when a score exceeds the cap.
	DefaultOverflowSuffix = "(MAX)"
)

// Rating turns a score into its glyph string.
//
// The zero value renders with the defaults.
type Rating struct {
	Glyph          string `json:"glyph"`
	Cap            int    `json:"cap"`
	OverflowSuffix string `json:"overflow_suffix"`
}

// DefaultRating returns the stock star rating.
func DefaultRating() Rating {
	return Rating{
		Glyph:          DefaultGlyph,
		Cap:            DefaultCap,
		OverflowSuffix: DefaultOverflowSuffix,
	}
}

// Render returns one glyph per whole point of score.
//
// The score is truncated toward zero, never rounded: 4.8 renders four glyphs.
// A missing or non-finite score, or one below 1, renders as the empty string.
// Scores above the cap render exactly Cap glyphs followed by the overflow suffix.
func (r Rating) Render(score *float64) string {
	if score == nil || math.IsNaN(*score) || math.IsInf(*score, 0) {
		return ""
	}

	r = r.withDefaults()

	whole := math.Trunc(*score)
	if whole <= 0 {
		return ""
	}
	if whole > float64(r.Cap) {
		return strings.Repeat(r.Glyph, r.Cap) + r.OverflowSuffix
	}
	return strings.Repeat(r.Glyph, int(whole))
}

// withDefaults fills unset fields. An empty suffix is left as is when a glyph
// was configured, so callers can opt out of the suffix.
func (r Rating) withDefaults() Rating {
	if r.Glyph == "" {
		r.Glyph = DefaultGlyph
		if r.OverflowSuffix == "" {
			r.OverflowSuffix = DefaultOverflowSuffix
		}
	}
	if r.Cap <= 0 {
		r.Cap = DefaultCap
	}
	return r
}
