package roster

import (
	"fmt"
	"math"
	"strconv"
)

// Input bounds applied by the add form.
const (
	MinAge   = 7
	MaxAge   = 20
	MinGrade = 1
	MaxGrade = 6
	MinClass = 1
	MaxClass = 20

	// DefaultAge is the add-form default.
	DefaultAge = 14
)

// Variant is the widget configuration of one roster page: score domain and
// step, which columns exist, whether the grid is editable and how the
// summary is formatted.
type Variant struct {
	Name  string `json:"name"`
	Title string `json:"title"`

	ScoreMin      float64 `json:"score_min"`
	ScoreMax      float64 `json:"score_max"`
	ScoreStep     float64 `json:"score_step"`
	ScoreDefault  float64 `json:"score_default"`
	ScoreDecimals int     `json:"score_decimals"`

	// Graded adds the grade and class columns.
	Graded bool `json:"graded"`

	// Editable turns the table into an inline-editable grid with row numbers.
	Editable bool `json:"editable"`

	// ShowCount adds the row count next to the mean.
	ShowCount bool `json:"show_count"`

	MeanDecimals int    `json:"mean_decimals"`
	MeanUnit     string `json:"mean_unit"`

	// Seed is the collection a new session starts with.
	Seed []Record `json:"-"`
}

// Clamp constrains a candidate to the ranges and granularity the add form
// allows. Grade and class are zeroed when the variant has no such columns.
func (v Variant) Clamp(c Candidate) Candidate {
	c.Age = clampInt(c.Age, MinAge, MaxAge)
	c.Score = v.clampScore(c.Score)

	if v.Graded {
		c.Grade = clampInt(c.Grade, MinGrade, MaxGrade)
		c.Class = clampInt(c.Class, MinClass, MaxClass)
	} else {
		c.Grade = 0
		c.Class = 0
	}
	return c
}

func (v Variant) clampScore(s float64) float64 {
	if math.IsNaN(s) {
		return v.ScoreDefault
	}
	s = math.Max(v.ScoreMin, math.Min(v.ScoreMax, s))

	if v.ScoreStep > 0 {
		steps := math.Round((s - v.ScoreMin) / v.ScoreStep)
		s = v.ScoreMin + steps*v.ScoreStep
		s = math.Min(v.ScoreMax, s)
	}
	return roundTo(s, v.ScoreDecimals)
}

// OnStep reports whether score is a value the add form can produce: inside
// the domain and on the variant's step.
func (v Variant) OnStep(score float64) bool {
	if math.IsNaN(score) || score < v.ScoreMin || score > v.ScoreMax {
		return false
	}
	return math.Abs(v.clampScore(score)-score) < 1e-9
}

// FormatScore renders a score with the variant's precision.
func (v Variant) FormatScore(score *float64) string {
	if score == nil {
		return ""
	}
	return strconv.FormatFloat(*score, 'f', v.ScoreDecimals, 64)
}

// FormatMean renders the summary metric, e.g. "6.0점". A roster without any
// score renders as "-".
func (v Variant) FormatMean(mean float64, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(mean, 'f', v.MeanDecimals, 64) + v.MeanUnit
}

// Column describes one displayed column.
type Column struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Numeric bool   `json:"numeric"`

	// Editable is false for derived columns.
	Editable bool `json:"editable"`
}

// Column keys, matching the JSON field names of [Row].
const (
	ColumnRow    = "row"
	ColumnName   = "name"
	ColumnAge    = "age"
	ColumnScore  = "score"
	ColumnGrade  = "grade"
	ColumnClass  = "class"
	ColumnRating = "rating"
)

// Columns returns the displayed columns in order.
func (v Variant) Columns() []Column {
	cols := make([]Column, 0, 7)
	if v.Editable {
		cols = append(cols, Column{Key: ColumnRow, Title: "번호", Numeric: true})
	}
	cols = append(cols,
		Column{Key: ColumnName, Title: "학생 이름", Editable: true},
		Column{Key: ColumnAge, Title: "나이", Numeric: true, Editable: true},
	)
	if v.Graded {
		cols = append(cols,
			Column{Key: ColumnGrade, Title: "학년", Numeric: true, Editable: true},
			Column{Key: ColumnClass, Title: "반", Numeric: true, Editable: true},
		)
	}
	cols = append(cols,
		Column{Key: ColumnScore, Title: v.scoreTitle(), Numeric: true, Editable: true},
		Column{Key: ColumnRating, Title: "평가 (별점)"},
	)
	return cols
}

func (v Variant) scoreTitle() string {
	lo := strconv.FormatFloat(v.ScoreMin, 'f', -1, 64)
	hi := strconv.FormatFloat(v.ScoreMax, 'f', -1, 64)
	return fmt.Sprintf("점수 (%s-%s)", lo, hi)
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func roundTo(f float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(f*p) / p
}
