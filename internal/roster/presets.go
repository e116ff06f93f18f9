package roster

import "sort"

// DefaultVariant is the preset used when none is configured.
const DefaultVariant = "editable"

const defaultTitle = "학생 별점 관리 보드"

// presets are the six page configurations, from the first slider demo to the
// inline-editable grid. Lookup returns copies; never hand these out directly.
var presets = map[string]Variant{
	"slider": {
		Name:          "slider",
		Title:         defaultTitle,
		ScoreMin:      1,
		ScoreMax:      5,
		ScoreStep:     1,
		ScoreDefault:  3,
		ScoreDecimals: 0,
		MeanDecimals:  1,
		MeanUnit:      "점",
		Seed: []Record{
			{Name: "김철수", Age: 14, Score: Float(3)},
			{Name: "이영희", Age: 15, Score: Float(5)},
			{Name: "박민수", Age: 14, Score: Float(4)},
			{Name: "최지우", Age: 16, Score: Float(5)},
			{Name: "정수현", Age: 15, Score: Float(2)},
		},
	},
	"stepped": {
		Name:          "stepped",
		Title:         defaultTitle,
		ScoreMin:      0,
		ScoreMax:      10,
		ScoreStep:     0.1,
		ScoreDefault:  5,
		ScoreDecimals: 1,
		MeanDecimals:  2,
		MeanUnit:      "점",
		Seed: []Record{
			{Name: "김철수", Age: 14, Score: Float(3.4)},
			{Name: "이영희", Age: 15, Score: Float(9.1)},
			{Name: "박민수", Age: 14, Score: Float(6.7)},
			{Name: "최지우", Age: 16, Score: Float(4.8)},
		},
	},
	"integer": {
		Name:          "integer",
		Title:         defaultTitle,
		ScoreMin:      0,
		ScoreMax:      10,
		ScoreStep:     1,
		ScoreDefault:  5,
		ScoreDecimals: 0,
		MeanDecimals:  1,
		MeanUnit:      "점",
		Seed:          integerSeed(),
	},
	"counted": {
		Name:          "counted",
		Title:         defaultTitle,
		ScoreMin:      0,
		ScoreMax:      10,
		ScoreStep:     1,
		ScoreDefault:  5,
		ScoreDecimals: 0,
		ShowCount:     true,
		MeanDecimals:  1,
		MeanUnit:      "점",
		Seed:          integerSeed(),
	},
	"graded": {
		Name:          "graded",
		Title:         defaultTitle,
		ScoreMin:      0,
		ScoreMax:      10,
		ScoreStep:     1,
		ScoreDefault:  5,
		ScoreDecimals: 0,
		Graded:        true,
		ShowCount:     true,
		MeanDecimals:  1,
		MeanUnit:      "점",
		Seed:          gradedSeed(),
	},
	"editable": {
		Name:          "editable",
		Title:         defaultTitle,
		ScoreMin:      0,
		ScoreMax:      10,
		ScoreStep:     1,
		ScoreDefault:  5,
		ScoreDecimals: 0,
		Graded:        true,
		Editable:      true,
		ShowCount:     true,
		MeanDecimals:  1,
		MeanUnit:      "점",
		Seed:          gradedSeed(),
	},
}

func integerSeed() []Record {
	return []Record{
		{Name: "김철수", Age: 14, Score: Float(3)},
		{Name: "이영희", Age: 15, Score: Float(9)},
		{Name: "박민수", Age: 14, Score: Float(7)},
		{Name: "최지우", Age: 16, Score: Float(5)},
	}
}

func gradedSeed() []Record {
	return []Record{
		{Name: "김철수", Age: 14, Score: Float(3), Grade: 1, Class: 3},
		{Name: "이영희", Age: 15, Score: Float(9), Grade: 2, Class: 1},
		{Name: "박민수", Age: 14, Score: Float(7), Grade: 1, Class: 5},
		{Name: "최지우", Age: 16, Score: Float(5), Grade: 3, Class: 2},
	}
}

// Lookup returns a copy of the named preset.
func Lookup(name string) (Variant, bool) {
	v, ok := presets[name]
	if !ok {
		return Variant{}, false
	}
	v.Seed = cloneRecords(v.Seed)
	return v, true
}

// Names lists the preset names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
