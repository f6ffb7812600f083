package kitchen

import (
	"strings"

	"forkful/models"
)

// Cooking-time buckets derived from the numeric cookingTime field.
const (
	TimeQuick  = "quick"  // <= 30 min
	TimeMedium = "medium" // 31-60 min
	TimeLong   = "long"   // > 60 min

	defaultCookingTime = 30
)

// Criteria is a conjunctive filter: every set field must match. Zero values
// mean "no constraint".
type Criteria struct {
	Query      string   // title, ingredient or tag substring, case-insensitive
	Tags       []string // recipe must carry ALL of these
	Category   string
	Dietary    []string // each flag must be true on the recipe
	Difficulty string
	MinRating  float64
	TimeBucket string // quick / medium / long
}

// Filter restricts recipes to those matching every set criterion. Result
// order is the input order; no scoring or reranking happens here.
func Filter(recipes []models.Recipe, c Criteria) []models.Recipe {
	matched := make([]models.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if matches(recipe, c) {
			matched = append(matched, recipe)
		}
	}
	return matched
}

func matches(r models.Recipe, c Criteria) bool {
	if c.Query != "" && !matchesQuery(r, c.Query) {
		return false
	}
	for _, tag := range c.Tags {
		if !hasTag(r, tag) {
			return false
		}
	}
	if c.Category != "" && r.Category != c.Category {
		return false
	}
	for _, flag := range c.Dietary {
		if !r.Dietary[flag] {
			return false
		}
	}
	if c.Difficulty != "" && r.Difficulty != c.Difficulty {
		return false
	}
	if c.MinRating > 0 && r.Rating < c.MinRating {
		return false
	}
	if c.TimeBucket != "" && TimeBucket(r.CookingTime) != c.TimeBucket {
		return false
	}
	return true
}

func matchesQuery(r models.Recipe, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func hasTag(r models.Recipe, tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// TimeBucket classifies a cooking time in minutes; absent or unusable values
// default to 30.
func TimeBucket(minutes int) string {
	if minutes <= 0 {
		minutes = defaultCookingTime
	}
	switch {
	case minutes <= 30:
		return TimeQuick
	case minutes <= 60:
		return TimeMedium
	default:
		return TimeLong
	}
}
