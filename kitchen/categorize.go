package kitchen

import "strings"

// Shopping categories in their fixed evaluation (and aisle sort) order.
const (
	CategoryProduce = "produce"
	CategoryDairy   = "dairy"
	CategoryMeat    = "meat"
	CategoryPantry  = "pantry"
	CategorySpices  = "spices"
	CategoryOther   = "other"
)

var CategoryOrder = []string{
	CategoryProduce,
	CategoryDairy,
	CategoryMeat,
	CategoryPantry,
	CategorySpices,
	CategoryOther,
}

type categoryKeywords struct {
	category string
	keywords []string
}

// Keyword tables, checked in fixed order with loose substring matching.
// First match wins; the looseness ("ham" inside an unrelated word matches
// meat) is deliberate and load-bearing for compatibility.
var categoryTable = []categoryKeywords{
	{CategoryProduce, []string{
		"onion", "garlic", "tomato", "potato", "carrot", "celery", "lettuce",
		"spinach", "kale", "broccoli", "cauliflower", "cabbage", "cucumber",
		"zucchini", "mushroom", "avocado", "apple", "banana", "orange",
		"lemon", "lime", "berry", "berries", "mango", "peach", "grape",
		"cilantro", "parsley", "basil", "mint", "ginger", "scallion", "leek",
	}},
	{CategoryDairy, []string{
		"milk", "cheese", "butter", "cream", "yogurt", "egg", "mozzarella",
		"parmesan", "cheddar", "feta", "ricotta",
	}},
	{CategoryMeat, []string{
		"chicken", "beef", "pork", "ham", "bacon", "turkey", "lamb",
		"sausage", "fish", "salmon", "tuna", "shrimp", "steak",
	}},
	{CategoryPantry, []string{
		"flour", "sugar", "rice", "pasta", "noodle", "bread", "oil",
		"vinegar", "bean", "lentil", "chickpea", "oat", "honey", "stock",
		"broth", "sauce", "tortilla", "chocolate", "vanilla", "baking",
		"yeast", "cornstarch",
	}},
	{CategorySpices, []string{
		"salt", "pepper", "cumin", "paprika", "cinnamon", "oregano", "thyme",
		"rosemary", "chili", "curry", "nutmeg", "clove", "turmeric",
		"coriander", "cayenne", "bay leaf",
	}},
}

// Categorize maps an ingredient name to a shopping-aisle category. It is
// total: every input lands in exactly one of the six categories.
func Categorize(name string) string {
	lowered := strings.ToLower(name)
	for _, entry := range categoryTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				return entry.category
			}
		}
	}
	return CategoryOther
}
