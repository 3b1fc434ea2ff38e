package catalog

import (
	"strings"
	"unicode"

	"basket/internal/model"
)

// Categorize guesses the category for an item name: exact keyword first, then
// the first keyword found among the name's words, case-insensitively. Unknown
// names are "Other".
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return model.DefaultCategory
	}

	if cat, ok := exactMatch[name]; ok {
		return cat
	}

	words := splitWords(name)
	for _, entry := range keywordMatches {
		if containsKeyword(words, entry.words) {
			return entry.category
		}
	}

	return model.DefaultCategory
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// containsKeyword reports whether keyword appears as consecutive words of name.
func containsKeyword(name, keyword []string) bool {
	for i := 0; i+len(keyword) <= len(name); i++ {
		matched := true
		for j, kw := range keyword {
			if !wordMatches(name[i+j], kw) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// wordMatches accepts the keyword itself, its plural, and for keywords of five
// or more letters a compound ending in it ("strawberries", "pineapple").
func wordMatches(word, kw string) bool {
	for _, form := range []string{kw, kw + "s", kw + "es"} {
		if word == form || (len(kw) >= 5 && strings.HasSuffix(word, form)) {
			return true
		}
	}
	return false
}

var exactMatch = map[string]string{
	// Fruits
	"apple":        "Fruits",
	"apples":       "Fruits",
	"banana":       "Fruits",
	"bananas":      "Fruits",
	"orange":       "Fruits",
	"oranges":      "Fruits",
	"lemon":        "Fruits",
	"lime":         "Fruits",
	"avocado":      "Fruits",
	"avocados":     "Fruits",
	"grapes":       "Fruits",
	"strawberries": "Fruits",
	"blueberries":  "Fruits",
	"watermelon":   "Fruits",
	"pineapple":    "Fruits",
	"mango":        "Fruits",
	"peaches":      "Fruits",
	"pears":        "Fruits",

	// Vegetables
	"tomato":      "Vegetables",
	"tomatoes":    "Vegetables",
	"potato":      "Vegetables",
	"potatoes":    "Vegetables",
	"onion":       "Vegetables",
	"onions":      "Vegetables",
	"garlic":      "Vegetables",
	"lettuce":     "Vegetables",
	"spinach":     "Vegetables",
	"kale":        "Vegetables",
	"broccoli":    "Vegetables",
	"carrots":     "Vegetables",
	"celery":      "Vegetables",
	"cucumber":    "Vegetables",
	"mushrooms":   "Vegetables",
	"corn":        "Vegetables",
	"asparagus":   "Vegetables",
	"zucchini":    "Vegetables",
	"ginger":      "Vegetables",
	"cilantro":    "Vegetables",
	"basil":       "Vegetables",
	"green beans": "Vegetables",
	"eggplant":    "Vegetables",

	// Meat
	"chicken":       "Meat",
	"beef":          "Meat",
	"pork":          "Meat",
	"turkey":        "Meat",
	"bacon":         "Meat",
	"sausage":       "Meat",
	"ham":           "Meat",
	"steak":         "Meat",
	"lamb":          "Meat",
	"ground beef":   "Meat",
	"whole chicken": "Meat",

	// Seafood
	"salmon":      "Seafood",
	"shrimp":      "Seafood",
	"tuna":        "Seafood",
	"fish":        "Seafood",
	"white fish":  "Seafood",
	"crab":        "Seafood",
	"tilapia":     "Seafood",
	"seafood mix": "Seafood",

	// Dairy
	"milk":         "Dairy",
	"eggs":         "Dairy",
	"butter":       "Dairy",
	"cheese":       "Dairy",
	"yogurt":       "Dairy",
	"greek yogurt": "Dairy",
	"sour cream":   "Dairy",
	"parmesan":     "Dairy",
	"mozzarella":   "Dairy",

	// Bakery
	"bread":      "Bakery",
	"bagels":     "Bakery",
	"tortillas":  "Bakery",
	"rolls":      "Bakery",
	"croissants": "Bakery",
	"pizza base": "Bakery",

	// Pantry
	"rice":          "Pantry",
	"pasta":         "Pantry",
	"flour":         "Pantry",
	"sugar":         "Pantry",
	"salt":          "Pantry",
	"oil":           "Pantry",
	"olive oil":     "Pantry",
	"soy sauce":     "Pantry",
	"honey":         "Pantry",
	"peanut butter": "Pantry",
	"cereal":        "Pantry",
	"oats":          "Pantry",
	"quinoa":        "Pantry",
	"soup":          "Pantry",
	"lentils":       "Pantry",
	"spaghetti":     "Pantry",
	"noodles":       "Pantry",
	"maple syrup":   "Pantry",

	// Frozen
	"ice cream":    "Frozen",
	"frozen pizza": "Frozen",

	// Beverages
	"water":    "Beverages",
	"juice":    "Beverages",
	"coffee":   "Beverages",
	"tea":      "Beverages",
	"soda":     "Beverages",
	"beer":     "Beverages",
	"wine":     "Beverages",
	"lemonade": "Beverages",

	// Snacks
	"chips":     "Snacks",
	"crackers":  "Snacks",
	"cookies":   "Snacks",
	"popcorn":   "Snacks",
	"candy":     "Snacks",
	"chocolate": "Snacks",
	"almonds":   "Snacks",
	"nuts":      "Snacks",

	// Household
	"paper towels":      "Household",
	"toilet paper":      "Household",
	"trash bags":        "Household",
	"dish soap":         "Household",
	"laundry detergent": "Household",
	"sponges":           "Household",
	"candles":           "Household",
	"batteries":         "Household",

	// Personal Care
	"shampoo":     "Personal Care",
	"conditioner": "Personal Care",
	"soap":        "Personal Care",
	"toothpaste":  "Personal Care",
	"deodorant":   "Personal Care",
	"sunscreen":   "Personal Care",
	"tissues":     "Personal Care",
}

type keywordEntry struct {
	words    []string
	category string
}

func kw(keyword, category string) keywordEntry {
	return keywordEntry{words: strings.Fields(keyword), category: category}
}

// Ordered with longer/more-specific keywords first. Keywords match whole
// words of the name.
var keywordMatches = []keywordEntry{
	kw("ice cream", "Frozen"),
	kw("frozen", "Frozen"),

	kw("chicken", "Meat"),
	kw("ground beef", "Meat"),
	kw("beef", "Meat"),
	kw("pork", "Meat"),
	kw("bacon", "Meat"),
	kw("steak", "Meat"),
	kw("pepperoni", "Meat"),
	kw("sausage", "Meat"),

	kw("salmon", "Seafood"),
	kw("fish", "Seafood"),
	kw("shrimp", "Seafood"),
	kw("seafood", "Seafood"),

	kw("peanut butter", "Pantry"),
	kw("coconut milk", "Pantry"),
	kw("olive oil", "Pantry"),
	kw("sauce", "Pantry"),
	kw("stock", "Pantry"),
	kw("soup", "Pantry"),
	kw("rice", "Pantry"),
	kw("pasta", "Pantry"),
	kw("noodle", "Pantry"),
	kw("lasagna", "Pantry"),
	kw("bean", "Pantry"),
	kw("barley", "Pantry"),
	kw("lentil", "Pantry"),
	kw("canned", "Pantry"),
	kw("spice", "Pantry"),
	kw("powder", "Pantry"),
	kw("seasoning", "Pantry"),

	kw("yogurt", "Dairy"),
	kw("cheese", "Dairy"),
	kw("milk", "Dairy"),
	kw("butter", "Dairy"),
	kw("cream", "Dairy"),
	kw("egg", "Dairy"),

	kw("berries", "Fruits"),
	kw("berry", "Fruits"),
	kw("fruit", "Fruits"),
	kw("apple", "Fruits"),
	kw("banana", "Fruits"),
	kw("melon", "Fruits"),
	kw("lemon", "Fruits"),

	kw("vegetable", "Vegetables"),
	kw("lettuce", "Vegetables"),
	kw("spinach", "Vegetables"),
	kw("kale", "Vegetables"),
	kw("potato", "Vegetables"),
	kw("tomato", "Vegetables"),
	kw("onion", "Vegetables"),
	kw("pepper", "Vegetables"),
	kw("carrot", "Vegetables"),
	kw("herb", "Vegetables"),
	kw("squash", "Vegetables"),

	kw("bread", "Bakery"),
	kw("bagel", "Bakery"),
	kw("tortilla", "Bakery"),
	kw("bun", "Bakery"),
	kw("croissant", "Bakery"),

	kw("juice", "Beverages"),
	kw("coffee", "Beverages"),
	kw("tea", "Beverages"),
	kw("soda", "Beverages"),
	kw("water", "Beverages"),
	kw("drink", "Beverages"),
	kw("cider", "Beverages"),

	kw("chip", "Snacks"),
	kw("cracker", "Snacks"),
	kw("cookie", "Snacks"),
	kw("candy", "Snacks"),
	kw("chocolate", "Snacks"),
	kw("snack", "Snacks"),
	kw("bar", "Snacks"),

	kw("paper towel", "Household"),
	kw("toilet paper", "Household"),
	kw("detergent", "Household"),
	kw("cleaning", "Household"),
	kw("sponge", "Household"),
	kw("container", "Household"),

	kw("shampoo", "Personal Care"),
	kw("toothpaste", "Personal Care"),
	kw("deodorant", "Personal Care"),
	kw("lotion", "Personal Care"),
}
