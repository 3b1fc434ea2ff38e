// Package catalog holds the constant reference data the app seeds lists from
// (templates, meal ideas, mood and seasonal suggestions) and turns it, or a
// spoken utterance, into store actions.
package catalog

import (
	"strings"

	"basket/internal/model"
)

type TemplateItem struct {
	Name     string
	Quantity string
	Category string
	Priority model.Priority
	Note     string
}

type Template struct {
	ID    string
	Name  string
	Icon  string
	Items []TemplateItem
}

var Templates = []Template{
	{
		ID:   "weekly-essentials",
		Name: "Weekly Essentials",
		Icon: "🥬",
		Items: []TemplateItem{
			{"Milk", "1 gallon", "Dairy", model.PriorityHigh, ""},
			{"Bread", "1 loaf", "Bakery", model.PriorityHigh, ""},
			{"Eggs", "1 dozen", "Dairy", model.PriorityHigh, ""},
			{"Bananas", "1 bunch", "Fruits", model.PriorityMedium, ""},
			{"Chicken Breast", "2 lbs", "Meat", model.PriorityHigh, ""},
			{"Rice", "1 bag", "Pantry", model.PriorityMedium, ""},
		},
	},
	{
		ID:   "monthly-stock-up",
		Name: "Monthly Stock-Up",
		Icon: "📦",
		Items: []TemplateItem{
			{"Toilet Paper", "12 pack", "Household", model.PriorityHigh, ""},
			{"Paper Towels", "6 pack", "Household", model.PriorityMedium, ""},
			{"Laundry Detergent", "1 bottle", "Household", model.PriorityHigh, ""},
			{"Pasta", "4 boxes", "Pantry", model.PriorityMedium, ""},
			{"Canned Tomatoes", "6 cans", "Pantry", model.PriorityMedium, ""},
			{"Olive Oil", "1 bottle", "Pantry", model.PriorityMedium, ""},
		},
	},
	{
		ID:   "comfort-food",
		Name: "Rainy Day Comfort Food",
		Icon: "🍲",
		Items: []TemplateItem{
			{"Ice Cream", "1 pint", "Frozen", model.PriorityHigh, "Chocolate chip"},
			{"Hot Chocolate", "1 box", "Beverages", model.PriorityMedium, ""},
			{"Cookies", "1 pack", "Snacks", model.PriorityMedium, ""},
			{"Soup", "4 cans", "Pantry", model.PriorityHigh, "Chicken noodle"},
			{"Cheese", "1 block", "Dairy", model.PriorityMedium, "Cheddar"},
			{"Crackers", "1 box", "Snacks", model.PriorityMedium, ""},
		},
	},
	{
		ID:   "healthy-living",
		Name: "Healthy Living",
		Icon: "🥗",
		Items: []TemplateItem{
			{"Spinach", "1 bag", "Vegetables", model.PriorityHigh, "Organic"},
			{"Avocados", "4 pieces", "Fruits", model.PriorityHigh, ""},
			{"Greek Yogurt", "1 container", "Dairy", model.PriorityHigh, "Plain"},
			{"Quinoa", "1 bag", "Pantry", model.PriorityMedium, ""},
			{"Salmon", "2 fillets", "Seafood", model.PriorityHigh, "Fresh"},
			{"Almonds", "1 bag", "Snacks", model.PriorityMedium, "Unsalted"},
		},
	},
}

func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

type Meal struct {
	Day         string
	Name        string
	Ingredients []string
}

var Meals = []Meal{
	{"Monday", "Pasta Carbonara", []string{"Pasta", "Eggs", "Bacon", "Parmesan Cheese", "Black Pepper"}},
	{"Monday", "Chicken Stir Fry", []string{"Chicken Breast", "Mixed Vegetables", "Soy Sauce", "Garlic", "Rice"}},
	{"Monday", "Vegetable Curry", []string{"Mixed Vegetables", "Coconut Milk", "Curry Powder", "Onions", "Rice"}},
	{"Tuesday", "Taco Tuesday", []string{"Ground Beef", "Tortillas", "Lettuce", "Tomatoes", "Cheese", "Sour Cream"}},
	{"Tuesday", "Fish & Chips", []string{"White Fish", "Potatoes", "Flour", "Oil", "Peas"}},
	{"Tuesday", "Vegetarian Tacos", []string{"Black Beans", "Tortillas", "Avocado", "Corn", "Lime"}},
	{"Wednesday", "Chicken Curry", []string{"Chicken", "Curry Powder", "Coconut Milk", "Onions", "Rice"}},
	{"Wednesday", "Spaghetti Bolognese", []string{"Spaghetti", "Ground Beef", "Tomato Sauce", "Onions", "Garlic"}},
	{"Wednesday", "Buddha Bowl", []string{"Quinoa", "Chickpeas", "Sweet Potato", "Spinach", "Tahini"}},
	{"Thursday", "Pizza Night", []string{"Pizza Base", "Tomato Sauce", "Mozzarella", "Pepperoni", "Mushrooms"}},
	{"Thursday", "Grilled Salmon", []string{"Salmon", "Asparagus", "Lemon", "Olive Oil", "Herbs"}},
	{"Thursday", "Lentil Soup", []string{"Red Lentils", "Vegetables", "Vegetable Stock", "Herbs", "Bread"}},
	{"Friday", "Fish Tacos", []string{"White Fish", "Tortillas", "Cabbage", "Lime", "Cilantro"}},
	{"Friday", "Beef Stir Fry", []string{"Beef Strips", "Broccoli", "Bell Peppers", "Soy Sauce", "Noodles"}},
	{"Friday", "Margherita Pizza", []string{"Pizza Base", "Tomato Sauce", "Fresh Mozzarella", "Basil"}},
	{"Saturday", "BBQ Ribs", []string{"Pork Ribs", "BBQ Sauce", "Coleslaw", "Corn", "Potatoes"}},
	{"Saturday", "Paella", []string{"Rice", "Seafood Mix", "Saffron", "Bell Peppers", "Peas"}},
	{"Saturday", "Mushroom Risotto", []string{"Arborio Rice", "Mushrooms", "Vegetable Stock", "Parmesan", "Wine"}},
	{"Sunday", "Roast Chicken", []string{"Whole Chicken", "Potatoes", "Carrots", "Herbs", "Gravy"}},
	{"Sunday", "Pancakes", []string{"Flour", "Eggs", "Milk", "Butter", "Maple Syrup", "Berries"}},
	{"Sunday", "Vegetable Lasagna", []string{"Lasagna Sheets", "Mixed Vegetables", "Cheese", "Tomato Sauce"}},
}

// MealByName matches case-insensitively.
func MealByName(name string) (Meal, bool) {
	for _, m := range Meals {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, true
		}
	}
	return Meal{}, false
}

type Mood struct {
	Name        string
	Icon        string
	Description string
	Items       []string
}

var Moods = []Mood{
	{"Feeling Lazy", "😴", "Quick 3-ingredient meals", []string{"Instant Noodles", "Frozen Pizza", "Microwave Rice", "Canned Soup", "Bread", "Peanut Butter"}},
	{"Want Comfort Food", "🤗", "Cozy, warm meals", []string{"Hot Chocolate", "Soup", "Mac & Cheese", "Ice Cream", "Cookies", "Warm Bread"}},
	{"Feeling Healthy", "💪", "Nutritious choices", []string{"Spinach", "Quinoa", "Avocado", "Greek Yogurt", "Berries", "Nuts", "Salmon"}},
	{"Need Energy", "⚡", "Power-packed foods", []string{"Bananas", "Energy Bars", "Coffee", "Dark Chocolate", "Oats", "Almonds"}},
	{"Romantic Dinner", "💕", "Special occasion meals", []string{"Candles", "Pasta", "Parmesan", "Fresh Herbs", "Strawberries", "Chocolate", "Cheese Plate", "Sparkling Drink"}},
	{"Party Time", "🎉", "Crowd-pleasing snacks", []string{"Chips", "Dips", "Soda", "Pizza", "Popcorn", "Candy", "Beer"}},
	{"Rainy Day", "🌧️", "Warm, cozy foods", []string{"Tea", "Soup", "Crackers", "Honey", "Ginger", "Lemon", "Blanket Snacks"}},
	{"Summer Vibes", "☀️", "Fresh, light foods", []string{"Watermelon", "Ice Cream", "Salad", "Lemonade", "Grapes", "Cucumber", "Mint"}},
}

// MoodByName matches case-insensitively.
func MoodByName(name string) (Mood, bool) {
	for _, m := range Moods {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, true
		}
	}
	return Mood{}, false
}
