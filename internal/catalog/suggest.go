package catalog

import "time"

type Pair struct {
	Main        string
	Suggestions []string
}

type Suggestions struct {
	Seasonal    []string
	ForToday    []string
	CommonPairs []Pair
}

var seasonalItems = map[time.Month][]string{
	time.January:   {"Oranges", "Winter Squash", "Hot Chocolate"},
	time.February:  {"Strawberries", "Valentine Treats", "Heart-shaped cookies"},
	time.March:     {"Spring Vegetables", "Fresh Herbs", "Asparagus"},
	time.April:     {"Easter Ham", "Spring Onions", "Fresh Peas"},
	time.May:       {"Strawberries", "Spring Lettuce", "Mother's Day Flowers"},
	time.June:      {"Summer Fruits", "BBQ Supplies", "Ice Cream"},
	time.July:      {"Watermelon", "Corn on the Cob", "Grilling Meat"},
	time.August:    {"Peaches", "Tomatoes", "Summer Squash"},
	time.September: {"Apples", "Back to School Snacks", "Pumpkin"},
	time.October:   {"Pumpkin", "Halloween Candy", "Apple Cider"},
	time.November:  {"Turkey", "Cranberries", "Sweet Potatoes"},
	time.December:  {"Holiday Baking", "Eggnog", "Christmas Ham"},
}

var weekdayItems = map[time.Weekday][]string{
	time.Sunday:    {"Sunday Brunch Items", "Pancake Mix", "Fresh Fruit"},
	time.Monday:    {"Meal Prep Containers", "Chicken Breast", "Rice"},
	time.Tuesday:   {"Taco Tuesday", "Ground Beef", "Tortillas"},
	time.Wednesday: {"Midweek Snacks", "Energy Bars", "Coffee"},
	time.Thursday:  {"Weekend Prep", "Pizza Ingredients", "Cool Drinks"},
	time.Friday:    {"Date Night", "Wine", "Fancy Cheese"},
	time.Saturday:  {"Weekend Treats", "Ice Cream", "Movie Snacks"},
}

var commonPairs = []Pair{
	{"Milk", []string{"Cereal", "Cookies", "Coffee"}},
	{"Bread", []string{"Butter", "Jam", "Peanut Butter"}},
	{"Pasta", []string{"Tomato Sauce", "Parmesan Cheese", "Garlic"}},
	{"Chicken", []string{"Rice", "Vegetables", "Seasoning"}},
}

// Suggest returns what to offer on the day now falls on.
func Suggest(now time.Time) Suggestions {
	return Suggestions{
		Seasonal:    seasonalItems[now.Month()],
		ForToday:    weekdayItems[now.Weekday()],
		CommonPairs: commonPairs,
	}
}
