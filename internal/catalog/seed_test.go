package catalog

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"basket/internal/model"
	"basket/internal/state"
)

var testNow = time.Date(2025, 4, 7, 10, 0, 0, 0, time.UTC)

func names(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestFromTemplate(t *testing.T) {
	tpl, ok := TemplateByID("weekly-essentials")
	if !ok {
		t.Fatal("template not found")
	}
	st := state.NewStore(state.Initial())
	s := st.DispatchAll(FromTemplate(tpl, testNow))

	if len(s.Lists) != 1 || s.Current == nil {
		t.Fatalf("expected one current list, got %d", len(s.Lists))
	}
	if s.Current.Name != "Weekly Essentials - 2025-04-07" || !s.Current.Template {
		t.Errorf("list = %q template=%v", s.Current.Name, s.Current.Template)
	}
	want := []string{"Milk", "Bread", "Eggs", "Bananas", "Chicken Breast", "Rice"}
	if diff := cmp.Diff(want, names(s.Current.Items)); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
	if s.Current.Items[0].Quantity != "1 gallon" || s.Current.Items[0].Priority != model.PriorityHigh {
		t.Errorf("first item = %+v", s.Current.Items[0])
	}
	seen := map[string]bool{}
	for _, it := range s.Current.Items {
		if seen[it.ID] {
			t.Fatalf("duplicate id %q", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestFromMealPlanDedupesIngredients(t *testing.T) {
	carbonara, _ := MealByName("pasta carbonara")
	pancakes, _ := MealByName("Pancakes")

	st := state.NewStore(state.Initial())
	s := st.DispatchAll(FromMealPlan([]Meal{carbonara, pancakes}, testNow))

	want := []string{"Pasta", "Eggs", "Bacon", "Parmesan Cheese", "Black Pepper", "Flour", "Milk", "Butter", "Maple Syrup", "Berries"}
	if diff := cmp.Diff(want, names(s.Current.Items)); diff != "" {
		t.Errorf("ingredients (-want +got):\n%s", diff)
	}
	if s.Current.Name != "Meal Plan - 2025-04-07" {
		t.Errorf("list name = %q", s.Current.Name)
	}
	if s.Current.Items[0].Note != noteMealPlan {
		t.Errorf("note = %q", s.Current.Items[0].Note)
	}
}

func TestFromMoodNeedsCurrentList(t *testing.T) {
	mood, ok := MoodByName("party time")
	if !ok {
		t.Fatal("mood not found")
	}

	empty := state.NewStore(state.Initial()).DispatchAll(FromMood(mood, testNow))
	if len(empty.Lists) != 0 {
		t.Errorf("mood items created lists: %+v", empty.Lists)
	}

	st := state.NewStore(state.Initial())
	st.Dispatch(state.NewCreateList("Party", false, testNow))
	s := st.DispatchAll(FromMood(mood, testNow))
	if diff := cmp.Diff(mood.Items, names(s.Current.Items)); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

func TestFromUtteranceRecordsHistory(t *testing.T) {
	st := state.NewStore(state.Initial())
	st.Dispatch(state.NewCreateList("Weekly", false, testNow))

	u, ok := ParseUtterance("buy 2 milk")
	if !ok {
		t.Fatal("utterance not parsed")
	}
	s := st.DispatchAll(FromUtterance(u, testNow))

	got := s.Current.Items[0]
	if got.Name != "Milk" || got.Quantity != "2" || got.Category != "Dairy" || got.Note != noteVoice {
		t.Errorf("item = %+v", got)
	}
	if diff := cmp.Diff([]string{"Milk"}, s.SearchHistory); diff != "" {
		t.Errorf("history (-want +got):\n%s", diff)
	}
}

func TestAddKeepsExplicitCategory(t *testing.T) {
	actions := Add(model.ItemFields{Name: "Milk", Category: "Beverages"}, testNow)
	add, ok := actions[0].(state.AddItem)
	if !ok {
		t.Fatalf("first action = %T", actions[0])
	}
	if add.Item.Category != "Beverages" {
		t.Errorf("category = %q", add.Item.Category)
	}
}

func TestSuggest(t *testing.T) {
	s := Suggest(time.Date(2025, time.October, 7, 0, 0, 0, 0, time.UTC)) // a Tuesday
	if diff := cmp.Diff([]string{"Pumpkin", "Halloween Candy", "Apple Cider"}, s.Seasonal); diff != "" {
		t.Errorf("seasonal (-want +got):\n%s", diff)
	}
	if len(s.ForToday) == 0 || s.ForToday[0] != "Taco Tuesday" {
		t.Errorf("for today = %v", s.ForToday)
	}
	if len(s.CommonPairs) != 4 {
		t.Errorf("pairs = %d", len(s.CommonPairs))
	}
}
