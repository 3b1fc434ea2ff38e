package catalog

import (
	"fmt"
	"strings"
	"time"

	"basket/internal/model"
	"basket/internal/state"
)

const (
	noteVoice      = "Added by voice"
	noteMealPlan   = "From meal plan"
	noteMood       = "Mood suggestion"
	noteSuggestion = "Smart suggestion"
)

// Add returns the actions for adding one item to the current list and
// remembering its name. An empty category is guessed from the name.
func Add(f model.ItemFields, now time.Time) []state.Action {
	if strings.TrimSpace(f.Category) == "" {
		f.Category = Categorize(f.Name)
	}
	it := model.NewItem(f, now)
	return []state.Action{
		state.AddItem{Item: it},
		state.AddToSearchHistory{Name: it.Name},
	}
}

// FromTemplate creates a dated list marked as template-made and fills it.
func FromTemplate(t Template, now time.Time) []state.Action {
	name := fmt.Sprintf("%s - %s", t.Name, now.Format("2006-01-02"))
	actions := []state.Action{state.NewCreateList(name, true, now)}
	for _, ti := range t.Items {
		it := model.NewItem(model.ItemFields{
			Name:     ti.Name,
			Quantity: ti.Quantity,
			Category: ti.Category,
			Priority: ti.Priority,
			Note:     ti.Note,
		}, now)
		actions = append(actions, state.AddItem{Item: it})
	}
	return actions
}

// FromMealPlan creates a dated list holding each ingredient of meals once,
// in the order first seen.
func FromMealPlan(meals []Meal, now time.Time) []state.Action {
	actions := []state.Action{state.NewCreateList("Meal Plan - "+now.Format("2006-01-02"), false, now)}
	seen := map[string]struct{}{}
	for _, m := range meals {
		for _, ingredient := range m.Ingredients {
			if _, ok := seen[ingredient]; ok {
				continue
			}
			seen[ingredient] = struct{}{}
			actions = append(actions, state.AddItem{Item: seeded(ingredient, noteMealPlan, now)})
		}
	}
	return actions
}

// FromMood adds every item of m to the current list.
func FromMood(m Mood, now time.Time) []state.Action {
	actions := make([]state.Action, 0, len(m.Items))
	for _, name := range m.Items {
		actions = append(actions, state.AddItem{Item: seeded(name, noteMood, now)})
	}
	return actions
}

func FromUtterance(u Utterance, now time.Time) []state.Action {
	return Add(model.ItemFields{
		Name:     u.Name,
		Quantity: u.Quantity,
		Priority: model.PriorityMedium,
		Note:     noteVoice,
	}, now)
}

func FromSuggestion(name string, now time.Time) []state.Action {
	return Add(model.ItemFields{
		Name:     name,
		Priority: model.PriorityMedium,
		Note:     noteSuggestion,
	}, now)
}

func seeded(name, note string, now time.Time) model.Item {
	return model.NewItem(model.ItemFields{
		Name:     name,
		Category: Categorize(name),
		Priority: model.PriorityMedium,
		Note:     note,
	}, now)
}
