// Package state holds the grocery store's in-memory state and the pure
// transition function that every change goes through.
package state

import "basket/internal/model"

// MaxSearchHistory caps how many recently added names are remembered.
const MaxSearchHistory = 10

type State struct {
	Lists         []model.List
	Current       *model.List
	Settings      model.Settings
	SearchHistory []string
}

func Initial() State {
	return State{
		Lists:         []model.List{},
		Settings:      model.DefaultSettings(),
		SearchHistory: []string{},
	}
}

// FindList returns the list with id from the collection.
func (s State) FindList(id string) (model.List, bool) {
	for _, l := range s.Lists {
		if l.ID == id {
			return l, true
		}
	}
	return model.List{}, false
}

// FindItem looks an item up across every list.
func (s State) FindItem(id string) (model.Item, model.List, bool) {
	for _, l := range s.Lists {
		if i := l.ItemIndex(id); i >= 0 {
			return l.Items[i], l, true
		}
	}
	return model.Item{}, model.List{}, false
}

// CanDeleteList reports whether deleting a list would still leave one behind.
// The reducer deletes unconditionally; callers use this to keep at least one list.
func CanDeleteList(s State) bool {
	return len(s.Lists) > 1
}
