package state

import (
	"slices"

	"basket/internal/model"
)

// Reduce returns the state that results from applying a to s. It never
// modifies anything reachable from s: every collection that changes is
// rebuilt. Actions that reference a missing list or item, and item actions
// arriving while no list is current, return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetLists:
		s.Lists = cloneLists(a.Lists)
		return s
	case SetCurrentList:
		if a.List == nil {
			s.Current = nil
			return s
		}
		cur := a.List.Clone()
		s.Current = &cur
		return s
	case CreateList:
		l := a.List.Clone()
		s.Lists = append(slices.Clone(s.Lists), l)
		s.Current = &l
		return s
	case DeleteList:
		return deleteList(s, a.ID)
	case AddItem:
		return editCurrent(s, func(items []model.Item) ([]model.Item, bool) {
			return append(slices.Clone(items), a.Item.Clone()), true
		})
	case UpdateItem:
		return editItem(s, a.ID, a.Patch.Apply)
	case ToggleItem:
		return editItem(s, a.ID, func(it model.Item) model.Item {
			it.Completed = !it.Completed
			return it
		})
	case DeleteItem:
		return editCurrent(s, func(items []model.Item) ([]model.Item, bool) {
			i := slices.IndexFunc(items, func(it model.Item) bool { return it.ID == a.ID })
			if i < 0 {
				return items, false
			}
			return slices.Delete(slices.Clone(items), i, i+1), true
		})
	case UpdateSettings:
		s.Settings = a.Patch.Apply(s.Settings)
		return s
	case AddToSearchHistory:
		s.SearchHistory = pushHistory(s.SearchHistory, a.Name)
		return s
	default:
		return s
	}
}

func deleteList(s State, id string) State {
	if !slices.ContainsFunc(s.Lists, func(l model.List) bool { return l.ID == id }) {
		return s
	}
	remaining := make([]model.List, 0, len(s.Lists)-1)
	for _, l := range s.Lists {
		if l.ID != id {
			remaining = append(remaining, l)
		}
	}
	s.Lists = remaining
	if s.Current != nil && s.Current.ID == id {
		if len(remaining) > 0 {
			first := remaining[0]
			s.Current = &first
		} else {
			s.Current = nil
		}
	}
	return s
}

func editItem(s State, id string, fn func(model.Item) model.Item) State {
	return editCurrent(s, func(items []model.Item) ([]model.Item, bool) {
		i := slices.IndexFunc(items, func(it model.Item) bool { return it.ID == id })
		if i < 0 {
			return items, false
		}
		out := slices.Clone(items)
		out[i] = fn(items[i])
		return out, true
	})
}

// editCurrent rewrites the current list's items and writes the new list value
// to both Current and its entry in Lists.
func editCurrent(s State, fn func([]model.Item) ([]model.Item, bool)) State {
	if s.Current == nil {
		return s
	}
	items, changed := fn(s.Current.Items)
	if !changed {
		return s
	}
	next := *s.Current
	next.Items = items

	lists := make([]model.List, len(s.Lists))
	for i, l := range s.Lists {
		if l.ID == next.ID {
			lists[i] = next
			continue
		}
		lists[i] = l
	}
	s.Lists = lists
	s.Current = &next
	return s
}

func pushHistory(history []string, name string) []string {
	out := make([]string, 0, min(len(history)+1, MaxSearchHistory))
	out = append(out, name)
	for _, h := range history {
		if len(out) == MaxSearchHistory {
			break
		}
		if h == name {
			continue
		}
		out = append(out, h)
	}
	return out
}

func cloneLists(lists []model.List) []model.List {
	out := make([]model.List, len(lists))
	for i, l := range lists {
		out[i] = l.Clone()
	}
	return out
}
