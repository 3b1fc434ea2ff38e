package state

import (
	"time"

	"basket/internal/model"
)

// Action is one of the variants declared in this file. The unexported method
// keeps the set closed.
type Action interface {
	action()
}

type SetLists struct {
	Lists []model.List
}

// SetCurrentList points the current list at List. A nil List clears it.
type SetCurrentList struct {
	List *model.List
}

type CreateList struct {
	List model.List
}

type DeleteList struct {
	ID string
}

type AddItem struct {
	Item model.Item
}

type UpdateItem struct {
	ID    string
	Patch ItemPatch
}

type DeleteItem struct {
	ID string
}

type ToggleItem struct {
	ID string
}

type UpdateSettings struct {
	Patch SettingsPatch
}

type AddToSearchHistory struct {
	Name string
}

func (SetLists) action()           {}
func (SetCurrentList) action()     {}
func (CreateList) action()         {}
func (DeleteList) action()         {}
func (AddItem) action()            {}
func (UpdateItem) action()         {}
func (DeleteItem) action()         {}
func (ToggleItem) action()         {}
func (UpdateSettings) action()     {}
func (AddToSearchHistory) action() {}

// NewCreateList builds a CreateList whose list already carries its id and
// creation time, so Reduce itself stays deterministic.
func NewCreateList(name string, template bool, now time.Time) CreateList {
	return CreateList{List: model.NewList(name, template, now)}
}

// Select returns the action that makes l current.
func Select(l model.List) SetCurrentList {
	return SetCurrentList{List: &l}
}
