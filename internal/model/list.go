package model

import (
	"time"

	"github.com/google/uuid"
)

type List struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Items     []Item    `json:"items" yaml:"items"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	Template  bool      `json:"template,omitempty" yaml:"template,omitempty"`
	Emoji     string    `json:"emoji,omitempty" yaml:"emoji,omitempty"`
}

// NewList stamps a fresh id and createdAt and starts with no items.
func NewList(name string, template bool, now time.Time) List {
	return List{
		ID:        uuid.NewString(),
		Name:      name,
		Items:     []Item{},
		CreatedAt: now.UTC(),
		Template:  template,
	}
}

// Clone deep-copies the item sequence.
func (l List) Clone() List {
	out := l
	out.Items = make([]Item, len(l.Items))
	for i, it := range l.Items {
		out.Items[i] = it.Clone()
	}
	return out
}

// ItemIndex returns the position of the item with id, or -1.
func (l List) ItemIndex(id string) int {
	for i, it := range l.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
