package state

import (
	"slices"

	"basket/internal/model"
)

type fieldOp uint8

const (
	opKeep fieldOp = iota
	opSet
	opClear
)

// Field is a patch slot for an optional item field. The zero value leaves the
// field alone; Set overrides it and Clear removes it.
type Field[T any] struct {
	op    fieldOp
	value T
}

func Set[T any](v T) Field[T] {
	return Field[T]{op: opSet, value: v}
}

func Clear[T any]() Field[T] {
	return Field[T]{op: opClear}
}

func (f Field[T]) IsSet() bool   { return f.op == opSet }
func (f Field[T]) IsClear() bool { return f.op == opClear }

func (f Field[T]) apply(dst *T) {
	switch f.op {
	case opSet:
		*dst = f.value
	case opClear:
		var zero T
		*dst = zero
	}
}

func (f Field[T]) applyPtr(dst **T) {
	switch f.op {
	case opSet:
		v := f.value
		*dst = &v
	case opClear:
		*dst = nil
	}
}

// ItemPatch lists the item fields an UpdateItem may touch. Required fields can
// only be overridden; optional ones can also be cleared. id and dateAdded are
// not patchable.
type ItemPatch struct {
	Name      *string
	Quantity  *string
	Category  *string
	Priority  *model.Priority
	Completed *bool

	Photo          Field[string]
	Note           Field[string]
	EstimatedPrice Field[float64]
	ExpiryDate     Field[model.Date]
	IsEcoFriendly  Field[bool]
}

// Apply returns it with the patch merged in.
func (p ItemPatch) Apply(it model.Item) model.Item {
	out := it.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Quantity != nil {
		out.Quantity = *p.Quantity
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Completed != nil {
		out.Completed = *p.Completed
	}
	p.Photo.apply(&out.Photo)
	p.Note.apply(&out.Note)
	p.EstimatedPrice.applyPtr(&out.EstimatedPrice)
	p.ExpiryDate.applyPtr(&out.ExpiryDate)
	p.IsEcoFriendly.apply(&out.IsEcoFriendly)
	return out
}

// SettingsPatch overrides the non-nil fields of Settings. It cannot unset
// anything; a nil field always means "leave as is".
type SettingsPatch struct {
	DarkMode            *bool           `json:"darkMode"`
	StoreMode           *bool           `json:"storeMode"`
	Notifications       *bool           `json:"notifications"`
	DefaultCategory     *string         `json:"defaultCategory"`
	Budget              *float64        `json:"budget"`
	VoiceEnabled        *bool           `json:"voiceEnabled"`
	Currency            *model.Currency `json:"currency"`
	DietaryPreferences  *[]string       `json:"dietaryPreferences"`
	SustainabilityMode  *bool           `json:"sustainabilityMode"`
	GamificationEnabled *bool           `json:"gamificationEnabled"`
}

func (p SettingsPatch) Apply(s model.Settings) model.Settings {
	out := s
	out.DietaryPreferences = slices.Clone(s.DietaryPreferences)
	if s.Budget != nil {
		b := *s.Budget
		out.Budget = &b
	}
	if p.DarkMode != nil {
		out.DarkMode = *p.DarkMode
	}
	if p.StoreMode != nil {
		out.StoreMode = *p.StoreMode
	}
	if p.Notifications != nil {
		out.Notifications = *p.Notifications
	}
	if p.DefaultCategory != nil {
		out.DefaultCategory = *p.DefaultCategory
	}
	if p.Budget != nil {
		b := *p.Budget
		out.Budget = &b
	}
	if p.VoiceEnabled != nil {
		out.VoiceEnabled = *p.VoiceEnabled
	}
	if p.Currency != nil {
		out.Currency = *p.Currency
	}
	if p.DietaryPreferences != nil {
		out.DietaryPreferences = dedupe(*p.DietaryPreferences)
	}
	if p.SustainabilityMode != nil {
		out.SustainabilityMode = *p.SustainabilityMode
	}
	if p.GamificationEnabled != nil {
		out.GamificationEnabled = *p.GamificationEnabled
	}
	return out
}

// dedupe keeps the first occurrence of each preference.
func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
