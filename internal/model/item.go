package model

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps user input onto a Priority. Anything unrecognised is medium.
func ParsePriority(v string) Priority {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "low", "l", "1":
		return PriorityLow
	case "high", "h", "3":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

type Item struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Quantity       string    `json:"quantity" yaml:"quantity"`
	Category       string    `json:"category" yaml:"category"`
	Priority       Priority  `json:"priority" yaml:"priority"`
	Completed      bool      `json:"completed" yaml:"completed"`
	Photo          string    `json:"photo,omitempty" yaml:"photo,omitempty"`
	Note           string    `json:"note,omitempty" yaml:"note,omitempty"`
	EstimatedPrice *float64  `json:"estimatedPrice,omitempty" yaml:"estimatedPrice,omitempty"`
	ExpiryDate     *Date     `json:"expiryDate,omitempty" yaml:"expiryDate,omitempty"`
	IsEcoFriendly  bool      `json:"isEcoFriendly,omitempty" yaml:"isEcoFriendly,omitempty"`
	DateAdded      time.Time `json:"dateAdded" yaml:"dateAdded"`
}

// ItemFields carries what a producer knows about an item before it exists.
type ItemFields struct {
	Name           string
	Quantity       string
	Category       string
	Priority       Priority
	Photo          string
	Note           string
	EstimatedPrice *float64
	ExpiryDate     *Date
	IsEcoFriendly  bool
}

// ValidAmount reports whether v can be a price or budget: finite and not
// negative.
func ValidAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// NewItem stamps a fresh id and dateAdded. The item starts not completed.
func NewItem(f ItemFields, now time.Time) Item {
	priority := f.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	var price *float64
	if f.EstimatedPrice != nil && ValidAmount(*f.EstimatedPrice) {
		p := *f.EstimatedPrice
		price = &p
	}
	return Item{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(f.Name),
		Quantity:       strings.TrimSpace(f.Quantity),
		Category:       NormalizeCategory(f.Category),
		Priority:       priority,
		Photo:          f.Photo,
		Note:           f.Note,
		EstimatedPrice: price,
		ExpiryDate:     f.ExpiryDate,
		IsEcoFriendly:  f.IsEcoFriendly,
		DateAdded:      now.UTC(),
	}
}

// Clone returns a copy that shares no pointers with it.
func (it Item) Clone() Item {
	out := it
	if it.EstimatedPrice != nil {
		p := *it.EstimatedPrice
		out.EstimatedPrice = &p
	}
	if it.ExpiryDate != nil {
		d := *it.ExpiryDate
		out.ExpiryDate = &d
	}
	return out
}
