// Package summary computes read-only projections over lists and items.
// Nothing here is cached; callers recompute from the state they hold.
package summary

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"basket/internal/model"
)

// Split partitions items into not-completed and completed, keeping the
// relative order of each bucket.
func Split(items []model.Item) (active, completed []model.Item) {
	active = make([]model.Item, 0, len(items))
	completed = make([]model.Item, 0)
	for _, it := range items {
		if it.Completed {
			completed = append(completed, it)
			continue
		}
		active = append(active, it)
	}
	return active, completed
}

// EstimatedTotal sums estimated prices, counting items without a valid one
// as zero.
func EstimatedTotal(items []model.Item) float64 {
	total := decimal.Zero
	for _, it := range items {
		if it.EstimatedPrice == nil || !model.ValidAmount(*it.EstimatedPrice) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(*it.EstimatedPrice))
	}
	return total.Round(2).InexactFloat64()
}

func Completion(items []model.Item) (done, total int) {
	for _, it := range items {
		if it.Completed {
			done++
		}
	}
	return done, len(items)
}

// CompletionRatio is completed/total, or 0 for an empty list.
func CompletionRatio(items []model.Item) float64 {
	done, total := Completion(items)
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

type BudgetStatus struct {
	Set       bool
	Limit     float64
	Total     float64
	Remaining float64
	Over      bool
}

// Budget compares the estimated total of items with the configured budget.
// Without a valid budget only Total is filled in.
func Budget(settings model.Settings, items []model.Item) BudgetStatus {
	st := BudgetStatus{Total: EstimatedTotal(items)}
	if settings.Budget == nil || !model.ValidAmount(*settings.Budget) {
		return st
	}
	limit := decimal.NewFromFloat(*settings.Budget)
	st.Set = true
	st.Limit = *settings.Budget
	st.Remaining = limit.Sub(decimal.NewFromFloat(st.Total)).Round(2).InexactFloat64()
	st.Over = st.Total > st.Limit
	return st
}

type Expiry int

const (
	ExpiryNone Expiry = iota
	ExpiringSoon
	Expired
)

// ExpiringSoonDays is how far ahead, counting today, an expiry date is flagged.
const ExpiringSoonDays = 3

func (e Expiry) String() string {
	switch e {
	case ExpiringSoon:
		return "expiring soon"
	case Expired:
		return "expired"
	default:
		return ""
	}
}

// ExpiryOf flags an item by its expiry date relative to the calendar day of now.
func ExpiryOf(it model.Item, now time.Time) Expiry {
	if it.ExpiryDate == nil {
		return ExpiryNone
	}
	days := model.DateOf(now).DaysUntil(*it.ExpiryDate)
	switch {
	case days < 0:
		return Expired
	case days <= ExpiringSoonDays:
		return ExpiringSoon
	default:
		return ExpiryNone
	}
}

func CurrencySymbol(c model.Currency) string {
	switch c {
	case model.CurrencyLKR:
		return "Rs."
	case model.CurrencyINR:
		return "₹"
	case model.CurrencyEUR:
		return "€"
	default:
		return "$"
	}
}

func FormatAmount(c model.Currency, amount float64) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol(c), amount)
}
