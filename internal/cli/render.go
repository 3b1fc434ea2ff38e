package cli

import (
	"strings"
	"time"

	"basket/internal/model"
	"basket/internal/summary"
)

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func itemLine(it model.Item, currency model.Currency, now time.Time) string {
	check := "[ ]"
	if it.Completed {
		check = "[x]"
	}
	parts := []string{it.Name}
	if it.Quantity != "" {
		parts = append(parts, it.Quantity)
	}
	parts = append(parts, it.Category, string(it.Priority))
	if it.EstimatedPrice != nil {
		parts = append(parts, summary.FormatAmount(currency, *it.EstimatedPrice))
	}
	if it.ExpiryDate != nil {
		exp := "expires " + it.ExpiryDate.String()
		if flag := summary.ExpiryOf(it, now); flag != summary.ExpiryNone {
			exp += " (" + flag.String() + ")"
		}
		parts = append(parts, exp)
	}
	if it.IsEcoFriendly {
		parts = append(parts, "eco")
	}
	line := shortID(it.ID) + " " + check + " " + strings.Join(parts, " · ")
	if it.Note != "" {
		line += "  # " + it.Note
	}
	return line
}

func budgetLine(settings model.Settings, items []model.Item) string {
	b := summary.Budget(settings, items)
	line := "Total " + summary.FormatAmount(settings.Currency, b.Total)
	if !b.Set {
		return line
	}
	line += " · Budget " + summary.FormatAmount(settings.Currency, b.Limit)
	if b.Over {
		return line + " · Over by " + summary.FormatAmount(settings.Currency, -b.Remaining)
	}
	return line + " · Remaining " + summary.FormatAmount(settings.Currency, b.Remaining)
}
