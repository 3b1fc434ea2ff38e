package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"basket/internal/config"
	"basket/internal/model"
	"basket/internal/summary"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	expiredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	soonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(fmt.Sprintf("No items yet. Press '%s' to add one.", m.cfg.Keys.Add))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderItems())
	}

	b.WriteString("\n")

	switch {
	case m.meta != nil:
		b.WriteString("Edit item (tab/shift+tab to move, enter to save/next, esc to cancel)")
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(m.renderMetaBox()))
		b.WriteString("\n")
		b.WriteString(m.input.View())
	case m.mode == modeAdd || m.mode == modeNewList:
		b.WriteString(m.input.View())
	default:
		b.WriteString(m.renderTotals())
	}

	b.WriteString("\n\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) renderHeader() string {
	s := m.app.State()
	if s.Current == nil {
		return titleStyle.Render("basket")
	}
	pos := 1
	for i, l := range s.Lists {
		if l.ID == s.Current.ID {
			pos = i + 1
			break
		}
	}
	done, total := summary.Completion(s.Current.Items)
	pct := int(summary.CompletionRatio(s.Current.Items)*100 + 0.5)
	return fmt.Sprintf("%s  %s",
		titleStyle.Render(fmt.Sprintf("%s (%d/%d)", s.Current.Name, pos, len(s.Lists))),
		mutedStyle.Render(fmt.Sprintf("%d/%d completed • %d%%", done, total, pct)))
}

func (m Model) renderItems() string {
	var b strings.Builder
	currency := m.app.State().Settings.Currency
	wroteCompleted := false

	for i, it := range m.rows {
		if i == 0 && !it.Completed {
			b.WriteString(sectionStyle.Render("To buy"))
			b.WriteString("\n")
		}
		if it.Completed && !wroteCompleted {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(sectionStyle.Render("Completed"))
			b.WriteString("\n")
			wroteCompleted = true
		}

		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = cursorStyle.Render(">")
		}
		checkbox := "[ ]"
		if it.Completed {
			checkbox = "[x]"
		}

		body := it.Name
		if it.Quantity != "" {
			body += " (" + it.Quantity + ")"
		}
		if it.Completed {
			body = doneStyle.Render(body)
		}
		line := fmt.Sprintf("%s %s %s", cursor, checkbox, body)

		extras := []string{mutedStyle.Render(it.Category)}
		if it.Priority == model.PriorityHigh {
			extras = append(extras, "!")
		}
		if it.EstimatedPrice != nil {
			extras = append(extras, summary.FormatAmount(currency, *it.EstimatedPrice))
		}
		if badge := expiryBadge(it, m.app.Now()); badge != "" {
			extras = append(extras, badge)
		}
		if it.IsEcoFriendly {
			extras = append(extras, "eco")
		}
		b.WriteString(line + "  " + strings.Join(extras, " "))
		b.WriteString("\n")
	}
	return b.String()
}

func expiryBadge(it model.Item, now time.Time) string {
	switch summary.ExpiryOf(it, now) {
	case summary.Expired:
		return expiredStyle.Render("expired")
	case summary.ExpiringSoon:
		return soonStyle.Render("expires " + it.ExpiryDate.String())
	default:
		return ""
	}
}

func (m Model) renderTotals() string {
	s := m.app.State()
	if s.Current == nil {
		return ""
	}
	b := summary.Budget(s.Settings, s.Current.Items)
	line := "Estimated total: " + summary.FormatAmount(s.Settings.Currency, b.Total)
	if !b.Set {
		return line
	}
	line += " • budget " + summary.FormatAmount(s.Settings.Currency, b.Limit)
	if b.Over {
		return line + " • " + expiredStyle.Render("over by "+summary.FormatAmount(s.Settings.Currency, -b.Remaining))
	}
	return line + " • " + summary.FormatAmount(s.Settings.Currency, b.Remaining) + " left"
}

func (m Model) renderMetaBox() string {
	if m.meta == nil {
		return ""
	}
	values := m.meta.values()
	var b strings.Builder
	for i, name := range metaFields() {
		prefix := " "
		if i == m.meta.index {
			prefix = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-26s : %s\n", prefix, name, emptyPlaceholder(values[i])))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s delete • %s edit • %s detail • %s/%s lists • %s new list • %s delete list • %s quit",
		k.Up, k.Down, k.Add, keyName(k.Toggle), k.Delete, k.Edit, k.Detail, k.PrevList, k.NextList, k.NewList, k.DeleteList, k.Quit)
}

func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func emptyPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return "(empty)"
	}
	return v
}
