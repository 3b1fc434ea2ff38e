package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"basket/internal/app"
	"basket/internal/catalog"
	"basket/internal/config"
	"basket/internal/model"
	"basket/internal/state"
	"basket/internal/summary"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeNewList
	modeMetadata
)

type metaState struct {
	itemID   string
	name     string
	quantity string
	category string
	priority string
	price    string
	expiry   string
	eco      string
	note     string
	index    int
}

type Model struct {
	app        *app.App
	cfg        config.Config
	rows       []model.Item
	cursor     int
	mode       mode
	input      textinput.Model
	status     string
	confirmDel bool
	pendingDel *model.Item
	pendingLst *model.List
	meta       *metaState
}

// New builds the list view over a.
func New(a *app.App, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. buy 2 cartons of milk"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		app:    a,
		cfg:    cfg,
		input:  ti,
		mode:   modeList,
		status: fmt.Sprintf("Press '%s' to add, space to toggle, '%s' to delete.", cfg.Keys.Add, cfg.Keys.Delete),
	}
	m.refresh()
	return m
}

func Run(a *app.App, cfg config.Config) error {
	program := tea.NewProgram(New(a, cfg))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.meta != nil {
			return m.updateMetadataMode(msg.String(), msg)
		}
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

// refresh rebuilds the visible rows from the store: active items first, then
// completed ones.
func (m *Model) refresh() {
	m.rows = nil
	if cur, err := m.app.Current(); err == nil {
		active, completed := summary.Split(cur.Items)
		m.rows = append(active, completed...)
	}
	m.cursor = clampCursor(m.cursor, len(m.rows))
}

func (m *Model) dispatch(actions ...state.Action) {
	m.app.Dispatch(actions...)
	m.refresh()
}

func (m *Model) selectRow(id string) {
	for i, it := range m.rows {
		if it.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.mode {
	case modeAdd:
		return m.updateAddMode(key, msg)
	case modeNewList:
		return m.updateNewListMode(key, msg)
	}
	return m.updateListMode(key)
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		return m.leaveInput("Cancelled"), nil
	case m.cfg.Keys.Confirm:
		u, ok := catalog.ParseUtterance(m.input.Value())
		if !ok {
			m.status = "Item name cannot be empty"
			return m, nil
		}
		actions := catalog.FromUtterance(u, m.app.Now())
		m.dispatch(actions...)
		m.selectRow(actions[0].(state.AddItem).Item.ID)
		m = m.leaveInput(fmt.Sprintf("Added %s", u.Name))
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateNewListMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		return m.leaveInput("Cancelled"), nil
	case m.cfg.Keys.Confirm:
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.status = "List name cannot be empty"
			return m, nil
		}
		m.dispatch(state.NewCreateList(name, false, m.app.Now()))
		m.cursor = 0
		return m.leaveInput(fmt.Sprintf("Created list %q", name)), nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) enterInput(md mode, placeholder, status string) Model {
	m.mode = md
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.Focus()
	m.status = status
	return m
}

func (m Model) leaveInput(status string) Model {
	m.input.SetValue("")
	m.input.Blur()
	m.mode = modeList
	m.status = status
	return m
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if len(m.rows) == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor+1, len(m.rows))
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.rows))
		}
	case m.cfg.Keys.Add:
		return m.enterInput(modeAdd, "e.g. buy 2 cartons of milk", "Add mode: type an item and press Enter"), nil
	case m.cfg.Keys.NewList:
		return m.enterInput(modeNewList, "List name", "New list: type a name and press Enter"), nil
	case m.cfg.Keys.Toggle:
		if len(m.rows) == 0 {
			return m, nil
		}
		it := m.rows[m.cursor]
		m.dispatch(state.ToggleItem{ID: it.ID})
		if it.Completed {
			m.status = fmt.Sprintf("%s back on the list", it.Name)
		} else {
			m.status = fmt.Sprintf("%s bought", it.Name)
		}
	case m.cfg.Keys.Delete:
		if len(m.rows) == 0 {
			return m, nil
		}
		it := m.rows[m.cursor]
		m.confirmDel = true
		m.pendingDel = &it
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", it.Name)
	case m.cfg.Keys.DeleteList:
		cur, err := m.app.Current()
		if err != nil {
			m.status = "No list selected"
			return m, nil
		}
		if !state.CanDeleteList(m.app.State()) {
			m.status = "Cannot delete the only list"
			return m, nil
		}
		m.confirmDel = true
		m.pendingLst = &cur
		m.status = fmt.Sprintf("Delete list \"%s\" and its %d items? y/n", cur.Name, len(cur.Items))
	case m.cfg.Keys.NextList:
		return m.cycleList(1), nil
	case m.cfg.Keys.PrevList:
		return m.cycleList(-1), nil
	case m.cfg.Keys.Detail:
		if len(m.rows) == 0 {
			m.status = "No items"
			return m, nil
		}
		m.status = m.detailLine(m.rows[m.cursor])
	case m.cfg.Keys.Edit:
		if len(m.rows) == 0 {
			m.status = "No items to edit"
			return m, nil
		}
		return m.startMetadataEdit(m.rows[m.cursor])
	}
	return m, nil
}

func (m Model) cycleList(step int) Model {
	s := m.app.State()
	if len(s.Lists) < 2 {
		m.status = "Only one list"
		return m
	}
	idx := 0
	if s.Current != nil {
		for i, l := range s.Lists {
			if l.ID == s.Current.ID {
				idx = i
				break
			}
		}
	}
	next := s.Lists[wrapIndex(idx+step, len(s.Lists))]
	m.dispatch(state.Select(next))
	m.cursor = 0
	m.status = fmt.Sprintf("Switched to %q", next.Name)
	return m
}

func (m Model) detailLine(it model.Item) string {
	info := fmt.Sprintf("%s • %s • %s • %s", it.Name, it.Category, it.Priority, humanDone(it.Completed))
	if it.Quantity != "" {
		info += " • qty:" + it.Quantity
	}
	if it.EstimatedPrice != nil {
		info += " • " + summary.FormatAmount(m.app.State().Settings.Currency, *it.EstimatedPrice)
	}
	if it.ExpiryDate != nil {
		info += " • expires:" + it.ExpiryDate.String()
	}
	if it.IsEcoFriendly {
		info += " • eco"
	}
	if it.Note != "" {
		info += " • " + it.Note
	}
	info += " • added " + it.DateAdded.Local().Format("2006-01-02")
	return info
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel:
		m.status = "Delete cancelled"
	case "y", "Y":
		switch {
		case m.pendingDel != nil:
			m.dispatch(state.DeleteItem{ID: m.pendingDel.ID})
			m.status = fmt.Sprintf("Deleted %s", m.pendingDel.Name)
		case m.pendingLst != nil:
			if _, err := m.app.DeleteList(m.pendingLst.ID); err != nil {
				m.status = fmt.Sprintf("delete failed: %v", err)
			} else {
				m.refresh()
				m.cursor = 0
				m.status = fmt.Sprintf("Deleted list %s", m.pendingLst.Name)
			}
		default:
			m.status = "Nothing to delete"
		}
	default:
		return m, nil
	}
	m.confirmDel = false
	m.pendingDel = nil
	m.pendingLst = nil
	return m, nil
}

func (m Model) startMetadataEdit(it model.Item) (tea.Model, tea.Cmd) {
	m.meta = &metaState{
		itemID:   it.ID,
		name:     it.Name,
		quantity: it.Quantity,
		category: it.Category,
		priority: string(it.Priority),
		eco:      boolToYN(it.IsEcoFriendly),
		note:     it.Note,
	}
	if it.EstimatedPrice != nil {
		m.meta.price = strconv.FormatFloat(*it.EstimatedPrice, 'f', -1, 64)
	}
	if it.ExpiryDate != nil {
		m.meta.expiry = it.ExpiryDate.String()
	}
	m.input.SetValue(m.meta.currentValue())
	m.input.Placeholder = m.meta.currentLabel()
	m.input.Focus()
	m.mode = modeMetadata
	m.status = "Edit item: tab/shift+tab to move, enter to save/next, esc to cancel"
	return m, nil
}

func (m Model) updateMetadataMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.meta = nil
		m.mode = modeList
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case "tab", "down":
		m.meta.setCurrentValue(m.input.Value())
		m.meta.index = wrapIndex(m.meta.index+1, len(metaFields()))
		m.input.SetValue(m.meta.currentValue())
		m.input.Placeholder = m.meta.currentLabel()
		m.status = m.metaPrompt()
		return m, nil
	case "shift+tab", "up":
		m.meta.setCurrentValue(m.input.Value())
		m.meta.index = wrapIndex(m.meta.index-1, len(metaFields()))
		m.input.SetValue(m.meta.currentValue())
		m.input.Placeholder = m.meta.currentLabel()
		m.status = m.metaPrompt()
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.meta.setCurrentValue(m.input.Value())
		if m.meta.index >= len(metaFields())-1 {
			return m.saveMetadata()
		}
		m.meta.index++
		m.input.SetValue(m.meta.currentValue())
		m.input.Placeholder = m.meta.currentLabel()
		m.status = m.metaPrompt()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) saveMetadata() (tea.Model, tea.Cmd) {
	patch, err := m.meta.patch()
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	id := m.meta.itemID
	m.dispatch(state.UpdateItem{ID: id, Patch: patch})
	m.selectRow(id)

	m.meta = nil
	m.mode = modeList
	m.input.Blur()
	m.status = "Item saved"
	return m, nil
}

// patch turns the edited text fields into an ItemPatch. Empty optional fields
// are cleared.
func (ms metaState) patch() (state.ItemPatch, error) {
	var p state.ItemPatch

	name := strings.TrimSpace(ms.name)
	if name == "" {
		return p, fmt.Errorf("name cannot be empty")
	}
	qty := strings.TrimSpace(ms.quantity)
	cat := model.NormalizeCategory(ms.category)
	pr := model.ParsePriority(ms.priority)
	p.Name, p.Quantity, p.Category, p.Priority = &name, &qty, &cat, &pr

	if v := strings.TrimSpace(ms.price); v == "" {
		p.EstimatedPrice = state.Clear[float64]()
	} else {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || !model.ValidAmount(price) {
			return p, fmt.Errorf("price invalid: %q", v)
		}
		p.EstimatedPrice = state.Set(price)
	}

	if v := strings.TrimSpace(ms.expiry); v == "" {
		p.ExpiryDate = state.Clear[model.Date]()
	} else {
		d, err := model.ParseDate(v)
		if err != nil {
			return p, fmt.Errorf("expiry date invalid: %v", err)
		}
		p.ExpiryDate = state.Set(d)
	}

	p.IsEcoFriendly = state.Set(parseYN(ms.eco))
	if v := strings.TrimSpace(ms.note); v == "" {
		p.Note = state.Clear[string]()
	} else {
		p.Note = state.Set(v)
	}
	return p, nil
}

func metaFields() []string {
	return []string{"name", "quantity", "category", "priority (low/medium/high)", "price", "expiry (YYYY-MM-DD)", "eco-friendly (y/n)", "note"}
}

func (ms metaState) currentLabel() string {
	return metaFields()[ms.index]
}

func (ms metaState) values() []string {
	return []string{ms.name, ms.quantity, ms.category, ms.priority, ms.price, ms.expiry, ms.eco, ms.note}
}

func (ms metaState) currentValue() string {
	return ms.values()[ms.index]
}

func (ms *metaState) setCurrentValue(v string) {
	switch ms.index {
	case 0:
		ms.name = v
	case 1:
		ms.quantity = v
	case 2:
		ms.category = v
	case 3:
		ms.priority = v
	case 4:
		ms.price = v
	case 5:
		ms.expiry = v
	case 6:
		ms.eco = v
	case 7:
		ms.note = v
	}
}

func (m Model) metaPrompt() string {
	if m.meta == nil {
		return ""
	}
	return fmt.Sprintf("Editing %s (field %d of %d). Enter to advance, Esc to cancel, tab to move.",
		m.meta.currentLabel(), m.meta.index+1, len(metaFields()))
}

func parseYN(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "y" || v == "yes" || v == "true" || v == "1"
}

func boolToYN(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func humanDone(done bool) string {
	if done {
		return "bought"
	}
	return "to buy"
}
