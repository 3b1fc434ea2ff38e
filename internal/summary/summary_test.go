package summary

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"basket/internal/model"
	"basket/internal/state"
)

func priced(id string, price float64) model.Item {
	return model.Item{ID: id, Name: id, EstimatedPrice: &price}
}

func ids(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestSplitPreservesOrder(t *testing.T) {
	items := []model.Item{
		{ID: "1"}, {ID: "2", Completed: true}, {ID: "3"}, {ID: "4", Completed: true},
	}
	active, completed := Split(items)
	if diff := cmp.Diff([]string{"1", "3"}, ids(active)); diff != "" {
		t.Errorf("active (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"2", "4"}, ids(completed)); diff != "" {
		t.Errorf("completed (-want +got):\n%s", diff)
	}
}

func TestSplitAfterToggle(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := state.Reduce(state.Initial(), state.NewCreateList("Weekly", false, now))
	s = state.Reduce(s, state.AddItem{Item: model.Item{ID: "1"}})
	s = state.Reduce(s, state.AddItem{Item: model.Item{ID: "2", Completed: true}})

	s = state.Reduce(s, state.ToggleItem{ID: "1"})

	active, completed := Split(s.Current.Items)
	if len(active) != 0 {
		t.Errorf("active = %v, want empty", ids(active))
	}
	if diff := cmp.Diff([]string{"1", "2"}, ids(completed)); diff != "" {
		t.Errorf("completed (-want +got):\n%s", diff)
	}
}

func TestEstimatedTotal(t *testing.T) {
	items := []model.Item{priced("a", 0.1), priced("b", 0.2), {ID: "c"}, priced("d", 10)}
	if got := EstimatedTotal(items); got != 10.3 {
		t.Errorf("EstimatedTotal = %v, want 10.3", got)
	}
	if got := EstimatedTotal(nil); got != 0 {
		t.Errorf("EstimatedTotal(nil) = %v, want 0", got)
	}
}

func TestEstimatedTotalSkipsNonFinitePrices(t *testing.T) {
	items := []model.Item{priced("a", 2.5), priced("b", math.NaN()), priced("c", math.Inf(1)), priced("d", -4)}
	if got := EstimatedTotal(items); got != 2.5 {
		t.Errorf("EstimatedTotal = %v, want 2.5", got)
	}
}

func TestCompletionRatio(t *testing.T) {
	tests := []struct {
		name  string
		items []model.Item
		want  float64
	}{
		{"empty", nil, 0},
		{"none done", []model.Item{{}, {}}, 0},
		{"half", []model.Item{{Completed: true}, {}}, 0.5},
		{"all", []model.Item{{Completed: true}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionRatio(tt.items)
			if got != tt.want {
				t.Errorf("CompletionRatio = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("ratio %v out of [0,1]", got)
			}
		})
	}
}

func TestBudget(t *testing.T) {
	items := []model.Item{priced("a", 30), priced("b", 25.5)}

	none := Budget(model.DefaultSettings(), items)
	if none.Set || none.Total != 55.5 {
		t.Errorf("without budget: %+v", none)
	}

	limit := 50.0
	s := model.DefaultSettings()
	s.Budget = &limit
	over := Budget(s, items)
	want := BudgetStatus{Set: true, Limit: 50, Total: 55.5, Remaining: -5.5, Over: true}
	if diff := cmp.Diff(want, over); diff != "" {
		t.Errorf("budget (-want +got):\n%s", diff)
	}

	bad := math.NaN()
	s.Budget = &bad
	if got := Budget(s, items); got.Set || got.Total != 55.5 {
		t.Errorf("NaN budget: %+v", got)
	}
}

func TestExpiryOf(t *testing.T) {
	now := time.Date(2025, 6, 10, 18, 45, 0, 0, time.Local)
	day := func(d int) *model.Date {
		v := model.DateOf(now.AddDate(0, 0, d))
		return &v
	}
	tests := []struct {
		name   string
		expiry *model.Date
		want   Expiry
	}{
		{"no date", nil, ExpiryNone},
		{"yesterday", day(-1), Expired},
		{"long ago", day(-30), Expired},
		{"today", day(0), ExpiringSoon},
		{"in three days", day(3), ExpiringSoon},
		{"in four days", day(4), ExpiryNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpiryOf(model.Item{ExpiryDate: tt.expiry}, now)
			if got != tt.want {
				t.Errorf("ExpiryOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurrencySymbol(t *testing.T) {
	tests := map[model.Currency]string{
		model.CurrencyUSD: "$",
		model.CurrencyLKR: "Rs.",
		model.CurrencyINR: "₹",
		model.CurrencyEUR: "€",
		"GBP":             "$",
		"":                "$",
	}
	for code, want := range tests {
		if got := CurrencySymbol(code); got != want {
			t.Errorf("CurrencySymbol(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestCurrencyAfterSettingsPatch(t *testing.T) {
	s := state.Initial()
	dark := s.Settings.DarkMode
	eur := model.CurrencyEUR
	s = state.Reduce(s, state.UpdateSettings{Patch: state.SettingsPatch{Currency: &eur}})

	if got := CurrencySymbol(s.Settings.Currency); got != "€" {
		t.Errorf("symbol = %q, want €", got)
	}
	if s.Settings.DarkMode != dark {
		t.Error("darkMode changed")
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(model.CurrencyLKR, 1250); got != "Rs.1250.00" {
		t.Errorf("FormatAmount = %q", got)
	}
}
