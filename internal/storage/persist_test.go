package storage

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"basket/internal/model"
	"basket/internal/state"
)

var testNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T, kv KV) (*state.Store, *Persister) {
	t.Helper()
	p := NewPersister(kv, quietLogger())
	st := state.NewStore(p.Load())
	st.Subscribe(p.Observe)
	return st, p
}

func TestLoadEmptyMediumUsesDefaults(t *testing.T) {
	p := NewPersister(NewMemory(), quietLogger())
	s := p.Load()

	if diff := cmp.Diff(state.Initial(), s); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSelectsFirstList(t *testing.T) {
	kv := NewMemory()
	a := model.NewList("A", false, testNow)
	b := model.NewList("B", false, testNow)
	data, _ := json.Marshal([]model.List{a, b})
	kv.Set(KeyLists, data)

	s := NewPersister(kv, quietLogger()).Load()

	if len(s.Lists) != 2 {
		t.Fatalf("len(lists) = %d, want 2", len(s.Lists))
	}
	if s.Current == nil || s.Current.ID != a.ID {
		t.Errorf("current = %+v, want %q", s.Current, a.ID)
	}
}

func TestLoadEmptyListCollectionLeavesNoCurrent(t *testing.T) {
	kv := NewMemory()
	kv.Set(KeyLists, []byte(`[]`))

	s := NewPersister(kv, quietLogger()).Load()
	if s.Current != nil || len(s.Lists) != 0 {
		t.Errorf("got lists=%d current=%v", len(s.Lists), s.Current)
	}
}

func TestLoadMergesSettingsOverDefaults(t *testing.T) {
	kv := NewMemory()
	kv.Set(KeySettings, []byte(`{"darkMode":true,"currency":"EUR","budget":null}`))

	s := NewPersister(kv, quietLogger()).Load()

	want := model.DefaultSettings()
	want.DarkMode = true
	want.Currency = model.CurrencyEUR
	if diff := cmp.Diff(want, s.Settings); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsRoundTripKeepsNewDefaults(t *testing.T) {
	saved := model.DefaultSettings()
	saved.StoreMode = true
	data, err := json.Marshal(saved)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Simulate a blob written before gamificationEnabled and notifications existed.
	var blob map[string]any
	json.Unmarshal(data, &blob)
	delete(blob, "gamificationEnabled")
	delete(blob, "notifications")
	data, _ = json.Marshal(blob)

	kv := NewMemory()
	kv.Set(KeySettings, data)
	s := NewPersister(kv, quietLogger()).Load()

	if !s.Settings.GamificationEnabled || !s.Settings.Notifications {
		t.Errorf("absent fields did not keep defaults: %+v", s.Settings)
	}
	if !s.Settings.StoreMode {
		t.Error("stored field lost")
	}
}

func TestLoadMalformedSliceFallsBackAlone(t *testing.T) {
	kv := NewMemory()
	kv.Set(KeyLists, []byte(`{not json`))
	kv.Set(KeySettings, []byte(`{"currency":"INR"}`))
	kv.Set(KeySearchHistory, []byte(`42`))

	s := NewPersister(kv, quietLogger()).Load()

	if len(s.Lists) != 0 || s.Current != nil {
		t.Errorf("lists should fall back to empty, got %d", len(s.Lists))
	}
	if s.Settings.Currency != model.CurrencyINR {
		t.Errorf("currency = %q, want INR", s.Settings.Currency)
	}
	if len(s.SearchHistory) != 0 {
		t.Errorf("history = %v, want empty", s.SearchHistory)
	}
}

func TestObserveWritesOnlyChangedSlices(t *testing.T) {
	kv := NewMemory()
	st, _ := newTestStore(t, kv)

	st.Dispatch(state.NewCreateList("Weekly", false, testNow))
	if kv.Writes(KeyLists) != 1 || kv.Writes(KeySettings) != 0 || kv.Writes(KeySearchHistory) != 0 {
		t.Fatalf("writes after CreateList: lists=%d settings=%d history=%d",
			kv.Writes(KeyLists), kv.Writes(KeySettings), kv.Writes(KeySearchHistory))
	}

	st.Dispatch(state.AddToSearchHistory{Name: "Milk"})
	if kv.Writes(KeySearchHistory) != 1 || kv.Writes(KeyLists) != 1 {
		t.Errorf("writes after history: lists=%d history=%d", kv.Writes(KeyLists), kv.Writes(KeySearchHistory))
	}

	dark := true
	st.Dispatch(state.UpdateSettings{Patch: state.SettingsPatch{DarkMode: &dark}})
	st.Dispatch(state.UpdateSettings{Patch: state.SettingsPatch{DarkMode: &dark}})
	if kv.Writes(KeySettings) != 1 {
		t.Errorf("settings writes = %d, want 1", kv.Writes(KeySettings))
	}

	st.Dispatch(state.ToggleItem{ID: "missing"})
	if kv.Writes(KeyLists) != 1 {
		t.Errorf("no-op action wrote lists")
	}
}

func TestPersistedStateReloads(t *testing.T) {
	kv := NewMemory()
	st, _ := newTestStore(t, kv)

	st.Dispatch(state.NewCreateList("Weekly", false, testNow))
	milk := model.NewItem(model.ItemFields{Name: "Milk", Category: "Dairy"}, testNow)
	st.Dispatch(state.AddItem{Item: milk})
	st.Dispatch(state.AddToSearchHistory{Name: "Milk"})
	st.Dispatch(state.ToggleItem{ID: milk.ID})

	reloaded := NewPersister(kv, quietLogger()).Load()

	if diff := cmp.Diff(st.State().Lists, reloaded.Lists); diff != "" {
		t.Errorf("lists mismatch (-saved +reloaded):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Milk"}, reloaded.SearchHistory); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	if reloaded.Current == nil || !reloaded.Current.Items[0].Completed {
		t.Errorf("current = %+v", reloaded.Current)
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	kv := NewMemory()
	kv.FailWrites = true
	st, _ := newTestStore(t, kv)

	next := st.Dispatch(state.NewCreateList("Weekly", false, testNow))

	if next.Current == nil || len(st.State().Lists) != 1 {
		t.Fatalf("in-memory state lost after failed write: %+v", st.State())
	}
	if kv.Writes(KeyLists) != 1 {
		t.Errorf("attempts = %d, want exactly one (no retry)", kv.Writes(KeyLists))
	}
	if _, ok, _ := kv.Get(KeyLists); ok {
		t.Error("failed write should not be stored")
	}
}

func TestPersistOverSQLite(t *testing.T) {
	db := setupTestDB(t)
	st, _ := newTestStore(t, db)

	st.Dispatch(state.NewCreateList("Weekly", false, testNow))
	eur := model.CurrencyEUR
	st.Dispatch(state.UpdateSettings{Patch: state.SettingsPatch{Currency: &eur}})

	s := NewPersister(db, quietLogger()).Load()
	if len(s.Lists) != 1 || s.Lists[0].Name != "Weekly" {
		t.Errorf("lists = %+v", s.Lists)
	}
	if s.Settings.Currency != model.CurrencyEUR {
		t.Errorf("currency = %q", s.Settings.Currency)
	}
}
