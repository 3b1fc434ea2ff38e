// Package app wires configuration, storage and the state store into the one
// running instance both the command line and the terminal UI drive.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"basket/internal/config"
	"basket/internal/model"
	"basket/internal/state"
	"basket/internal/storage"
)

var (
	ErrListNotFound = errors.New("list not found")
	ErrItemNotFound = errors.New("item not found")
	ErrNoList       = errors.New("no current list")
	ErrLastList     = errors.New("cannot delete the only list")
	ErrAmbiguous    = errors.New("reference matches more than one entry")
)

// App owns the store and the resources persisting it.
type App struct {
	store  *state.Store
	logger *slog.Logger

	// Now stamps new lists and items and anchors expiry checks.
	Now func() time.Time

	closers []io.Closer
	stop    func()
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open locks the configured database, hydrates the store from it and starts
// mirroring changes back. A fresh database gets cfg.DefaultListName.
func Open(cfg config.Config, logger *slog.Logger) (*App, error) {
	lock, err := storage.AcquireLock(cfg.DBPath, cfg.LockWait())
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", cfg.DBPath, err)
	}
	db, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		lock.Release()
		return nil, err
	}

	a := New(db, cfg.DefaultListName, logger)
	a.closers = append(a.closers, db, closerFunc(lock.Release))
	return a, nil
}

// New builds an App over any key-value medium. The caller keeps ownership of kv.
func New(kv storage.KV, defaultListName string, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	p := storage.NewPersister(kv, logger)
	a := &App{
		store:  state.NewStore(p.Load()),
		logger: logger,
		Now:    time.Now,
	}
	a.stop = a.store.Subscribe(p.Observe)

	if len(a.store.State().Lists) == 0 {
		name := strings.TrimSpace(defaultListName)
		if name == "" {
			name = config.DefaultListName
		}
		a.store.Dispatch(state.NewCreateList(name, false, a.Now()))
		logger.Info("created first list", "name", name)
	}
	return a
}

// Close stops persisting and releases the database and its lock.
func (a *App) Close() error {
	if a.stop != nil {
		a.stop()
		a.stop = nil
	}
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) State() state.State { return a.store.State() }

func (a *App) Logger() *slog.Logger { return a.logger }

// Dispatch applies actions in order and returns the resulting state.
func (a *App) Dispatch(actions ...state.Action) state.State {
	return a.store.DispatchAll(actions)
}

// Current returns the current list or ErrNoList.
func (a *App) Current() (model.List, error) {
	cur := a.store.State().Current
	if cur == nil {
		return model.List{}, ErrNoList
	}
	return *cur, nil
}

// FindList resolves ref as a list id, a unique id prefix, or a
// case-insensitive name.
func (a *App) FindList(ref string) (model.List, error) {
	lists := a.store.State().Lists
	i, err := resolve(len(lists), strings.TrimSpace(ref),
		func(i int) string { return lists[i].ID },
		func(i int) string { return lists[i].Name })
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return model.List{}, fmt.Errorf("%w: %q", ErrListNotFound, ref)
		}
		return model.List{}, fmt.Errorf("list %q: %w", ref, err)
	}
	return lists[i], nil
}

// SelectList makes the list ref names current.
func (a *App) SelectList(ref string) (model.List, error) {
	l, err := a.FindList(ref)
	if err != nil {
		return model.List{}, err
	}
	a.store.Dispatch(state.Select(l))
	return l, nil
}

// FindItem resolves ref against the current list the way FindList does.
func (a *App) FindItem(ref string) (model.Item, error) {
	cur, err := a.Current()
	if err != nil {
		return model.Item{}, err
	}
	items := cur.Items
	i, err := resolve(len(items), strings.TrimSpace(ref),
		func(i int) string { return items[i].ID },
		func(i int) string { return items[i].Name })
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return model.Item{}, fmt.Errorf("%w: %q in %q", ErrItemNotFound, ref, cur.Name)
		}
		return model.Item{}, fmt.Errorf("item %q: %w", ref, err)
	}
	return items[i], nil
}

// DeleteList removes the list ref names unless it is the last one.
func (a *App) DeleteList(ref string) (model.List, error) {
	l, err := a.FindList(ref)
	if err != nil {
		return model.List{}, err
	}
	if !state.CanDeleteList(a.store.State()) {
		return model.List{}, ErrLastList
	}
	a.store.Dispatch(state.DeleteList{ID: l.ID})
	a.logger.Info("deleted list", "id", l.ID, "name", l.Name)
	return l, nil
}

var errNoMatch = errors.New("no match")

func resolve(n int, ref string, id, name func(int) string) (int, error) {
	if ref == "" {
		return -1, errNoMatch
	}
	for i := range n {
		if id(i) == ref {
			return i, nil
		}
	}

	match := -1
	for i := range n {
		if strings.HasPrefix(id(i), ref) {
			if match >= 0 {
				return -1, ErrAmbiguous
			}
			match = i
		}
	}
	if match >= 0 {
		return match, nil
	}

	for i := range n {
		if strings.EqualFold(name(i), ref) {
			if match >= 0 {
				return -1, ErrAmbiguous
			}
			match = i
		}
	}
	if match < 0 {
		return -1, errNoMatch
	}
	return match, nil
}
