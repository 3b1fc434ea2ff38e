package state

// Listener observes committed transitions. It must not dispatch.
type Listener func(prev, next State)

// Store owns the current State for one composition root. It is not safe for
// concurrent use: actions are applied one at a time by a single caller.
type Store struct {
	state     State
	listeners []*Listener
}

func NewStore(initial State) *Store {
	return &Store{state: initial}
}

func (s *Store) State() State {
	return s.state
}

// Dispatch reduces a into the current state and then notifies listeners in
// the order they subscribed.
func (s *Store) Dispatch(a Action) State {
	prev := s.state
	s.state = Reduce(prev, a)
	for _, l := range s.listeners {
		(*l)(prev, s.state)
	}
	return s.state
}

// DispatchAll applies each action in order.
func (s *Store) DispatchAll(actions []Action) State {
	for _, a := range actions {
		s.Dispatch(a)
	}
	return s.state
}

// Subscribe registers l and returns a func that removes it.
func (s *Store) Subscribe(l Listener) func() {
	ref := &l
	s.listeners = append(s.listeners, ref)
	return func() {
		for i, existing := range s.listeners {
			if existing == ref {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
