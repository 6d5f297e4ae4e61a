package rpncalc

import "sync"

// DefaultMaxVars is the default capacity of a Store.
const DefaultMaxVars = 100

// Store is a fixed-capacity table of named variables. Names are unique and
// case-sensitive. A Store is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	slots []variable
	// index maps names to slots.
	index map[string]int
}

type variable struct {
	name  string
	value float64
	used  bool
}

// NewStore creates a store with room for capacity variables. If capacity is
// not positive, DefaultMaxVars is used.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultMaxVars
	}
	return &Store{
		slots: make([]variable, capacity),
		index: make(map[string]int, capacity),
	}
}

// Get returns the value of a variable. The error's kind is NotFound if there
// is no variable with that name.
func (s *Store) Get(name string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[name]
	if !ok {
		return 0, &Error{Kind: NotFound, Text: name}
	}
	return s.slots[i].value, nil
}

// Set sets the value of a variable, creating it in the first free slot if it
// does not exist. The error's kind is NoFreeSpace if the variable is new and
// every slot is in use.
func (s *Store) Set(name string, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.index[name]; ok {
		s.slots[i].value = value
		return nil
	}
	for i := range s.slots {
		if !s.slots[i].used {
			s.slots[i] = variable{name: name, value: value, used: true}
			s.index[name] = i
			return nil
		}
	}
	return &Error{Kind: NoFreeSpace, Text: name}
}

// Len returns the number of variables in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.index)
}

// Cap returns the maximum number of variables the store can hold.
func (s *Store) Cap() int {
	return len(s.slots)
}

// Names returns the names of all variables in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.index))
	for k := range s.index {
		names = append(names, k)
	}
	s.mu.RUnlock()
	sortstrs(names)
	return names
}

// Reset removes every variable.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slots {
		s.slots[i] = variable{}
	}
	s.index = make(map[string]int, len(s.slots))
}
