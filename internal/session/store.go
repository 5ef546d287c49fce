// Package session holds the client-side session state: the wallet
// connection, the wallet modal visibility and the favorites set.
//
// The Store is the only owner of that state. Views receive it through the
// tui capability set and mutate it only through the operations below.
package session

import "sync"

// State is a point-in-time copy of the wallet session.
type State struct {
	Connected bool
	Address   string
	ModalOpen bool
}

// Store owns the session state for the lifetime of the process.
type Store struct {
	mu        sync.RWMutex
	state     State
	short     string
	favorites []string
	index     map[string]struct{}
}

// New returns a disconnected store seeded with the given favorites.
// Duplicate seed ids are collapsed, keeping the first occurrence.
func New(seed []string) *Store {
	s := &Store{index: make(map[string]struct{}, len(seed))}
	for _, id := range seed {
		if _, ok := s.index[id]; ok {
			continue
		}
		s.index[id] = struct{}{}
		s.favorites = append(s.favorites, id)
	}
	return s
}

// ToggleFavorite removes id when it is a favorite and appends it otherwise.
func (s *Store) ToggleFavorite(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[id]; ok {
		delete(s.index, id)
		kept := s.favorites[:0]
		for _, f := range s.favorites {
			if f != id {
				kept = append(kept, f)
			}
		}
		s.favorites = kept
		return
	}
	s.index[id] = struct{}{}
	s.favorites = append(s.favorites, id)
}

// IsFavorite reports whether id is in the favorites set.
func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[id]
	return ok
}

// Favorites returns the favorites in insertion order.
func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// SetConnected marks the wallet connected to address and hides the modal.
// An empty address is ignored so that Connected always implies an address.
func (s *Store) SetConnected(address string) {
	if address == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Connected: true, Address: address, ModalOpen: false}
	s.short = ShortenAddress(address)
}

func (s *Store) OpenModal() {
	s.mu.Lock()
	s.state.ModalOpen = true
	s.mu.Unlock()
}

func (s *Store) CloseModal() {
	s.mu.Lock()
	s.state.ModalOpen = false
	s.mu.Unlock()
}

// Snapshot returns a copy of the current wallet session.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ShortAddress returns the display form of the connected address. ok is
// false while no address is known.
func (s *Store) ShortAddress() (short string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Address == "" {
		return "", false
	}
	return s.short, true
}

// ShortenAddress renders the first 6 and last 4 characters of addr joined
// by "...". Inputs shorter than 10 characters overlap rather than fail.
func ShortenAddress(addr string) string {
	if addr == "" {
		return ""
	}
	r := []rune(addr)
	head := r
	if len(head) > 6 {
		head = r[:6]
	}
	tail := r
	if len(tail) > 4 {
		tail = r[len(r)-4:]
	}
	return string(head) + "..." + string(tail)
}
