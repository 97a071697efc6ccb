package cart

import (
	"strings"
	"sync"
)

// Line is one product/quantity pair in a session cart. Name, price, image
// and provenance are snapshots captured at add time and never refreshed
// from later adds of the same product.
type Line struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PriceCents     int64  `json:"priceCents"`
	Quantity       int    `json:"quantity"`
	Image          string `json:"image,omitempty"`
	RestaurantID   string `json:"restaurantId,omitempty"`
	RestaurantName string `json:"restaurantName,omitempty"`
}

// Store holds one cart per session and is the single writer for all of
// them. Every mutation goes through the exported methods; readers only
// ever see copies. All methods are safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	carts map[string][]Line
	subs  []func(sessionID string)
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]Line)}
}

// Subscribe registers fn to run after every mutation that changed a cart,
// with the owning session ID. Callbacks run outside the store lock.
func (s *Store) Subscribe(fn func(sessionID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// AddLine appends line to the session cart, merging quantities when a line
// with the same ID is already present. The existing line's snapshot fields
// win; only the quantity is summed. Lines with an empty ID are ignored and
// malformed quantity or price are clamped rather than rejected, so the
// call never fails.
func (s *Store) AddLine(sessionID string, line Line) {
	line.ID = strings.TrimSpace(line.ID)
	if line.ID == "" {
		return
	}
	if line.Quantity <= 0 {
		line.Quantity = 1
	}
	if line.PriceCents < 0 {
		line.PriceCents = 0
	}

	s.mu.Lock()
	lines := s.carts[sessionID]
	merged := false
	for i := range lines {
		if lines[i].ID == line.ID {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}
	s.carts[sessionID] = lines
	s.mu.Unlock()

	s.notify(sessionID)
}

// RemoveLine deletes the line with the given product ID. Unknown IDs are a
// silent no-op.
func (s *Store) RemoveLine(sessionID, id string) {
	s.mu.Lock()
	lines := s.carts[sessionID]
	removed := false
	for i := range lines {
		if lines[i].ID == id {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.notify(sessionID)
	}
}

// SetQuantity replaces the line's quantity. Zero or negative quantity
// removes the line; decrementing to nothing and removal are the same
// operation. Unknown IDs are a silent no-op.
func (s *Store) SetQuantity(sessionID, id string, quantity int) {
	if quantity <= 0 {
		s.RemoveLine(sessionID, id)
		return
	}

	s.mu.Lock()
	lines := s.carts[sessionID]
	changed := false
	for i := range lines {
		if lines[i].ID == id {
			changed = lines[i].Quantity != quantity
			lines[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.notify(sessionID)
	}
}

// Clear empties the session cart. Used after a successful order hand-off.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	_, had := s.carts[sessionID]
	delete(s.carts, sessionID)
	s.mu.Unlock()

	if had {
		s.notify(sessionID)
	}
}

// Drop discards the cart of an expired session without notifying
// subscribers; nothing is listening for a dead session.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
}

// Lines returns a copy of the session cart in insertion order.
func (s *Store) Lines(sessionID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[sessionID]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// TotalCents returns the sum of price*quantity over the cart, 0 when
// empty.
func (s *Store) TotalCents(sessionID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, l := range s.carts[sessionID] {
		total += l.PriceCents * int64(l.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities across all lines, not the number
// of distinct lines. The header badge hides itself when this is 0.
func (s *Store) ItemCount(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, l := range s.carts[sessionID] {
		count += l.Quantity
	}
	return count
}

func (s *Store) notify(sessionID string) {
	s.mu.Lock()
	subs := make([]func(string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(sessionID)
	}
}
