package service

import (
	"sync"
	"time"

	"restopos/terminal-svc/internal/cart"
	"restopos/terminal-svc/internal/domain"

	"github.com/google/uuid"
)

// Screen is one operator view onto a table or an order. Each screen owns its
// cart; nothing is shared between screens.
type Screen struct {
	ID        string
	SessionID string
	TableID   int
	OrderID   int

	cart       *cart.Cart
	submitting bool
	touched    time.Time
}

type CartView struct {
	ScreenID string       `json:"screen_id"`
	Lines    []cart.Line  `json:"lines"`
	Subtotal domain.Money `json:"subtotal"`
}

func (s *Screen) cartView() CartView {
	lines := s.cart.Lines()
	view := CartView{ScreenID: s.ID, Lines: lines}
	for _, l := range lines {
		view.Subtotal += l.Subtotal()
	}
	return view
}

// screenRegistry keeps screens in memory. A screen untouched for longer than
// idle is evicted the next time any screen is opened; idle <= 0 keeps
// screens until they are closed or their session ends.
type screenRegistry struct {
	mu      sync.Mutex
	screens map[string]*Screen
	idle    time.Duration
	now     func() time.Time
}

func newScreenRegistry(idle time.Duration) *screenRegistry {
	return &screenRegistry{
		screens: make(map[string]*Screen),
		idle:    idle,
		now:     time.Now,
	}
}

// open registers a new screen and reports how many idle screens it evicted.
func (r *screenRegistry) open(sessionID string, tableID, orderID int) (*Screen, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	evicted := r.sweep(now)
	s := &Screen{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		TableID:   tableID,
		OrderID:   orderID,
		cart:      cart.New(),
		touched:   now,
	}
	r.screens[s.ID] = s
	return s, evicted
}

// sweep must be called with mu held. Screens with a submission in flight
// are kept.
func (r *screenRegistry) sweep(now time.Time) int {
	if r.idle <= 0 {
		return 0
	}
	n := 0
	for id, s := range r.screens {
		if !s.submitting && now.Sub(s.touched) > r.idle {
			delete(r.screens, id)
			n++
		}
	}
	return n
}

// with runs fn on the screen under the registry lock. Screens belonging to a
// different session are reported as missing.
func (r *screenRegistry) with(sessionID, id string, fn func(*Screen) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.screens[id]
	if !ok || s.SessionID != sessionID {
		return ErrScreenNotFound
	}
	s.touched = r.now()
	return fn(s)
}

func (r *screenRegistry) close(sessionID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.screens[id]
	if !ok || s.SessionID != sessionID {
		return ErrScreenNotFound
	}
	delete(r.screens, id)
	return nil
}

// dropSession discards every screen of a session, carts included.
func (r *screenRegistry) dropSession(sessionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.screens {
		if s.SessionID == sessionID {
			delete(r.screens, id)
			n++
		}
	}
	return n
}

func (r *screenRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.screens)
}
