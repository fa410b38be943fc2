package cart

import (
	"sync"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session is one operator's candidate purchase. Every line holds stock that
// was already taken out of the catalog.
type Session struct {
	ID string

	mu    sync.Mutex
	lines []model.CartLine
}

func NewSession(id string) *Session {
	return &Session{ID: id}
}

func (s *Session) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.LinesTotal(s.lines)
}

func (s *Session) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Checkout passes the current lines to finalize. If finalize succeeds the
// cart is emptied without returning stock, since the reservations now belong
// to the recorded sale. On error the cart is left as it was.
func (s *Session) Checkout(finalize func(lines []model.CartLine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return apperr.EmptyCart()
	}
	if err := finalize(s.snapshot()); err != nil {
		return err
	}
	s.lines = nil
	return nil
}

func (s *Session) snapshot() []model.CartLine {
	out := make([]model.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Session) indexOf(code string) int {
	for i := range s.lines {
		if s.lines[i].Code == code {
			return i
		}
	}
	return -1
}

// SessionStore keeps the open sessions of this process, keyed by id.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]*Session{}}
}

// Lookup returns the session for id without opening one.
func (st *SessionStore) Lookup(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Get returns the session for id, opening an empty one when needed. Only
// calls that put something in the cart should open sessions.
func (st *SessionStore) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		s = NewSession(id)
		st.sessions[id] = s
	}
	return s
}

// Start opens a session under a fresh id.
func (st *SessionStore) Start() *Session {
	return st.Get(uuid.New().String())
}

// All returns the open sessions in no particular order.
func (st *SessionStore) All() []*Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		out = append(out, s)
	}
	return out
}
