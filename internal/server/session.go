package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"k8s.io/utils/clock"

	"github.com/Emynado01/portfolio/internal/contact"
	"github.com/Emynado01/portfolio/internal/view"
)

// Session is the state container of one visitor: presentation state plus the contact form.
type Session struct {
	ID string

	mu       sync.Mutex
	state    view.State
	lastSeen time.Time
	form     *contact.Form
}

// State returns the current presentation state.
func (s *Session) State() view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Apply runs a pure transition against the state and stores the result.
func (s *Session) Apply(transition func(view.State) view.State) view.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = transition(s.state)
	return s.state
}

func (s *Session) Form() *contact.Form {
	return s.form
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Registry keeps sessions in memory, keyed by cookie value. Nothing is persisted.
type Registry struct {
	clock   clock.PassiveClock
	ttl     time.Duration
	newForm func(id string) *contact.Form

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(clk clock.PassiveClock, ttl time.Duration, newForm func(id string) *contact.Form) *Registry {
	return &Registry{
		clock:    clk,
		ttl:      ttl,
		newForm:  newForm,
		sessions: make(map[string]*Session),
	}
}

// Get returns a live session and marks it as seen.
func (r *Registry) Get(id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if ok {
		s.touch(r.clock.Now())
	}
	return s, ok
}

// Create starts a session with the theme seeded from the platform preference.
func (r *Registry) Create(dark bool) *Session {
	id := uuid.NewString()
	s := &Session{
		ID:       id,
		state:    view.New(dark),
		lastSeen: r.clock.Now(),
		form:     r.newForm(id),
	}
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the TTL and tears down their forms.
func (r *Registry) Sweep() int {
	cutoff := r.clock.Now().Add(-r.ttl)

	var expired []*Session
	r.mu.Lock()
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.form.Close()
	}
	return len(expired)
}

// Close tears down every session and waits for in-flight relay calls.
func (r *Registry) Close() {
	r.mu.Lock()
	all := make([]*Session, 0, len(r.sessions))
	for id, s := range r.sessions {
		all = append(all, s)
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	for _, s := range all {
		s.form.Close()
	}
	for _, s := range all {
		s.form.Wait()
	}
}
