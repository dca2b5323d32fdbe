package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/Emynado01/portfolio/internal/contact"
	"github.com/Emynado01/portfolio/internal/view"
)

func newTestRegistry(t *testing.T) (*Registry, *testingclock.FakeClock) {
	t.Helper()
	fc := testingclock.NewFakeClock(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))
	r := NewRegistry(fc, time.Hour, func(string) *contact.Form {
		return contact.NewForm(contact.Options{Sender: &stubSender{results: make(chan error)}, Clock: fc})
	})
	t.Cleanup(r.Close)
	return r, fc
}

func TestRegistryCreateAndGet(t *testing.T) {
	t.Parallel()
	r, _ := newTestRegistry(t)

	s := r.Create(true)
	got, ok := r.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.True(t, got.State().Dark)
	assert.Equal(t, view.Profile, got.State().View)

	_, ok = r.Get("not-a-uuid")
	assert.False(t, ok)
	_, ok = r.Get("")
	assert.False(t, ok)
}

func TestSessionApply(t *testing.T) {
	t.Parallel()
	r, _ := newTestRegistry(t)

	s := r.Create(false)
	st := s.Apply(func(st view.State) view.State { return view.SelectTab(st, view.Contact) })
	assert.Equal(t, view.Contact, st.View)
	assert.Equal(t, view.Contact, s.State().View)
}

func TestRegistrySweepEvictsIdleSessions(t *testing.T) {
	t.Parallel()
	r, fc := newTestRegistry(t)

	stale := r.Create(false)
	stale.Form().Open()

	fc.Step(45 * time.Minute)
	fresh := r.Create(false)

	fc.Step(30 * time.Minute)
	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())

	_, ok := r.Get(stale.ID)
	assert.False(t, ok)
	_, ok = r.Get(fresh.ID)
	assert.True(t, ok)

	stale.Form().Open()
	assert.False(t, stale.Form().Snapshot().Open, "evicted session form is torn down")
}

func TestRegistryGetKeepsSessionAlive(t *testing.T) {
	t.Parallel()
	r, fc := newTestRegistry(t)

	s := r.Create(false)
	fc.Step(50 * time.Minute)
	_, ok := r.Get(s.ID)
	require.True(t, ok)

	fc.Step(50 * time.Minute)
	assert.Equal(t, 0, r.Sweep())
}

func TestHashIPIsStableAndSalted(t *testing.T) {
	t.Parallel()

	a := hashIP("salt-a", "203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, hashIP("salt-a", "203.0.113.7"))
	assert.NotEqual(t, a, hashIP("salt-b", "203.0.113.7"))
}
