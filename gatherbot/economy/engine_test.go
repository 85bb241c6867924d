package economy

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/store"
)

var (
	t0    = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	alice = account.NewKey(900, 1)
	bob   = account.NewKey(900, 2)
)

// scriptedSource replays fixed draws in order and returns zero once a script
// runs out.
type scriptedSource struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) push(floats []float64, ints []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floats = append(s.floats, floats...)
	s.ints = append(s.ints, ints...)
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	engine *Engine
	store  *store.Store
	clock  *testClock
	src    *scriptedSource
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, err := store.Open(context.Background(), store.NewMemoryBackend(), catalog.Default())
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	clock := &testClock{now: t0}
	src := &scriptedSource{}
	return &fixture{
		engine: New(catalog.Default(), st, WithClock(clock.Now), WithSource(src)),
		store:  st,
		clock:  clock,
		src:    src,
	}
}

// account returns the live record for key, creating it if needed.
func (f *fixture) account(key account.Key) *account.Account {
	a, _ := f.store.GetOrCreate(key, f.clock.Now())
	return a
}

func TestAccountLocks_Released(t *testing.T) {
	f := newFixture(t)
	if _, err := f.engine.PerformFish(context.Background(), alice); err != nil {
		t.Fatal(err)
	}
	if n := f.engine.locks.size(); n != 0 {
		t.Errorf("lock table holds %d entries after the call returned", n)
	}
}
