package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/football-ai/internal/platform/resilience"
)

// Observer is notified of lookups; the metrics service implements it.
type Observer interface {
	CacheLookup(namespace string, hit bool)
}

type entry struct {
	value     any
	expiresAt time.Time
}

// Store maps an argument tuple to a value and its expiry. Entries expire purely by
// age; there is no size bound beyond one entry per distinct key.
type Store struct {
	mu        sync.RWMutex
	entries   map[string]entry
	ttl       time.Duration
	namespace string
	flight    resilience.SingleFlight
	observer  Observer
	now       func() time.Time
}

type Option func(*Store)

func WithObserver(observer Observer) Option {
	return func(s *Store) { s.observer = observer }
}

func WithNamespace(namespace string) Option {
	return func(s *Store) { s.namespace = namespace }
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		entries:   make(map[string]entry),
		ttl:       ttl,
		namespace: "default",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key joins an argument tuple into a cache key. Parts are formatted with %v.
func Key(parts ...any) string {
	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%v", part)
	}
	return b.String()
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if s == nil || key == "" {
		return nil, false
	}

	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		s.observe(false)
		return nil, false
	}
	if s.ttl > 0 && !e.expiresAt.After(now) {
		s.mu.Lock()
		if current, still := s.entries[key]; still && !current.expiresAt.After(now) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		s.observe(false)
		return nil, false
	}

	s.observe(true)
	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if s == nil || key == "" {
		return
	}

	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:     value,
		expiresAt: expiresAt,
	}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if s == nil || key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key or stores the loader's result.
// Loader errors are not cached. A nil store always calls the loader.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if s == nil || key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (s *Store) observe(hit bool) {
	if s.observer != nil {
		s.observer.CacheLookup(s.namespace, hit)
	}
}

// Load is the typed form of GetOrLoad.
func Load[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	value, err := s.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cache entry %q has type %T, want %T", key, value, zero)
	}
	return typed, nil
}
