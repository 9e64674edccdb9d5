// Package plancache caches generated plans in two tiers: an in-process TTL
// map for the hot path and an optional shared SQLite store that also
// coordinates generation across processes via keyed locks.
package plancache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/claude/planforge/internal/models"
)

const (
	pollInterval   = 300 * time.Millisecond
	waitBudget     = 9 * time.Second
	lockStaleAfter = 30 * time.Second
)

// Cache is the two-tier plan cache. The zero value is unusable; construct
// with New. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	store *Store // nil when the durable tier is disabled
	ttl   time.Duration
	owner string // lock ownership token, unique per process
	log   *slog.Logger

	now func() time.Time
}

type memoryEntry struct {
	plan    models.WeeklyExercisePlan
	expires time.Time
}

// New builds a cache over the optional durable store. ttl governs only the
// memory tier; the durable tier keeps plans until the catalog version in
// their key rotates them out.
func New(store *Store, ttl time.Duration, log *slog.Logger) *Cache {
	return &Cache{
		entries: make(map[string]memoryEntry),
		store:   store,
		ttl:     ttl,
		owner:   uuid.NewString(),
		log:     log,
		now:     time.Now,
	}
}

// GetOrGenerate returns the plan for a key, generating it at most once per
// key across cooperating processes. The returned bool reports a cache hit.
func (c *Cache) GetOrGenerate(ctx context.Context, key string, generate func() models.WeeklyExercisePlan) (models.WeeklyExercisePlan, bool, error) {
	if plan, ok := c.memGet(key); ok {
		return plan, true, nil
	}

	if c.store == nil {
		plan := generate()
		c.memPut(key, plan)
		return plan, false, nil
	}

	plan, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return models.WeeklyExercisePlan{}, false, err
	}
	if ok {
		c.memPut(key, plan)
		return plan, true, nil
	}

	acquired, err := c.store.TryLock(ctx, key, c.owner, c.now(), lockStaleAfter)
	if err != nil {
		return models.WeeklyExercisePlan{}, false, err
	}

	if acquired {
		plan := generate()
		if err := c.store.Put(ctx, key, plan); err != nil {
			c.log.Warn("durable cache write failed", "key", key, "error", err)
		}
		if err := c.store.Unlock(ctx, key, c.owner); err != nil {
			c.log.Warn("lock release failed", "key", key, "error", err)
		}
		c.memPut(key, plan)
		return plan, false, nil
	}

	// Another process holds the lock: poll for its result, then give up and
	// generate independently. Generation is deterministic, so a duplicate
	// run wastes cycles but never diverges.
	deadline := c.now().Add(waitBudget)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for c.now().Before(deadline) {
		select {
		case <-ctx.Done():
			return models.WeeklyExercisePlan{}, false, ctx.Err()
		case <-ticker.C:
		}

		plan, ok, err := c.store.Get(ctx, key)
		if err != nil {
			return models.WeeklyExercisePlan{}, false, err
		}
		if ok {
			c.memPut(key, plan)
			return plan, true, nil
		}
	}

	c.log.Warn("gave up waiting for concurrent generation", "key", key, "budget", waitBudget)
	plan = generate()
	c.memPut(key, plan)
	return plan, false, nil
}

// Invalidate drops a key from the memory tier, for tests and admin tooling.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache) memGet(key string) (models.WeeklyExercisePlan, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expires) {
		return models.WeeklyExercisePlan{}, false
	}
	return entry.plan, true
}

func (c *Cache) memPut(key string, plan models.WeeklyExercisePlan) {
	c.mu.Lock()
	c.entries[key] = memoryEntry{plan: plan, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}
