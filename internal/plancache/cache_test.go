package plancache

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/claude/planforge/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPlan(week int) models.WeeklyExercisePlan {
	return models.WeeklyExercisePlan{
		WeekNumber: week,
		SplitID:    "full_body_3x",
		SplitName:  "Full Body 3x",
		Days: []models.WorkoutDayExercises{
			{DayName: "Full Body A", Exercises: []models.WorkoutExercise{
				{ExerciseID: "goblet-squat", Name: "Goblet Squat", Sets: 3, Reps: "10-12", RestSeconds: 90, Tempo: "2-0-2"},
			}},
		},
	}
}

func TestHashStable(t *testing.T) {
	p := models.UserProfile{Age: 30, FitnessGoal: models.GoalStrength, AvailableEquipment: []string{"barbell", "dumbbell"}}

	a, err := Hash(p, 1, "abc123")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Hash(p, 1, "abc123")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("identical inputs hashed differently: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}

// TestHashNormalization verifies list order and casing do not split the
// cache.
func TestHashNormalization(t *testing.T) {
	a, _ := Hash(models.UserProfile{AvailableEquipment: []string{"Barbell", "dumbbell"}}, 1, "v")
	b, _ := Hash(models.UserProfile{AvailableEquipment: []string{"dumbbell", "barbell"}}, 1, "v")
	if a != b {
		t.Error("equipment order/casing changed the cache key")
	}
}

func TestHashSensitivity(t *testing.T) {
	base := models.UserProfile{Age: 30}
	h0, _ := Hash(base, 1, "v1")

	tests := []struct {
		name    string
		profile models.UserProfile
		week    int
		version string
	}{
		{name: "week", profile: base, week: 2, version: "v1"},
		{name: "catalog version", profile: base, week: 1, version: "v2"},
		{name: "profile", profile: models.UserProfile{Age: 31}, week: 1, version: "v1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := Hash(tt.profile, tt.week, tt.version)
			if h == h0 {
				t.Errorf("changing the %s did not change the key", tt.name)
			}
		})
	}
}

// TestMemoryTier verifies hits, misses, and TTL expiry without a durable
// store.
func TestMemoryTier(t *testing.T) {
	c := New(nil, time.Minute, testLogger())
	clock := time.Unix(1000, 0)
	c.now = func() time.Time { return clock }

	calls := 0
	gen := func() models.WeeklyExercisePlan { calls++; return testPlan(1) }

	plan, hit, err := c.GetOrGenerate(context.Background(), "k", gen)
	if err != nil {
		t.Fatal(err)
	}
	if hit || calls != 1 {
		t.Errorf("first call: hit=%v calls=%d, want miss and one generation", hit, calls)
	}
	if plan.SplitID != "full_body_3x" {
		t.Errorf("plan = %+v", plan)
	}

	if _, hit, _ := c.GetOrGenerate(context.Background(), "k", gen); !hit || calls != 1 {
		t.Errorf("second call: hit=%v calls=%d, want hit without regeneration", hit, calls)
	}

	clock = clock.Add(2 * time.Minute)
	if _, hit, _ := c.GetOrGenerate(context.Background(), "k", gen); hit || calls != 2 {
		t.Errorf("after TTL: hit=%v calls=%d, want miss and regeneration", hit, calls)
	}
}

// TestDurableTier verifies write-through and cross-cache reads via the
// shared SQLite store.
func TestDurableTier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := OpenStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	a := New(store, time.Minute, testLogger())
	b := New(store, time.Minute, testLogger())

	calls := 0
	gen := func() models.WeeklyExercisePlan { calls++; return testPlan(2) }

	if _, hit, err := a.GetOrGenerate(context.Background(), "key1", gen); err != nil || hit {
		t.Fatalf("first generation: hit=%v err=%v", hit, err)
	}

	// A second cache over the same store should hit durably, not regenerate.
	plan, hit, err := b.GetOrGenerate(context.Background(), "key1", gen)
	if err != nil {
		t.Fatal(err)
	}
	if !hit || calls != 1 {
		t.Errorf("cross-cache read: hit=%v calls=%d, want durable hit", hit, calls)
	}
	if plan.WeekNumber != 2 || len(plan.Days) != 1 {
		t.Errorf("plan round-trip corrupted: %+v", plan)
	}
}

func TestStoreGetMissing(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	_, ok, err := store.Get(context.Background(), "absent")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("Get() reported a hit for an absent key")
	}
}

// TestLockOwnership verifies a held lock blocks other owners, releases only
// for its owner, and goes stealable once stale.
func TestLockOwnership(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	ctx := context.Background()
	t0 := time.Unix(5000, 0)

	ok, err := store.TryLock(ctx, "k", "alice", t0, lockStaleAfter)
	if err != nil || !ok {
		t.Fatalf("first TryLock: ok=%v err=%v", ok, err)
	}

	if ok, _ := store.TryLock(ctx, "k", "bob", t0.Add(time.Second), lockStaleAfter); ok {
		t.Error("fresh lock was acquired by a second owner")
	}

	// Unlock by the wrong owner is a no-op.
	if err := store.Unlock(ctx, "k", "bob"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := store.TryLock(ctx, "k", "bob", t0.Add(2*time.Second), lockStaleAfter); ok {
		t.Error("wrong-owner unlock released the lock")
	}

	// Past the stale window the lock is stolen.
	if ok, _ := store.TryLock(ctx, "k", "bob", t0.Add(lockStaleAfter+time.Second), lockStaleAfter); !ok {
		t.Error("stale lock was not stolen")
	}

	// The original holder must not release the stolen lock.
	if err := store.Unlock(ctx, "k", "alice"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := store.TryLock(ctx, "k", "carol", t0.Add(lockStaleAfter+2*time.Second), lockStaleAfter); ok {
		t.Error("stolen lock was released by its original holder")
	}
}

// TestGetOrGenerateLockedKey verifies a caller that cannot take the lock
// picks up the other process's result while polling.
func TestGetOrGenerateLockedKey(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	ctx := context.Background()

	// Simulate another process holding the lock with the result landing
	// shortly after.
	if ok, err := store.TryLock(ctx, "k", "other-process", time.Now(), lockStaleAfter); err != nil || !ok {
		t.Fatalf("setup lock: ok=%v err=%v", ok, err)
	}
	go func() {
		time.Sleep(2 * pollInterval)
		store.Put(ctx, "k", testPlan(4))
		store.Unlock(ctx, "k", "other-process")
	}()

	c := New(store, time.Minute, testLogger())
	calls := 0
	plan, hit, err := c.GetOrGenerate(ctx, "k", func() models.WeeklyExercisePlan {
		calls++
		return testPlan(4)
	})
	if err != nil {
		t.Fatal(err)
	}
	if !hit || calls != 0 {
		t.Errorf("hit=%v calls=%d, want the polled result without local generation", hit, calls)
	}
	if plan.WeekNumber != 4 {
		t.Errorf("plan week = %d, want 4", plan.WeekNumber)
	}
}
