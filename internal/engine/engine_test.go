package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/RACSolutions/calm-compass-autism-support/internal/storage"
)

var testNow = time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestService(t *testing.T) (*Service, *testClock, func()) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, storage.Options{Backend: storage.BackendSQLite, Path: path})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	clk := &testClock{t: testNow}
	svc := NewService(db, WithClock(clk.Now))
	cleanup := func() {
		_ = db.Close()
	}
	return svc, clk, cleanup
}

func newMemoryService(t *testing.T) (*Service, *testClock) {
	t.Helper()
	clk := &testClock{t: testNow}
	return NewService(storage.NewMemoryStore(), WithClock(clk.Now)), clk
}

var errBroken = errors.New("disk on fire")

// brokenStore fails whichever operations are switched on.
type brokenStore struct {
	storage.Store
	failGet    bool
	failSet    bool
	failRemove bool
	failSetKey string
}

func newBrokenStore() *brokenStore {
	return &brokenStore{Store: storage.NewMemoryStore()}
}

func (b *brokenStore) Get(ctx context.Context, key string) ([]byte, error) {
	if b.failGet {
		return nil, errBroken
	}
	return b.Store.Get(ctx, key)
}

func (b *brokenStore) Set(ctx context.Context, key string, value []byte) error {
	if b.failSet || (b.failSetKey != "" && b.failSetKey == key) {
		return errBroken
	}
	return b.Store.Set(ctx, key, value)
}

func (b *brokenStore) Remove(ctx context.Context, keys ...string) error {
	if b.failRemove {
		return errBroken
	}
	return b.Store.Remove(ctx, keys...)
}

func mustLoadUser(t *testing.T, svc *Service) *UserData {
	t.Helper()
	u, err := svc.LoadUserData(context.Background())
	if err != nil {
		t.Fatalf("LoadUserData: %v", err)
	}
	return &u
}

func mustCheckin(t *testing.T, svc *Service, z Zone, u *UserData) *UserData {
	t.Helper()
	out, err := svc.RecordCheckin(context.Background(), z, u)
	if err != nil {
		t.Fatalf("RecordCheckin(%s): %v", z, err)
	}
	return out
}
