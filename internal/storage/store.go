package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Keys under which Calm Compass records live. CheckinHistory and
// ProgressData are reserved: nothing writes them, but ClearAll removes them.
const (
	KeyUserData       = "@CalmCompass:userData"
	KeySettings       = "@CalmCompass:settings"
	KeyCheckinHistory = "@CalmCompass:checkinHistory"
	KeyToolUsage      = "@CalmCompass:toolUsage"
	KeyProgressData   = "@CalmCompass:progressData"
)

// AllKeys lists every key the app may have written.
func AllKeys() []string {
	return []string{KeyUserData, KeySettings, KeyCheckinHistory, KeyToolUsage, KeyProgressData}
}

// ErrNotFound is returned by Store.Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// Store is a string-keyed blob store.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes all keys in one batch. Missing keys are not an error.
	Remove(ctx context.Context, keys ...string) error
	Close() error
}

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendBadger Backend = "badger"
	BackendMemory Backend = "memory"
)

func ParseBackend(input string) (Backend, error) {
	b := Backend(strings.TrimSpace(strings.ToLower(input)))
	switch b {
	case "":
		return BackendSQLite, nil
	case BackendSQLite, BackendBadger, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("unknown storage backend: %q", input)
	}
}

type Options struct {
	Backend Backend
	// Path is the sqlite file or badger directory. Empty means in-memory for badger.
	Path   string
	Logger *zap.Logger
}

// Open opens the store selected by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	switch opts.Backend {
	case BackendSQLite, "":
		if opts.Path == "" {
			return nil, errors.New("sqlite backend requires a path")
		}
		db, err := OpenSQLite(ctx, opts.Path)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(db), nil
	case BackendBadger:
		cfg := DefaultBadgerConfig()
		cfg.Path = opts.Path
		cfg.InMemory = opts.Path == ""
		cfg.Logger = logger
		return OpenBadger(cfg)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", opts.Backend)
	}
}
