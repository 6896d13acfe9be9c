package engine

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/RACSolutions/calm-compass-autism-support/internal/storage"
)

// ExportVersion is stamped on every export payload.
const ExportVersion = "1.0.0"

// Service owns the store handle. Every read and write of persisted
// app state goes through it. Records are passed in and out explicitly;
// the service keeps no copy of them.
type Service struct {
	store    storage.Store
	logger   *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

type Option func(*Service)

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now. The clock's location decides calendar days.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		logger:   zap.NewNop(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time { return s.now() }

func (s *Service) Store() storage.Store { return s.store }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", InvalidArgumentError{Field: "tool", Reason: "title is required"}
	}
	return t, nil
}

func requireUserData(u *UserData) error {
	if u == nil {
		return InvalidArgumentError{Field: "userData", Reason: "is required"}
	}
	return nil
}
