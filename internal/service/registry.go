package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avatarmeet/backend/internal/domain"
	"github.com/avatarmeet/backend/internal/memstore"
)

const (
	codeAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength      = 6
	maxCodeAttempts = 10
)

// RoomStore is the persistent side of the room namespace.
// FindByCode returns domain.ErrRoomNotFound when the code is absent;
// Insert wraps quota-class failures in domain.ErrStorageQuota.
type RoomStore interface {
	FindByCode(ctx context.Context, code string) (*domain.Room, error)
	Insert(ctx context.Context, room *domain.Room) error
}

// StoreHealth exposes the connectivity checks behind the /test diagnostics.
type StoreHealth interface {
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}

// Registry owns the code→room namespace: persistent store and fallback cache
// together. Both store fields may be nil when no persistent store is
// configured; the registry then runs fallback-only.
type Registry struct {
	rooms    RoomStore
	health   StoreHealth
	fallback *memstore.RoomCache
	tracker  *Tracker
}

func NewRegistry(rooms RoomStore, health StoreHealth, fallback *memstore.RoomCache, tracker *Tracker) *Registry {
	return &Registry{
		rooms:    rooms,
		health:   health,
		fallback: fallback,
		tracker:  tracker,
	}
}

// CreateRoom allocates a unique code and persists the room. Empty scene and
// zero maxParticipants take the defaults; range validation happens at the
// HTTP boundary before the registry is reached.
func (s *Registry) CreateRoom(ctx context.Context, scene string, maxParticipants int) (*domain.Room, error) {
	if scene == "" {
		scene = domain.SceneClassroom
	}
	if maxParticipants == 0 {
		maxParticipants = domain.DefaultMaxParticipants
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	room := &domain.Room{
		Code:            code,
		Scene:           scene,
		IsActive:        true,
		MaxParticipants: maxParticipants,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.saveRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("save room: %w", err)
	}
	return room, nil
}

// JoinRoom resolves the code and records the participant best-effort: the
// join outcome never depends on tracker health.
func (s *Registry) JoinRoom(ctx context.Context, code string, name *string) (*domain.Room, error) {
	code = strings.ToUpper(code)
	room, err := s.findRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.tracker.RecordJoin(ctx, code, name); err != nil {
		slog.Debug("participant tracking failed", "code", code, "err", err)
	}
	return room, nil
}

func (s *Registry) GetRoom(ctx context.Context, code string) (*domain.Room, error) {
	return s.findRoom(ctx, strings.ToUpper(code))
}

// Status reports store connectivity and the fallback-active flag for /test.
type Status struct {
	Configured     bool
	Connected      bool
	ConnError      string
	Collections    []string
	FallbackActive bool
}

func (s *Registry) Status(ctx context.Context) Status {
	st := Status{FallbackActive: s.fallback.Len() > 0}
	if s.health == nil {
		return st
	}
	st.Configured = true

	if err := s.health.Ping(ctx); err != nil {
		st.ConnError = err.Error()
		return st
	}
	st.Connected = true

	cols, err := s.health.Collections(ctx)
	if err != nil {
		st.ConnError = err.Error()
		return st
	}
	if len(cols) > 10 {
		cols = cols[:10]
	}
	st.Collections = cols
	return st
}

// uniqueCode draws codes until one is free in both stores, up to
// maxCodeAttempts.
func (s *Registry) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := generateCode(codeLength)
		if err != nil {
			return "", err
		}
		if s.codeTaken(ctx, code) {
			continue
		}
		return code, nil
	}
	return "", domain.ErrCodeExhausted
}

func (s *Registry) codeTaken(ctx context.Context, code string) bool {
	if s.rooms != nil {
		if _, err := s.rooms.FindByCode(ctx, code); err == nil {
			return true
		}
		// lookup errors, including not-found, do not count as collisions
	}
	return s.fallback.Has(code)
}

// saveRoom writes to the persistent store; a quota-class failure degrades to
// the fallback cache instead of failing the request. Other errors propagate.
func (s *Registry) saveRoom(ctx context.Context, room *domain.Room) error {
	if s.rooms == nil {
		s.fallback.Put(*room)
		return nil
	}

	err := s.rooms.Insert(ctx, room)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrStorageQuota):
		slog.Warn("room write blocked by storage quota, using fallback cache",
			"code", room.Code)
		s.fallback.Put(*room)
		return nil
	default:
		return err
	}
}

// findRoom checks the persistent store first, swallowing lookup errors, then
// the fallback cache. Callers upper-case the code beforehand.
func (s *Registry) findRoom(ctx context.Context, code string) (*domain.Room, error) {
	if s.rooms != nil {
		room, err := s.rooms.FindByCode(ctx, code)
		if err == nil {
			return room, nil
		}
		if !errors.Is(err, domain.ErrRoomNotFound) {
			slog.Debug("persistent lookup failed, trying fallback cache",
				"code", code, "err", err)
		}
	}
	if room, ok := s.fallback.Get(code); ok {
		return &room, nil
	}
	return nil, domain.ErrRoomNotFound
}

func generateCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
