package service

import (
	"context"
	"time"

	"github.com/avatarmeet/backend/internal/domain"

	"github.com/google/uuid"
)

type ParticipantStore interface {
	Insert(ctx context.Context, p *domain.Participant) error
}

// Tracker records participant joins. Writes are fire-and-forget: callers
// log the returned error at most, participants have no fallback store.
type Tracker struct {
	participants ParticipantStore
}

func NewTracker(participants ParticipantStore) *Tracker {
	return &Tracker{participants: participants}
}

func (t *Tracker) RecordJoin(ctx context.Context, roomCode string, name *string) error {
	if t == nil || t.participants == nil {
		return nil
	}
	p := &domain.Participant{
		ID:       uuid.NewString(),
		RoomCode: roomCode,
		Name:     name,
		JoinedAt: time.Now().UTC(),
	}
	return t.participants.Insert(ctx, p)
}
