package mongo

import (
	"context"
	"fmt"

	"github.com/avatarmeet/backend/internal/domain"

	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

type ParticipantRepository struct {
	coll *mongodrv.Collection
}

func NewParticipantRepository(db *DB) *ParticipantRepository {
	return &ParticipantRepository{coll: db.Database.Collection(collParticipants)}
}

func (r *ParticipantRepository) Insert(ctx context.Context, p *domain.Participant) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}
	return nil
}
