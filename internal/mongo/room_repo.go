package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/avatarmeet/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

type RoomRepository struct {
	coll *mongodrv.Collection
}

func NewRoomRepository(db *DB) *RoomRepository {
	return &RoomRepository{coll: db.Database.Collection(collRooms)}
}

type roomDoc struct {
	OID         primitive.ObjectID `bson:"_id,omitempty"`
	domain.Room `bson:",inline"`
}

func (r *RoomRepository) FindByCode(ctx context.Context, code string) (*domain.Room, error) {
	var doc roomDoc
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}

	room := doc.Room
	if !doc.OID.IsZero() {
		room.ID = doc.OID.Hex()
	}
	return &room, nil
}

func (r *RoomRepository) Insert(ctx context.Context, room *domain.Room) error {
	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		if IsQuotaError(err) {
			return fmt.Errorf("%w: %v", domain.ErrStorageQuota, err)
		}
		return fmt.Errorf("insert room: %w", err)
	}
	return nil
}
