package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collRooms        = "room"
	collParticipants = "participant"
)

type DB struct {
	Client   *mongodrv.Client
	Database *mongodrv.Database
}

// New connects to the document store and verifies the connection with a ping.
func New(ctx context.Context, uri, name string) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongodrv.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &DB{Client: client, Database: client.Database(name)}, nil
}

func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.Client.Ping(ctx, nil)
}

// Collections lists collection names, used by the /test diagnostics endpoint.
func (db *DB) Collections(ctx context.Context) ([]string, error) {
	return db.Database.ListCollectionNames(ctx, bson.D{})
}

func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}
