package domain

import "time"

// Scene presets the client can render.
const (
	SceneClassroom = "classroom"
	SceneSpace     = "space"
	SceneNature    = "nature"
)

const (
	DefaultMaxParticipants = 16
	MinMaxParticipants     = 1
	MaxMaxParticipants     = 64
)

type Room struct {
	// ID is the storage identifier (ObjectID hex). Empty for rooms held in
	// the fallback cache.
	ID              string    `bson:"-" json:"id,omitempty"`
	Code            string    `bson:"code" json:"code"`
	Scene           string    `bson:"scene" json:"scene"`
	IsActive        bool      `bson:"is_active" json:"is_active"`
	MaxParticipants int       `bson:"max_participants" json:"max_participants"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
