package domain

import "time"

type Participant struct {
	ID        string    `bson:"id" json:"id"`
	RoomCode  string    `bson:"room_code" json:"room_code"`
	Name      *string   `bson:"name,omitempty" json:"name,omitempty"`
	IsMuted   bool      `bson:"is_muted" json:"is_muted"`
	AvatarURL *string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	JoinedAt  time.Time `bson:"joined_at" json:"joined_at"`
}
