package memstore

import (
	"sync"

	"github.com/avatarmeet/backend/internal/domain"
)

// RoomCache is the transient fallback room store, used when persistent writes
// are blocked by quota or no persistent store is configured. Process-lifetime
// only; contents do not survive a restart.
type RoomCache struct {
	mu    sync.RWMutex
	rooms map[string]domain.Room
}

func NewRoomCache() *RoomCache {
	return &RoomCache{rooms: make(map[string]domain.Room)}
}

func (c *RoomCache) Put(room domain.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rooms[room.Code] = room
}

func (c *RoomCache) Get(code string) (domain.Room, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	room, ok := c.rooms[code]
	return room, ok
}

func (c *RoomCache) Has(code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.rooms[code]
	return ok
}

func (c *RoomCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rooms)
}
