package memstore_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/avatarmeet/backend/internal/domain"
	"github.com/avatarmeet/backend/internal/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCache(t *testing.T) {
	c := memstore.NewRoomCache()

	_, ok := c.Get("ABC123")
	assert.False(t, ok)
	assert.False(t, c.Has("ABC123"))
	assert.Equal(t, 0, c.Len())

	c.Put(domain.Room{Code: "ABC123", Scene: "space", IsActive: true, MaxParticipants: 4})

	room, ok := c.Get("ABC123")
	require.True(t, ok)
	assert.Equal(t, "space", room.Scene)
	assert.Equal(t, 4, room.MaxParticipants)
	assert.True(t, c.Has("ABC123"))
	assert.Equal(t, 1, c.Len())
}

func TestRoomCache_Concurrent(t *testing.T) {
	c := memstore.NewRoomCache()

	const n = 64
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		code := fmt.Sprintf("CODE%02d", i)
		go func() {
			defer wg.Done()
			c.Put(domain.Room{Code: code, Scene: "classroom"})
		}()
		go func() {
			defer wg.Done()
			c.Get(code)
			c.Has(code)
			c.Len()
		}()
	}
	wg.Wait()

	assert.Equal(t, n, c.Len())
}
