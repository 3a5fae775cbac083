package domain

import "errors"

var (
	ErrRoomNotFound = errors.New("room not found")

	// ErrCodeExhausted: every generation attempt collided with an existing
	// code. Negligible at 36^6, still handled rather than assumed away.
	ErrCodeExhausted = errors.New("failed to generate unique room code")

	// ErrStorageQuota marks a write rejected by the store's quota/forbidden
	// error class. Room writes hitting it degrade to the fallback cache.
	ErrStorageQuota = errors.New("storage quota exceeded")
)
