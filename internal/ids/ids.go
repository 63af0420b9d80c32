package ids

import "github.com/google/uuid"

// NewRequestID returns a random UUID (v4) string.
func NewRequestID() string {
	return uuid.NewString()
}
