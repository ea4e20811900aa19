package id

import "github.com/google/uuid"

// GenerateID returns a new random identifier for an upload.
func GenerateID() string {
	return uuid.NewString()
}
