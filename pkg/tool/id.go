package tool

import "github.com/google/uuid"

// GenerateUUIDV7 returns a time-ordered unique id used as record keys and
// as the external_reference sent to the payment provider.
func GenerateUUIDV7() string {
	return uuid.Must(uuid.NewV7()).String()
}
