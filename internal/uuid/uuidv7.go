// Package uuid generates the opaque string identifiers assigned by the
// store on record creation. UUIDv7 is time-ordered, which keeps newly
// created records in insertion order when sorted by primary key.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a new UUIDv7 string. Falls back to a random UUIDv4 if
// the system entropy source fails, so callers never see an error.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
