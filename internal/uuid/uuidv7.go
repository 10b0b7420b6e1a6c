// Package uuid generates the time-ordered identifiers used as primary keys.
package uuid

import (
	"fmt"
	"time"

	googleuuid "github.com/google/uuid"
)

// New returns a new UUIDv7. Version 7 identifiers sort by creation time,
// which keeps B-tree inserts append-only. If the random source fails a
// UUIDv4 is returned instead.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}

// Timestamp extracts the creation time embedded in a UUIDv7.
func Timestamp(s string) (time.Time, error) {
	id, err := googleuuid.Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	if id.Version() != 7 {
		return time.Time{}, fmt.Errorf("uuid %s is version %d, not 7", s, id.Version())
	}
	sec, nsec := id.Time().UnixTime()
	return time.Unix(sec, nsec).UTC(), nil
}
