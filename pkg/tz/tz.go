package tz

import (
	"log"
	"time"
)

// Load returns the named location, or UTC when it is not available.
func Load(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ tz: fuseau %q introuvable, UTC utilisé: %v", name, err)
		return time.UTC
	}
	return loc
}
