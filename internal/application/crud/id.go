package crud

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDGenerator returns ids unique within the process.
type IDGenerator func() string

var defaultIDs = NewULIDGenerator(rand.Reader)

// NewULIDGenerator returns a generator of monotonic ULIDs drawing entropy
// from src.
func NewULIDGenerator(src io.Reader) IDGenerator {
	var mu sync.Mutex
	entropy := ulid.Monotonic(src, 0)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
	}
}
