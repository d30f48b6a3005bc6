package service

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// newULID creates a new ULID string, used for every server-generated
// identifier below the document level (days, exercises, sets).
func newULID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}
