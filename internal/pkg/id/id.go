package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New returns a fresh ULID string. Company, job and email-log ids all use
// ULIDs: they sort by creation time and distribute well as DynamoDB
// partition keys.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
