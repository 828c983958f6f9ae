package ref

import (
	"crypto/rand"
	"strconv"
	"time"
)

const (
	prefix     = "BK"
	alphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixSize = 5
)

// NewBookingRef returns a human-readable booking reference: "BK", the unix
// timestamp in milliseconds, and five random base36 characters. Uniqueness
// is enforced by the database index; callers retry on collision.
func NewBookingRef() string {
	buf := make([]byte, suffixSize)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 10) + string(buf)
}
