package highlight

import (
	"strconv"
	"time"
)

// NewLocalID generates a temporary, timestamp-based identifier for a
// highlight that has not yet been assigned a permanent ID by the remote
// service. The store replaces it in place once the remote confirms.
func NewLocalID(now time.Time) string {
	return strconv.FormatInt(now.UnixNano(), 10)
}
