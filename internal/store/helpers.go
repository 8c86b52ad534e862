package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// now returns the current UTC time as a millisecond-precision ISO-8601
// timestamp. Lexicographic order of these strings matches chronological
// order, which the default updated_at sort relies on.
func now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// newID generates the identifier for a freshly created record.
func newID() string {
	return uuid.NewString()
}

// escapeLike escapes LIKE metacharacters in a user-supplied filter value so
// it matches literally inside the %...% pattern.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
