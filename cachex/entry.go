package cachex

import (
	"encoding/json"
	"strings"
	"time"
)

// Entry is a cached JSON value with an absolute expiry in epoch milliseconds
type Entry struct {
	Value     json.RawMessage `json:"value"`
	ExpiresAt int64           `json:"expiresAt"`
}

// Expired reports whether the entry is dead at now
func (e Entry) Expired(now time.Time) bool {
	return now.UnixMilli() > e.ExpiresAt
}

const (
	keySep = "\x1f"
	keyEsc = "\x1b"
)

var keyEscaper = strings.NewReplacer(keyEsc, keyEsc+keyEsc, keySep, keyEsc+keySep)

// MakeKey joins parts with the ASCII unit separator. Each part is escaped
// first, so different part lists never produce the same key.
func MakeKey(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = keyEscaper.Replace(p)
	}
	return strings.Join(escaped, keySep)
}
