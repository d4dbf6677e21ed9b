package tracker

import (
	"encoding/base64"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// NewTaskID returns an identifier composed of the current time in
// base36 plus random entropy. Collisions are negligibly likely but not
// ruled out by construction, so nothing correctness-critical may rely
// on strict uniqueness.
func NewTaskID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) +
		strconv.FormatUint(rand.Uint64(), 36)
}

// UserIDFor derives a stable identifier from a username: lower-case,
// trim, base64-encode, then strip everything outside [A-Za-z0-9].
// This is a reversible-ish encoding, not a hash. Distinct usernames
// whose encodings collide after stripping map to the same identifier;
// that is accepted behavior, not enforced against.
func UserIDFor(username string) string {
	normalized := strings.ToLower(strings.TrimSpace(username))
	encoded := base64.StdEncoding.EncodeToString([]byte(normalized))
	return nonAlphanumeric.ReplaceAllString(encoded, "")
}
