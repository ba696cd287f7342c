// Package gravatar maps email addresses to deterministic avatar URLs.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"inkwell/constants"
)

// URL returns the gravatar image URL for an email address. The address is
// trimmed and lowercased before hashing, so equivalent spellings resolve to
// the same avatar.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return constants.GRAVATAR_BASE_URL + "/" + hex.EncodeToString(sum[:])
}
