package hotelbeds

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Credentials holds the partner API key and shared secret. Both blank is
// a valid configuration: the pipeline then serves synthetic inventory
// without attempting any vendor call.
type Credentials struct {
	APIKey string
	Secret string
}

// Configured reports whether both values are usable after trimming.
func (c Credentials) Configured() bool {
	return strings.TrimSpace(c.APIKey) != "" && strings.TrimSpace(c.Secret) != ""
}

// Headers returns the signed header set for one request, or nil when no
// usable credentials are configured. nil is a sentinel, not an error;
// callers must route it to the fallback path. The signature is a hex
// SHA-256 over apiKey+secret+unixSeconds, so it is bound to the issue
// time of the request that carries it.
func (c Credentials) Headers(now time.Time) http.Header {
	key := strings.TrimSpace(c.APIKey)
	secret := strings.TrimSpace(c.Secret)
	if key == "" || secret == "" {
		return nil
	}

	ts := strconv.FormatInt(now.Unix(), 10)
	sum := sha256.Sum256([]byte(key + secret + ts))

	h := http.Header{}
	h.Set("Api-Key", key)
	h.Set("X-Signature", hex.EncodeToString(sum[:]))
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")
	return h
}
