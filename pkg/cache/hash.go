package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 digest of data. The batch runner applies it
// to the JSON form of a constraint set, which keeps declaration order, so
// reordering fields yields a different key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns "<kind>:<digest>" where the digest covers parts encoded as
// one JSON array. Encoding as an array keeps ("ab", "c") and ("a", "bc")
// apart.
func hashKey(kind string, parts ...any) string {
	data, err := json.Marshal(parts)
	if err != nil {
		// Key parts are strings and plain structs; this cannot happen.
		panic("cache: encode key parts: " + err.Error())
	}
	return kind + ":" + Hash(data)
}
