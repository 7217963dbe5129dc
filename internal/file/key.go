package file

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// tokenBytes is the entropy of the random key segment: 16 bytes → 32 hex
// characters. Uniqueness is probabilistic — no check against existing keys
// is ever made.
const tokenBytes = 16

// NewStorageKey derives an object key from the original filename and an
// optional folder prefix. The key has the shape
//
//	{folder}/{token}.{ext}
//
// where the folder segment and the extension suffix are each omitted when
// absent. token always comes from crypto/rand: it is the sole uniqueness
// and unguessability guarantee for publicly reachable keys.
//
// folder is used verbatim; callers own any sanitizing they need.
func NewStorageKey(originalName, folder string) (key, token string, err error) {
	buf := make([]byte, tokenBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(buf)

	key = token
	if ext := extension(originalName); ext != "" {
		key += "." + ext
	}
	if folder != "" {
		key = folder + "/" + key
	}
	return key, token, nil
}

// extension returns the substring after the last dot in name, or "" when
// name has no dot (or ends with one).
func extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i+1:]
}
