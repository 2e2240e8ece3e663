package scaffold

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// secretBytes is the entropy of a generated auth secret.
const secretBytes = 32

// GenerateSecret returns a fresh random hex token. It is generated once per
// invocation and reused wherever the same value is needed.
func GenerateSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
