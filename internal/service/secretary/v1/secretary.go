// Package secretary provides methods for ciphering session tokens.
package secretary

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"

	"github.com/danilovkiri/dk_go_story_feed/internal/service/secretary"
)

// Check interface implementation explicitly
var (
	_ secretary.Secretary = (*Secretary)(nil)
)

// tokenEncoding keeps sealed tokens safe for query strings and JSON.
var tokenEncoding = base64.RawURLEncoding

// Secretary seals short strings (usernames, remote API tokens) with AES-GCM under a key derived from USER_KEY.
// Sealing is deterministic: the same input always yields the same token.
type Secretary struct {
	sealer cipher.AEAD
	nonce  []byte
}

// NewSecretaryService initializes a secretary service keyed by userKey.
func NewSecretaryService(userKey string) *Secretary {
	key := sha256.Sum256([]byte(userKey))
	// a 32-byte key always yields a valid AES-256 block and GCM mode
	block, _ := aes.NewCipher(key[:])
	sealer, _ := cipher.NewGCM(block)
	return &Secretary{
		sealer: sealer,
		nonce:  key[len(key)-sealer.NonceSize():],
	}
}

// Encode seals data into a URL-safe token.
func (s *Secretary) Encode(data string) string {
	return tokenEncoding.EncodeToString(s.sealer.Seal(nil, s.nonce, []byte(data), nil))
}

// Decode opens a token produced by Encode with the same key.
func (s *Secretary) Decode(token string) (string, error) {
	sealed, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	data, err := s.sealer.Open(nil, s.nonce, sealed, nil)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
