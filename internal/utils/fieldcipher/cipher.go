// Package fieldcipher provides reversible authenticated encryption for sensitive
// fields stored at rest, independent of password hashing.
package fieldcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// version tag embedded in every token so the format can evolve.
const tokenVersion = byte(1)

// KeySize is the required AES-256 key length in bytes.
const KeySize = 32

// Cipher encrypts and decrypts string fields with AES-256-GCM. Construct one per
// process at startup and share it; it holds no per-call state.
type Cipher struct {
	aead cipher.AEAD
}

// New creates a Cipher from a 32-byte key. A missing or wrong-size key is a
// startup error, not something to recover from per call.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("field cipher key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize field cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCM: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt produces a URL-safe self-describing token: base64url(version || nonce || ciphertext).
// A nil input yields the empty string, the explicit shortcut for "no value to protect".
// Two encryptions of the same plaintext differ because a fresh nonce is drawn per call.
func (c *Cipher) Encrypt(plaintext *string) (string, error) {
	if plaintext == nil {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nil, nonce, []byte(*plaintext), nil)

	token := make([]byte, 0, 1+len(nonce)+len(sealed))
	token = append(token, tokenVersion)
	token = append(token, nonce...)
	token = append(token, sealed...)

	return base64.RawURLEncoding.EncodeToString(token), nil
}

// Decrypt reverses Encrypt. Empty input yields nil. Any token that is malformed,
// tampered with, or sealed under a different key also yields nil; decryption
// failures never propagate as errors.
func (c *Cipher) Decrypt(ciphertext string) *string {
	if ciphertext == "" {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil
	}
	if len(raw) < 1+c.aead.NonceSize() || raw[0] != tokenVersion {
		return nil
	}

	nonce := raw[1 : 1+c.aead.NonceSize()]
	sealed := raw[1+c.aead.NonceSize():]

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil
	}

	result := string(plaintext)
	return &result
}

// EncryptString is a convenience wrapper for callers that treat the empty string
// as "no value".
func (c *Cipher) EncryptString(plaintext string) (string, error) {
	return c.Encrypt(&plaintext)
}

// DecryptString is a convenience wrapper returning the empty string when the
// token is empty or invalid.
func (c *Cipher) DecryptString(ciphertext string) string {
	if decrypted := c.Decrypt(ciphertext); decrypted != nil {
		return *decrypted
	}
	return ""
}
