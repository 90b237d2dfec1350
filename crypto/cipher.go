// cipher.go - Authenticated encryption for sensitive text fields
//
// Fields are sealed with AES-256-GCM. Each ciphertext starts with a
// fresh random nonce, so encrypting the same plaintext twice yields
// different bytes, and any tampering fails authentication on decrypt.

package crypto // Declares the package name

import ( // Import required packages
	aescipher "crypto/aes" // AES block cipher
	"crypto/cipher"        // GCM mode
	"crypto/rand"          // Nonce generation
	"errors"               // Sentinel errors
	"fmt"                  // Error wrapping
	"strings"              // Plaintext trimming
	"unicode/utf8"         // Input validation
)

var (
	// ErrInvalidInput - The value handed to Encrypt/Decrypt is unusable
	// (non-UTF-8 plaintext, nil ciphertext).
	ErrInvalidInput = errors.New("invalid input")

	// ErrDecryptionFailed - Ciphertext is malformed, was sealed under a
	// different key, or has been tampered with. Callers must treat this
	// as a distinguishable failure, never as plaintext.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// FieldCipher encrypts and decrypts individual text fields using the
// key manager's process-wide key. Construct once at startup and pass
// by reference to the record store.
type FieldCipher struct {
	keys *KeyManager
}

// NewFieldCipher - Creates a field cipher backed by the given key manager.
func NewFieldCipher(keys *KeyManager) *FieldCipher {
	return &FieldCipher{keys: keys}
}

// Encrypt - Seals a plaintext field, returning nonce||ciphertext bytes.
// Surrounding whitespace is trimmed before encryption.
func (c *FieldCipher) Encrypt(plain string) ([]byte, error) {
	if !utf8.ValidString(plain) {
		return nil, fmt.Errorf("%w: plaintext is not valid UTF-8", ErrInvalidInput)
	}
	gcm, err := c.aead()
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	trimmed := strings.TrimSpace(plain)
	// Seal appends the ciphertext to the nonce so one blob holds both.
	return gcm.Seal(nonce, nonce, []byte(trimmed), nil), nil
}

// Decrypt - Opens nonce||ciphertext bytes back into the plaintext string.
func (c *FieldCipher) Decrypt(ciphertext []byte) (string, error) {
	if ciphertext == nil {
		return "", fmt.Errorf("%w: nil ciphertext", ErrInvalidInput)
	}
	gcm, err := c.aead()
	if err != nil {
		return "", err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}
	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		// Authentication failure: wrong key or tampered bytes.
		// The underlying error is dropped so nothing about the
		// ciphertext or key leaks into messages.
		return "", ErrDecryptionFailed
	}
	return string(plain), nil
}

// aead - Builds the GCM instance from the resolved key.
func (c *FieldCipher) aead() (cipher.AEAD, error) {
	key, err := c.keys.Resolve()
	if err != nil {
		return nil, err
	}
	block, err := aescipher.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyUnavailable, err)
	}
	return cipher.NewGCM(block)
}
