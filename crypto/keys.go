// keys.go - Resolves and caches the field-encryption key
//
// Resolution order:
// 1. A key value supplied through configuration (ENCRYPTION_KEY)
// 2. A previously persisted key file (key.key by default)
// 3. A freshly generated key, persisted with owner-only permissions
//
// The resolved key is cached for the lifetime of the process.

package crypto // Declares the package name

import ( // Import required packages
	"crypto/rand"     // Secure random source for key generation
	"encoding/base64" // Key files and env values carry base64 text
	"errors"          // Sentinel errors
	"fmt"             // Error wrapping
	"os"              // Key file access
	"strings"         // Whitespace trimming of key material
	"sync"            // Mutex guarding first resolution
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// ErrKeyUnavailable - Returned when no key can be resolved or generated.
// The message never includes key material.
var ErrKeyUnavailable = errors.New("encryption key unavailable")

// KeyManager resolves the symmetric key once and hands out the cached
// copy afterwards. Construct one in main and share it by reference.
type KeyManager struct {
	mu         sync.Mutex // Guards first resolution so only one generated key is ever persisted
	key        []byte     // Cached key, read-only after first resolution
	configured string     // Key value from configuration (may be empty)
	path       string     // Key file path
}

// NewKeyManager - Creates a key manager for the given sources.
// configured is the base64 key from the environment ("" if unset);
// path is the key file location.
func NewKeyManager(configured, path string) *KeyManager {
	return &KeyManager{configured: configured, path: path}
}

// Resolve - Returns the process-wide encryption key, loading or
// generating it on first use. Safe for concurrent callers; a race on
// first resolution produces exactly one winner.
func (m *KeyManager) Resolve() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.key != nil { // Already resolved for this process
		return m.key, nil
	}

	// STEP 1: Key supplied through configuration takes priority
	if m.configured != "" {
		key, err := decodeKey(m.configured)
		if err != nil {
			return nil, fmt.Errorf("%w: configured key: %v", ErrKeyUnavailable, err)
		}
		m.key = key
		return m.key, nil
	}

	// STEP 2: Previously persisted key file
	if data, err := os.ReadFile(m.path); err == nil {
		key, err := decodeKey(string(data))
		if err != nil {
			return nil, fmt.Errorf("%w: key file %s: %v", ErrKeyUnavailable, m.path, err)
		}
		m.key = key
		return m.key, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: read key file %s: %v", ErrKeyUnavailable, m.path, err)
	}

	// STEP 3: Generate a new key and persist it with owner-only permissions
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%w: generate key: %v", ErrKeyUnavailable, err)
	}
	encoded := base64.URLEncoding.EncodeToString(key)
	if err := os.WriteFile(m.path, []byte(encoded), 0o600); err != nil {
		// Read-only storage: no persistent key can be established
		return nil, fmt.Errorf("%w: persist key file %s: %v", ErrKeyUnavailable, m.path, err)
	}
	m.key = key
	return m.key, nil
}

// decodeKey - Decodes base64 key text (URL-safe or standard alphabet)
// and checks the length.
func decodeKey(text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	key, err := base64.URLEncoding.DecodeString(text)
	if err != nil {
		key, err = base64.StdEncoding.DecodeString(text)
	}
	if err != nil {
		return nil, errors.New("not valid base64")
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("need %d key bytes, got %d", KeySize, len(key))
	}
	return key, nil
}
