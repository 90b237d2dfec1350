// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables
)

type Config struct { // Config struct holds all configuration values
	ListenAddr    string // Address the web server listens on
	DBPath        string // Path to the SQLite database file
	JWTSecret     string // Secret key for JWT authentication
	EncryptionKey string // Base64 field-encryption key (optional; key file used otherwise)
	KeyPath       string // Path to the persisted key file
	SeedPath      string // Path to the YAML seed file ("" disables seeding)
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),      // Get listen address or use default
		DBPath:        getEnv("DB_PATH", "app.db"),         // Get DB path or use default
		JWTSecret:     getEnv("JWT_SECRET", "supersecret"), // Get JWT secret or use default
		EncryptionKey: os.Getenv("ENCRYPTION_KEY"),         // Field-encryption key (no default on purpose)
		KeyPath:       getEnv("KEY_PATH", "key.key"),       // Key file path or use default
		SeedPath:      os.Getenv("SEED_PATH"),              // Seed file path (empty = no seeding)
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
