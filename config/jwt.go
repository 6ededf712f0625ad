package config

import (
	"log/slog"
	"os"
)

// JwtKey signs and verifies session tokens. Loaded once at startup.
var JwtKey []byte

// TokenTTLHours is how long an issued session token stays valid.
const TokenTTLHours = 8

// LoadJWTKey reads the signing secret from JWT_SECRET. A missing secret is
// fatal; tokens must never be signed with an empty key.
func LoadJWTKey() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET environment variable is not set")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}
