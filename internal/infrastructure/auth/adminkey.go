package auth

import (
	"crypto/subtle"

	"officetools/internal/shared/config"
	"officetools/internal/shared/constants"
	"officetools/internal/shared/logger"
)

// insecureFallbackKey is only accepted when explicitly allowed and no
// admin key is configured.
const insecureFallbackKey = "admin123"

// AdminKeyVerifier maps a presented shared key to a role.
type AdminKeyVerifier struct {
	key          string
	keyHash      string
	moderatorKey string
	useFallback  bool
	hasher       *BcryptHasher
}

func NewAdminKeyVerifier(cfg config.AdminConfig, log logger.Interface) *AdminKeyVerifier {
	useFallback := cfg.AllowInsecureFallback && cfg.Key == "" && cfg.KeyHash == ""
	if useFallback {
		log.Warnw("admin key not configured, accepting the insecure fallback key",
			"setting", "admin.allow_insecure_fallback")
	} else if cfg.Key == "" && cfg.KeyHash == "" {
		log.Warnw("admin key not configured, admin endpoints are locked")
	}

	return &AdminKeyVerifier{
		key:          cfg.Key,
		keyHash:      cfg.KeyHash,
		moderatorKey: cfg.ModeratorKey,
		useFallback:  useFallback,
		hasher:       NewBcryptHasher(0),
	}
}

// Verify returns the role granted by key, or false when the key matches nothing.
func (v *AdminKeyVerifier) Verify(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	switch {
	case v.key != "" && constantTimeEqual(key, v.key):
		return constants.RoleAdmin, true
	case v.keyHash != "" && v.hasher.Verify(key, v.keyHash) == nil:
		return constants.RoleAdmin, true
	case v.useFallback && constantTimeEqual(key, insecureFallbackKey):
		return constants.RoleAdmin, true
	case v.moderatorKey != "" && constantTimeEqual(key, v.moderatorKey):
		return constants.RoleModerator, true
	}
	return "", false
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
