package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officetools/internal/shared/biztime"
	"officetools/internal/shared/config"
	"officetools/internal/shared/constants"
	"officetools/internal/shared/logger"
)

func TestAdminKeyVerifier(t *testing.T) {
	hash, err := NewBcryptHasher(4).Hash("hashed-secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		cfg      config.AdminConfig
		key      string
		wantRole string
		wantOK   bool
	}{
		{"plain key", config.AdminConfig{Key: "s3cret"}, "s3cret", constants.RoleAdmin, true},
		{"wrong key", config.AdminConfig{Key: "s3cret"}, "s3cre", "", false},
		{"bcrypt hash", config.AdminConfig{KeyHash: hash}, "hashed-secret", constants.RoleAdmin, true},
		{"moderator key", config.AdminConfig{Key: "s3cret", ModeratorKey: "mod"}, "mod", constants.RoleModerator, true},
		{"empty key", config.AdminConfig{Key: "s3cret"}, "", "", false},
		{"fallback disabled", config.AdminConfig{}, "admin123", "", false},
		{"fallback enabled", config.AdminConfig{AllowInsecureFallback: true}, "admin123", constants.RoleAdmin, true},
		{"fallback ignored when key set", config.AdminConfig{Key: "s3cret", AllowInsecureFallback: true}, "admin123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewAdminKeyVerifier(tt.cfg, logger.NewNopLogger())
			role, ok := v.Verify(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, expiresIn, err := svc.Generate("moderator", constants.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, int64(900), expiresIn)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, constants.RoleModerator, claims.Role)
	assert.Equal(t, "moderator", claims.Subject)
}

func TestJWTService_RejectsExpiredAndForeignTokens(t *testing.T) {
	svc := NewJWTService("test-secret", 1)
	token, _, err := svc.Generate("admin", constants.RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTService("other-secret", 1).Verify(token)
	assert.Error(t, err)

	restore := biztime.SetNowForTest(time.Now().UTC().Add(2 * time.Minute))
	defer restore()

	_, err = svc.Verify(token)
	assert.Error(t, err)
}
