package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"officetools/internal/shared/constants"
	"officetools/internal/shared/logger"
)

func setupEnforcer(t *testing.T) (*Enforcer, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	e, err := NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)
	return e, db
}

func TestEnforcer_DefaultPolicies(t *testing.T) {
	e, _ := setupEnforcer(t)

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{constants.RoleAdmin, ResourceOrders, ActionApprove, true},
		{constants.RoleAdmin, ResourceReviews, ActionDelete, true},
		{constants.RoleModerator, ResourceReviews, ActionPin, true},
		{constants.RoleModerator, ResourceOrders, ActionRead, false},
		{constants.RoleModerator, ResourceOrders, ActionApprove, false},
		{"anonymous", ResourceReviews, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.resource+"/"+tt.action, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestEnforcer_SeedIsIdempotent(t *testing.T) {
	_, db := setupEnforcer(t)

	var before int64
	require.NoError(t, db.Table("casbin_rule").Count(&before).Error)

	_, err := NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)

	var after int64
	require.NoError(t, db.Table("casbin_rule").Count(&after).Error)
	assert.Equal(t, before, after)
	assert.Equal(t, int64(len(defaultPolicies)+1), after)
}
