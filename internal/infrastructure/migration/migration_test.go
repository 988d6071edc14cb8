package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"officetools/internal/shared/config"
	"officetools/internal/shared/constants"
	"officetools/internal/shared/logger"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestNewManager_SelectsStrategy(t *testing.T) {
	log := logger.NewNopLogger()

	tests := []struct {
		name     string
		cfg      config.DatabaseConfig
		expected string
		wantErr  bool
	}{
		{"default is goose", config.DatabaseConfig{Driver: "sqlite"}, StrategyGoose, false},
		{"auto migrate", config.DatabaseConfig{Driver: "sqlite", MigrationStrategy: "auto"}, StrategyAutoMigrate, false},
		{"golang-migrate on mysql", config.DatabaseConfig{Driver: "mysql", MigrationStrategy: StrategyGolangMigrate}, StrategyGolangMigrate, false},
		{"golang-migrate on sqlite", config.DatabaseConfig{Driver: "sqlite", MigrationStrategy: StrategyGolangMigrate}, "", true},
		{"unknown", config.DatabaseConfig{MigrationStrategy: "flyway"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewManager(&tt.cfg, log)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.GetStrategy().GetName())
		})
	}
}

func TestGooseStrategy_SQLiteUpAndDown(t *testing.T) {
	db := openMemoryDB(t)
	m, err := NewManager(&config.DatabaseConfig{Driver: "sqlite"}, logger.NewNopLogger())
	require.NoError(t, err)

	require.NoError(t, m.Migrate(db))

	for _, table := range []string{constants.TableReviews, constants.TableOrders, constants.TableSubscriptions} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	version, ok, err := m.Version(db)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1), version)

	// a second run is a no-op
	require.NoError(t, m.Migrate(db))

	require.NoError(t, m.Rollback(db, 1))
	assert.False(t, db.Migrator().HasTable(constants.TableOrders))
}

func TestGormAutoMigrateStrategy(t *testing.T) {
	db := openMemoryDB(t)
	m := NewManagerWithStrategy(NewGormAutoMigrateStrategy(logger.NewNopLogger()), logger.NewNopLogger())

	require.NoError(t, m.Migrate(db))
	assert.True(t, db.Migrator().HasTable(constants.TableSubscriptions))

	_, ok, err := m.Version(db)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Error(t, m.Rollback(db, 1))
}
