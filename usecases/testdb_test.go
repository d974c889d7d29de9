package usecases

import (
	"fmt"
	"testing"

	"distracto-server/db"
	"distracto-server/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// newTestDatabase opens an isolated in-memory sqlite database with the full
// schema migrated. cache=shared keeps the database alive across pooled
// connections; the uuid keeps tests from sharing state.
func newTestDatabase(t *testing.T) db.Database {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return db.Wrap(gdb)
}

func createTestUser(t *testing.T, database db.Database, email, displayName string) *entities.User {
	t.Helper()
	user := &entities.User{
		Email:       email,
		Password:    "hashed",
		DisplayName: displayName,
	}
	require.NoError(t, database.GetDB().Create(user).Error)
	return user
}
