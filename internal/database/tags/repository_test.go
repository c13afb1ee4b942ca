package tags

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/edtailor/backend/internal/database"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_tags_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?_fk=1", dbPath)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_GetOrCreate(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	tag, err := repo.GetOrCreate("beginner-friendly")
	require.NoError(t, err)
	assert.NotZero(t, tag.ID)

	// A second call with the same name returns the existing row.
	again, err := repo.GetOrCreate("beginner-friendly")
	require.NoError(t, err)
	assert.Equal(t, tag.ID, again.ID)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepository_List(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetOrCreate("wool")
	require.NoError(t, err)
	_, err = repo.GetOrCreate("suiting")
	require.NoError(t, err)

	all, err := repo.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "wool", all[0].Name)
	assert.Equal(t, "suiting", all[1].Name)
}

func TestRepository_Delete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	tag, err := repo.GetOrCreate("wool")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(tag.ID))

	_, err = repo.GetByID(tag.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(tag.ID), gorm.ErrRecordNotFound)
}
