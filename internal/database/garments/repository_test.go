package garments

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
	"github.com/edtailor/backend/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_garments_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

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

func TestRepository_CreateAndGet(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	garment := &entities.Garment{
		Name:                "Single-Breasted Jacket",
		Description:         "The foundational jacket with one column of buttons",
		GarmentType:         "Outerwear",
		FormalityLevel:      "Business",
		ConstructionDetails: "Notch lapels, two or three buttons",
		Language:            "en",
	}
	require.NoError(t, repo.Create(garment))
	assert.NotZero(t, garment.ID)

	fetched, err := repo.GetByID(garment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Single-Breasted Jacket", fetched.Name)
	assert.Equal(t, "Outerwear", fetched.GarmentType)
}

func TestRepository_GetByNameAndLanguage(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.Garment{Name: "Oxford Shirt", Language: "en"}))

	garment, err := repo.GetByNameAndLanguage("Oxford Shirt", "en")
	require.NoError(t, err)
	assert.Equal(t, "Oxford Shirt", garment.Name)

	_, err = repo.GetByNameAndLanguage("Oxford Shirt", "ru")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_List_FiltersByLanguage(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.Garment{Name: "Oxford Shirt", Language: "en"}))
	require.NoError(t, repo.Create(&entities.Garment{Name: "Оксфордская рубашка", Language: "ru"}))

	en, err := repo.List("en")
	require.NoError(t, err)
	require.Len(t, en, 1)
	assert.Equal(t, "Oxford Shirt", en[0].Name)
}

func TestRepository_Update_ReplacesEveryField(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	garment := &entities.Garment{
		Name:        "Oxford Shirt",
		StylingTips: "Wear under a crewneck",
		Language:    "en",
	}
	require.NoError(t, repo.Create(garment))

	updated, err := repo.Update(garment.ID, &entities.Garment{
		Name:     "Oxford Cloth Button-Down",
		Language: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, "Oxford Cloth Button-Down", updated.Name)
	assert.Empty(t, updated.StylingTips)
}

func TestRepository_Delete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	garment := &entities.Garment{Name: "Oxford Shirt", Language: "en"}
	require.NoError(t, repo.Create(garment))

	require.NoError(t, repo.Delete(garment.ID))

	_, err := repo.GetByID(garment.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(garment.ID), gorm.ErrRecordNotFound)
}
