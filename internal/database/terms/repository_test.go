package terms

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
	dbPath := "./test_terms_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

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

	term := &entities.Term{
		Term:       "Drape",
		Definition: "How fabric falls and moves under its own weight",
		Category:   "Design",
		Language:   "en",
	}
	require.NoError(t, repo.Create(term))
	assert.NotZero(t, term.ID)

	fetched, err := repo.GetByID(term.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drape", fetched.Term)
	assert.Equal(t, "Design", fetched.Category)
}

func TestRepository_Create_SameTermPerLanguage(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.Term{Term: "Bias", Definition: "The 45-degree diagonal of a fabric", Language: "en"}))

	// The same word may exist once per language.
	require.NoError(t, repo.Create(&entities.Term{Term: "Bias", Definition: "Косое направление ткани", Language: "ru"}))

	// A second entry for the same (term, language) pair must be rejected.
	err := repo.Create(&entities.Term{Term: "Bias", Definition: "Duplicate", Language: "en"})
	assert.Error(t, err)
}

func TestRepository_GetByTermAndLanguage(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.Term{Term: "Bias", Definition: "The 45-degree diagonal", Language: "en"}))
	require.NoError(t, repo.Create(&entities.Term{Term: "Bias", Definition: "Косое направление", Language: "ru"}))

	term, err := repo.GetByTermAndLanguage("Bias", "ru")
	require.NoError(t, err)
	assert.Equal(t, "Косое направление", term.Definition)

	_, err = repo.GetByTermAndLanguage("Bias", "de")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_List_FiltersByLanguage(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.Term{Term: "Drape", Definition: "...", Language: "en"}))
	require.NoError(t, repo.Create(&entities.Term{Term: "Basting", Definition: "...", Language: "en"}))
	require.NoError(t, repo.Create(&entities.Term{Term: "Драпировка", Definition: "...", Language: "ru"}))

	en, err := repo.List("en")
	require.NoError(t, err)
	assert.Len(t, en, 2)

	ru, err := repo.List("ru")
	require.NoError(t, err)
	assert.Len(t, ru, 1)
}

func TestRepository_Update_ReplacesEveryField(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	term := &entities.Term{
		Term:          "Drape",
		Definition:    "Old definition",
		Category:      "Design",
		Pronunciation: "/dreɪp/",
		Language:      "en",
	}
	require.NoError(t, repo.Create(term))

	updated, err := repo.Update(term.ID, &entities.Term{
		Term:       "Drape",
		Definition: "How fabric falls under its own weight",
		Language:   "en",
	})
	require.NoError(t, err)
	assert.Equal(t, "How fabric falls under its own weight", updated.Definition)
	assert.Empty(t, updated.Category)
	assert.Empty(t, updated.Pronunciation)
}

func TestRepository_Delete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	term := &entities.Term{Term: "Drape", Definition: "...", Language: "en"}
	require.NoError(t, repo.Create(term))

	require.NoError(t, repo.Delete(term.ID))

	_, err := repo.GetByID(term.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(term.ID), gorm.ErrRecordNotFound)
}
