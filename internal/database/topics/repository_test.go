package topics

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

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_topics_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

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

	return db, repo, cleanup
}

func createTestCategory(t *testing.T, db *gorm.DB, slug string) *entities.Category {
	category := &entities.Category{Name: "Category " + slug, Slug: slug, Language: "en"}
	require.NoError(t, db.Create(category).Error)
	return category
}

func TestRepository_CreateAndGet(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category := createTestCategory(t, db, "fabrics")

	topic := &entities.Topic{
		CategoryID:  category.ID,
		Name:        "Natural Fibers",
		Description: "Wool, cotton, linen and silk",
		Slug:        "natural-fibers",
		Language:    "en",
	}
	require.NoError(t, repo.Create(topic))
	assert.NotZero(t, topic.ID)

	fetched, err := repo.GetByID(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "Natural Fibers", fetched.Name)
	assert.Equal(t, category.ID, fetched.CategoryID)

	bySlug, err := repo.GetBySlug("natural-fibers")
	require.NoError(t, err)
	assert.Equal(t, topic.ID, bySlug.ID)
}

func TestRepository_Create_MissingCategory(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Create(&entities.Topic{CategoryID: 999, Name: "Orphan", Slug: "orphan", Language: "en"})

	assert.Error(t, err)
}

func TestRepository_List_FiltersByLanguage(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category := createTestCategory(t, db, "fabrics")

	require.NoError(t, repo.Create(&entities.Topic{CategoryID: category.ID, Name: "Natural Fibers", Slug: "natural-fibers", Language: "en"}))
	require.NoError(t, repo.Create(&entities.Topic{CategoryID: category.ID, Name: "Натуральные волокна", Slug: "natural-fibers-ru", Language: "ru"}))

	en, err := repo.List("en")
	require.NoError(t, err)
	require.Len(t, en, 1)
	assert.Equal(t, "Natural Fibers", en[0].Name)

	ru, err := repo.List("ru")
	require.NoError(t, err)
	assert.Len(t, ru, 1)
}

func TestRepository_Update_ReplacesEveryField(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category := createTestCategory(t, db, "fabrics")
	other := createTestCategory(t, db, "tailoring")

	topic := &entities.Topic{CategoryID: category.ID, Name: "Natural Fibers", Description: "Old", Slug: "natural-fibers", Language: "en"}
	require.NoError(t, repo.Create(topic))

	updated, err := repo.Update(topic.ID, &entities.Topic{
		CategoryID: other.ID,
		Name:       "Synthetic Fibers",
		Slug:       "synthetic-fibers",
		Language:   "en",
	})
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.CategoryID)
	assert.Equal(t, "Synthetic Fibers", updated.Name)
	assert.Empty(t, updated.Description)
}

func TestRepository_Update_NotFound(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Update(999, &entities.Topic{CategoryID: 1, Name: "X", Slug: "x", Language: "en"})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Delete_CascadesToLessons(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category := createTestCategory(t, db, "fabrics")
	topic := &entities.Topic{CategoryID: category.ID, Name: "Natural Fibers", Slug: "natural-fibers", Language: "en"}
	require.NoError(t, repo.Create(topic))

	lesson := &entities.Lesson{TopicID: topic.ID, Title: "Why Wool Breathes", Slug: "why-wool-breathes", Content: "...", Language: "en"}
	require.NoError(t, db.Create(lesson).Error)

	require.NoError(t, repo.Delete(topic.ID))

	var lessonCount int64
	require.NoError(t, db.Model(&entities.Lesson{}).Count(&lessonCount).Error)
	assert.Zero(t, lessonCount)

	assert.ErrorIs(t, repo.Delete(topic.ID), gorm.ErrRecordNotFound)
}
