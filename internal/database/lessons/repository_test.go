package lessons

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
	dbPath := "./test_lessons_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

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

func createTestTopic(t *testing.T, db *gorm.DB) *entities.Topic {
	category := &entities.Category{Name: "Fabrics", Slug: "fabrics", Language: "en"}
	require.NoError(t, db.Create(category).Error)

	topic := &entities.Topic{CategoryID: category.ID, Name: "Natural Fibers", Slug: "natural-fibers", Language: "en"}
	require.NoError(t, db.Create(topic).Error)
	return topic
}

func createTestLesson(t *testing.T, repo *Repository, topicID uint, title, slug, language string) *entities.Lesson {
	lesson := &entities.Lesson{
		TopicID:  topicID,
		Title:    title,
		Slug:     slug,
		Content:  "Lesson body for " + title,
		Language: language,
	}
	require.NoError(t, repo.Create(lesson))
	return lesson
}

func TestRepository_CreateAndGet(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, db)

	readingTime := 6
	lesson := &entities.Lesson{
		TopicID:            topic.ID,
		Title:              "Why Wool Breathes",
		Slug:               "why-wool-breathes",
		Summary:            "Wool fiber crimp and comfort",
		Content:            "Wool fibers have a natural crimp...",
		ReadingTimeMinutes: &readingTime,
		DifficultyLevel:    "Beginner",
		Language:           "en",
	}
	require.NoError(t, repo.Create(lesson))
	assert.NotZero(t, lesson.ID)

	fetched, err := repo.GetByID(lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, "Why Wool Breathes", fetched.Title)
	require.NotNil(t, fetched.ReadingTimeMinutes)
	assert.Equal(t, 6, *fetched.ReadingTimeMinutes)

	bySlug, err := repo.GetBySlug("why-wool-breathes")
	require.NoError(t, err)
	assert.Equal(t, lesson.ID, bySlug.ID)
}

func TestRepository_ListAll_SpansLanguages(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, db)

	createTestLesson(t, repo, topic.ID, "Why Wool Breathes", "why-wool-breathes", "en")
	createTestLesson(t, repo, topic.ID, "Почему шерсть дышит", "why-wool-breathes-ru", "ru")

	lessons, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, lessons, 2)
}

func TestRepository_ListByTopic(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, db)

	createTestLesson(t, repo, topic.ID, "Why Wool Breathes", "why-wool-breathes", "en")
	createTestLesson(t, repo, topic.ID, "Почему шерсть дышит", "why-wool-breathes-ru", "ru")

	en, err := repo.ListByTopic(topic.ID, "en")
	require.NoError(t, err)
	require.Len(t, en, 1)
	assert.Equal(t, "Why Wool Breathes", en[0].Title)

	_, err = repo.ListByTopic(999, "en")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Update_KeepsReferences(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, db)
	lesson := createTestLesson(t, repo, topic.ID, "Why Wool Breathes", "why-wool-breathes", "en")

	fabric := &entities.Fabric{Name: "Worsted Wool", Language: "en"}
	require.NoError(t, db.Create(fabric).Error)
	require.NoError(t, repo.AddFabric(lesson.ID, fabric.ID, "primary example"))

	updated, err := repo.Update(lesson.ID, &entities.Lesson{
		TopicID:  topic.ID,
		Title:    "How Wool Breathes",
		Slug:     "how-wool-breathes",
		Content:  "Revised body",
		Language: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, "How Wool Breathes", updated.Title)
	assert.Empty(t, updated.Summary)
	assert.Nil(t, updated.ReadingTimeMinutes)

	withRefs, err := repo.GetWithRefs(lesson.ID)
	require.NoError(t, err)
	assert.Len(t, withRefs.Fabrics, 1)
}

func TestRepository_Delete(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, db)
	lesson := createTestLesson(t, repo, topic.ID, "Why Wool Breathes", "why-wool-breathes", "en")

	require.NoError(t, repo.Delete(lesson.ID))

	_, err := repo.GetByID(lesson.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(lesson.ID), gorm.ErrRecordNotFound)
}

func TestRepository_AddFabric_StoresNote(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, db)
	lesson := createTestLesson(t, repo, topic.ID, "Why Wool Breathes", "why-wool-breathes", "en")

	fabric := &entities.Fabric{Name: "Worsted Wool", Language: "en"}
	require.NoError(t, db.Create(fabric).Error)

	require.NoError(t, repo.AddFabric(lesson.ID, fabric.ID, "the lesson's running example"))

	var join entities.LessonFabric
	require.NoError(t, db.Where("lesson_id = ? AND fabric_id = ?", lesson.ID, fabric.ID).First(&join).Error)
	assert.Equal(t, "the lesson's running example", join.Note)

	withRefs, err := repo.GetWithRefs(lesson.ID)
	require.NoError(t, err)
	require.Len(t, withRefs.Fabrics, 1)
	assert.Equal(t, "Worsted Wool", withRefs.Fabrics[0].Name)
}

func TestRepository_AddFabric_MissingEndpoints(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, db)
	lesson := createTestLesson(t, repo, topic.ID, "Why Wool Breathes", "why-wool-breathes", "en")

	assert.ErrorIs(t, repo.AddFabric(lesson.ID, 999, ""), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.AddFabric(999, 1, ""), gorm.ErrRecordNotFound)
}

func TestRepository_RemoveFabric(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, db)
	lesson := createTestLesson(t, repo, topic.ID, "Why Wool Breathes", "why-wool-breathes", "en")

	fabric := &entities.Fabric{Name: "Worsted Wool", Language: "en"}
	require.NoError(t, db.Create(fabric).Error)
	require.NoError(t, repo.AddFabric(lesson.ID, fabric.ID, ""))

	require.NoError(t, repo.RemoveFabric(lesson.ID, fabric.ID))

	withRefs, err := repo.GetWithRefs(lesson.ID)
	require.NoError(t, err)
	assert.Empty(t, withRefs.Fabrics)

	// The fabric itself survives the unlink.
	var count int64
	require.NoError(t, db.Model(&entities.Fabric{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRepository_AddGarment_StoresNote(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, db)
	lesson := createTestLesson(t, repo, topic.ID, "Why Wool Breathes", "why-wool-breathes", "en")

	garment := &entities.Garment{Name: "Single-Breasted Jacket", Language: "en"}
	require.NoError(t, db.Create(garment).Error)

	require.NoError(t, repo.AddGarment(lesson.ID, garment.ID, "canonical worsted application"))

	var join entities.LessonGarment
	require.NoError(t, db.Where("lesson_id = ? AND garment_id = ?", lesson.ID, garment.ID).First(&join).Error)
	assert.Equal(t, "canonical worsted application", join.Note)

	require.NoError(t, repo.RemoveGarment(lesson.ID, garment.ID))
	withRefs, err := repo.GetWithRefs(lesson.ID)
	require.NoError(t, err)
	assert.Empty(t, withRefs.Garments)
}

func TestRepository_AddAndRemoveTerm(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, db)
	lesson := createTestLesson(t, repo, topic.ID, "Why Wool Breathes", "why-wool-breathes", "en")

	term := &entities.Term{Term: "Drape", Definition: "How fabric falls under its own weight", Language: "en"}
	require.NoError(t, db.Create(term).Error)

	require.NoError(t, repo.AddTerm(lesson.ID, term.ID))

	withRefs, err := repo.GetWithRefs(lesson.ID)
	require.NoError(t, err)
	require.Len(t, withRefs.Terms, 1)
	assert.Equal(t, "Drape", withRefs.Terms[0].Term)

	require.NoError(t, repo.RemoveTerm(lesson.ID, term.ID))
	withRefs, err = repo.GetWithRefs(lesson.ID)
	require.NoError(t, err)
	assert.Empty(t, withRefs.Terms)

	assert.ErrorIs(t, repo.AddTerm(lesson.ID, 999), gorm.ErrRecordNotFound)
}

func TestRepository_AddAndRemoveTag(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, db)
	lesson := createTestLesson(t, repo, topic.ID, "Why Wool Breathes", "why-wool-breathes", "en")

	tag := &entities.Tag{Name: "beginner-friendly"}
	require.NoError(t, db.Create(tag).Error)

	require.NoError(t, repo.AddTag(lesson.ID, tag.ID))

	withRefs, err := repo.GetWithRefs(lesson.ID)
	require.NoError(t, err)
	require.Len(t, withRefs.Tags, 1)

	require.NoError(t, repo.RemoveTag(lesson.ID, tag.ID))
	withRefs, err = repo.GetWithRefs(lesson.ID)
	require.NoError(t, err)
	assert.Empty(t, withRefs.Tags)
}

func TestRepository_Delete_RemovesJoinRows(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	topic := createTestTopic(t, db)
	lesson := createTestLesson(t, repo, topic.ID, "Why Wool Breathes", "why-wool-breathes", "en")

	fabric := &entities.Fabric{Name: "Worsted Wool", Language: "en"}
	require.NoError(t, db.Create(fabric).Error)
	require.NoError(t, repo.AddFabric(lesson.ID, fabric.ID, "note"))

	require.NoError(t, repo.Delete(lesson.ID))

	var joinCount int64
	require.NoError(t, db.Model(&entities.LessonFabric{}).Count(&joinCount).Error)
	assert.Zero(t, joinCount)
}
