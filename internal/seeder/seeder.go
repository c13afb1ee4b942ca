// Package seeder loads the bundled JSON fixtures into the database. Runs
// are idempotent: records whose natural key already exists are skipped, so
// reseeding never duplicates content. Existing rows are never updated, even
// when the fixture text has changed.
package seeder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/edtailor/backend/internal/database/categories"
	"github.com/edtailor/backend/internal/database/fabrics"
	"github.com/edtailor/backend/internal/database/garments"
	"github.com/edtailor/backend/internal/database/lessons"
	"github.com/edtailor/backend/internal/database/terms"
	"github.com/edtailor/backend/internal/database/topics"
	"github.com/edtailor/backend/internal/entities"
	"github.com/edtailor/backend/internal/logger"
)

// Seeder upserts fixture records through the entity repositories.
type Seeder struct {
	categories *categories.Repository
	topics     *topics.Repository
	lessons    *lessons.Repository
	fabrics    *fabrics.Repository
	garments   *garments.Repository
	terms      *terms.Repository
	log        *logger.Logger
}

func New(db *gorm.DB, log *logger.Logger) *Seeder {
	return &Seeder{
		categories: categories.NewRepository(db),
		topics:     topics.NewRepository(db),
		lessons:    lessons.NewRepository(db),
		fabrics:    fabrics.NewRepository(db),
		garments:   garments.NewRepository(db),
		terms:      terms.NewRepository(db),
		log:        log.With("component", "seeder"),
	}
}

// Run seeds every fixture found in dataDir, English first, then Russian.
// A missing or malformed fixture file aborts that file only; the run
// continues with the rest.
func (s *Seeder) Run(dataDir string) {
	fixtures := []struct {
		file string
		load func(path string) error
	}{
		{"educational_content.json", s.SeedContent},
		{"fabrics.json", s.SeedFabrics},
		{"garments.json", s.SeedGarments},
		{"terms.json", s.SeedTerms},
		{"educational_content_ru.json", s.SeedContent},
		{"fabrics_ru.json", s.SeedFabrics},
		{"garments_ru.json", s.SeedGarments},
		{"terms_ru.json", s.SeedTerms},
	}

	for _, f := range fixtures {
		path := filepath.Join(dataDir, f.file)
		if err := f.load(path); err != nil {
			s.log.Error("fixture load failed", "file", f.file, "error", err)
			continue
		}
	}
}

type contentFixture struct {
	Categories []categoryRecord `json:"categories"`
	Topics     []topicRecord    `json:"topics"`
	Lessons    []lessonRecord   `json:"lessons"`
}

type categoryRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	IconURL     string `json:"icon_url"`
	Language    string `json:"language"`
}

type topicRecord struct {
	CategorySlug string `json:"category_slug"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Slug         string `json:"slug"`
	Language     string `json:"language"`
}

type lessonRecord struct {
	TopicSlug          string `json:"topic_slug"`
	Title              string `json:"title"`
	Slug               string `json:"slug"`
	Summary            string `json:"summary"`
	Content            string `json:"content"`
	ReadingTimeMinutes *int   `json:"reading_time_minutes"`
	DifficultyLevel    string `json:"difficulty_level"`
	ImageURL           string `json:"image_url"`
	Language           string `json:"language"`
}

type fabricsFixture struct {
	Fabrics []fabricRecord `json:"fabrics"`
}

type fabricRecord struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	FiberContent     string          `json:"fiber_content"`
	FiberType        string          `json:"fiber_type"`
	Weight           string          `json:"weight"`
	WeaveType        string          `json:"weave_type"`
	Drape            string          `json:"drape"`
	Texture          string          `json:"texture"`
	CareInstructions string          `json:"care_instructions"`
	CommonUses       string          `json:"common_uses"`
	Properties       json.RawMessage `json:"properties"`
	Season           string          `json:"season"`
	ImageURL         string          `json:"image_url"`
	Language         string          `json:"language"`
}

type garmentsFixture struct {
	Garments []garmentRecord `json:"garments"`
}

type garmentRecord struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	GarmentType         string `json:"garment_type"`
	FormalityLevel      string `json:"formality_level"`
	ConstructionDetails string `json:"construction_details"`
	KeyFeatures         string `json:"key_features"`
	HistoricalContext   string `json:"historical_context"`
	StylingTips         string `json:"styling_tips"`
	ImageURL            string `json:"image_url"`
	Language            string `json:"language"`
}

type termsFixture struct {
	Terms []termRecord `json:"terms"`
}

type termRecord struct {
	Term          string `json:"term"`
	Definition    string `json:"definition"`
	Category      string `json:"category"`
	Pronunciation string `json:"pronunciation"`
	ImageURL      string `json:"image_url"`
	Language      string `json:"language"`
}

func loadJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixture: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", filepath.Base(path), err)
	}
	return nil
}

func datatypesJSON(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}

func languageOrDefault(language string) string {
	if language == "" {
		return entities.DefaultLanguage
	}
	return language
}

// SeedContent seeds categories, topics and lessons from one fixture file.
// Categories commit first so that topics can resolve category_slug, and
// topics commit before lessons for the same reason. An unresolved slug
// skips that one record with a logged error.
func (s *Seeder) SeedContent(path string) error {
	var data contentFixture
	if err := loadJSONFile(path, &data); err != nil {
		return err
	}

	categoryIDs := make(map[string]uint)
	for _, rec := range data.Categories {
		existing, err := s.categories.GetBySlug(rec.Slug)
		if err == nil {
			s.log.Warn("category already exists, skipping", "name", rec.Name)
			categoryIDs[rec.Slug] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up category %q: %w", rec.Slug, err)
		}

		category := &entities.Category{
			Name:        rec.Name,
			Description: rec.Description,
			Slug:        rec.Slug,
			IconURL:     rec.IconURL,
			Language:    languageOrDefault(rec.Language),
		}
		if err := s.categories.Create(category); err != nil {
			return fmt.Errorf("failed to create category %q: %w", rec.Slug, err)
		}
		categoryIDs[rec.Slug] = category.ID
		s.log.Info("created category", "name", rec.Name)
	}

	topicIDs := make(map[string]uint)
	for _, rec := range data.Topics {
		categoryID, ok := categoryIDs[rec.CategorySlug]
		if !ok {
			s.log.Error("category not found for slug, skipping topic",
				"category_slug", rec.CategorySlug, "topic", rec.Name)
			continue
		}

		existing, err := s.topics.GetBySlug(rec.Slug)
		if err == nil {
			s.log.Warn("topic already exists, skipping", "name", rec.Name)
			topicIDs[rec.Slug] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up topic %q: %w", rec.Slug, err)
		}

		topic := &entities.Topic{
			CategoryID:  categoryID,
			Name:        rec.Name,
			Description: rec.Description,
			Slug:        rec.Slug,
			Language:    languageOrDefault(rec.Language),
		}
		if err := s.topics.Create(topic); err != nil {
			return fmt.Errorf("failed to create topic %q: %w", rec.Slug, err)
		}
		topicIDs[rec.Slug] = topic.ID
		s.log.Info("created topic", "name", rec.Name)
	}

	for _, rec := range data.Lessons {
		topicID, ok := topicIDs[rec.TopicSlug]
		if !ok {
			s.log.Error("topic not found for slug, skipping lesson",
				"topic_slug", rec.TopicSlug, "lesson", rec.Title)
			continue
		}

		if _, err := s.lessons.GetBySlug(rec.Slug); err == nil {
			s.log.Warn("lesson already exists, skipping", "title", rec.Title)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up lesson %q: %w", rec.Slug, err)
		}

		lesson := &entities.Lesson{
			TopicID:            topicID,
			Title:              rec.Title,
			Slug:               rec.Slug,
			Summary:            rec.Summary,
			Content:            rec.Content,
			ReadingTimeMinutes: rec.ReadingTimeMinutes,
			DifficultyLevel:    rec.DifficultyLevel,
			ImageURL:           rec.ImageURL,
			Language:           languageOrDefault(rec.Language),
		}
		if err := s.lessons.Create(lesson); err != nil {
			return fmt.Errorf("failed to create lesson %q: %w", rec.Slug, err)
		}
		s.log.Info("created lesson", "title", rec.Title)
	}

	return nil
}

// SeedFabrics seeds the fabric library from one fixture file, keyed on
// (name, language).
func (s *Seeder) SeedFabrics(path string) error {
	var data fabricsFixture
	if err := loadJSONFile(path, &data); err != nil {
		return err
	}

	count := 0
	for _, rec := range data.Fabrics {
		language := languageOrDefault(rec.Language)
		if _, err := s.fabrics.GetByNameAndLanguage(rec.Name, language); err == nil {
			s.log.Warn("fabric already exists, skipping", "name", rec.Name)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up fabric %q: %w", rec.Name, err)
		}

		fabric := &entities.Fabric{
			Name:             rec.Name,
			Description:      rec.Description,
			FiberContent:     rec.FiberContent,
			FiberType:        rec.FiberType,
			Weight:           rec.Weight,
			WeaveType:        rec.WeaveType,
			Drape:            rec.Drape,
			Texture:          rec.Texture,
			CareInstructions: rec.CareInstructions,
			CommonUses:       rec.CommonUses,
			Properties:       datatypesJSON(rec.Properties),
			Season:           rec.Season,
			ImageURL:         rec.ImageURL,
			Language:         language,
		}
		if err := s.fabrics.Create(fabric); err != nil {
			return fmt.Errorf("failed to create fabric %q: %w", rec.Name, err)
		}
		count++
		s.log.Info("created fabric", "name", rec.Name)
	}
	s.log.Info("fabrics seeded", "created", count)

	return nil
}

// SeedGarments seeds the garment encyclopedia from one fixture file, keyed
// on (name, language).
func (s *Seeder) SeedGarments(path string) error {
	var data garmentsFixture
	if err := loadJSONFile(path, &data); err != nil {
		return err
	}

	count := 0
	for _, rec := range data.Garments {
		language := languageOrDefault(rec.Language)
		if _, err := s.garments.GetByNameAndLanguage(rec.Name, language); err == nil {
			s.log.Warn("garment already exists, skipping", "name", rec.Name)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up garment %q: %w", rec.Name, err)
		}

		garment := &entities.Garment{
			Name:                rec.Name,
			Description:         rec.Description,
			GarmentType:         rec.GarmentType,
			FormalityLevel:      rec.FormalityLevel,
			ConstructionDetails: rec.ConstructionDetails,
			KeyFeatures:         rec.KeyFeatures,
			HistoricalContext:   rec.HistoricalContext,
			StylingTips:         rec.StylingTips,
			ImageURL:            rec.ImageURL,
			Language:            language,
		}
		if err := s.garments.Create(garment); err != nil {
			return fmt.Errorf("failed to create garment %q: %w", rec.Name, err)
		}
		count++
		s.log.Info("created garment", "name", rec.Name)
	}
	s.log.Info("garments seeded", "created", count)

	return nil
}

// SeedTerms seeds the glossary from one fixture file, keyed on
// (term, language).
func (s *Seeder) SeedTerms(path string) error {
	var data termsFixture
	if err := loadJSONFile(path, &data); err != nil {
		return err
	}

	count := 0
	for _, rec := range data.Terms {
		language := languageOrDefault(rec.Language)
		if _, err := s.terms.GetByTermAndLanguage(rec.Term, language); err == nil {
			s.log.Warn("term already exists, skipping", "term", rec.Term)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up term %q: %w", rec.Term, err)
		}

		term := &entities.Term{
			Term:          rec.Term,
			Definition:    rec.Definition,
			Category:      rec.Category,
			Pronunciation: rec.Pronunciation,
			ImageURL:      rec.ImageURL,
			Language:      language,
		}
		if err := s.terms.Create(term); err != nil {
			return fmt.Errorf("failed to create term %q: %w", rec.Term, err)
		}
		count++
		s.log.Info("created term", "term", rec.Term)
	}
	s.log.Info("terms seeded", "created", count)

	return nil
}
