package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/edtailor/backend/internal/database/categories"
	"github.com/edtailor/backend/internal/database/fabrics"
	"github.com/edtailor/backend/internal/database/garments"
	"github.com/edtailor/backend/internal/database/lessons"
	"github.com/edtailor/backend/internal/database/tags"
	"github.com/edtailor/backend/internal/database/terms"
	"github.com/edtailor/backend/internal/database/topics"
	"github.com/edtailor/backend/internal/http"
)

var _ http.CategoryStore = (*categories.Repository)(nil)
var _ http.TopicStore = (*topics.Repository)(nil)
var _ http.LessonStore = (*lessons.Repository)(nil)
var _ http.FabricStore = (*fabrics.Repository)(nil)
var _ http.GarmentStore = (*garments.Repository)(nil)
var _ http.TermStore = (*terms.Repository)(nil)
var _ http.TagStore = (*tags.Repository)(nil)
