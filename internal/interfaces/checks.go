package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/locallibrary/internal/catalog"
	"github.com/mrlokans/locallibrary/internal/database"
	"github.com/mrlokans/locallibrary/internal/database/authors"
	"github.com/mrlokans/locallibrary/internal/database/books"
	"github.com/mrlokans/locallibrary/internal/database/genres"
	"github.com/mrlokans/locallibrary/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ catalog.BookStore = (*books.Repository)(nil)
var _ catalog.AuthorStore = (*authors.Repository)(nil)
var _ catalog.GenreStore = (*genres.Repository)(nil)

// =============================================================================
// HTTP
// =============================================================================

// CatalogReader implementations
var _ http.CatalogReader = (*catalog.Service)(nil)

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)
