package http

import (
	"context"

	"github.com/mrlokans/locallibrary/internal/catalog"
	"github.com/mrlokans/locallibrary/internal/entities"
)

// This file consolidates the interfaces HTTP controllers depend on.
// Each controller receives only what it uses; *catalog.Service and
// *database.Database satisfy them (see internal/interfaces).

// CatalogReader provides the read-only catalog views rendered by CatalogController.
type CatalogReader interface {
	Summary(ctx context.Context) (map[string]int64, error)

	ListBooks(ctx context.Context) ([]entities.Book, error)
	BookDetail(ctx context.Context, rawID string) (*catalog.BookDetail, error)

	ListAuthors(ctx context.Context) ([]entities.Author, error)
	AuthorDetail(ctx context.Context, rawID string) (*catalog.AuthorDetail, error)

	ListGenres(ctx context.Context) ([]entities.Genre, error)
	GenreDetail(ctx context.Context, rawID string) (*catalog.GenreDetail, error)

	ListBookInstances(ctx context.Context) ([]entities.BookInstance, error)
	BookInstanceDetail(ctx context.Context, rawID string) (*entities.BookInstance, error)
}

// Pinger checks store connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}
