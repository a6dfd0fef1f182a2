package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/mrlokans/locallibrary/internal/entities"
)

// Lookups by ID return (nil, nil) when nothing matches; the service turns that
// into a NotFoundError.

// BookStore provides read access to books and their copies.
type BookStore interface {
	CountBooks(ctx context.Context) (int64, error)
	// CountBookInstances counts every copy when status is empty.
	CountBookInstances(ctx context.Context, status entities.BookInstanceStatus) (int64, error)
	ListBooks(ctx context.Context) ([]entities.Book, error)
	GetBookByID(ctx context.Context, id uuid.UUID) (*entities.Book, error)
	ListBooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]entities.Book, error)
	ListBooksByGenre(ctx context.Context, genreID uuid.UUID) ([]entities.Book, error)
	ListBookInstancesByBook(ctx context.Context, bookID uuid.UUID) ([]entities.BookInstance, error)
	ListBookInstances(ctx context.Context) ([]entities.BookInstance, error)
	GetBookInstanceByID(ctx context.Context, id uuid.UUID) (*entities.BookInstance, error)
}

// AuthorStore provides read access to authors.
type AuthorStore interface {
	CountAuthors(ctx context.Context) (int64, error)
	ListAuthors(ctx context.Context) ([]entities.Author, error)
	GetAuthorByID(ctx context.Context, id uuid.UUID) (*entities.Author, error)
}

// GenreStore provides read access to genres.
type GenreStore interface {
	CountGenres(ctx context.Context) (int64, error)
	ListGenres(ctx context.Context) ([]entities.Genre, error)
	GetGenreByID(ctx context.Context, id uuid.UUID) (*entities.Genre, error)
}
