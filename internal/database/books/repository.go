// Package books provides database operations for books and their copies.
//
// This package implements the BookStore interface defined in internal/catalog.
//
// # Interface Implementation
//
//	var _ catalog.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(ctx, id)
package books

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/locallibrary/internal/entities"
)

// Repository handles all book and book instance database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func orderGenres(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

// CountBooks returns the number of books in the catalog.
func (r *Repository) CountBooks(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error
	return count, err
}

// CountBookInstances returns the number of copies, limited to the given status
// unless status is empty.
func (r *Repository) CountBookInstances(ctx context.Context, status entities.BookInstanceStatus) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.BookInstance{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

// ListBooks returns every book with only its title and author populated,
// ordered by title.
func (r *Repository) ListBooks(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).
		Select("id", "title", "author_id").
		Preload("Author").
		Order("title ASC").
		Find(&books).Error
	return books, err
}

// GetBookByID retrieves a book with its author and genres populated.
// Returns nil, nil when no book has the given ID.
func (r *Repository) GetBookByID(ctx context.Context, id uuid.UUID) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genres", orderGenres).
		First(&book, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListBooksByAuthor returns the title and summary of every book by the author.
func (r *Repository) ListBooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).
		Select("id", "title", "summary").
		Where("author_id = ?", authorID).
		Order("title ASC").
		Find(&books).Error
	return books, err
}

// ListBooksByGenre returns the title and summary of every book tagged with the genre.
func (r *Repository) ListBooksByGenre(ctx context.Context, genreID uuid.UUID) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).
		Select("books.id", "books.title", "books.summary").
		Joins("JOIN book_genres ON book_genres.book_id = books.id").
		Where("book_genres.genre_id = ?", genreID).
		Order("books.title ASC").
		Find(&books).Error
	return books, err
}

// ListBookInstancesByBook returns every copy of the given book.
func (r *Repository) ListBookInstancesByBook(ctx context.Context, bookID uuid.UUID) ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("imprint ASC").
		Find(&instances).Error
	return instances, err
}

// ListBookInstances returns every copy with its book populated.
func (r *Repository) ListBookInstances(ctx context.Context) ([]entities.BookInstance, error) {
	var instances []entities.BookInstance
	err := r.db.WithContext(ctx).
		Preload("Book").
		Order("imprint ASC").
		Find(&instances).Error
	return instances, err
}

// GetBookInstanceByID retrieves a copy with its book populated.
// Returns nil, nil when no copy has the given ID.
func (r *Repository) GetBookInstanceByID(ctx context.Context, id uuid.UUID) (*entities.BookInstance, error) {
	var instance entities.BookInstance
	err := r.db.WithContext(ctx).Preload("Book").First(&instance, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// CreateBook inserts a book together with its genre links. Genres must already exist.
func (r *Repository) CreateBook(ctx context.Context, book *entities.Book) error {
	return r.db.WithContext(ctx).Omit("Author", "Genres.*").Create(book).Error
}

// CreateBookInstance inserts a copy of an existing book.
func (r *Repository) CreateBookInstance(ctx context.Context, instance *entities.BookInstance) error {
	return r.db.WithContext(ctx).Omit("Book").Create(instance).Error
}
