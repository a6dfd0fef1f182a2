// Package genres provides database operations for genres.
package genres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/locallibrary/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CountGenres(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Genre{}).Count(&count).Error
	return count, err
}

// ListGenres returns every genre ordered by name.
func (r *Repository) ListGenres(ctx context.Context) ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.WithContext(ctx).Order("name ASC").Find(&genres).Error
	return genres, err
}

// GetGenreByID returns nil, nil when no genre has the given ID.
func (r *Repository) GetGenreByID(ctx context.Context, id uuid.UUID) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.WithContext(ctx).First(&genre, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// GetOrCreateGenre looks a genre up by name (case-insensitive) and creates it when missing.
func (r *Repository) GetOrCreateGenre(ctx context.Context, name string) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&genre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		genre = entities.Genre{Name: name}
		if err := r.db.WithContext(ctx).Create(&genre).Error; err != nil {
			return nil, err
		}
		return &genre, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}
