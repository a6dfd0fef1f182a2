// Package database provides the data access layer for the catalog.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── books/           # Books and their copies (book instances)
//	├── authors/         # Authors
//	└── genres/          # Genres
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type backed by the shared *gorm.DB:
//
//	db, err := database.NewDatabase("./locallibrary.db")
//	// or: database.NewDatabase(dsn, database.WithDriver(database.DriverPostgres))
//
//	booksRepo := books.NewRepository(db.DB)
//	authorsRepo := authors.NewRepository(db.DB)
//	genresRepo := genres.NewRepository(db.DB)
//
//	book, err := booksRepo.GetBookByID(ctx, id)
//
// # Reference Population
//
// Stored references (Book.AuthorID, the book_genres join table, BookInstance.BookID)
// are resolved with gorm's Preload. A reference that points at a missing row
// populates as nil rather than failing the read.
//
// # Not Found
//
// Lookups by identifier return (nil, nil) when no row matches. Deciding whether
// that is an error belongs to the caller.
//
// # Interface Implementations
//
//   - books.Repository: implements catalog.BookStore
//   - authors.Repository: implements catalog.AuthorStore
//   - genres.Repository: implements catalog.GenreStore
//
// The checks live in internal/interfaces.
package database
