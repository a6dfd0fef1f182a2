// Command populatedb fills a catalog database with a small sample library.
// Usage: go run ./cmd/populatedb [-db path/to/locallibrary.db] [-reset]
//
//	go run ./cmd/populatedb -driver postgres -db "host=localhost dbname=library"
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mrlokans/locallibrary/internal/config"
	"github.com/mrlokans/locallibrary/internal/database"
	"github.com/mrlokans/locallibrary/internal/database/authors"
	"github.com/mrlokans/locallibrary/internal/database/books"
	"github.com/mrlokans/locallibrary/internal/database/genres"
	"github.com/mrlokans/locallibrary/internal/entities"
)

func main() {
	dbPath := flag.String("db", config.DefaultDatabasePath, "sqlite file, or DSN when -driver is postgres")
	driver := flag.String("driver", config.DriverSQLite, "database driver: sqlite or postgres")
	reset := flag.Bool("reset", false, "delete the sqlite database file before seeding")
	flag.Parse()

	if *reset && *driver == config.DriverSQLite {
		if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
			log.Fatalf("Failed to remove existing database: %v", err)
		}
	}

	log.Printf("Populating %s catalog database...", *driver)

	db, err := database.NewDatabase(*dbPath, database.WithDriver(*driver), database.WithLogLevel("error"))
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stats, err := populate(ctx, db)
	if err != nil {
		log.Fatalf("Failed to populate database: %v", err)
	}

	log.Printf("Done: %d authors, %d genres, %d books, %d copies", stats.authors, stats.genres, stats.books, stats.copies)
}

type populateStats struct {
	authors, genres, books, copies int
}

func populate(ctx context.Context, db *database.Database) (populateStats, error) {
	var stats populateStats
	authorRepo := authors.NewRepository(db.DB)
	genreRepo := genres.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)

	authorsByKey := make(map[string]*entities.Author, len(sampleAuthors))
	for _, sa := range sampleAuthors {
		author := &entities.Author{
			FirstName:   sa.first,
			FamilyName:  sa.family,
			DateOfBirth: parseDate(sa.born),
			DateOfDeath: parseDate(sa.died),
		}
		if err := authorRepo.CreateAuthor(ctx, author); err != nil {
			return stats, fmt.Errorf("create author %s: %w", sa.key, err)
		}
		authorsByKey[sa.key] = author
		stats.authors++
	}

	genresByName := make(map[string]entities.Genre, len(sampleGenres))
	for _, name := range sampleGenres {
		genre, err := genreRepo.GetOrCreateGenre(ctx, name)
		if err != nil {
			return stats, fmt.Errorf("create genre %s: %w", name, err)
		}
		genresByName[name] = *genre
		stats.genres++
	}

	for _, sb := range sampleBooks {
		author, ok := authorsByKey[sb.author]
		if !ok {
			return stats, fmt.Errorf("book %q references unknown author %q", sb.title, sb.author)
		}
		book := &entities.Book{
			Title:    sb.title,
			Summary:  sb.summary,
			ISBN:     sb.isbn,
			AuthorID: author.ID,
		}
		for _, name := range sb.genres {
			book.Genres = append(book.Genres, genresByName[name])
		}
		if err := bookRepo.CreateBook(ctx, book); err != nil {
			return stats, fmt.Errorf("create book %q: %w", sb.title, err)
		}
		stats.books++

		for _, sc := range sb.copies {
			instance := &entities.BookInstance{
				BookID:  book.ID,
				Imprint: sc.imprint,
				Status:  sc.status,
			}
			if due := parseDate(sc.due); due != nil {
				instance.DueBack = *due
			}
			if err := bookRepo.CreateBookInstance(ctx, instance); err != nil {
				return stats, fmt.Errorf("create copy of %q: %w", sb.title, err)
			}
			stats.copies++
		}
	}

	return stats, nil
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		log.Printf("Skipping malformed date %q: %v", value, err)
		return nil
	}
	return &t
}
