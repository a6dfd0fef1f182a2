// Package catalog assembles the read-only views of the library catalog: the
// landing-page summary, list pages, and detail pages that join an entity with
// the records that reference it.
//
// Every page issues its store queries concurrently and fails on the first
// error. Detail pages distinguish "no such record" (NotFoundError, 404) from
// store failures only by the status carried on the error.
package catalog

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mrlokans/locallibrary/internal/entities"
)

// Summary keys, as consumed by the index view.
const (
	KeyBookCount                  = "book_count"
	KeyBookInstanceCount          = "book_instance_count"
	KeyBookInstanceAvailableCount = "book_instance_available_count"
	KeyAuthorCount                = "author_count"
	KeyGenreCount                 = "genre_count"
)

const tracerName = "github.com/mrlokans/locallibrary/internal/catalog"

type BookDetail struct {
	Book      *entities.Book
	Instances []entities.BookInstance
}

type AuthorDetail struct {
	Author *entities.Author
	Books  []entities.Book
}

type GenreDetail struct {
	Genre *entities.Genre
	Books []entities.Book
}

type Service struct {
	books        BookStore
	authors      AuthorStore
	genres       GenreStore
	queryTimeout time.Duration
	tracer       trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithQueryTimeout bounds the store round-trips of a single call. Zero disables it.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.queryTimeout = d
	}
}

func NewService(books BookStore, authors AuthorStore, genres GenreStore, opts ...Option) *Service {
	s := &Service{
		books:   books,
		authors: authors,
		genres:  genres,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// begin applies the query timeout and opens a span for one call.
func (s *Service) begin(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	var cancel context.CancelFunc = func() {}
	if s.queryTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
	}
	ctx, span := s.tracer.Start(ctx, "catalog."+op, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		cancel()
	}
}

func (s *Service) Summary(ctx context.Context) (summary map[string]int64, err error) {
	ctx, end := s.begin(ctx, "Summary")
	defer func() { end(err) }()

	summary, err = Parallel(ctx, map[string]Query[int64]{
		KeyBookCount: s.books.CountBooks,
		KeyBookInstanceCount: func(ctx context.Context) (int64, error) {
			return s.books.CountBookInstances(ctx, "")
		},
		KeyBookInstanceAvailableCount: func(ctx context.Context) (int64, error) {
			return s.books.CountBookInstances(ctx, entities.BookInstanceStatusAvailable)
		},
		KeyAuthorCount: s.authors.CountAuthors,
		KeyGenreCount:  s.genres.CountGenres,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize catalog: %w", err)
	}
	return summary, nil
}

// ListBooks returns every book with its author populated, ordered by title.
func (s *Service) ListBooks(ctx context.Context) (books []entities.Book, err error) {
	ctx, end := s.begin(ctx, "ListBooks")
	defer func() { end(err) }()

	books, err = s.books.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []entities.Book{}
	}
	return books, nil
}

// BookDetail loads a book with its author and genres together with all of its copies.
// A book without copies is not an error.
func (s *Service) BookDetail(ctx context.Context, rawID string) (detail *BookDetail, err error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	ctx, end := s.begin(ctx, "BookDetail", attribute.String("catalog.book_id", id.String()))
	defer func() { end(err) }()

	book, instances, err := Both(ctx,
		func(ctx context.Context) (*entities.Book, error) { return s.books.GetBookByID(ctx, id) },
		func(ctx context.Context) ([]entities.BookInstance, error) { return s.books.ListBookInstancesByBook(ctx, id) },
	)
	if err != nil {
		return nil, fmt.Errorf("load book %s: %w", id, err)
	}
	if book == nil {
		return nil, NewNotFoundError("Book")
	}
	if instances == nil {
		instances = []entities.BookInstance{}
	}
	return &BookDetail{Book: book, Instances: instances}, nil
}

// ListAuthors returns every author ordered by family name.
func (s *Service) ListAuthors(ctx context.Context) (authors []entities.Author, err error) {
	ctx, end := s.begin(ctx, "ListAuthors")
	defer func() { end(err) }()

	authors, err = s.authors.ListAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	if authors == nil {
		authors = []entities.Author{}
	}
	return authors, nil
}

func (s *Service) AuthorDetail(ctx context.Context, rawID string) (detail *AuthorDetail, err error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	ctx, end := s.begin(ctx, "AuthorDetail", attribute.String("catalog.author_id", id.String()))
	defer func() { end(err) }()

	author, books, err := Both(ctx,
		func(ctx context.Context) (*entities.Author, error) { return s.authors.GetAuthorByID(ctx, id) },
		func(ctx context.Context) ([]entities.Book, error) { return s.books.ListBooksByAuthor(ctx, id) },
	)
	if err != nil {
		return nil, fmt.Errorf("load author %s: %w", id, err)
	}
	if author == nil {
		return nil, NewNotFoundError("Author")
	}
	if books == nil {
		books = []entities.Book{}
	}
	return &AuthorDetail{Author: author, Books: books}, nil
}

// ListGenres returns every genre ordered by name.
func (s *Service) ListGenres(ctx context.Context) (genres []entities.Genre, err error) {
	ctx, end := s.begin(ctx, "ListGenres")
	defer func() { end(err) }()

	genres, err = s.genres.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	if genres == nil {
		genres = []entities.Genre{}
	}
	return genres, nil
}

func (s *Service) GenreDetail(ctx context.Context, rawID string) (detail *GenreDetail, err error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	ctx, end := s.begin(ctx, "GenreDetail", attribute.String("catalog.genre_id", id.String()))
	defer func() { end(err) }()

	genre, books, err := Both(ctx,
		func(ctx context.Context) (*entities.Genre, error) { return s.genres.GetGenreByID(ctx, id) },
		func(ctx context.Context) ([]entities.Book, error) { return s.books.ListBooksByGenre(ctx, id) },
	)
	if err != nil {
		return nil, fmt.Errorf("load genre %s: %w", id, err)
	}
	if genre == nil {
		return nil, NewNotFoundError("Genre")
	}
	if books == nil {
		books = []entities.Book{}
	}
	return &GenreDetail{Genre: genre, Books: books}, nil
}

// ListBookInstances returns every copy with its book populated.
func (s *Service) ListBookInstances(ctx context.Context) (instances []entities.BookInstance, err error) {
	ctx, end := s.begin(ctx, "ListBookInstances")
	defer func() { end(err) }()

	instances, err = s.books.ListBookInstances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list book instances: %w", err)
	}
	if instances == nil {
		instances = []entities.BookInstance{}
	}
	return instances, nil
}

func (s *Service) BookInstanceDetail(ctx context.Context, rawID string) (instance *entities.BookInstance, err error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	ctx, end := s.begin(ctx, "BookInstanceDetail", attribute.String("catalog.book_instance_id", id.String()))
	defer func() { end(err) }()

	instance, err = s.books.GetBookInstanceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load book instance %s: %w", id, err)
	}
	if instance == nil {
		return nil, NewNotFoundError("Book copy")
	}
	return instance, nil
}
