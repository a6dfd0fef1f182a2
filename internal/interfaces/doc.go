// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore: Books and their copies (internal/catalog/stores.go)
//   - AuthorStore: Authors (internal/catalog/stores.go)
//   - GenreStore: Genres (internal/catalog/stores.go)
//
// Lookups by ID return (nil, nil) when nothing matches. Only the catalog
// service decides that a missing record is a NotFoundError.
//
// ## HTTP Interfaces
//
//   - CatalogReader: Page data for the catalog controllers (internal/http/stores.go)
//   - Pinger: Store connectivity for /health (internal/http/stores.go)
//
// # Adding a New Catalog Page
//
//  1. Add the store query to the repository in internal/database/<domain>/
//     and to the matching interface in internal/catalog/stores.go.
//
//  2. Add a Service method in internal/catalog/service.go. Issue independent
//     queries through Parallel or Both so they run concurrently:
//
//     author, books, err := Both(ctx, getAuthor, listBooks)
//
//  3. Add the method to CatalogReader, a handler to CatalogController and a
//     view under web/templates/.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
