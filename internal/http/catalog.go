package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog CatalogReader
}

func NewCatalogController(catalog CatalogReader) *CatalogController {
	return &CatalogController{
		catalog: catalog,
	}
}

// Index renders the landing page. A failed summary still renders the page,
// with the error shown in place of the counts.
func (controller *CatalogController) Index(c *gin.Context) {
	summary, err := controller.catalog.Summary(c.Request.Context())
	if err != nil {
		log.Printf("Error loading catalog summary: %v", err)
		_ = c.Error(err)
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"title": "Local Library Home",
		"error": err,
		"data":  summary,
	})
}

func (controller *CatalogController) BookList(c *gin.Context) {
	books, err := controller.catalog.ListBooks(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_list", gin.H{
		"title":     "Book List",
		"book_list": books,
	})
}

func (controller *CatalogController) BookDetail(c *gin.Context) {
	detail, err := controller.catalog.BookDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "book_detail", gin.H{
		"title":          detail.Book.Title,
		"book":           detail.Book,
		"book_instances": detail.Instances,
	})
}

func (controller *CatalogController) AuthorList(c *gin.Context) {
	authors, err := controller.catalog.ListAuthors(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_list", gin.H{
		"title":       "Author List",
		"author_list": authors,
	})
}

func (controller *CatalogController) AuthorDetail(c *gin.Context) {
	detail, err := controller.catalog.AuthorDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "author_detail", gin.H{
		"title":        "Author Detail",
		"author":       detail.Author,
		"author_books": detail.Books,
	})
}

func (controller *CatalogController) GenreList(c *gin.Context) {
	genres, err := controller.catalog.ListGenres(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "genre_list", gin.H{
		"title":      "Genre List",
		"genre_list": genres,
	})
}

func (controller *CatalogController) GenreDetail(c *gin.Context) {
	detail, err := controller.catalog.GenreDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "genre_detail", gin.H{
		"title":       "Genre Detail",
		"genre":       detail.Genre,
		"genre_books": detail.Books,
	})
}

func (controller *CatalogController) BookInstanceList(c *gin.Context) {
	instances, err := controller.catalog.ListBookInstances(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "bookinstance_list", gin.H{
		"title":             "Book Instance List",
		"bookinstance_list": instances,
	})
}

func (controller *CatalogController) BookInstanceDetail(c *gin.Context) {
	instance, err := controller.catalog.BookInstanceDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}

	title := "Book"
	if instance.Book != nil {
		title = instance.Book.Title
	}
	c.HTML(http.StatusOK, "bookinstance_detail", gin.H{
		"title":        "Copy: " + title,
		"bookinstance": instance,
	})
}

// RegisterRoutes mounts the catalog pages and the mutation placeholders on group.
func (controller *CatalogController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", controller.Index)

	registerCRUD(group, "book", "Book")
	group.GET("/book/:id", controller.BookDetail)
	group.GET("/books", controller.BookList)

	registerCRUD(group, "author", "Author")
	group.GET("/author/:id", controller.AuthorDetail)
	group.GET("/authors", controller.AuthorList)

	registerCRUD(group, "genre", "Genre")
	group.GET("/genre/:id", controller.GenreDetail)
	group.GET("/genres", controller.GenreList)

	registerCRUD(group, "bookinstance", "BookInstance")
	group.GET("/bookinstance/:id", controller.BookInstanceDetail)
	group.GET("/bookinstances", controller.BookInstanceList)
}

// registerCRUD wires the create/delete/update placeholders for one entity.
func registerCRUD(group *gin.RouterGroup, path, entity string) {
	group.GET("/"+path+"/create", notImplemented(entity, "create GET"))
	group.POST("/"+path+"/create", notImplemented(entity, "create POST"))
	group.GET("/"+path+"/:id/delete", notImplemented(entity, "delete GET"))
	group.POST("/"+path+"/:id/delete", notImplemented(entity, "delete POST"))
	group.GET("/"+path+"/:id/update", notImplemented(entity, "update GET"))
	group.POST("/"+path+"/:id/update", notImplemented(entity, "update POST"))
}
