package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookstore/internal/catalog"
)

type BooksController struct {
	service BookService
	log     *logrus.Logger
}

func NewBooksController(service BookService, log *logrus.Logger) *BooksController {
	return &BooksController{service: service, log: log}
}

type bookRequest struct {
	Name       string   `json:"name" binding:"required"`
	Price      *float64 `json:"price" binding:"required"`
	CategoryID *uint    `json:"category_id" binding:"required"`
	AuthorID   *uint    `json:"author_id" binding:"required"`
	Resume     *string  `json:"resume"`
}

// Add creates a book
// POST /api/books/add
func (bc *BooksController) Add(c *gin.Context) {
	var req bookRequest
	if err := bindJSON(c, &req); err != nil {
		respondAppError(c, bc.log, err, "add book")
		return
	}

	book, err := bc.service.AddBook(c.Request.Context(), catalog.BookInput{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		AuthorID:   req.AuthorID,
		Resume:     req.Resume,
	})
	if err != nil {
		respondAppError(c, bc.log, err, "add book")
		return
	}

	respondCreated(c, "Book added successfully", book.ID)
}

// List returns all books
// GET /api/books
func (bc *BooksController) List(c *gin.Context) {
	books, err := bc.service.ListBooks(c.Request.Context())
	if err != nil {
		respondAppError(c, bc.log, err, "list books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// SearchByName returns books whose name contains the query
// GET /api/books/search?name=
func (bc *BooksController) SearchByName(c *gin.Context) {
	books, err := bc.service.SearchBooksByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondAppError(c, bc.log, err, "search books")
		return
	}
	c.JSON(http.StatusOK, books)
}

// SearchByMaxPrice returns books priced at or below the query
// GET /api/books/search/price?price=
func (bc *BooksController) SearchByMaxPrice(c *gin.Context) {
	books, err := bc.service.SearchBooksByMaxPrice(c.Request.Context(), c.Query("price"))
	if err != nil {
		respondAppError(c, bc.log, err, "search books by price")
		return
	}
	c.JSON(http.StatusOK, books)
}
