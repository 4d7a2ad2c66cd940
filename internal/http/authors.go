package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthorsController struct {
	service AuthorService
	log     *logrus.Logger
}

func NewAuthorsController(service AuthorService, log *logrus.Logger) *AuthorsController {
	return &AuthorsController{service: service, log: log}
}

// Name is checked by the service so an unknown author is reported before a blank name.
type authorRequest struct {
	Name string `json:"name"`
}

// Add creates an author
// POST /api/authors/add
func (ac *AuthorsController) Add(c *gin.Context) {
	var req authorRequest
	if err := bindJSON(c, &req); err != nil {
		respondAppError(c, ac.log, err, "add author")
		return
	}

	author, err := ac.service.AddAuthor(c.Request.Context(), req.Name)
	if err != nil {
		respondAppError(c, ac.log, err, "add author")
		return
	}

	respondCreated(c, "Author added successfully", author.ID)
}

// List returns all authors with their book counts
// GET /api/authors
func (ac *AuthorsController) List(c *gin.Context) {
	authors, err := ac.service.ListAuthors(c.Request.Context())
	if err != nil {
		respondAppError(c, ac.log, err, "list authors")
		return
	}
	c.JSON(http.StatusOK, authors)
}

// Get returns an author and its books
// GET /api/authors/:id
func (ac *AuthorsController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondAppError(c, ac.log, err, "get author")
		return
	}

	author, err := ac.service.GetAuthor(c.Request.Context(), id)
	if err != nil {
		respondAppError(c, ac.log, err, "get author")
		return
	}
	c.JSON(http.StatusOK, author)
}

// Update renames an author
// PUT /api/authors/update/:id
func (ac *AuthorsController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondAppError(c, ac.log, err, "update author")
		return
	}

	var req authorRequest
	if err := bindJSON(c, &req); err != nil {
		respondAppError(c, ac.log, err, "update author")
		return
	}

	if _, err := ac.service.UpdateAuthor(c.Request.Context(), id, req.Name); err != nil {
		respondAppError(c, ac.log, err, "update author")
		return
	}
	respondSuccess(c, "Author updated successfully")
}

// Delete removes an author without books
// DELETE /api/authors/delete/:id
func (ac *AuthorsController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondAppError(c, ac.log, err, "delete author")
		return
	}

	if err := ac.service.DeleteAuthor(c.Request.Context(), id); err != nil {
		respondAppError(c, ac.log, err, "delete author")
		return
	}
	respondSuccess(c, "Author deleted successfully")
}
