package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoriesController struct {
	service CategoryService
	log     *logrus.Logger
}

func NewCategoriesController(service CategoryService, log *logrus.Logger) *CategoriesController {
	return &CategoriesController{service: service, log: log}
}

type categoryRequest struct {
	Types string `json:"types" binding:"required"`
}

// Add creates a category
// POST /api/categories/add
func (cc *CategoriesController) Add(c *gin.Context) {
	var req categoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondAppError(c, cc.log, err, "add category")
		return
	}

	category, err := cc.service.AddCategory(c.Request.Context(), req.Types)
	if err != nil {
		respondAppError(c, cc.log, err, "add category")
		return
	}

	respondCreated(c, "Category created successfully", category.ID)
}

// List returns all categories with their book counts
// GET /api/categories
func (cc *CategoriesController) List(c *gin.Context) {
	categories, err := cc.service.ListCategories(c.Request.Context())
	if err != nil {
		respondAppError(c, cc.log, err, "list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Delete removes a category without books
// DELETE /api/categories/delete/:id
func (cc *CategoriesController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondAppError(c, cc.log, err, "delete category")
		return
	}

	if err := cc.service.DeleteCategory(c.Request.Context(), id); err != nil {
		respondAppError(c, cc.log, err, "delete category")
		return
	}
	respondSuccess(c, "Category deleted successfully")
}
