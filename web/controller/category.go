package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-api/web/service"
)

type categoryForm struct {
	Name string `json:"name"`
}

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(g *gin.RouterGroup) *CategoryController {
	ctrl := &CategoryController{}
	r := g.Group("/categories")
	r.GET("", ctrl.list)
	r.POST("", ctrl.create)
	r.PUT("/:id", ctrl.update)
	r.DELETE("/:id", ctrl.delete)
	return ctrl
}

func (ctrl *CategoryController) list(c *gin.Context) {
	search := c.Query("search")
	limit, _ := strconv.Atoi(c.Query("limit"))
	page, _ := strconv.Atoi(c.Query("page"))

	result, err := ctrl.categoryService.List(search, limit, page)
	if err != nil {
		jsonFailure(c, err, "Category not found", "Failed to retrieve categories")
		return
	}
	jsonSuccess(c, "Categories retrieved successfully", result)
}

func (ctrl *CategoryController) create(c *gin.Context) {
	var form categoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		form = categoryForm{}
	}

	category, err := ctrl.categoryService.Create(form.Name)
	if err != nil {
		jsonFailure(c, err, "Category not found", "Failed to create category")
		return
	}
	jsonSuccess(c, "Category created successfully", category)
}

func (ctrl *CategoryController) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonFailure(c, service.ErrNotFound, "Category not found", "Failed to update category")
		return
	}
	var form categoryForm
	if err := c.ShouldBindJSON(&form); err != nil {
		form = categoryForm{}
	}

	category, err := ctrl.categoryService.Update(id, form.Name)
	if err != nil {
		jsonFailure(c, err, "Category not found", "Failed to update category")
		return
	}
	jsonSuccess(c, "Category updated successfully", category)
}

func (ctrl *CategoryController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonFailure(c, service.ErrNotFound, "Category not found", "Failed to delete category")
		return
	}

	if err := ctrl.categoryService.Delete(id); err != nil {
		jsonFailure(c, err, "Category not found", "Failed to delete category")
		return
	}
	jsonSuccess(c, "Category deleted successfully", nil)
}
