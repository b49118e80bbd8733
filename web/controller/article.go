package controller

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-api/storage"
	"blog-api/web/middleware"
	"blog-api/web/service"
)

type ArticleController struct {
	articleService service.ArticleService
}

// NewArticleController registers the article routes. Create and update
// accept multipart form data because of the optional thumbnail file.
func NewArticleController(g *gin.RouterGroup, assets storage.AssetStore) *ArticleController {
	ctrl := &ArticleController{
		articleService: service.ArticleService{Assets: assets},
	}
	r := g.Group("/articles")
	r.GET("", ctrl.list)
	r.GET("/:slug", ctrl.getBySlug)
	r.GET("/show/:id", ctrl.getById)
	r.POST("", ctrl.create)
	r.POST("/:id", ctrl.update)
	r.DELETE("/:id", ctrl.delete)
	return ctrl
}

func (ctrl *ArticleController) list(c *gin.Context) {
	search := c.Query("search")
	categoryId, _ := strconv.Atoi(c.Query("category_id"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	page, _ := strconv.Atoi(c.Query("page"))

	result, err := ctrl.articleService.List(search, categoryId, limit, page)
	if err != nil {
		jsonFailure(c, err, "Article not found", "Failed to retrieve articles")
		return
	}
	jsonSuccess(c, "Articles retrieved successfully", result)
}

func (ctrl *ArticleController) getById(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonFailure(c, service.ErrNotFound, "Article not found", "Failed to retrieve article")
		return
	}

	article, err := ctrl.articleService.GetById(id)
	if err != nil {
		jsonFailure(c, err, "Article not found", "Failed to retrieve article")
		return
	}
	jsonSuccess(c, "Article retrieved successfully", article)
}

func (ctrl *ArticleController) getBySlug(c *gin.Context) {
	article, err := ctrl.articleService.GetBySlug(c.Param("slug"))
	if err != nil {
		jsonFailure(c, err, "Article not found", "Failed to retrieve article")
		return
	}
	jsonSuccess(c, "Article retrieved successfully", article)
}

func (ctrl *ArticleController) create(c *gin.Context) {
	input, err := bindArticleForm(c)
	if err != nil {
		jsonFailure(c, err, "Article not found", "Failed to create article")
		return
	}

	article, err := ctrl.articleService.Create(input, middleware.CurrentUser(c))
	if err != nil {
		jsonFailure(c, err, "Article not found", "Failed to create article")
		return
	}
	jsonSuccess(c, "Article created successfully", article)
}

func (ctrl *ArticleController) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonFailure(c, service.ErrNotFound, "Article not found", "Failed to update article")
		return
	}
	input, err := bindArticleForm(c)
	if err != nil {
		jsonFailure(c, err, "Article not found", "Failed to update article")
		return
	}

	article, err := ctrl.articleService.Update(id, input, middleware.CurrentUser(c))
	if err != nil {
		jsonFailure(c, err, "Article not found", "Failed to update article")
		return
	}
	jsonSuccess(c, "Article updated successfully", article)
}

func (ctrl *ArticleController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonFailure(c, service.ErrNotFound, "Article not found", "Failed to delete article")
		return
	}

	if err := ctrl.articleService.Delete(id); err != nil {
		jsonFailure(c, err, "Article not found", "Failed to delete article")
		return
	}
	jsonSuccess(c, "Article deleted successfully", nil)
}

// bindArticleForm reads the multipart payload into an ArticleInput.
// A missing thumbnail part is fine, it just leaves Thumbnail nil.
func bindArticleForm(c *gin.Context) (*service.ArticleInput, error) {
	input := &service.ArticleInput{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
	}
	input.CategoryId, _ = strconv.Atoi(c.PostForm("category_id"))

	fileHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return input, nil
	}

	upload, err := readUpload(fileHeader)
	if err != nil {
		return nil, err
	}
	input.Thumbnail = upload
	return input, nil
}

func readUpload(fileHeader *multipart.FileHeader) (*service.ThumbnailUpload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &service.ThumbnailUpload{
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	}, nil
}
