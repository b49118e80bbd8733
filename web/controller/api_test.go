package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"blog-api/database"
	"blog-api/logger"
	"blog-api/storage"
	"blog-api/web/middleware"
	"blog-api/web/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	os.Setenv("BLOG_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.DEBUG)

	os.Remove("test.db")
	if err := database.InitDB("test.db"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		database.CloseDB()
		os.Remove("test.db")
	})

	gin.SetMode(gin.TestMode)
	engine := gin.New()

	authService := service.NewAuthService()
	userService := &service.UserService{}
	api := engine.Group("/api")
	guarded := api.Group("", middleware.JwtAuth(authService, userService))

	NewAuthController(api, guarded, authService)
	NewCategoryController(guarded)
	NewArticleController(guarded, storage.NewDiskStore(t.TempDir()))

	return engine
}

func doJSON(engine *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var decoded map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w, decoded
}

func registerAndLogin(t *testing.T, engine *gin.Engine) string {
	w, body := doJSON(engine, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "johndoe",
		"password": "secret123",
		"role":     "User",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	return data["token"].(string)
}

func meta(body map[string]any) map[string]any {
	m, _ := body["meta"].(map[string]any)
	return m
}

func TestAuthEndpoints(t *testing.T) {
	engine := setupRouter(t)

	token := registerAndLogin(t, engine)

	// Login round trip
	w, body := doJSON(engine, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "johndoe",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", meta(body)["status"])

	// Bad credentials
	w, body = doJSON(engine, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": "johndoe",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", meta(body)["message"])

	// Profile requires a bearer token
	w, _ = doJSON(engine, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body = doJSON(engine, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	user := body["data"].(map[string]any)
	assert.Equal(t, "johndoe", user["username"])
	// Password hash never serializes
	_, leaked := user["password"]
	assert.False(t, leaked)
}

func TestCategoryEndpoints(t *testing.T) {
	engine := setupRouter(t)
	token := registerAndLogin(t, engine)

	// Unauthenticated requests are rejected with the envelope
	w, body := doJSON(engine, http.MethodGet, "/api/categories", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.EqualValues(t, 401, meta(body)["code"])

	// Validation failure carries field-keyed errors
	w, body = doJSON(engine, http.MethodPost, "/api/categories", token, map[string]any{"name": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "fail", meta(body)["status"])
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "name")

	// Create and list
	w, _ = doJSON(engine, http.MethodPost, "/api/categories", token, map[string]any{"name": "Tech"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = doJSON(engine, http.MethodGet, "/api/categories?search=Te", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	page := body["data"].(map[string]any)
	pagination := page["pagination"].(map[string]any)
	assert.EqualValues(t, 1, pagination["total"])

	// Not found is the envelope too
	w, body = doJSON(engine, http.MethodPut, "/api/categories/99", token, map[string]any{"name": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.EqualValues(t, 404, meta(body)["code"])
}

func TestArticleEndpoints(t *testing.T) {
	engine := setupRouter(t)
	token := registerAndLogin(t, engine)

	_, body := doJSON(engine, http.MethodPost, "/api/categories", token, map[string]any{"name": "Tech"})
	categoryId := int(body["data"].(map[string]any)["id"].(float64))

	// Missing fields fail validation before anything is stored
	w, body := postArticleForm(engine, token, "/api/articles", map[string]string{}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "content")
	assert.Contains(t, errs, "category_id")

	// Create with thumbnail
	fields := map[string]string{
		"title":       "Hello World",
		"content":     "Some content",
		"category_id": fmt.Sprint(categoryId),
	}
	w, body = postArticleForm(engine, token, "/api/articles", fields, []byte("fake jpeg"))
	assert.Equal(t, http.StatusOK, w.Code)
	article := body["data"].(map[string]any)
	assert.Equal(t, "hello-world", article["slug"])
	assert.NotNil(t, article["thumbnail"])
	assert.NotNil(t, article["category"])

	// Fetch by slug and by id
	w, _ = doJSON(engine, http.MethodGet, "/api/articles/hello-world", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	id := int(article["id"].(float64))
	w, _ = doJSON(engine, http.MethodGet, fmt.Sprintf("/api/articles/show/%d", id), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown id is a 404 envelope
	w, body = doJSON(engine, http.MethodGet, "/api/articles/show/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.EqualValues(t, 404, meta(body)["code"])

	// Delete
	w, _ = doJSON(engine, http.MethodDelete, fmt.Sprintf("/api/articles/%d", id), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(engine, http.MethodGet, fmt.Sprintf("/api/articles/show/%d", id), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// postArticleForm sends a multipart article payload, optionally attaching
// thumbnail bytes as a jpeg part.
func postArticleForm(engine *gin.Engine, token, path string, fields map[string]string, thumbnail []byte) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		_ = writer.WriteField(key, value)
	}
	if thumbnail != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="thumbnail"; filename="thumb.jpg"`)
		header.Set("Content-Type", "image/jpeg")
		part, _ := writer.CreatePart(header)
		_, _ = part.Write(thumbnail)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var decoded map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w, decoded
}
