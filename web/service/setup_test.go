package service

import (
	"fmt"
	"os"

	"github.com/op/go-logging"

	"blog-api/database"
	"blog-api/database/model"
	"blog-api/logger"
)

func setup() {
	os.Setenv("BLOG_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.DEBUG)

	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	database.CloseDB()
	os.Remove("test.db")
}

// mustUser inserts a user row directly, bypassing registration.
func mustUser(username string) *model.User {
	user := &model.User{
		Username: username,
		Password: "irrelevant-hash",
		Role:     model.RoleUser,
	}
	if err := database.GetDB().Create(user).Error; err != nil {
		panic(err)
	}
	return user
}

func mustCategory(name string) *model.Category {
	category := &model.Category{Name: name}
	if err := database.GetDB().Create(category).Error; err != nil {
		panic(err)
	}
	return category
}

// fakeAssetStore records store/delete calls in memory.
type fakeAssetStore struct {
	files   map[string][]byte
	deleted []string
	counter int
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{files: make(map[string][]byte)}
}

func (f *fakeAssetStore) Store(data []byte, ext string) (string, error) {
	f.counter++
	assetPath := fmt.Sprintf("assets/thumbnail/%d%s", f.counter, ext)
	f.files[assetPath] = data
	return assetPath, nil
}

func (f *fakeAssetStore) Exists(assetPath string) bool {
	_, ok := f.files[assetPath]
	return ok
}

func (f *fakeAssetStore) Delete(assetPath string) error {
	delete(f.files, assetPath)
	f.deleted = append(f.deleted, assetPath)
	return nil
}
