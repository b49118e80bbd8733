// Package storage implements durable blob storage for uploaded assets,
// addressed by paths relative to a public namespace.
package storage

import (
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// thumbnailDir is the namespace thumbnails are stored under, relative to
// the storage root.
const thumbnailDir = "assets/thumbnail"

// AssetStore is the capability the article lifecycle needs from blob
// storage. Paths are relative to the store's public root.
type AssetStore interface {
	Store(data []byte, ext string) (string, error)
	Exists(assetPath string) bool
	Delete(assetPath string) error
}

// DiskStore keeps assets on the local filesystem under a root directory.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

// Store writes data under a generated name and returns the relative path.
func (s *DiskStore) Store(data []byte, ext string) (string, error) {
	rel := path.Join(thumbnailDir, uuid.NewString()+ext)
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o640); err != nil {
		return "", err
	}
	return rel, nil
}

func (s *DiskStore) Exists(assetPath string) bool {
	info, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(assetPath)))
	return err == nil && !info.IsDir()
}

func (s *DiskStore) Delete(assetPath string) error {
	return os.Remove(filepath.Join(s.root, filepath.FromSlash(assetPath)))
}

// ListThumbnails returns the relative paths of every stored thumbnail.
// Used by maintenance jobs to find orphaned assets.
func (s *DiskStore) ListThumbnails() ([]string, error) {
	dir := filepath.Join(s.root, filepath.FromSlash(thumbnailDir))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, path.Join(thumbnailDir, entry.Name()))
	}
	return paths, nil
}
