// Package job contains the scheduled maintenance jobs of the blog API.
package job

import (
	"blog-api/database"
	"blog-api/database/model"
	"blog-api/logger"
	"blog-api/storage"
)

// OrphanThumbnailJob deletes stored thumbnails no article references.
// Such files appear when an insert fails between asset store and row
// commit, or when concurrent updates race on the same article.
type OrphanThumbnailJob struct {
	assets *storage.DiskStore
}

func NewOrphanThumbnailJob(assets *storage.DiskStore) *OrphanThumbnailJob {
	return &OrphanThumbnailJob{assets: assets}
}

// Run implements cron.Job.
func (j *OrphanThumbnailJob) Run() {
	stored, err := j.assets.ListThumbnails()
	if err != nil {
		logger.Warning("orphan thumbnail job: list failed:", err)
		return
	}

	removed := 0
	for _, assetPath := range stored {
		var count int64
		err := database.GetDB().Model(&model.Article{}).Where("thumbnail = ?", assetPath).Count(&count).Error
		if err != nil {
			logger.Warning("orphan thumbnail job: query failed:", err)
			return
		}
		if count > 0 {
			continue
		}
		if err := j.assets.Delete(assetPath); err != nil {
			logger.Warning("orphan thumbnail job: delete failed:", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.Infof("orphan thumbnail job removed %d file(s)", removed)
	}
}
