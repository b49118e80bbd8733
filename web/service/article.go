package service

import (
	"gorm.io/gorm"

	"blog-api/database"
	"blog-api/database/model"
	"blog-api/logger"
	"blog-api/storage"
	"blog-api/util/slug"
	"blog-api/web/entity"
)

// maxThumbnailSize caps uploaded thumbnails at 2MB.
const maxThumbnailSize = 2 << 20

// thumbnailExts maps the allowed upload content types to stored file
// extensions.
var thumbnailExts = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// ThumbnailUpload is an uploaded image file, decoupled from the transport.
type ThumbnailUpload struct {
	Data        []byte
	ContentType string
	Size        int64
}

// ArticleInput is the full-replacement payload for create and update.
// Thumbnail is nil when no file was supplied.
type ArticleInput struct {
	Title      string
	Content    string
	CategoryId int
	Thumbnail  *ThumbnailUpload
}

// ArticleService is the article lifecycle manager: it validates input,
// derives slugs, keeps the thumbnail asset in lockstep with the row and
// serves filtered listings.
type ArticleService struct {
	Assets storage.AssetStore
}

// List returns one page of articles with joined category and user, newest
// first. search matches title substrings, categoryId filters exactly when
// positive.
func (s *ArticleService) List(search string, categoryId, limit, page int) (*entity.Page, error) {
	var total int64
	if err := s.query(search, categoryId).Count(&total).Error; err != nil {
		return nil, err
	}

	limit, page = normalizePaging(limit, page)

	var articles []model.Article
	err := s.query(search, categoryId).
		Preload("Category").
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	return &entity.Page{
		Items:      articles,
		Pagination: paginationFor(total, limit, page),
	}, nil
}

func (s *ArticleService) GetById(id int) (*model.Article, error) {
	return s.getOne("id = ?", id)
}

func (s *ArticleService) GetBySlug(slugText string) (*model.Article, error) {
	return s.getOne("slug = ?", slugText)
}

// Create validates the input, stores the thumbnail if one was supplied,
// derives the slug and persists the article for the acting user. If the
// row insert fails after the asset was stored, the asset is removed again.
func (s *ArticleService) Create(input *ArticleInput, actingUser *model.User) (*model.Article, error) {
	if err := s.validate(input, 0); err != nil {
		return nil, err
	}

	var thumbnail *string
	if input.Thumbnail != nil {
		stored, err := s.Assets.Store(input.Thumbnail.Data, thumbnailExts[input.Thumbnail.ContentType])
		if err != nil {
			return nil, err
		}
		thumbnail = &stored
	}

	article := &model.Article{
		Title:      input.Title,
		Slug:       slug.Make(input.Title),
		Content:    input.Content,
		Thumbnail:  thumbnail,
		CategoryId: input.CategoryId,
		UserId:     actingUser.Id,
	}
	if err := database.GetDB().Create(article).Error; err != nil {
		if thumbnail != nil {
			if derr := s.Assets.Delete(*thumbnail); derr != nil {
				logger.Warning("failed to clean up thumbnail after insert error:", derr)
			}
		}
		return nil, err
	}

	return s.GetById(article.Id)
}

// Update replaces every field of an existing article. The title uniqueness
// check excludes the article's own row, a newly supplied thumbnail replaces
// the stored asset, and ownership moves to the acting user.
func (s *ArticleService) Update(id int, input *ArticleInput, actingUser *model.User) (*model.Article, error) {
	article, err := s.GetById(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(input, id); err != nil {
		return nil, err
	}

	thumbnail := article.Thumbnail
	if input.Thumbnail != nil {
		if thumbnail != nil && s.Assets.Exists(*thumbnail) {
			if err := s.Assets.Delete(*thumbnail); err != nil {
				logger.Warning("failed to delete previous thumbnail:", err)
			}
		}
		stored, err := s.Assets.Store(input.Thumbnail.Data, thumbnailExts[input.Thumbnail.ContentType])
		if err != nil {
			return nil, err
		}
		thumbnail = &stored
	}

	article.Title = input.Title
	article.Slug = slug.Make(input.Title)
	article.Content = input.Content
	article.Thumbnail = thumbnail
	article.CategoryId = input.CategoryId
	article.UserId = actingUser.Id
	article.Category = nil
	article.User = nil

	if err := database.GetDB().Save(article).Error; err != nil {
		return nil, err
	}
	return s.GetById(article.Id)
}

// Delete removes the article and its stored thumbnail. Asset cleanup is
// best-effort: a failed delete is logged and the row is removed anyway.
func (s *ArticleService) Delete(id int) error {
	article, err := s.GetById(id)
	if err != nil {
		return err
	}

	if article.Thumbnail != nil && s.Assets.Exists(*article.Thumbnail) {
		if err := s.Assets.Delete(*article.Thumbnail); err != nil {
			logger.Warning("failed to delete article thumbnail:", err)
		}
	}

	return database.GetDB().Delete(&model.Article{}, id).Error
}

func (s *ArticleService) getOne(cond string, value any) (*model.Article, error) {
	var article model.Article
	err := database.GetDB().
		Preload("Category").
		Preload("User").
		Where(cond, value).
		First(&article).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (s *ArticleService) query(search string, categoryId int) *gorm.DB {
	db := database.GetDB().Model(&model.Article{})
	if search != "" {
		db = db.Where("title LIKE ?", "%"+search+"%")
	}
	if categoryId > 0 {
		db = db.Where("category_id = ?", categoryId)
	}
	return db
}

// validate checks every input rule before any side effect happens. A
// positive excludeId removes that article from the title uniqueness check.
func (s *ArticleService) validate(input *ArticleInput, excludeId int) error {
	ve := newValidationError()

	if input.Title == "" {
		ve.add("title", "title is required")
	} else {
		query := database.GetDB().Model(&model.Article{}).Where("title = ?", input.Title)
		if excludeId > 0 {
			query = query.Where("id <> ?", excludeId)
		}
		var count int64
		if err := query.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			ve.add("title", "title has already been taken")
		}
	}

	if input.Content == "" {
		ve.add("content", "content is required")
	}

	if input.CategoryId <= 0 {
		ve.add("category_id", "category_id is required")
	} else {
		var count int64
		if err := database.GetDB().Model(&model.Category{}).Where("id = ?", input.CategoryId).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			ve.add("category_id", "selected category_id is invalid")
		}
	}

	if input.Thumbnail != nil {
		if _, ok := thumbnailExts[input.Thumbnail.ContentType]; !ok {
			ve.add("thumbnail", "thumbnail must be a jpeg or png image")
		}
		if input.Thumbnail.Size > maxThumbnailSize {
			ve.add("thumbnail", "thumbnail may not be greater than 2MB")
		}
	}

	return ve.orNil()
}
