package service

import (
	"gorm.io/gorm"

	"blog-api/database"
	"blog-api/database/model"
	"blog-api/web/entity"
)

// CategoryService manages the category resource.
type CategoryService struct{}

// List returns one page of categories matching the optional name search,
// most recent first. Malformed paging input falls back to defaults.
func (s *CategoryService) List(search string, limit, page int) (*entity.Page, error) {
	var total int64
	if err := s.query(search).Count(&total).Error; err != nil {
		return nil, err
	}

	limit, page = normalizePaging(limit, page)

	var categories []model.Category
	err := s.query(search).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return &entity.Page{
		Items:      categories,
		Pagination: paginationFor(total, limit, page),
	}, nil
}

func (s *CategoryService) GetById(id int) (*model.Category, error) {
	var category model.Category
	if err := database.GetDB().First(&category, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create validates the name and persists a new category.
func (s *CategoryService) Create(name string) (*model.Category, error) {
	if err := s.validate(name, 0); err != nil {
		return nil, err
	}
	category := &model.Category{Name: name}
	if err := database.GetDB().Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Update renames an existing category. The uniqueness check excludes the
// category's own row.
func (s *CategoryService) Update(id int, name string) (*model.Category, error) {
	category, err := s.GetById(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(name, id); err != nil {
		return nil, err
	}
	category.Name = name
	if err := database.GetDB().Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Deletion is rejected while articles still
// reference it.
func (s *CategoryService) Delete(id int) error {
	category, err := s.GetById(id)
	if err != nil {
		return err
	}

	var referenced int64
	if err := database.GetDB().Model(&model.Article{}).Where("category_id = ?", id).Count(&referenced).Error; err != nil {
		return err
	}
	if referenced > 0 {
		ve := newValidationError()
		ve.add("name", "category is still referenced by articles")
		return ve
	}

	return database.GetDB().Delete(category).Error
}

func (s *CategoryService) query(search string) *gorm.DB {
	db := database.GetDB().Model(&model.Category{})
	if search != "" {
		db = db.Where("name LIKE ?", "%"+search+"%")
	}
	return db
}

func (s *CategoryService) validate(name string, excludeId int) error {
	ve := newValidationError()
	if name == "" {
		ve.add("name", "name is required")
		return ve
	}

	query := database.GetDB().Model(&model.Category{}).Where("name = ?", name)
	if excludeId > 0 {
		query = query.Where("id <> ?", excludeId)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		ve.add("name", "name has already been taken")
	}
	return ve.orNil()
}
