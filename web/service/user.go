package service

import (
	"blog-api/database"
	"blog-api/database/model"
)

// UserService reads user accounts. Mutation goes through AuthService.
type UserService struct{}

func (s *UserService) GetUser(id int) (*model.User, error) {
	var user model.User
	if err := database.GetDB().First(&user, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
