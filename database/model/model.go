// Package model defines the gorm entities of the blog API.
package model

import "time"

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Role      Role      `json:"role" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Article struct {
	Id         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string    `json:"title" gorm:"uniqueIndex;not null"`
	Slug       string    `json:"slug" gorm:"index;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Thumbnail  *string   `json:"thumbnail"` // relative asset path, null when absent
	CategoryId int       `json:"category_id" gorm:"not null"`
	UserId     int       `json:"user_id" gorm:"not null"` // last writer, overwritten on update
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryId"`
	User       *User     `json:"user,omitempty" gorm:"foreignKey:UserId"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
