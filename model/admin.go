package model

import (
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

type User struct {
	gorm.Model
	Name     string   `json:"name"`
	Email    string   `json:"email" gorm:"index"`
	Role     UserRole `json:"role"`
	Password string   `json:"-"`
}
