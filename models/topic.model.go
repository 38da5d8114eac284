package models

import "gorm.io/gorm"

type Topic struct {
	gorm.Model
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Modules     []Module `json:"modules" gorm:"foreignKey:TopicID"`
	IsDeleted   bool     `json:"-" gorm:"default:false"`
}
