package models

import "gorm.io/gorm"

type Post struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"index"`
	Author  string `json:"author"`
	Content string `json:"content" gorm:"type:text"`
}
