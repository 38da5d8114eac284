package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"index;not null"`
	Title  string `json:"title"`
	Body   string `json:"body" gorm:"type:text"`
}
