package models

import "gorm.io/gorm"

type Badge struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index;not null"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
