package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string         `json:"name" gorm:"default:''"`
	Email     string         `json:"email" gorm:"unique;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Role      string         `json:"role" gorm:"default:'USER'"` // USER or ADMIN
	Bio       string         `json:"bio" gorm:"default:''"`
	Avatar    string         `json:"avatar" gorm:"default:''"`
	Interests datatypes.JSON `json:"interests"`
	XP        uint           `json:"xp" gorm:"default:0"`
	IsDeleted bool           `json:"-" gorm:"default:false"`
}
