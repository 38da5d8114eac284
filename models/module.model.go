package models

import "gorm.io/gorm"

// Module is a single unit of content inside a topic
type Module struct {
	gorm.Model
	TopicID    uint   `json:"topic_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Type       string `json:"type" gorm:"default:'VIDEO'"` // VIDEO, TEXT, QUIZ
	Duration   int    `json:"duration" gorm:"default:0"`   // duration in seconds
	MediaPath  string `json:"media_path"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
