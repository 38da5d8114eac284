package models

import "gorm.io/gorm"

// ProgressRecord tracks how far a user has gotten through a topic.
// One row per (user, topic); writes are upserts keyed on that pair.
type ProgressRecord struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_topic"`
	TopicID   uint    `json:"topic_id" gorm:"not null;uniqueIndex:idx_progress_user_topic"`
	Progress  float64 `json:"progress" gorm:"default:0"` // percentage 0-100
	Completed bool    `json:"completed" gorm:"default:false"`
}

// ModuleCompletion marks a module watched to the end. The composite
// unique index is what makes the XP award race-safe: a second insert for
// the same pair fails at the store, not in application code.
type ModuleCompletion struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"not null;uniqueIndex:idx_completion_user_module"`
	ModuleID uint `json:"module_id" gorm:"not null;uniqueIndex:idx_completion_user_module"`
}
