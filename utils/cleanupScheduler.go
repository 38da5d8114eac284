package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"skillup/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[MEDIA-CLEANUP %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartMediaCleanup runs an hourly sweep that deletes upload-dir files
// no module or avatar references. Covers uploads whose module create
// failed after the file was already written.
func StartMediaCleanup(db *gorm.DB, uploadDir string) *cron.Cron {
	c := cron.New()
	c.AddFunc("@hourly", func() {
		cleanOrphanMedia(db, uploadDir)
	})
	c.Start()
	return c
}

func cleanOrphanMedia(db *gorm.DB, uploadDir string) {
	referenced := make(map[string]bool)

	var modules []models.Module
	if err := db.Where("media_path <> ''").Find(&modules).Error; err != nil {
		logScheduler("Error fetching module media refs: " + err.Error())
		return
	}
	for _, m := range modules {
		referenced[filepath.Base(m.MediaPath)] = true
	}

	var users []models.User
	if err := db.Where("avatar <> ''").Find(&users).Error; err != nil {
		logScheduler("Error fetching avatar refs: " + err.Error())
		return
	}
	for _, u := range users {
		referenced[filepath.Base(u.Avatar)] = true
	}

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		logScheduler("Error reading upload dir: " + err.Error())
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		// Grace period so in-flight uploads are never swept
		if time.Since(info.ModTime()) < time.Hour {
			continue
		}
		if err := os.Remove(filepath.Join(uploadDir, entry.Name())); err != nil {
			logScheduler("Error removing " + entry.Name() + ": " + err.Error())
			continue
		}
		removed++
	}

	if removed > 0 {
		logScheduler(fmt.Sprintf("Removed %d orphaned files", removed))
	}
}
