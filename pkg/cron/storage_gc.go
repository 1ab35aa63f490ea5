package cron

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"vitrine_backend/internal/model"
	"vitrine_backend/pkg/database"
	"vitrine_backend/pkg/utils/storage"
)

// Uploads that fail mid-submit leave objects behind without a matching
// record. They are reaped here once they are old enough that no in-flight
// submit can still reference them.
const orphanMinAge = 24 * time.Hour

func InitStorageGCCron() {
	c := cron.New()

	_, err := c.AddFunc("0 4 * * *", func() {
		RunStorageGC(context.Background())
	})

	if err != nil {
		log.Printf("Could not initialize storage GC cron: %v", err)
		return
	}

	c.Start()
}

// RunStorageGC removes stored image objects no property row references.
func RunStorageGC(ctx context.Context) {
	client := storage.GetClient()
	db := database.GetDB()
	if client == nil || db == nil {
		return
	}

	objects, err := client.List(ctx, storage.ObjectKeyPrefix)
	if err != nil {
		log.Printf("Storage GC: could not list objects: %v", err)
		return
	}
	if len(objects) == 0 {
		return
	}

	var properties []model.Property
	if err := db.Select("images").Find(&properties).Error; err != nil {
		log.Printf("Storage GC: could not load property images: %v", err)
		return
	}

	referenced := map[string]bool{}
	for _, property := range properties {
		for _, url := range property.Images {
			if key, ok := storage.KeyFromPublicURL(url, client.Bucket()); ok {
				referenced[key] = true
			}
		}
	}

	cutoff := time.Now().Add(-orphanMinAge)
	var orphans []string
	for _, object := range objects {
		if referenced[object.Key] {
			continue
		}
		if !strings.HasPrefix(object.Key, storage.ObjectKeyPrefix) {
			continue
		}
		if object.LastModified.After(cutoff) {
			continue
		}
		orphans = append(orphans, object.Key)
	}

	if len(orphans) == 0 {
		return
	}

	if err := client.Remove(ctx, orphans); err != nil {
		log.Printf("Storage GC: could not remove %d orphaned objects: %v", len(orphans), err)
		return
	}

	log.Printf("Storage GC: removed %d orphaned objects", len(orphans))
}
