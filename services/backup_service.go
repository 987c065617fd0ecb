package services

import (
	"fmt"
	"log"
	"time"

	"tuneshop-backend/repositories"
	"tuneshop-backend/storage"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// BackupService drops a nightly backup marker into the object store and
// stamps settings.lastBackup. Skipped while settings.backupEnabled is off.
type BackupService struct {
	store    *repositories.Store
	settings *repositories.SettingRepository
	objects  storage.Storage
}

func NewBackupService(store *repositories.Store, objects storage.Storage) *BackupService {
	return &BackupService{
		store:    store,
		settings: repositories.NewSettingRepository(store),
		objects:  objects,
	}
}

func (s *BackupService) StartScheduler() {
	c := cron.New()
	c.AddFunc("0 3 * * *", func() {
		if err := s.Run(); err != nil {
			log.Printf("Backup run failed: %v", err)
		}
	})
	c.Start()
	log.Println("Backup scheduler started")
}

func (s *BackupService) Run() error {
	setting, err := s.settings.Get()
	if err != nil {
		return err
	}
	if setting == nil || !setting.BackupEnabled {
		return nil
	}

	now := time.Now()
	key := fmt.Sprintf("backups/%s-%s.marker", now.Format("20060102-150405"), uuid.NewString()[:8])
	body := []byte(fmt.Sprintf("backup %s\n", now.Format(time.RFC3339)))
	if _, err := s.objects.Put(key, body, "text/plain"); err != nil {
		return err
	}

	_, err = s.settings.Update(repositories.SettingUpdate{LastBackup: &now})
	return err
}
