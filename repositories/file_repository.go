package repositories

import (
	"errors"

	"tuneshop-backend/models"

	"gorm.io/gorm"
)

type FileRepository struct {
	store *Store
}

func NewFileRepository(store *Store) *FileRepository {
	return &FileRepository{store: store}
}

func (r *FileRepository) Create(file *models.File) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	return db.Create(file).Error
}

func (r *FileRepository) ListByOrder(orderID uint) ([]models.File, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	files := make([]models.File, 0)
	err = db.Where("order_id = ?", orderID).
		Order("uploaded_at DESC, id DESC").
		Find(&files).Error
	return files, err
}

func (r *FileRepository) GetByID(id uint) (*models.File, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var file models.File
	if err := db.First(&file, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}
