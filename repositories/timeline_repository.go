package repositories

import (
	"tuneshop-backend/models"
)

type TimelineRepository struct {
	store *Store
}

func NewTimelineRepository(store *Store) *TimelineRepository {
	return &TimelineRepository{store: store}
}

func (r *TimelineRepository) AddEvent(event *models.TimelineEvent) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	return db.Create(event).Error
}

func (r *TimelineRepository) ListByOrder(orderID uint) ([]models.TimelineEvent, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	events := make([]models.TimelineEvent, 0)
	err = db.Where("order_id = ?", orderID).
		Order("created_at DESC, id DESC").
		Find(&events).Error
	return events, err
}
