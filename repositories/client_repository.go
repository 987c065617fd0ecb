package repositories

import (
	"errors"

	"tuneshop-backend/models"

	"gorm.io/gorm"
)

// ClientFilter narrows List. Zero values impose no constraint; set fields
// combine with AND.
type ClientFilter struct {
	Search        string // matches first or last name, substring
	LoyaltyStatus string
}

// ClientUpdate carries a partial update; nil fields are left untouched.
type ClientUpdate struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Phone         *string
	VIN           *string
	VehicleModel  *string
	VehicleYear   *int
	LoyaltyStatus *string
	Notes         *string
}

type ClientRepository struct {
	store *Store
}

func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

func (r *ClientRepository) Create(client *models.Client) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}
	return db.Create(client).Error
}

func (r *ClientRepository) List(filter ClientFilter) ([]models.Client, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	query := db.Model(&models.Client{})
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ?", term, term)
	}
	if filter.LoyaltyStatus != "" {
		query = query.Where("loyalty_status = ?", filter.LoyaltyStatus)
	}

	clients := make([]models.Client, 0)
	err = query.Order("created_at DESC, id DESC").Find(&clients).Error
	return clients, err
}

// GetByID returns (nil, nil) when no client matches.
func (r *ClientRepository) GetByID(id uint) (*models.Client, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var client models.Client
	if err := db.First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

// GetByVIN returns (nil, nil) when no client has the VIN. Used for the
// duplicate-VIN pre-check on create and update.
func (r *ClientRepository) GetByVIN(vin string) (*models.Client, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var client models.Client
	if err := db.First(&client, "vin = ?", vin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

// Update applies the provided fields only. Returns (nil, nil) when the
// client does not exist.
func (r *ClientRepository) Update(id uint, upd ClientUpdate) (*models.Client, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	client, err := r.GetByID(id)
	if err != nil || client == nil {
		return nil, err
	}

	if upd.FirstName != nil {
		client.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		client.LastName = *upd.LastName
	}
	if upd.Email != nil {
		client.Email = *upd.Email
	}
	if upd.Phone != nil {
		client.Phone = *upd.Phone
	}
	if upd.VIN != nil {
		client.VIN = upd.VIN
	}
	if upd.VehicleModel != nil {
		client.VehicleModel = *upd.VehicleModel
	}
	if upd.VehicleYear != nil {
		client.VehicleYear = upd.VehicleYear
	}
	if upd.LoyaltyStatus != nil {
		client.LoyaltyStatus = *upd.LoyaltyStatus
	}
	if upd.Notes != nil {
		client.Notes = *upd.Notes
	}

	if err := db.Save(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}
