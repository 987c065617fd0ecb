package repositories

import (
	"errors"
	"os"
	"time"

	"tuneshop-backend/models"
	"tuneshop-backend/utils"

	"gorm.io/gorm"
)

// UserUpsert is the identity payload handed over by the auth provider on
// login.
type UserUpsert struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
}

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Upsert creates the user on first login and refreshes identity fields on
// subsequent logins. The role comes from utils.ResolveRole; a user matching
// the configured owner identity is promoted to admin even if created earlier
// as a regular user.
func (r *UserRepository) Upsert(in UserUpsert) (*models.User, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}
	if in.OpenID == "" {
		return nil, errors.New("openId is required for upsert")
	}

	role := utils.ResolveRole(in.OpenID, os.Getenv("OWNER_OPEN_ID"))
	now := time.Now()

	var user models.User
	err = db.First(&user, "open_id = ?", in.OpenID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			OpenID:       in.OpenID,
			Name:         in.Name,
			Email:        in.Email,
			LoginMethod:  in.LoginMethod,
			Role:         role,
			LastSignedIn: now,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.LoginMethod != "" {
		user.LoginMethod = in.LoginMethod
	}
	if role == "admin" {
		user.Role = "admin"
	}
	user.LastSignedIn = now

	if err := db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
