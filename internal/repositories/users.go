package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/xero1ghost/arcania-backend/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrUserNotFound is returned when no record exists for an email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when a signup collides with an existing email.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository owns all access to the users table. Each method is a single
// per-request transaction; a failed mutation leaves the record untouched.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user record. The ID is assigned here and the vault
// blob starts as an empty serialized list. Returns ErrEmailTaken if the
// email already has a record.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", user.Email).First(&existing).Error
		switch {
		case err == nil:
			return ErrEmailTaken
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		user.ID = uuid.New()
		if user.EncryptedVaultData == "" {
			user.EncryptedVaultData = "[]"
		}
		return tx.Create(user).Error
	})
}

// FindByEmail looks up the record for an email, or ErrUserNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, err
	}
	return &user, nil
}

// SaveVault replaces the stored ciphertext blob wholesale. The caller is
// responsible for merging; no patch semantics exist.
func (r *UserRepository) SaveVault(ctx context.Context, email, data string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("email = ?", email).
			Update("encrypted_vault_data", data)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

// Delete permanently removes the record and its vault blob. No soft-delete.
func (r *UserRepository) Delete(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("email = ?", email).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
