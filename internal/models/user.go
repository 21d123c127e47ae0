package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a single vault account. Every salt and hash field is derived by
// the client and stored verbatim; the server never computes, validates, or
// interprets any of them. EncryptedVaultData holds the serialized ciphertext
// blob and must always be valid JSON array syntax, even when empty.
type User struct {
	ID                      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email                   string    `json:"email" gorm:"uniqueIndex;not null"`
	AuthSalt                string    `json:"-" gorm:"not null"`
	EncryptionSalt          string    `json:"-" gorm:"not null"`
	AuthHash                string    `json:"-" gorm:"not null"`
	MasterPasswordCheckHash string    `json:"-" gorm:"not null"`
	EncryptedVaultData      string    `json:"-" gorm:"type:text;not null;default:'[]'"`
	CreatedAt               time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt               time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
