package repositories

import (
	"time"

	"clickexpress-cms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TokenRepository interface {
	Revoke(jti string, expiresAt time.Time) error
	IsRevoked(jti string) (bool, error)
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Revoke blacklists a jti. Revoking an already-revoked token is fine, so a
// conflicting insert is a no-op rather than an error.
func (r *tokenRepository) Revoke(jti string, expiresAt time.Time) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}).Error
}

func (r *tokenRepository) IsRevoked(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}
