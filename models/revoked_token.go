package models

import "time"

// RevokedToken blacklists a refresh token by its jti claim. The set lives
// in the datastore so revocation survives restarts.
type RevokedToken struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	JTI       string    `json:"jti" gorm:"column:jti;uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at"`
	RevokedAt time.Time `json:"revoked_at" gorm:"autoCreateTime"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
