package models

import "time"

type User struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Username   string    `json:"username" gorm:"uniqueIndex;not null"`
	Email      string    `json:"email" gorm:"not null"`
	Password   string    `json:"-" gorm:"not null"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	IsActive   bool      `json:"-" gorm:"default:true"`
	IsStaff    bool      `json:"-" gorm:"default:false"`
	DateJoined time.Time `json:"date_joined" gorm:"autoCreateTime"`
}

// PublicUser is the projection returned to API consumers. It never
// carries the password hash or the role flags.
type PublicUser struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	DateJoined time.Time `json:"date_joined"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		DateJoined: u.DateJoined,
	}
}
