package models

import "time"

type MessageStatus string

const (
	MessageNew     MessageStatus = "new"
	MessageRead    MessageStatus = "read"
	MessageReplied MessageStatus = "replied"
	MessageClosed  MessageStatus = "closed"
)

func ValidMessageStatus(s MessageStatus) bool {
	switch s {
	case MessageNew, MessageRead, MessageReplied, MessageClosed:
		return true
	}
	return false
}

type ContactMessage struct {
	ID        uint          `json:"id" gorm:"primarykey"`
	Name      string        `json:"name" gorm:"not null"`
	Email     string        `json:"email" gorm:"not null"`
	Subject   string        `json:"subject" gorm:"not null"`
	Message   string        `json:"message" gorm:"type:text;not null"`
	Phone     string        `json:"phone"`
	Status    MessageStatus `json:"status" gorm:"default:'new'"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
