package models

import "time"

type NewsletterSubscriber struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	SubscribedAt time.Time `json:"subscribed_at" gorm:"autoCreateTime"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
