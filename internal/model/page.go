package model

import "time"

// Page is a content page served to the admin SPA.
type Page struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
