package model

import "time"

// Tab is a navigation entry in the admin SPA. VisibleRoles restricts which
// role names see the tab; an empty set means everyone.
type Tab struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Title  string `json:"title" gorm:"size:255;not null"`
	UISref string `json:"uisref" gorm:"size:255;not null"`

	VisibleRoles []Role `json:"visible_roles,omitempty" gorm:"many2many:tab_roles"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
