package models

import (
	"time"
)

// Location represents the locations table. Properties are grouped by
// location ("group" in the mobile app).
type Location struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	DocumentID string     `json:"document_id" gorm:"column:document_id"`
	Name       string     `json:"name" gorm:"column:name"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:LocationID"`
}

// TableName sets the insert table name for Location
func (Location) TableName() string {
	return "locations"
}
