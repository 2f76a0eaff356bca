package models

import "time"

// Slot is a fixed 30-minute bookable window. The composite unique index
// guarantees no two slots ever share the same (start_at, end_at) pair,
// which is what makes duplicate generation safe to absorb.
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartAt time.Time `gorm:"not null;uniqueIndex:idx_slot_window" json:"start_at"`
	EndAt   time.Time `gorm:"not null;uniqueIndex:idx_slot_window" json:"end_at"`

	Booked bool `gorm:"not null;default:false" json:"booked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
