package models

import "time"

// Item is a per-user catalog entry for line-item autosuggestion.
// Names are unique per user, case-insensitively; the constraint lives in a
// Postgres expression index on (user_id, lower(nama)) created at migration.
type Item struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	UserID    string    `json:"user_id" gorm:"size:64;index;not null"`
	Nama      string    `json:"nama" gorm:"size:255;not null"`
}
