package model

import "time"

// User represents a catalog user. A user owns zero or more playlists.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
