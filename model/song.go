package model

import "time"

// Song represents a song in the catalog. Genre and duration are optional and
// stay null when absent. Duration is in seconds.
type Song struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Genre     *string   `json:"genre" gorm:"size:50"`
	Duration  *int64    `json:"duration"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
