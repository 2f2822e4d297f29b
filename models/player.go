package models

import "time"

type Player struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"index" json:"room_id"`
	Token     string    `gorm:"uniqueIndex" json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
