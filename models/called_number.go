package models

import "time"

// CalledNumber records one number announced by the host. Position is
// the 1-based call order within the room.
type CalledNumber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"uniqueIndex:idx_room_number" json:"room_id"`
	Number    int       `gorm:"uniqueIndex:idx_room_number" json:"number"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
