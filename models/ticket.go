package models

import (
	"time"

	"gorm.io/datatypes"
)

// Ticket stores one issued 3x9 grid. Grid holds the canonical JSON
// serialization; Hash is its SHA-256 and is unique per room, which is
// what guarantees no two players in a room hold the same ticket.
type Ticket struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	RoomID    uint           `gorm:"uniqueIndex:idx_room_hash" json:"room_id"`
	PlayerID  uint           `gorm:"index" json:"player_id"`
	Hash      string         `gorm:"uniqueIndex:idx_room_hash;size:64" json:"hash"`
	Grid      datatypes.JSON `json:"grid"`
	CreatedAt time.Time      `json:"created_at"`
}
