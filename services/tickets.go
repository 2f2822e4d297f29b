package services

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/minhtri-dev/loto-backend/loto"
	"github.com/minhtri-dev/loto-backend/models"
	"github.com/minhtri-dev/loto-backend/utils/logger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaxIssueAttempts bounds how often IssueTicket regenerates after a
// hash collision with an already-issued ticket in the same room.
const MaxIssueAttempts = 10

// ErrTicketIssueExhausted means every regeneration attempt collided
// with an existing ticket hash in the room.
var ErrTicketIssueExhausted = errors.New("services: could not issue a unique ticket")

// generateTicket is a seam for tests to force collisions or generator
// failures.
var generateTicket = loto.Generate

// -------------------- Per-room issue serialization --------------------

var (
	roomLocks   = make(map[uint]*sync.Mutex)
	roomLocksMu sync.Mutex
)

// roomLock returns the mutex serializing ticket issue for a room. Two
// players joining at once must not both pass the duplicate check with
// the same hash; the DB unique index on (room_id, hash) stays as the
// backstop for multi-process deployments.
func roomLock(roomID uint) *sync.Mutex {
	roomLocksMu.Lock()
	defer roomLocksMu.Unlock()
	mu, ok := roomLocks[roomID]
	if !ok {
		mu = &sync.Mutex{}
		roomLocks[roomID] = mu
	}
	return mu
}

// -------------------- Ticket issue --------------------

// IssueTicket generates a fresh grid for the player and persists it,
// regenerating on a hash collision with any ticket already issued in
// the room. The generator itself retries internally; a collision here
// is a different condition and gets a fresh grid, not an error.
func IssueTicket(db *gorm.DB, roomID, playerID uint) (*models.Ticket, error) {
	mu := roomLock(roomID)
	mu.Lock()
	defer mu.Unlock()

	for attempt := 1; attempt <= MaxIssueAttempts; attempt++ {
		grid, err := generateTicket()
		if err != nil {
			return nil, err
		}
		hash := grid.Hash()

		var count int64
		if err := db.Model(&models.Ticket{}).
			Where("room_id = ? AND hash = ?", roomID, hash).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			logger.Infof("[Ticket] room %d: hash collision on attempt %d, regenerating", roomID, attempt)
			continue
		}

		data, err := json.Marshal(grid)
		if err != nil {
			return nil, err
		}
		ticket := &models.Ticket{
			RoomID:   roomID,
			PlayerID: playerID,
			Hash:     hash,
			Grid:     datatypes.JSON(data),
		}
		if err := db.Create(ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				logger.Infof("[Ticket] room %d: unique index rejected hash on attempt %d", roomID, attempt)
				continue
			}
			return nil, err
		}
		return ticket, nil
	}
	return nil, ErrTicketIssueExhausted
}

// TicketGrid decodes the stored canonical serialization back into a
// grid value.
func TicketGrid(t *models.Ticket) (loto.Grid, error) {
	var grid loto.Grid
	if err := json.Unmarshal(t.Grid, &grid); err != nil {
		return loto.Grid{}, err
	}
	return grid, nil
}
