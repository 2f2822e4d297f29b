package services

import (
	"crypto/rand"
	"errors"

	"github.com/google/uuid"
	"github.com/minhtri-dev/loto-backend/models"
	"github.com/minhtri-dev/loto-backend/utils/logger"
	"gorm.io/gorm"
)

const (
	// RoomCodeLength is the length of the join code printed on the
	// host's screen and embedded in the share link.
	RoomCodeLength = 6

	// roomCodeAlphabet avoids 0/O, 1/I/L so codes survive being read
	// aloud or retyped from a photo.
	roomCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

	maxCodeAttempts = 5
)

var (
	ErrRoomClosed          = errors.New("services: room is not accepting players")
	ErrNotHost             = errors.New("services: host token mismatch")
	ErrNumberOutOfRange    = errors.New("services: called number must be between 1 and 90")
	ErrNumberAlreadyCalled = errors.New("services: number already called in this room")
)

// NewRoomCode returns a random join code from the unambiguous
// alphabet.
func NewRoomCode() string {
	buf := make([]byte, RoomCodeLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, b := range buf {
		buf[i] = roomCodeAlphabet[int(b)%len(roomCodeAlphabet)]
	}
	return string(buf)
}

// CreateRoom persists a new waiting room with a fresh code and host
// token, retrying the code on the unlikely collision with an existing
// room.
func CreateRoom(db *gorm.DB) (*models.Room, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		room := &models.Room{
			Code:      NewRoomCode(),
			HostToken: uuid.NewString(),
			Status:    models.RoomWaiting,
		}
		if err := db.Create(room).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				logger.Infof("[Room] code collision on attempt %d, regenerating", attempt)
				continue
			}
			return nil, err
		}
		logger.Infof("[Room] created room %s (id=%d)", room.Code, room.ID)
		return room, nil
	}
	return nil, errors.New("services: could not allocate a unique room code")
}

// FindRoomByCode loads a room by its join code.
func FindRoomByCode(db *gorm.DB, code string) (*models.Room, error) {
	var room models.Room
	if err := db.Where("code = ?", code).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// JoinRoom registers a guest player in the room and issues their
// ticket. The ticket comes from IssueTicket, so the (room, hash)
// uniqueness guarantee holds across concurrent joins.
func JoinRoom(db *gorm.DB, room *models.Room, name string) (*models.Player, *models.Ticket, error) {
	if room.Status == models.RoomFinished {
		return nil, nil, ErrRoomClosed
	}

	player := &models.Player{
		RoomID: room.ID,
		Token:  uuid.NewString(),
		Name:   name,
	}
	if err := db.Create(player).Error; err != nil {
		return nil, nil, err
	}

	ticket, err := IssueTicket(db, room.ID, player.ID)
	if err != nil {
		return nil, nil, err
	}
	logger.Infof("[Room] player %d joined room %s with ticket %s", player.ID, room.Code, ticket.Hash[:8])
	return player, ticket, nil
}

// CallNumber records the host announcing a number. The first call
// moves the room from waiting to playing.
func CallNumber(db *gorm.DB, room *models.Room, hostToken string, number int) (*models.CalledNumber, error) {
	if room.HostToken != hostToken {
		return nil, ErrNotHost
	}
	if room.Status == models.RoomFinished {
		return nil, ErrRoomClosed
	}
	if number < 1 || number > 90 {
		return nil, ErrNumberOutOfRange
	}

	var called *models.CalledNumber
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.CalledNumber{}).
			Where("room_id = ? AND number = ?", room.ID, number).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrNumberAlreadyCalled
		}

		var position int64
		if err := tx.Model(&models.CalledNumber{}).
			Where("room_id = ?", room.ID).
			Count(&position).Error; err != nil {
			return err
		}

		called = &models.CalledNumber{
			RoomID:   room.ID,
			Number:   number,
			Position: int(position) + 1,
		}
		if err := tx.Create(called).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrNumberAlreadyCalled
			}
			return err
		}

		if room.Status == models.RoomWaiting {
			room.Status = models.RoomPlaying
			return tx.Model(room).Update("status", models.RoomPlaying).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Infof("[Room] %s called %d (position %d)", room.Code, called.Number, called.Position)
	return called, nil
}

// CalledNumbers returns the room's call history in call order.
func CalledNumbers(db *gorm.DB, roomID uint) ([]models.CalledNumber, error) {
	var calls []models.CalledNumber
	if err := db.Where("room_id = ?", roomID).Order("position asc").Find(&calls).Error; err != nil {
		return nil, err
	}
	return calls, nil
}

// CalledSet returns the room's called numbers as a set, the overlay a
// win check runs against.
func CalledSet(db *gorm.DB, roomID uint) (map[int]bool, error) {
	calls, err := CalledNumbers(db, roomID)
	if err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(calls))
	for _, c := range calls {
		set[c.Number] = true
	}
	return set, nil
}

// FinishRoom marks the room finished; host only.
func FinishRoom(db *gorm.DB, room *models.Room, hostToken string) error {
	if room.HostToken != hostToken {
		return ErrNotHost
	}
	room.Status = models.RoomFinished
	return db.Model(room).Update("status", models.RoomFinished).Error
}
