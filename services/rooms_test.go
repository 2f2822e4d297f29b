package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/minhtri-dev/loto-backend/config"
	"github.com/minhtri-dev/loto-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func TestNewRoomCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := NewRoomCode()
		assert.Len(t, code, RoomCodeLength)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(roomCodeAlphabet, ch), "unexpected character %q in %s", ch, code)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 95, "codes should essentially never repeat")
}

func TestCreateAndFindRoom(t *testing.T) {
	db := testDB(t)

	room, err := CreateRoom(db)
	require.NoError(t, err)
	assert.Equal(t, models.RoomWaiting, room.Status)
	assert.Len(t, room.Code, RoomCodeLength)
	_, err = uuid.Parse(room.HostToken)
	assert.NoError(t, err)

	found, err := FindRoomByCode(db, room.Code)
	require.NoError(t, err)
	assert.Equal(t, room.ID, found.ID)

	_, err = FindRoomByCode(db, "ZZZZZZ")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestJoinRoomIssuesTicket(t *testing.T) {
	db := testDB(t)
	room, err := CreateRoom(db)
	require.NoError(t, err)

	hashes := make(map[string]bool)
	for _, name := range []string{"An", "Bình", "Chi"} {
		player, ticket, err := JoinRoom(db, room, name)
		require.NoError(t, err)
		assert.Equal(t, room.ID, player.RoomID)
		_, err = uuid.Parse(player.Token)
		assert.NoError(t, err)

		grid, err := TicketGrid(ticket)
		require.NoError(t, err)
		assert.Equal(t, grid.Hash(), ticket.Hash)
		hashes[ticket.Hash] = true
	}
	assert.Len(t, hashes, 3, "every player gets a distinct ticket")
}

func TestJoinRoomRejectsFinishedRoom(t *testing.T) {
	db := testDB(t)
	room, err := CreateRoom(db)
	require.NoError(t, err)

	require.NoError(t, FinishRoom(db, room, room.HostToken))
	_, _, err = JoinRoom(db, room, "Muộn")
	assert.ErrorIs(t, err, ErrRoomClosed)
}

func TestCallNumber(t *testing.T) {
	db := testDB(t)
	room, err := CreateRoom(db)
	require.NoError(t, err)

	_, err = CallNumber(db, room, "wrong-token", 7)
	assert.ErrorIs(t, err, ErrNotHost)

	_, err = CallNumber(db, room, room.HostToken, 0)
	assert.ErrorIs(t, err, ErrNumberOutOfRange)
	_, err = CallNumber(db, room, room.HostToken, 91)
	assert.ErrorIs(t, err, ErrNumberOutOfRange)

	first, err := CallNumber(db, room, room.HostToken, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, models.RoomPlaying, room.Status, "first call starts the game")

	_, err = CallNumber(db, room, room.HostToken, 7)
	assert.ErrorIs(t, err, ErrNumberAlreadyCalled)

	second, err := CallNumber(db, room, room.HostToken, 90)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Position)

	calls, err := CalledNumbers(db, room.ID)
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, 7, calls[0].Number)
	assert.Equal(t, 90, calls[1].Number)

	set, err := CalledSet(db, room.ID)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{7: true, 90: true}, set)
}

func TestFinishRoomHostOnly(t *testing.T) {
	db := testDB(t)
	room, err := CreateRoom(db)
	require.NoError(t, err)

	assert.ErrorIs(t, FinishRoom(db, room, "wrong"), ErrNotHost)
	require.NoError(t, FinishRoom(db, room, room.HostToken))

	_, err = CallNumber(db, room, room.HostToken, 5)
	assert.ErrorIs(t, err, ErrRoomClosed)
}
