package outcome

import "github.com/cory-johannsen/advgame/internal/game/world"

const (
	KindLeftRoom    Kind = "navigation.left_room"
	KindEnteredRoom Kind = "navigation.entered_room"
	KindWonTheGame  Kind = "navigation.won"
	KindDoorLocked  Kind = "navigation.door_locked"
	KindDoorClosed  Kind = "navigation.door_closed"
)

// DoorView is a door as listed in a room description.
type DoorView struct {
	Direction world.Direction
	Title     string
	Doorway   bool
	Closed    bool
}

// LeftRoom confirms passage through a door.
type LeftRoom struct {
	sealedOutcome
	Direction world.Direction
	Door      string
}

func (LeftRoom) Kind() Kind { return KindLeftRoom }

// EnteredRoom describes the room the player is now in.
type EnteredRoom struct {
	sealedOutcome
	Title       string
	Description string
	Doors       []DoorView
	Creature    string
	Container   string
	Floor       []ItemCount
}

func (EnteredRoom) Kind() Kind { return KindEnteredRoom }

// WonTheGame ends the game in victory.
type WonTheGame struct{ sealedOutcome }

func (WonTheGame) Kind() Kind { return KindWonTheGame }

// DoorLocked blocks leaving through a locked door.
type DoorLocked struct {
	sealedOutcome
	Target Target
}

func (DoorLocked) Kind() Kind { return KindDoorLocked }

// DoorClosed blocks leaving through a closed door.
type DoorClosed struct {
	sealedOutcome
	Target Target
}

func (DoorClosed) Kind() Kind { return KindDoorClosed }
