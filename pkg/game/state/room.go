package state

// Room is a location in the cave, and the state of the adventure
type Room int

// Rooms
const (
	Entrance Room = iota
	Hallway
	TreasureRoom
	MonsterRoom
)

// Rooms lists every room in declaration order
var Rooms = []Room{Entrance, Hallway, TreasureRoom, MonsterRoom}

// String returns the room's label
func (r Room) String() string {
	switch r {
	case Entrance:
		return "Entrance"
	case Hallway:
		return "Hallway"
	case TreasureRoom:
		return "TreasureRoom"
	case MonsterRoom:
		return "MonsterRoom"
	default:
		return "Unknown"
	}
}

// Outcome is how a session ended, if it has
type Outcome int

// Outcomes
const (
	OutcomeNone Outcome = iota // Still playing
	OutcomeWon                 // Reached the treasure room
	OutcomeDied                // Health ran out in combat
	OutcomeQuit                // Left the cave from the entrance
)

// String returns a short outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWon:
		return "won"
	case OutcomeDied:
		return "died"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal returns true if the outcome ends the session
func (o Outcome) Terminal() bool {
	return o != OutcomeNone
}
