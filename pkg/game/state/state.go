package state

import (
	"github.com/zyedidia/generic/mapset"

	"darkcave/pkg/game/entities"
)

// Game represents the state of one adventure session
type Game struct {
	Player *entities.Player

	CurrentRoom Room

	Visited mapset.Set[Room] // Rooms entered at least once, including the start

	Encounters int // Monster fights so far

	Outcome Outcome
}

// NewGame creates a new game at the cave entrance
func NewGame(playerName string) *Game {
	g := &Game{
		Player:      entities.NewPlayer(playerName),
		CurrentRoom: Entrance,
		Visited:     mapset.New[Room](),
	}
	g.Visited.Put(Entrance)
	return g
}

// MoveTo makes room the current room
func (g *Game) MoveTo(room Room) {
	g.CurrentRoom = room
	g.Visited.Put(room)
}

// End records the final outcome
func (g *Game) End(outcome Outcome) {
	g.Outcome = outcome
}

// Over returns true once the session has a terminal outcome
func (g *Game) Over() bool {
	return g.Outcome.Terminal()
}

// VisitedRooms returns the visited rooms in declaration order
func (g *Game) VisitedRooms() []Room {
	rooms := make([]Room, 0, g.Visited.Size())
	for _, r := range Rooms {
		if g.Visited.Has(r) {
			rooms = append(rooms, r)
		}
	}
	return rooms
}
