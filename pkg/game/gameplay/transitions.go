package gameplay

import "darkcave/pkg/game/state"

// Transition is where a menu choice leads
type Transition struct {
	Next    state.Room    // Room to move to; ignored when Outcome ends the session
	Outcome state.Outcome // OutcomeNone to keep playing
}

// roomMenu is what a room offers the player
type roomMenu struct {
	Description string
	Options     []string
	Choices     []Transition // Choices[i] is taken when option i+1 is picked
}

// menus holds every room that asks the player for a choice.
// Rooms without an entry run their effect as soon as they are entered.
var menus = map[state.Room]roomMenu{
	state.Entrance: {
		Description: "You are at the entrance of a dark cave.",
		Options:     []string{"Move to the hallway", "Leave the cave"},
		Choices: []Transition{
			{Next: state.Hallway},
			{Next: state.Entrance, Outcome: state.OutcomeQuit},
		},
	},
	state.Hallway: {
		Description: "You are in a long hallway.",
		Options:     []string{"Go to the treasure room", "Enter the monster room"},
		Choices: []Transition{
			{Next: state.TreasureRoom},
			{Next: state.MonsterRoom},
		},
	},
}

// HasMenu returns true if the room asks the player for a choice
func HasMenu(room state.Room) bool {
	_, ok := menus[room]
	return ok
}

// Menu returns the options offered in a room, or nil if it has no menu
func Menu(room state.Room) []string {
	return menus[room].Options
}

// Describe returns the room's description, or "" if it has no menu
func Describe(room state.Room) string {
	return menus[room].Description
}

// Next looks up where choice (1-indexed) leads from room.
// It returns false if the room has no menu or the choice is out of range.
func Next(room state.Room, choice int) (Transition, bool) {
	m, ok := menus[room]
	if !ok || choice < 1 || choice > len(m.Choices) {
		return Transition{}, false
	}
	return m.Choices[choice-1], true
}
