package entities

// StartingHealth is the health every new player begins with
const StartingHealth = 100

// Player is the adventurer controlled by the user
type Player struct {
	Name      string
	Health    int    // No floor: combat may take this below zero
	Inventory []Item // In order of acquisition; items are never removed
}

// NewPlayer creates a player with full health and an empty inventory
func NewPlayer(name string) *Player {
	return &Player{
		Name:      name,
		Health:    StartingHealth,
		Inventory: make([]Item, 0),
	}
}

// IsAlive returns true while the player has health left
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// PickUp appends an item to the inventory
func (p *Player) PickUp(item Item) {
	p.Inventory = append(p.Inventory, item)
}

// Count returns how many of the given item the player carries
func (p *Player) Count(item Item) int {
	n := 0
	for _, owned := range p.Inventory {
		if owned == item {
			n++
		}
	}
	return n
}

// HasItem checks if the player carries at least one of the given item
func (p *Player) HasItem(item Item) bool {
	return p.Count(item) > 0
}
