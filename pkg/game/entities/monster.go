package entities

// Goblin stats. Every encounter uses the same values.
const (
	GoblinName   = "Goblin"
	GoblinDamage = 20
)

// Monster is a hostile creature met in the monster room.
// Monsters are not tracked between visits; each encounter builds a new one.
type Monster struct {
	Name   string
	Damage int // Health taken from the player per encounter
}

// NewGoblin creates a fresh, unharmed goblin
func NewGoblin() Monster {
	return Monster{
		Name:   GoblinName,
		Damage: GoblinDamage,
	}
}

// Strike deals the monster's damage to the player and returns the health left.
// The hit always lands.
func (m Monster) Strike(p *Player) int {
	p.Health -= m.Damage
	return p.Health
}
