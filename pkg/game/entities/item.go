package entities

// Item is something the player can carry
type Item int

const (
	HealthPotion Item = iota // Declared for completeness; nothing grants it yet
	Sword                    // Dropped by a defeated monster
)

// String returns the item's display name
func (i Item) String() string {
	switch i {
	case HealthPotion:
		return "Health Potion"
	case Sword:
		return "Sword"
	default:
		return "Unknown"
	}
}
