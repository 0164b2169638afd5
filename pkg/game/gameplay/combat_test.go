package gameplay

import (
	"testing"

	"darkcave/pkg/game/entities"
)

func TestResolveCombat(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		wantHealth int
		wantWon    bool
	}{
		{"full health", 100, 80, true},
		{"barely survives", 21, 1, true},
		{"exactly lethal", 20, 0, false},
		{"overkill", 10, -10, false},
		{"already dead", 0, -20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := entities.NewPlayer("Hero")
			p.Health = tt.health

			enc := ResolveCombat(p)

			if p.Health != tt.wantHealth {
				t.Errorf("Health = %d, want %d", p.Health, tt.wantHealth)
			}
			if enc.HealthBefore != tt.health || enc.HealthAfter != tt.wantHealth {
				t.Errorf("Encounter health = %d -> %d, want %d -> %d",
					enc.HealthBefore, enc.HealthAfter, tt.health, tt.wantHealth)
			}
			if enc.Won != tt.wantWon {
				t.Errorf("Won = %v, want %v", enc.Won, tt.wantWon)
			}

			wantSwords := 0
			if tt.wantWon {
				wantSwords = 1
			}
			if got := p.Count(entities.Sword); got != wantSwords {
				t.Errorf("Count(Sword) = %d, want %d", got, wantSwords)
			}
			if p.HasItem(entities.HealthPotion) {
				t.Error("HasItem(HealthPotion) = true, want false")
			}
			if len(p.Inventory) != wantSwords {
				t.Errorf("Inventory = %v, want %d items", p.Inventory, wantSwords)
			}
		})
	}
}

func TestResolveCombat_FreshGoblinEachTime(t *testing.T) {
	p := entities.NewPlayer("Hero")

	first := ResolveCombat(p)
	second := ResolveCombat(p)

	if first.Monster != second.Monster {
		t.Errorf("second goblin = %+v, want identical to first %+v", second.Monster, first.Monster)
	}
	if second.Monster.Damage != entities.GoblinDamage {
		t.Errorf("second goblin damage = %d, want %d", second.Monster.Damage, entities.GoblinDamage)
	}
	if p.Health != 60 {
		t.Errorf("Health after two fights = %d, want 60", p.Health)
	}
	if got := p.Count(entities.Sword); got != 2 {
		t.Errorf("Count(Sword) after two fights = %d, want 2", got)
	}
}

func TestResolveCombat_DefeatKeepsInventory(t *testing.T) {
	p := entities.NewPlayer("Hero")
	p.PickUp(entities.Sword)
	p.Health = 15

	enc := ResolveCombat(p)

	if enc.Won {
		t.Fatal("Won = true, want false")
	}
	if len(enc.Loot) != 0 {
		t.Errorf("Loot = %v, want none", enc.Loot)
	}
	if len(p.Inventory) != 1 || p.Inventory[0] != entities.Sword {
		t.Errorf("Inventory = %v, want [Sword]", p.Inventory)
	}
}
