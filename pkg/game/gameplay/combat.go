package gameplay

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"darkcave/pkg/game/entities"
	"darkcave/pkg/game/state"
)

// Encounter is the result of one fight in the monster room
type Encounter struct {
	Monster      entities.Monster
	HealthBefore int
	HealthAfter  int
	Won          bool
	Loot         []entities.Item // Items the player picked up; empty on defeat
}

// ResolveCombat spawns a fresh goblin and lets it strike the player once.
// If the player survives the goblin is defeated and drops a sword.
func ResolveCombat(p *entities.Player) Encounter {
	monster := entities.NewGoblin()

	enc := Encounter{
		Monster:      monster,
		HealthBefore: p.Health,
		HealthAfter:  monster.Strike(p),
	}

	if p.IsAlive() {
		enc.Won = true
		enc.Loot = []entities.Item{entities.Sword}
		for _, item := range enc.Loot {
			p.PickUp(item)
		}
	}

	return enc
}

// enterMonsterRoom runs the monster room and reports what happened
func (s *Session) enterMonsterRoom(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "combat.resolve")
	defer span.End()

	s.game.Encounters++
	enc := ResolveCombat(s.game.Player)

	span.SetAttributes(
		attribute.String("monster", enc.Monster.Name),
		attribute.Int("monster.damage", enc.Monster.Damage),
		attribute.Int("player.health_before", enc.HealthBefore),
		attribute.Int("player.health_after", enc.HealthAfter),
		attribute.Bool("won", enc.Won),
		attribute.Int("encounter", s.game.Encounters),
	)

	s.out.Println("A wild MONSTER{%s} appears!", enc.Monster.Name)
	s.out.Println("The MONSTER{%s} hits you for %d damage.", enc.Monster.Name, enc.Monster.Damage)

	if !enc.Won {
		s.out.Println("You were defeated by the MONSTER{%s}. DENIED{Game over.}", enc.Monster.Name)
		s.game.End(state.OutcomeDied)
		return
	}

	for _, item := range enc.Loot {
		s.out.Println("You defeated the MONSTER{%s} and found a ITEM{%s}!", enc.Monster.Name, item.String())
	}
	s.game.MoveTo(state.Hallway)
}
