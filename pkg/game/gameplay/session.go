// Package gameplay runs the adventure: the room state machine, its menus and
// the monster fight.
package gameplay

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	engineinput "darkcave/pkg/engine/input"
	"darkcave/pkg/engine/telemetry"
	"darkcave/pkg/game/renderer"
	"darkcave/pkg/game/state"
)

// Session drives one game from the entrance to a win, a death or a quit
type Session struct {
	game   *state.Game
	out    *renderer.Renderer
	in     *engineinput.Reader
	tracer trace.Tracer
}

// NewSession creates a session over an existing game.
// A nil tracer records nothing.
func NewSession(g *state.Game, out *renderer.Renderer, in *engineinput.Reader, tracer trace.Tracer) *Session {
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}
	return &Session{
		game:   g,
		out:    out,
		in:     in,
		tracer: tracer,
	}
}

// Game returns the session's game state
func (s *Session) Game() *state.Game {
	return s.game
}

// Run plays until the game is over and returns how it ended.
// An error means the player's input could not be read.
func (s *Session) Run(ctx context.Context) (state.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "session.run")
	defer span.End()

	span.SetAttributes(
		attribute.String("player.name", s.game.Player.Name),
		attribute.String("room.start", s.game.CurrentRoom.String()),
	)

	for !s.game.Over() {
		if _, err := s.Step(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return s.game.Outcome, err
		}
	}

	s.printSummary()

	span.SetAttributes(
		attribute.String("outcome", s.game.Outcome.String()),
		attribute.Int("player.health", s.game.Player.Health),
		attribute.Int("player.inventory", len(s.game.Player.Inventory)),
		attribute.Int("rooms.visited", s.game.Visited.Size()),
		attribute.Int("encounters", s.game.Encounters),
	)

	return s.game.Outcome, nil
}

// Step runs the current room once: rooms with a menu ask for a choice and
// follow it, the others run their effect immediately.
func (s *Session) Step(ctx context.Context) (state.Outcome, error) {
	if s.game.Over() {
		return s.game.Outcome, nil
	}

	room := s.game.CurrentRoom

	ctx, span := s.tracer.Start(ctx, "session.step")
	defer span.End()
	span.SetAttributes(attribute.String("room", room.String()))

	s.out.RoomHeader(room.String())

	switch room {
	case state.TreasureRoom:
		s.out.Println("You found a room full of treasure! WIN{You win!}")
		s.game.End(state.OutcomeWon)
	case state.MonsterRoom:
		s.enterMonsterRoom(ctx)
	default:
		if err := s.chooseExit(span, room); err != nil {
			return s.game.Outcome, err
		}
	}

	span.SetAttributes(attribute.String("room.next", s.game.CurrentRoom.String()))
	return s.game.Outcome, nil
}

// chooseExit shows the room's menu and applies the player's choice
func (s *Session) chooseExit(span trace.Span, room state.Room) error {
	options := Menu(room)

	s.out.Println(Describe(room))
	s.out.Menu(options)

	choice, err := s.in.GetChoice(s.out, len(options))
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("choice", choice))

	t, ok := Next(room, choice)
	if !ok {
		return fmt.Errorf("no exit from %v for choice %d", room, choice)
	}

	if t.Outcome == state.OutcomeQuit {
		s.out.Println("You chose to leave. DENIED{Game over.}")
		s.game.End(state.OutcomeQuit)
		return nil
	}

	s.game.MoveTo(t.Next)
	return nil
}

// printSummary reports the player's final state
func (s *Session) printSummary() {
	p := s.game.Player

	items := make([]string, 0, len(p.Inventory))
	for _, item := range p.Inventory {
		items = append(items, s.out.Translate(item.String()))
	}

	inventory := s.out.Translate("nothing")
	if len(items) > 0 {
		inventory = strings.Join(items, ", ")
	}

	s.out.Println("Health: %d | Inventory: %s | Rooms visited: %d", p.Health, inventory, s.game.Visited.Size())
}
