package main

import (
	"context"
	"log"
	"os"

	"github.com/gookit/color"

	engineinput "darkcave/pkg/engine/input"
	"darkcave/pkg/engine/telemetry"
	"darkcave/pkg/engine/terminal"
	"darkcave/pkg/game/config"
	"darkcave/pkg/game/gameplay"
	"darkcave/pkg/game/locale"
	"darkcave/pkg/game/renderer"
	"darkcave/pkg/game/state"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	catalog, err := locale.Load(cfg.Lang)
	if err != nil {
		log.Fatalf("Cannot load messages: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without tracing")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	out := renderer.New(os.Stdout, catalog, useColor(cfg.Color))
	in := engineinput.NewReader(os.Stdin)

	session := gameplay.NewSession(state.NewGame(cfg.PlayerName), out, in, telemetry.Tracer("gameplay"))
	if _, err := session.Run(ctx); err != nil {
		// log.Fatalf skips deferred calls, so flush traces first
		if shutdown != nil {
			shutdown(ctx)
		}
		log.Fatalf("Cannot read stdin: %v", err)
	}
}

// useColor decides whether output to stdout is styled
func useColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		color.ForceColor()
		return true
	case config.ColorNever:
		color.Disable()
		return false
	default:
		return terminal.SupportsColor(os.Stdout)
	}
}
