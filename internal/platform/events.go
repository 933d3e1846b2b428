// Package platform holds pieces shared by the terminal and window frontends.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/musou/internal/core"
)

// LogEvents writes game events to the log. Game over, hits and power-ups get
// an info line; spawns and kills are debug noise.
func LogEvents(logger *log.Logger, events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventGameOver:
			logger.Info("game over", "score", ev.Score, "tick", ev.Tick)
		case core.EventPlayerHit, core.EventPowerUp:
			logger.Info(ev.Kind.String(), "detail", ev.Detail, "score", ev.Score, "tick", ev.Tick)
		default:
			logger.Debug(ev.Kind.String(), "detail", ev.Detail, "score", ev.Score, "tick", ev.Tick)
		}
	}
}
