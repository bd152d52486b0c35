package main

import (
	"log"

	"github.com/lixenwraith/vi-snake/events"
)

// newEventLogger returns a handler writing game lifecycle events to the standard logger
func newEventLogger() events.Handler {
	return events.HandlerFunc{
		Types: []events.EventType{
			events.EventGameStarted,
			events.EventSpeedUp,
			events.EventGameOver,
			events.EventNewBestScore,
			events.EventPauseToggled,
		},
		Fn: logEvent,
	}
}

func logEvent(ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.GameStartedPayload:
		log.Printf("[%s] game %s mode=%s", ev.Type, p.ID, p.Mode)
	case *events.SpeedUpPayload:
		log.Printf("[%s] interval=%s", ev.Type, p.Interval)
	case *events.GameOverPayload:
		log.Printf("[%s] game %s score=%d cause=%s ticks=%d", ev.Type, p.ID, p.Score, p.Cause, p.Ticks)
	case *events.NewBestScorePayload:
		log.Printf("[%s] best %d -> %d", ev.Type, p.Previous, p.Score)
	case *events.PausePayload:
		log.Printf("[%s] paused=%t", ev.Type, p.Paused)
	default:
		log.Printf("[%s] %v", ev.Type, ev.Payload)
	}
}
