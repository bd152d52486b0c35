package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/engine/status"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/storage"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if logFile := setupLogging(cfg.Debug, cfg.LogDir); logFile != nil {
		defer logFile.Close()
	}

	if err := checkTerminal(); err != nil {
		return err
	}

	keys, err := input.LoadKeyTable(cfg.KeymapPath)
	if err != nil {
		return err
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	// Audio failure leaves the game silent
	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(cfg.Mute)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("board=%d mode=%s seed=%d best=%q", cfg.BoardSize, cfg.Mode, seed, cfg.BestScorePath)

	statusReg := status.NewRegistry()
	game := engine.NewGame(engine.GameConfig{
		BoardSize: cfg.BoardSize,
		Mode:      cfg.Mode,
		Rand:      rand.New(rand.NewSource(seed)),
		Scores:    storage.NewBestScoreManager(storage.DefaultStore(cfg.BestScorePath)),
		Queue:     events.NewEventQueue(),
		Status:    statusReg,
	})

	scheduler, gameUpdateDone := engine.NewClockScheduler(game, statusReg)
	scheduler.RegisterEventHandler(sound)
	scheduler.RegisterEventHandler(newEventLogger())
	scheduler.Start()
	defer scheduler.Stop()

	inputHandler := input.NewHandler(game, keys)
	inputHandler.SetDefaultMode(cfg.Mode)
	inputHandler.SetStartHook(scheduler.Wake)
	inputHandler.SetMuteToggle(sound.ToggleMute)
	inputHandler.SetControlHook(func() { scheduler.DispatchEventsImmediately() })

	renderer := render.NewRenderer(screen)
	renderer.SetSoundState(sound.IsMuted)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	renderer.Draw(game.Snapshot())

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if !inputHandler.HandleEvent(ev) {
				log.Printf("quit after %d ticks, metrics %v", scheduler.TickCount(), statusReg.Snapshot())
				return nil
			}
			renderer.Draw(game.Snapshot())

		case <-gameUpdateDone:
			renderer.Draw(game.Snapshot())

		case <-frameTicker.C:
			// Elapsed time and the flash change between ticks, tcell only flushes changed cells
			renderer.Draw(game.Snapshot())
		}
	}
}
