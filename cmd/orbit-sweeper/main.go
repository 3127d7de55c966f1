package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-sweeper/audio"
	"github.com/lixenwraith/orbit-sweeper/config"
	"github.com/lixenwraith/orbit-sweeper/engine"
	"github.com/lixenwraith/orbit-sweeper/game"
	"github.com/lixenwraith/orbit-sweeper/input"
	"github.com/lixenwraith/orbit-sweeper/phase"
	"github.com/lixenwraith/orbit-sweeper/render"
)

// frameInterval drives scheduler advancement and redraw (~60 FPS)
const frameInterval = 16 * time.Millisecond

func main() {
	cfg, err := config.Load(config.DefaultEnvFile, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "orbit-sweeper: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	slog.Info("starting", "config", cfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crash(screen, "ORBIT-SWEEPER CRASHED", r)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Audio is advisory: the game runs silent when the speaker cannot open
	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		slog.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer sound.Close()

	opts := phase.DefaultOptions()
	opts.Seed = cfg.Seed
	opts.Hint = cfg.Hint
	opts.Tool = cfg.GameTool()
	opts.Tuning = cfg.Tuning()

	store := game.NewStore(cfg.GameDifficulty())
	ctrl := phase.New(store, sound, render.New(screen), engine.NewMonotonicTimeProvider(), opts)
	defer ctrl.Close()

	run(screen, ctrl)

	s := store.ReadSnapshot()
	slog.Info("exiting", "phase", s.Phase, "score", s.Score, "debris", s.Debris)
}

// run is the game loop: terminal events and frame ticks are serialized on this goroutine
func run(screen tcell.Screen, ctrl *phase.Controller) {
	machine := input.NewMachine()

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with the terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(screen, "EVENT POLLER CRASHED", r)
			}
		}()
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	ctrl.Draw()
	for {
		select {
		case ev := <-eventChan:
			intent := machine.Process(ev)
			if intent != nil && intent.Type == input.IntentResize {
				screen.Sync()
			}
			ctrl.Handle(intent)
			if ctrl.Quit() {
				return
			}

		case <-frameTicker.C:
			ctrl.Update()
			ctrl.Draw()
		}
	}
}

// crash restores the terminal and prints the panic with its stack
func crash(screen tcell.Screen, label string, r any) {
	screen.Fini()
	// Use \r\n in case the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", label, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	slog.Error("crash", "label", label, "panic", r)
	os.Exit(1)
}
