package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/factory/audio"
	"github.com/lixenwraith/factory/config"
	"github.com/lixenwraith/factory/game"
	"github.com/lixenwraith/factory/input"
	"github.com/pkg/profile"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/factory.log")
	profileFlag = flag.String("profile", "", "Profile mode: cpu, mem")
	audioFlag   = flag.Bool("audio", false, "Enable audio cues (overrides FACTORY_AUDIO)")
)

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code so deferred cleanup runs before exit
func realMain() int {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 2
	}
	if *audioFlag {
		cfg.Audio = true
	}

	level, _ := cfg.Level()
	logger, logFile := setupLogging(*debugFlag, level)
	if logFile != nil {
		defer logFile.Close()
	}

	if p := startProfile(*profileFlag); p != nil {
		defer p.Stop()
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "factory: %v\n", err)
		return 1
	}
	return 0
}

// startProfile begins profiling into the working directory; unknown modes are ignored
func startProfile(mode string) interface{ Stop() } {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return nil
	}
}

func run(cfg config.Config, logger *slog.Logger) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableFocus()

	// Crash recovery: restore the terminal before reporting, then fail through realMain
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFACTORY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("crashed: %v", r)
		}
	}()
	defer screen.Fini()

	source := input.NewTcellSource(cfg.KeyReleaseWindow())

	var opts []game.Option
	if cfg.Audio {
		sink := audio.NewSpeakerSink(audio.DefaultSampleRate)
		if err := sink.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer sink.Cleanup()
			opts = append(opts, game.WithAudioSink(sink))
		}
	}

	g, err := game.New(cfg, source, logger, opts...)
	if err != nil {
		return err
	}
	defer g.Close()
	if err := g.Initialize(); err != nil {
		return err
	}

	return loop(screen, source, g, cfg.TickInterval(), logger)
}

// loop polls terminal events on a goroutine and drives the game on the frame ticker
func loop(screen tcell.Screen, source *input.TcellSource, g *game.Game, interval time.Duration, logger *slog.Logger) error {
	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()

	drawFrame(screen, g)
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if isQuit(ev) {
				logger.Info("quit requested")
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventFocus:
				if !ev.Focused {
					source.ReleaseAll()
				}
			default:
				source.HandleEvent(ev)
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			source.Tick(now)
			if err := g.Tick(dt); err != nil {
				logger.Error("frame failed", "error", err)
				return err
			}
			drawFrame(screen, g)
		}
	}
}

func isQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return key.Key() == tcell.KeyCtrlC || key.Key() == tcell.KeyCtrlQ
}
