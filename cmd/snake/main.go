package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/ecs-snake/audio"
	"github.com/lixenwraith/ecs-snake/constants"
	"github.com/lixenwraith/ecs-snake/core"
	"github.com/lixenwraith/ecs-snake/engine"
	"github.com/lixenwraith/ecs-snake/game"
	"github.com/lixenwraith/ecs-snake/input"
	"github.com/lixenwraith/ecs-snake/render"
)

// options is everything resolved from flags, environment and .env
type options struct {
	cfg   game.Config
	debug bool
}

func main() {
	// Panic Recovery: restore the terminal before the stack trace is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	loadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := 0
	cmd := newCommand(func(ctx context.Context, opts options) error {
		code = play(ctx, opts)
		return nil
	})
	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		code = 1
	}

	stop()
	os.Exit(code)
}

// loadEnv reads .env from the working directory; a missing file is not an error
func loadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "snake: load .env: %v\n", err)
	}
}

// newCommand declares the flags and their environment fallbacks
func newCommand(action func(context.Context, options) error) *cli.Command {
	defaults := game.DefaultConfig()
	return &cli.Command{
		Name:  "snake",
		Usage: "steer a growing snake around a walled terminal field",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "width",
				Value:   defaults.Width,
				Usage:   "field width in cells",
				Sources: cli.EnvVars("SNAKE_WIDTH"),
			},
			&cli.IntFlag{
				Name:    "height",
				Value:   defaults.Height,
				Usage:   "field height in cells",
				Sources: cli.EnvVars("SNAKE_HEIGHT"),
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "food placement seed, 0 for random",
				Sources: cli.EnvVars("SNAKE_SEED"),
			},
			&cli.BoolFlag{
				Name:    "sound",
				Usage:   "play sounds on eat and game over",
				Sources: cli.EnvVars("SNAKE_SOUND"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "write logs to " + logDir + "/" + logFileName,
				Sources: cli.EnvVars("SNAKE_DEBUG"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, options{
				cfg: game.Config{
					Width:  cmd.Int("width"),
					Height: cmd.Int("height"),
					Seed:   cmd.Uint64("seed"),
					Sound:  cmd.Bool("sound"),
				},
				debug: cmd.Bool("debug"),
			})
		},
	}
}

// play runs one game and returns the process exit code
// Terminal restore happens on every path before anything is printed to stdout
func play(ctx context.Context, opts options) int {
	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg := opts.cfg
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Printf("main: create screen: %v", err)
		fmt.Fprintf(os.Stderr, "snake: create screen: %v\n", err)
		return 1
	}

	renderer := render.NewRenderer(render.NewScreenSurface(screen), cfg.Width, cfg.Height, os.Stdout)
	if err := renderer.Initialize(); err != nil {
		log.Printf("main: %v", err)
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}
	shutdown := func() {
		if err := renderer.Shutdown(); err != nil {
			log.Printf("main: shutdown: %v", err)
		}
	}
	core.SetCrashCleanup(shutdown)
	defer core.SetCrashCleanup(nil)
	defer shutdown()

	var sounds game.Sounds
	var soundManager *audio.SoundManager
	if cfg.Sound {
		soundManager = audio.NewSoundManager()
		if err := soundManager.Initialize(); err != nil {
			// Audio is optional; play on silently
			log.Printf("main: audio disabled: %v", err)
			soundManager = nil
		} else {
			defer soundManager.Cleanup()
			sounds = soundManager
		}
	}

	g, err := game.New(cfg, input.NewScreenSource(screen), renderer, sounds)
	if err != nil {
		log.Printf("main: %v", err)
		return 1
	}

	outcome, err := g.Run(ctx)
	shutdown()
	if err != nil {
		log.Printf("main: %v", err)
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}

	if outcome.Phase == engine.PhaseGameOver {
		if err := renderer.GameOver(g.State.Score); err != nil {
			log.Printf("main: %v", err)
		}
		if soundManager != nil {
			// Let the game over tone finish before the mixer is cleared
			time.Sleep(constants.GameOverSoundDuration)
		}
	}
	return 0
}
