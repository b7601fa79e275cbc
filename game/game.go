package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/ecs-snake/constants"
	"github.com/lixenwraith/ecs-snake/engine"
	"github.com/lixenwraith/ecs-snake/input"
	"github.com/lixenwraith/ecs-snake/render"
	"github.com/lixenwraith/ecs-snake/systems"
)

// Sounds is the audio feedback the game emits; nil disables it
type Sounds interface {
	systems.Sounds
	PlayGameOver()
}

// Game owns the world, the score state, the system pipeline and the renderer
// Everything runs on the caller's goroutine; nothing here is safe for concurrent use
type Game struct {
	World *engine.World
	State *engine.GameState

	pipeline *systems.Pipeline
	renderer *render.Renderer
	sounds   Sounds
}

// New validates cfg and builds the initial board: head, one body segment and one food
// The renderer must already be initialized before Run
func New(cfg Config, source input.Source, renderer *render.Renderer, sounds Sounds) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []engine.WorldOption
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}
	world := engine.NewWorld(cfg.Width, cfg.Height, opts...)

	world.SpawnHead()
	if _, ok := world.SpawnFollower(); !ok {
		log.Printf("game: initial follower not spawned")
	}
	if _, ok := world.SpawnFood(); !ok {
		log.Printf("game: initial food not spawned, board full")
	}

	var eatSounds systems.Sounds
	if sounds != nil {
		eatSounds = sounds
	}

	log.Printf("game: new %dx%d field, seed %d", cfg.Width, cfg.Height, cfg.Seed)
	return &Game{
		World:    world,
		State:    engine.NewGameState(),
		pipeline: systems.NewPipeline(source, eatSounds),
		renderer: renderer,
		sounds:   sounds,
	}, nil
}

// Step advances the simulation by one tick without rendering
func (g *Game) Step() systems.Outcome {
	out := g.pipeline.Step(g.World, g.State)
	if out.Phase == engine.PhaseGameOver && g.sounds != nil {
		g.sounds.PlayGameOver()
	}
	return out
}

// Render draws the current world
func (g *Game) Render() error {
	if g.renderer == nil {
		return nil
	}
	return g.renderer.Render(g.World, g.State)
}

// Run draws the initial board and then steps and renders once per tick
// It returns on quit, game over, context cancellation or render failure
func (g *Game) Run(ctx context.Context) (systems.Outcome, error) {
	if err := g.Render(); err != nil {
		return systems.Outcome{Phase: g.State.Phase}, fmt.Errorf("render initial frame: %w", err)
	}

	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("game: interrupted at tick %d", g.State.Ticks)
			return systems.Outcome{Phase: g.State.Phase, Quit: true}, nil

		case <-ticker.C:
			out := g.Step()
			if out.Quit {
				log.Printf("game: quit at tick %d, score %d", g.State.Ticks, g.State.Score)
				return out, nil
			}
			if out.Phase == engine.PhaseGameOver {
				return out, nil
			}
			if err := g.Render(); err != nil {
				return out, fmt.Errorf("render tick %d: %w", g.State.Ticks, err)
			}
		}
	}
}
