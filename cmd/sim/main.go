// Command sim runs levels without a window: scripted input, a fixed number of
// ticks, and a log of where the player ended up. It is meant for tuning.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/scaaale/assets"
	"github.com/automoto/scaaale/components"
	cfg "github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/scenes"
	"github.com/automoto/scaaale/shared/leveldata"
	"github.com/automoto/scaaale/systems"
	"github.com/automoto/scaaale/tags"
	"github.com/yohamta/donburi/ecs"
)

func main() {
	level := flag.Int("level", 1, "Level to run, from 1")
	ticks := flag.Int("ticks", 0, "Ticks to run (0 = the script's length plus one second)")
	script := flag.String("script", "", `Input script, e.g. "30:r,12:rj,20:." (l r j s x, "." for nothing)`)
	dir := flag.String("dir", "", "Load levels from this directory instead of the embedded ones")
	tuning := flag.String("tuning", "", "YAML tuning file")
	realtime := flag.Bool("realtime", false, "Run at 60 ticks per second instead of as fast as possible")
	flag.Parse()

	if *tuning != "" {
		if err := cfg.LoadTuning(*tuning); err != nil {
			log.Fatalf("Tuning: %v", err)
		}
	}

	inputs, err := parseScript(*script)
	if err != nil {
		log.Fatalf("Script: %v", err)
	}
	n := *ticks
	if n <= 0 {
		n = inputs.length() + int(1/cfg.Player.Timestep)
	}

	levels := assetsOrDir(*dir)
	systems.UsePersistence(nil)
	state := components.NewGameState()
	state.CurrentLevel = *level

	tick := 0
	poll := func(pressed *[cfg.ActionCount]bool) (components.InputMethod, bool) {
		*pressed = inputs.at(tick)
		return components.InputKeyboard, true
	}
	world := scenes.NewWorld(levels, state, systems.InputSystem(poll))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	start := time.Now()
	var ticker *time.Ticker
	if *realtime {
		ticker = time.NewTicker(time.Duration(cfg.Player.Timestep * float64(time.Second)))
		defer ticker.Stop()
	}

loop:
	for tick = 0; tick < n; tick++ {
		if ticker != nil {
			select {
			case <-ticker.C:
			case <-sigChan:
				log.Println("Interrupted")
				break loop
			}
		}
		world.Update()
	}

	report(world, tick, time.Since(start))
}

func assetsOrDir(dir string) []*leveldata.Level {
	if dir == "" {
		return assets.MustLoadLevels()
	}
	levels, err := leveldata.LoadAll(os.DirFS(dir), ".")
	if err != nil {
		log.Fatalf("Levels: %v", err)
	}
	return levels
}

func report(world *ecs.ECS, ticks int, took time.Duration) {
	log.Printf("ran %d ticks in %v", ticks, took)

	levelEntry, ok := components.Level.First(world.World)
	if ok {
		l := components.Level.Get(levelEntry)
		log.Printf("level %d/%d %q pins %d/%d unlocked %d",
			l.State.CurrentLevel, len(l.Levels), l.Current.Name, l.State.PickedPins, l.State.RequiredPins, l.State.UnlockedLevels)
	}

	playerEntry, ok := tags.Player.First(world.World)
	if !ok {
		log.Println("no player")
		return
	}
	space, ok := components.Space.First(world.World)
	if !ok {
		return
	}
	p := components.Player.Get(playerEntry)
	pos := components.Space.Get(space).Position(p.Body)
	log.Printf("player at (%.2f, %.2f) vel (%.2f, %.2f) grounded %t", pos.X, pos.Y, p.Velocity.Current.X, p.Velocity.Current.Y, p.Ground.OnGround.Current())
	log.Printf("stretch %.2f grabbed %t jumping %t respawning %t",
		p.Stretch.Length, p.Stretch.GrabbedCeiling, p.Jump.IsJumping, p.Respawn.Active)
}
