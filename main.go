package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/scaaale/assets"
	"github.com/automoto/scaaale/config"
	"github.com/automoto/scaaale/fonts"
	"github.com/automoto/scaaale/scenes"
	"github.com/automoto/scaaale/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.Watcher
}

func NewGame(level int, watcher *config.Watcher) *Game {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Printf("Warning: Could not load fonts: %v", err)
	}

	state := systems.LoadGameState()
	if systems.HasSaveGame() {
		log.Printf("Resuming at level %d (%d unlocked)", state.CurrentLevel, state.UnlockedLevels)
	}
	if level > 0 {
		state.CurrentLevel = level
	}

	return &Game{
		bounds:  image.Rectangle{},
		scene:   scenes.NewPlatformerScene(assets.MustLoadLevels(), state),
		watcher: watcher,
	}
}

func (g *Game) Update() error {
	if g.watcher != nil {
		g.watcher.Drain(config.LoadTuning, func(err error) {
			log.Printf("Warning: tuning not reloaded: %v", err)
		})
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.Int("level", 0, "Level to start on, from 1 (0 = resume saved progress)")
	tuning := flag.String("tuning", "", "YAML file overriding movement and level tuning; reloaded on change")
	debug := flag.Bool("debug", false, "Start with the physics debug overlay on")
	reset := flag.Bool("reset", false, "Forget saved progress")
	flag.Parse()

	config.Debug.Enabled = *debug

	var watcher *config.Watcher
	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Printf("Warning: %v; using defaults", err)
		}
		w, err := config.NewWatcher(*tuning)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", *tuning, err)
		} else {
			watcher = w
			defer w.Close()
		}
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if *reset && systems.HasSaveGame() {
		if err := systems.ClearGameState(); err == nil {
			log.Println("Saved progress cleared")
		}
	}

	ebiten.SetWindowSize(config.C.Width*3, config.C.Height*3)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(*level, watcher)); err != nil {
		log.Fatal(err)
	}
}
