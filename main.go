package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/automoto/bigfish/assets"
	"github.com/automoto/bigfish/assets/sprites"
	"github.com/automoto/bigfish/config"
	"github.com/automoto/bigfish/fonts"
	"github.com/automoto/bigfish/scenes"
	"github.com/automoto/bigfish/simulation"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewGameScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML file merged over the built-in config")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	headless := flag.Bool("headless", false, "Run without a window, driven by the autopilot")
	maxTicks := flag.Uint64("max-ticks", 0, "Stop a headless run after N ticks (0 = until the game ends)")
	assetDir := flag.String("assets", "", "Directory of <sprite>.png files replacing the built-in art")
	debug := flag.Bool("debug", false, "Draw collision bounds and log at debug level")
	logJSON := flag.Bool("log-json", false, "Write logs as JSON")
	skipMenu := flag.Bool("skip-menu", false, "Start straight in the game")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if *logJSON {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, opts)))
	}

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		config.Simulation.Seed = *seed
	}
	if *debug {
		config.Debug.DrawBounds = true
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}

	if *headless {
		runHeadless(*assetDir, *maxTicks)
		return
	}

	if *assetDir != "" {
		assets.UseLibrary(sprites.NewLibrary(*assetDir))
	}
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize); err != nil {
		slog.Error("failed to load fonts", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.UI.Title)

	if err := ebiten.RunGame(NewGame()); err != nil {
		slog.Error("game exited with error", "error", err)
		os.Exit(1)
	}
}

// runHeadless plays one session with the autopilot. Masks load on the
// ticking goroutine so a seed always replays the same game.
func runHeadless(assetDir string, maxTicks uint64) {
	lib := sprites.NewLibrary(assetDir)
	lib.Synchronous = true

	sim := simulation.New(simulation.Options{
		Seed:   config.Simulation.Seed,
		Loader: lib,
	})
	pilot := simulation.NewAutopilot(uint64(sim.Seed()))

	slog.Info("starting headless simulation", "seed", sim.Seed(), "max_ticks", maxTicks)
	start := time.Now()

	sim.Start()
	state := simulation.RunHeadless(sim, pilot, maxTicks)

	slog.Info("headless simulation finished",
		"state", state.String(),
		"ticks", sim.Ticks(),
		"elapsed", time.Since(start).String(),
	)
}
