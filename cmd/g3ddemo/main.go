// Command g3ddemo renders one scene with four backends side by side.
//
// Click to capture the mouse and steer the camera with WASD, the arrow
// keys, R and F. Escape releases the mouse, P cycles the backend of the
// top-left quadrant, O toggles the overlay and L toggles render time
// reports.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/g3d"
	_ "github.com/gogpu/g3d/backend/all"
	"github.com/gogpu/g3d/config"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("g3ddemo: invalid configuration", "err", err)
		os.Exit(1)
	}
	g3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	g := newGame(cfg)
	defer g.close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		g3d.Logger().Error("g3ddemo: fatal", "err", err)
		g.close()
		os.Exit(1)
	}
}
