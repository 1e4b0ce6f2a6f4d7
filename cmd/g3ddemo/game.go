package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/camera"
	"github.com/gogpu/g3d/config"
	"github.com/gogpu/g3d/input"
	"github.com/gogpu/g3d/scene"
	"github.com/gogpu/g3d/stats"
	"github.com/gogpu/g3d/window"
)

var errQuit = errors.New("quit")

// pane is one quadrant with its window, overlay and labels.
type pane struct {
	quad    *quadWindow
	rw      *window.RenderWindow
	overlay *scene.Overlay
	name    *scene.Text
	fps     *scene.Text
}

// game implements ebiten.Game. All rendering happens in Update so that
// failures can stop the loop; Draw only uploads the finished frame.
type game struct {
	cfg     config.Config
	host    *host
	panes   [4]*pane
	camera  *camera.FreeCamera
	fps     *stats.FPSCounter
	tracker *stats.RenderTimeTracker
	image   *ebiten.Image
	overlay bool
}

func newGame(cfg config.Config) *game {
	g := &game{
		cfg:     cfg,
		host:    newHost(cfg.Width, cfg.Height),
		fps:     stats.NewFPSCounter(nil),
		overlay: cfg.ShowStats,
	}
	g.tracker = stats.NewRenderTimeTracker(stats.WithInterval(time.Duration(cfg.ReportInterval)))

	world := buildWorld()
	cam := cfg.Camera
	g.camera = camera.New(
		g3d.V3(cam.Position[0], cam.Position[1], cam.Position[2]),
		g3d.V3(cam.LookAt[0], cam.LookAt[1], cam.LookAt[2]),
		camera.WithMoveStep(cam.MoveStep),
		camera.WithSensitivity(cam.Sensitivity),
	)
	g.camera.SetInputEnabled(false)

	for i := range g.panes {
		q := newQuadWindow(g.host, i)
		vp := scene.NewViewport(q.Width(), q.Height())
		vp.SetWorld(world)
		g.camera.AddViewport(vp)

		p := &pane{quad: q, overlay: scene.NewOverlay()}
		p.rw = window.New(q, cfg.Backends[i],
			window.WithViewport(vp),
			window.WithResizeFunc(func(int, int) { g.camera.Refresh() }))

		name := scene.NewText("", 8, 8)
		name.PixelHeight = cfg.FontSize
		p.name = p.overlay.AddText(name)
		fps := scene.NewText("", q.Width()-8, 8)
		fps.PixelHeight = cfg.FontSize
		fps.AlignRight = true
		p.fps = p.overlay.AddText(fps)
		if g.overlay {
			vp.AddOverlay(p.overlay)
		}
		g.panes[i] = p
	}
	return g
}

// Update handles input and renders all quadrants.
func (g *game) Update() error {
	g.host.poll()
	for _, ev := range g.panes[0].quad.PollEvents() {
		if err := g.handle(ev); err != nil {
			return err
		}
	}
	g.fps.Tick()
	for _, p := range g.panes {
		p.quad.sync()
		p.name.Content = p.rw.Backend().String()
		p.fps.Content = fmt.Sprintf("%.0f FPS", g.fps.FPS())
		p.fps.X = p.quad.Width() - 8

		var err error
		g.tracker.Time(p.rw.Backend(), func() { err = p.rw.Display() })
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *game) handle(ev input.Event) error {
	switch ev := ev.(type) {
	case input.Closed:
		g.host.open = false
		return errQuit
	case input.MouseButtonPressed:
		if ev.Button == input.MouseLeft {
			g.host.setCursorGrabbed(true)
			g.camera.SetInputEnabled(true)
		}
	case input.KeyPressed:
		switch ev.Code {
		case input.Escape:
			g.host.setCursorGrabbed(false)
			g.camera.SetInputEnabled(false)
		case input.P:
			rw := g.panes[0].rw
			rw.SetBackend(rw.Backend().Next())
		case input.O:
			g.toggleOverlay()
		case input.L:
			g.tracker.SetEnabled(!g.tracker.Enabled())
			g3d.Logger().Info("render time reports", "enabled", g.tracker.Enabled())
		}
	}
	g.camera.Dispatch(ev)
	return nil
}

func (g *game) toggleOverlay() {
	g.overlay = !g.overlay
	for _, p := range g.panes {
		vp := p.rw.Viewport()
		if g.overlay {
			vp.AddOverlay(p.overlay)
		} else {
			vp.RemoveOverlay(p.overlay)
		}
	}
}

// Draw uploads the composed frame.
func (g *game) Draw(screen *ebiten.Image) {
	b := g.host.frame.Bounds()
	if g.image == nil || g.image.Bounds() != b {
		if g.image != nil {
			g.image.Deallocate()
		}
		g.image = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.image.WritePixels(g.host.frame.Pix)
	screen.DrawImage(g.image, nil)
}

// Layout follows the window size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.host.width || outsideHeight != g.host.height) {
		g.host.resize(outsideWidth, outsideHeight)
	}
	return g.host.width, g.host.height
}

func (g *game) close() {
	for _, p := range g.panes {
		p.rw.Close()
	}
}
