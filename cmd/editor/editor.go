package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/paintbox/config"
	"github.com/milk9111/paintbox/raster"
	"github.com/milk9111/paintbox/render"
	"github.com/milk9111/paintbox/tools"
	"github.com/milk9111/paintbox/watch"
)

// Editor is the ebiten game: it polls input into the session, keeps the
// widgets in step and renders.
type Editor struct {
	cfg        *config.Config
	configPath string
	imagePath  string
	docPath    string
	debug      bool

	session  *tools.Session
	renderer *render.Renderer
	ui       *editorUI
	input    poller
	watcher  *watch.Watcher
	watched  map[string]bool

	ticks       int
	frameQueued bool
	clip        clipboardState
}

type editorOptions struct {
	ConfigPath string
	ImagePath  string
	DocPath    string
	Debug      bool
}

func NewEditor(cfg *config.Config, opts editorOptions) *Editor {
	e := &Editor{
		cfg:        cfg,
		configPath: opts.ConfigPath,
		imagePath:  opts.ImagePath,
		docPath:    opts.DocPath,
		debug:      opts.Debug,
		renderer:   render.New(render.ColorsFromConfig(cfg)),
		watched:    make(map[string]bool),
	}
	e.session = tools.NewSession(
		tools.SettingsFromConfig(cfg),
		tools.WithHost(e),
		tools.WithHistoryDepth(cfg.History.MaxDepth),
	)
	e.ui = buildEditorUI(e.session)
	e.session.SetChrome(e.ui)

	w, err := watch.New()
	if err != nil {
		log.Printf("File watching disabled: %v", err)
	} else {
		e.watcher = w
		if e.configPath != "" {
			e.watch(e.configPath)
		}
	}
	return e
}

// Open loads the startup document or image. Failures are logged and leave
// an empty canvas.
func (e *Editor) Open() {
	if e.docPath != "" && fileExists(e.docPath) {
		if err := e.LoadDocument(e.docPath); err != nil {
			log.Printf("Failed to load document: %v", err)
		}
	}
	if e.imagePath != "" {
		if err := e.session.LoadBackground(e.imagePath); err != nil {
			log.Printf("Failed to load image: %v", err)
		}
	}
}

func (e *Editor) Close() {
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			log.Printf("Failed to close watcher: %v", err)
		}
	}
}

func (e *Editor) Update() error {
	e.ticks++
	e.reload()

	_, slide := render.Intro(e.ticks, e.cfg.Window.TPS, e.cfg.Intro)
	e.ui.Update(slide)
	for _, ev := range e.input.Poll(e.ui.Hovered()) {
		e.session.Handle(ev)
	}
	e.ui.Sync(e.session)
	e.watchBackgrounds()

	if e.session.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	fade, _ := render.Intro(e.ticks, e.cfg.Window.TPS, e.cfg.Intro)
	e.renderer.Draw(screen, e.session, fade)
	if e.frameQueued {
		e.frameQueued = false
		if err := e.writeFrame(screen); err != nil {
			log.Printf("Export failed: %v", err)
		}
	}
	e.ui.Draw(screen)

	if e.debug {
		cam := e.session.Camera()
		world := cam.ScreenToWorld(e.session.Pointer())
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"TPS %.0f  zoom %.2f  world %.1f,%.1f  tool %s  history %d/%d",
			ebiten.ActualTPS(), cam.Scale, world.X, world.Y, e.session.Tool(),
			e.session.History().Cursor()+1, e.session.History().Len(),
		), 4, screen.Bounds().Dy()-16)
	}
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Editor) watch(path string) {
	if e.watcher == nil || path == "" {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil || e.watched[abs] {
		return
	}
	if err := e.watcher.Add(abs); err != nil {
		log.Printf("Failed to watch %s: %v", path, err)
		return
	}
	e.watched[abs] = true
}

// watchBackgrounds starts watching any layer image that came from a file.
func (e *Editor) watchBackgrounds() {
	for _, l := range e.session.Stack().Layers() {
		if l.Background != nil && l.Background.Source != "" {
			e.watch(l.Background.Source)
		}
	}
}

// reload applies changes to the config file and to layer images on disk.
func (e *Editor) reload() {
	if e.watcher == nil {
		return
	}
	select {
	case err, ok := <-e.watcher.Errors:
		if ok {
			log.Printf("Watcher error: %v", err)
		}
	default:
	}

	configAbs, _ := filepath.Abs(e.configPath)
	for _, path := range e.watcher.Drain() {
		if e.configPath != "" && path == configAbs {
			e.reloadConfig()
			continue
		}
		e.reloadBackground(path)
	}
}

func (e *Editor) reloadConfig() {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		log.Printf("Config reload failed: %v", err)
		return
	}
	e.cfg.Camera = cfg.Camera
	e.cfg.Brush = cfg.Brush
	e.cfg.Pen = cfg.Pen
	e.cfg.Colors = cfg.Colors
	e.cfg.Export = cfg.Export
	e.session.SetSettings(tools.SettingsFromConfig(e.cfg))
	e.renderer.SetColors(render.ColorsFromConfig(e.cfg))
	log.Printf("Reloaded config from %s", e.configPath)
}

// reloadBackground re-decodes path into every layer showing it. A decode
// failure keeps the old image, since the file may be mid-write.
func (e *Editor) reloadBackground(path string) {
	for _, l := range e.session.Stack().Layers() {
		bg := l.Background
		if bg == nil || bg.Source == "" {
			continue
		}
		if abs, err := filepath.Abs(bg.Source); err != nil || abs != path {
			continue
		}
		img, err := raster.Open(bg.Source)
		if err != nil {
			log.Printf("Image reload failed: %v", err)
			return
		}
		bg.Image = img
		log.Printf("Reloaded %s on %q", bg.Source, l.Name)
	}
}
