package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/swatchpicker/internal/config"
	"github.com/example/swatchpicker/internal/layout"
	"github.com/example/swatchpicker/internal/store"
	"github.com/example/swatchpicker/internal/watch"
	"github.com/example/swatchpicker/picker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Game hosts one color picker in an ebiten window.
type Game struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger

	picker  *picker.Controller
	palette store.NamedPalette
	// palettePath is the file the active palette came from, empty for the
	// reference palette. It follows menu loads and config reloads.
	palettePath string

	ui          *UI
	renderer    *Renderer
	input       *InputManager
	contextMenu *ContextMenu
	watcher     *watch.Watcher

	origin image.Point
}

// NewGame builds the picker described by cfg. v is kept so that a config
// reload sees the same flag bindings.
func NewGame(v *viper.Viper, cfg *config.Config, logger *zap.Logger) (*Game, error) {
	g := &Game{
		v:           v,
		cfg:         cfg,
		logger:      logger,
		ui:          NewUI(cfg.FontPath, logger),
		input:       NewInputManager(),
		contextMenu: NewContextMenu(),
		origin:      image.Pt(PickerOriginX, PickerOriginY),
	}
	g.renderer = NewRenderer(g.ui.face)

	np, err := loadPalette(cfg.PaletteFile)
	if err != nil {
		return nil, err
	}
	g.palette = np
	g.palettePath = cfg.PaletteFile
	if err := g.rebuild(true); err != nil {
		return nil, err
	}
	return g, nil
}

// rebuild replaces the controller after a config or palette change. Unless
// reset is set, the committed color and the open state carry over.
func (g *Game) rebuild(reset bool) error {
	pc := g.cfg.Picker
	if !reset && g.picker != nil {
		pc.DefaultColor = g.picker.Committed().Hex()
		pc.IsOpen = g.picker.IsOpen()
		if pc.Mode() == picker.ModeFull {
			pc.SelectedTabIndex = int(g.picker.ActiveTab())
		}
	}
	c, err := picker.New(pc,
		picker.WithLogger(g.logger.Named("picker")),
		picker.WithPalette(g.palette.Palette),
		picker.WithCommitListener(g.onCommit),
	)
	if err != nil {
		return err
	}
	g.picker = c
	g.input.discard()
	return nil
}

func (g *Game) onCommit(ev picker.CommitEvent) {
	g.logger.Info("color committed",
		zap.String("color", ev.Color.Hex()),
		zap.Stringer("source", ev.Source),
		zap.Int("swatch", ev.SwatchIndex))
	msg := fmt.Sprintf("%s from %s", ev.Color.Hex(), ev.Source)
	if ev.SwatchIndex >= 0 {
		msg = fmt.Sprintf("%s from swatch %d", ev.Color.Hex(), ev.SwatchIndex+1)
	}
	g.ui.addClickLog(msg)
}

// edit applies one custom-editor edit.
func (g *Game) edit(e picker.Edit) {
	g.reject(g.picker.EditCustom(e))
}

// reject shows a rejected operation in the click log. The controller has
// already logged it.
func (g *Game) reject(err error) {
	if err != nil {
		g.ui.addClickLog("ignored: " + err.Error())
	}
}

// pasteHex sends clipboard text to the custom editor when it is showing,
// otherwise to the summary input.
func (g *Game) pasteHex(text string) {
	text = strings.TrimSpace(text)
	var err error
	if g.picker.View().ShowCustom {
		err = g.picker.EditCustom(picker.HexEdit{Text: text})
	} else {
		err = g.picker.EditSummary(text)
	}
	if err != nil {
		g.ui.addClickLog("not a color: " + text)
		return
	}
	g.ui.addClickLog("pasted " + strings.ToUpper(text))
}

func (g *Game) loadPaletteFile(path string) error {
	np, err := store.LoadPalette(path)
	if err != nil {
		return err
	}
	g.palette = np
	g.setPalettePath(path)
	return g.rebuild(false)
}

// setPalettePath records the active palette file and points the watcher
// at it.
func (g *Game) setPalettePath(path string) {
	if sameFile(path, g.palettePath) {
		return
	}
	g.palettePath = path
	g.rewatch()
}

func (g *Game) rewatch() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Set(g.watchedPaths()); err != nil {
		g.logger.Warn("could not watch palette file", zap.String("path", g.palettePath), zap.Error(err))
	}
}

func (g *Game) watchedPaths() []string {
	return []string{g.cfg.Source, g.palettePath}
}

func loadPalette(path string) (store.NamedPalette, error) {
	if path == "" {
		return store.NamedPalette{Name: "reference", Palette: picker.DefaultPalette()}, nil
	}
	return store.LoadPalette(path)
}

// bounds lays out the picker as it is right now.
func (g *Game) bounds() layout.Bounds {
	v := g.picker.View()
	return layout.Compute(g.origin, layout.Options{
		ShowSummary:  v.ShowSummary,
		Open:         v.Open,
		ShowTabs:     v.ShowTabs,
		ShowSwatches: v.ShowSwatches,
		ShowCustom:   v.ShowCustom,
		ShowFooter:   v.ShowFooter,
		Swatches:     len(v.Swatches),
	})
}

// watchFiles starts the hot-reload watcher on the config and palette files.
func (g *Game) watchFiles(ctx context.Context) error {
	w, err := watch.New(g.watchedPaths(), watch.Options{Logger: g.logger.Named("watch")})
	if err != nil {
		return err
	}
	w.Start(ctx)
	g.watcher = w
	return nil
}

// drainReloads applies pending file changes. It runs inside Update so the
// controller is only ever touched from the game loop.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case c := <-g.watcher.Changes():
			g.reload(c.Path)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if sameFile(path, g.cfg.Source) {
		cfg, err := config.Load(g.v, g.cfg.Source)
		if err != nil {
			g.logger.Warn("config reload failed; keeping current settings", zap.String("path", path), zap.Error(err))
			g.ui.addClickLog("bad config: " + filepath.Base(path))
			return
		}
		paletteChanged := !sameFile(cfg.PaletteFile, g.cfg.PaletteFile)
		g.cfg = cfg
		ebiten.SetWindowTitle(cfg.Window.Title)
		if paletteChanged {
			// watch the new file even when it fails to load, so fixing it
			// triggers a reload
			g.setPalettePath(cfg.PaletteFile)
			np, err := loadPalette(cfg.PaletteFile)
			if err != nil {
				g.logger.Warn("palette load failed", zap.String("path", cfg.PaletteFile), zap.Error(err))
			} else {
				g.palette = np
			}
		}
		if err := g.rebuild(false); err != nil {
			g.logger.Warn("picker config rejected", zap.Error(err))
			g.ui.addClickLog("bad picker config")
			return
		}
		g.logger.Info("config reloaded", zap.String("path", path))
		g.ui.addClickLog("reloaded config")
		return
	}
	if sameFile(path, g.palettePath) {
		if err := g.loadPaletteFile(g.palettePath); err != nil {
			g.logger.Warn("palette reload failed", zap.String("path", path), zap.Error(err))
			g.ui.addClickLog("bad palette: " + filepath.Base(path))
			return
		}
		g.logger.Info("palette reloaded", zap.String("path", path))
		g.ui.addClickLog("reloaded " + g.palette.Name)
	}
}

func sameFile(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	return err1 == nil && err2 == nil && aa == bb
}

func (g *Game) Update() error {
	g.drainReloads()

	if g.input.HandleContextMenuInput(g) {
		return nil
	}
	g.input.HandlePointer(g)
	g.input.HandleKeyboard(g)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	g.renderer.Draw(screen, g.picker.View(), g.bounds(), g.input)

	// focus ring and caret
	g.input.Draw(screen, g)

	g.ui.Draw(screen, g)

	g.contextMenu.Draw(screen, g.ui.face)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Return the outside dimensions so the logical screen matches window size.
	return outsideWidth, outsideHeight
}

// runWindow opens the window and blocks until it is closed.
func runWindow(v *viper.Viper, cfg *config.Config, logger *zap.Logger) error {
	g, err := NewGame(v, cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Watch {
		if err := g.watchFiles(ctx); err != nil {
			logger.Warn("hot reload disabled", zap.Error(err))
		} else {
			defer g.watcher.Stop()
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizable(true)
	logger.Info("starting picker",
		zap.String("mode", g.picker.Mode().String()),
		zap.String("palette", g.palette.Name),
		zap.String("config", cfg.Source))
	return ebiten.RunGame(g)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
