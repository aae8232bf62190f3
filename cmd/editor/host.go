package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/paintbox/document"
	"github.com/milk9111/paintbox/raster"
)

const defaultDocPath = "drawing.json"

// PickImage asks the platform for an image path.
func (e *Editor) PickImage() (string, error) {
	return pickImage(e.imagePath)
}

// ExportFrame queues the next drawn frame for export. The write happens in
// Draw, where the framebuffer can be read.
func (e *Editor) ExportFrame() error {
	e.frameQueued = true
	return nil
}

func (e *Editor) SaveDocument() error {
	path := e.docPath
	if path == "" {
		path = defaultDocPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := document.Save(path, e.session.Stack()); err != nil {
		return err
	}
	log.Printf("Saved to %s", path)
	return nil
}

func (e *Editor) ExportPDF() error {
	path, err := e.exportPath("drawing", ".pdf")
	if err != nil {
		return err
	}
	if err := raster.ExportPDF(path, e.session.Stack()); err != nil {
		return err
	}
	log.Printf("Exported %s", path)
	return nil
}

func (e *Editor) LoadDocument(path string) error {
	stack, err := document.Load(path)
	if err != nil {
		return err
	}
	e.session.ReplaceStack(stack)
	log.Printf("Loaded %s (%d layers)", path, stack.Len())
	return nil
}

// writeFrame saves the canvas as drawn so far this frame to the export
// directory and puts the same PNG on the clipboard.
func (e *Editor) writeFrame(screen *ebiten.Image) error {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)

	path, err := e.exportPath("frame", ".png")
	if err != nil {
		return err
	}
	if err := raster.Save(path, img); err != nil {
		return err
	}
	log.Printf("Exported %s", path)

	data, err := raster.EncodePNG(img)
	if err != nil {
		return err
	}
	if err := e.clip.copyPNG(data); err != nil {
		log.Printf("Clipboard copy skipped: %v", err)
	}
	return nil
}

func (e *Editor) exportPath(prefix, ext string) (string, error) {
	dir := e.cfg.Export.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	name := prefix + "-" + time.Now().Format("20060102-150405") + ext
	return filepath.Join(dir, name), nil
}

// clipboardState initializes the system clipboard on first use. Headless
// and unsupported platforms fail once and are skipped after that.
type clipboardState struct {
	once sync.Once
	err  error
}

func (c *clipboardState) copyPNG(data []byte) error {
	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	if c.err != nil {
		return fmt.Errorf("clipboard: %w", c.err)
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
