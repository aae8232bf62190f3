package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/paintbox/config"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in settings; reloaded on change")
	imagePath := flag.String("image", "", "Image to place on the first layer, also used by Ctrl+O without a native dialog")
	docPath := flag.String("doc", defaultDocPath, "Document loaded at startup if present and written by Ctrl+S")
	debug := flag.Bool("debug", false, "Show frame rate, zoom and pointer position")
	flag.Parse()

	log.Println("Editor starting...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Window.TPS)

	ed := NewEditor(cfg, editorOptions{
		ConfigPath: *configPath,
		ImagePath:  *imagePath,
		DocPath:    *docPath,
		Debug:      *debug,
	})
	defer ed.Close()
	ed.Open()

	if err := ebiten.RunGame(ed); err != nil {
		log.Fatal(err)
	}
}
