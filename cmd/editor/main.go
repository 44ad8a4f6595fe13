package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/isoedit/tile"
)

func main() {
	configPath := flag.String("config", "", "YAML editor config (embedded defaults when empty)")
	dataPath := flag.String("tiledata", "tiledata.yaml", "YAML static tile metadata; reloaded on change")
	watch := flag.Bool("watch", true, "reload tile data when the file changes")
	flag.Parse()

	log.Println("Editor starting...")
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	data, err := tile.LoadData(*dataPath)
	if err != nil {
		log.Fatalf("Failed to load tile data: %v", err)
	}
	log.Printf("Loaded %d static tile definitions", len(data.IDs()))

	var watcher *tile.Watcher
	if *watch {
		watcher, err = tile.NewWatcher(*dataPath)
		if err != nil {
			log.Printf("Tile data hot reload disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("isoedit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	editor := NewEditor(cfg, data, watcher)
	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}
