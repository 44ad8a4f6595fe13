package main

import (
	"fmt"
	"log"

	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/isoedit/tile"
)

// tileClipboard copies static tiles through the system clipboard as YAML.
type tileClipboard struct {
	enabled bool
}

func newTileClipboard() *tileClipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		return &tileClipboard{}
	}
	return &tileClipboard{enabled: true}
}

func (c *tileClipboard) Copy(st tile.StaticTile) {
	if !c.enabled {
		return
	}
	b, err := encodeStatic(st)
	if err != nil {
		log.Printf("copy static: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, b)
}

// Paste returns the static on the clipboard, if it holds one.
func (c *tileClipboard) Paste() (tile.StaticTile, bool) {
	if !c.enabled {
		return tile.StaticTile{}, false
	}
	st, err := decodeStatic(clipboard.Read(clipboard.FmtText))
	if err != nil {
		log.Printf("paste static: %v", err)
		return tile.StaticTile{}, false
	}
	return st, true
}

func encodeStatic(st tile.StaticTile) ([]byte, error) {
	b, err := yaml.Marshal(struct {
		Static tile.StaticTile `yaml:"static"`
	}{st})
	if err != nil {
		return nil, fmt.Errorf("clipboard: marshal static: %w", err)
	}
	return b, nil
}

func decodeStatic(b []byte) (tile.StaticTile, error) {
	var doc struct {
		Static *tile.StaticTile `yaml:"static"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return tile.StaticTile{}, fmt.Errorf("clipboard: unmarshal static: %w", err)
	}
	if doc.Static == nil {
		return tile.StaticTile{}, fmt.Errorf("clipboard: no static tile on clipboard")
	}
	return *doc.Static, nil
}
