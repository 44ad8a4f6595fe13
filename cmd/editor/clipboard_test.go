package main

import (
	"testing"

	"github.com/milk9111/isoedit/tile"
)

func TestStaticClipboardEncoding(t *testing.T) {
	want := tile.StaticTile{ID: 7, X: 3, Y: 9, Z: -4, Hue: 12}
	b, err := encodeStatic(want)
	if err != nil {
		t.Fatalf("encodeStatic: %v", err)
	}
	got, err := decodeStatic(b)
	if err != nil {
		t.Fatalf("decodeStatic: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestStaticClipboardRejectsForeignText(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"plain", "hello world"},
		{"other_yaml", "land: {id: 1}\n"},
		{"broken", "static: [\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := decodeStatic([]byte(c.text)); err == nil {
				t.Fatalf("expected error for %q", c.text)
			}
		})
	}
}
