package rogue

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Title != "rogue window" {
		t.Errorf("Title = %q, want %q", cfg.Title, "rogue window")
	}
	if cfg.Width != 100 || cfg.Height != 100 {
		t.Errorf("size = %dx%d, want 100x100", cfg.Width, cfg.Height)
	}
	if cfg.Font != nil {
		t.Error("Font != nil, want embedded default")
	}
}

func TestConfigChaining(t *testing.T) {
	font := strings.NewReader("placeholder")
	cfg := DefaultConfig().
		WithTitle("dungeon").
		WithInnerSize(1024, 768).
		WithFont(font)

	if cfg.Title != "dungeon" {
		t.Errorf("Title = %q, want %q", cfg.Title, "dungeon")
	}
	if cfg.Width != 1024 || cfg.Height != 768 {
		t.Errorf("size = %dx%d, want 1024x768", cfg.Width, cfg.Height)
	}
	if cfg.Font != font {
		t.Error("Font not carried")
	}

	// Value semantics: the original is untouched.
	if d := DefaultConfig(); d.Title != "rogue window" {
		t.Errorf("DefaultConfig mutated: %q", d.Title)
	}
}
