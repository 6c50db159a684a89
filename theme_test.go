package menu_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-arcade/menu"
)

func TestThemeValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*menu.Theme)
	}{
		{"zero font scale", func(th *menu.Theme) { th.FontScale = 0 }},
		{"negative font scale", func(th *menu.Theme) { th.FontScale = -1 }},
		{"zero char width", func(th *menu.Theme) { th.CharWidth = 0 }},
		{"negative font size", func(th *menu.Theme) { th.FontSize = -4 }},
		{"negative padding", func(th *menu.Theme) { th.WidgetPadding.Left = -1 }},
		{"negative margin", func(th *menu.Theme) { th.WidgetMargin.Y = -1 }},
		{"negative title height", func(th *menu.Theme) { th.TitleHeight = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			th := menu.DefaultTheme()
			tc.mutate(&th)
			if err := th.Validate(); !errors.Is(err, menu.ErrInvalidState) {
				t.Fatalf("expected ErrInvalidState, got %v", err)
			}
		})
	}

	for _, th := range []menu.Theme{menu.DefaultTheme(), menu.DarkTheme(), menu.LightTheme()} {
		if err := th.Validate(); err != nil {
			t.Errorf("built-in theme failed validation: %v", err)
		}
	}
}

func TestThemeSaveLoad(t *testing.T) {
	th := menu.DarkTheme()
	th.FontScale = 1.5
	th.TitleHeight = 48

	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := th.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := menu.LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if loaded != th {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, th)
	}
}

func TestLoadThemePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("title_height: 64\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	th, err := menu.LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if th.TitleHeight != 64 {
		t.Errorf("TitleHeight = %v, want 64", th.TitleHeight)
	}
	// Unspecified fields keep their defaults.
	if th.FontScale != menu.DefaultTheme().FontScale {
		t.Errorf("FontScale = %v, want default", th.FontScale)
	}
}

func TestLoadThemeInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("font_scale: -2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := menu.LoadTheme(path); !errors.Is(err, menu.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}

	if _, err := menu.LoadTheme(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
