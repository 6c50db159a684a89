package menu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme defines the visual appearance of a Menu and its widgets.
//
// Unlike loosely validated configuration bags, Theme is a plain struct
// validated once by Validate; menus copy it at construction and never mutate
// it afterwards. Use SetTheme to restyle a menu explicitly.
type Theme struct {
	// Menu colors
	BackgroundColor      uint32 `yaml:"background_color"`
	TitleBackgroundColor uint32 `yaml:"title_background_color"`
	TitleFontColor       uint32 `yaml:"title_font_color"`
	BorderColor          uint32 `yaml:"border_color"`

	// Widget font colors per selection/readonly state
	FontColor             uint32 `yaml:"font_color"`
	SelectedFontColor     uint32 `yaml:"selected_font_color"`
	ReadonlyColor         uint32 `yaml:"readonly_color"`
	ReadonlySelectedColor uint32 `yaml:"readonly_selected_color"`

	// Selection highlight drawn behind the selected widget
	SelectionColor uint32 `yaml:"selection_color"`

	// Font
	FontName string  `yaml:"font_name"` // Resolved through the FontProvider; empty = builtin bitmap font
	FontSize float32 `yaml:"font_size"`

	// Builtin bitmap font cell metrics (used when FontName is empty)
	CharWidth  float32 `yaml:"char_width"`
	CharHeight float32 `yaml:"char_height"`

	// Sizing
	FontScale     float32   `yaml:"font_scale"`
	WidgetPadding Padding   `yaml:"widget_padding"`
	WidgetMargin  Vec2      `yaml:"widget_margin"` // X = horizontal offset, Y = gap below each widget
	TitleHeight   float32   `yaml:"title_height"`
	Alignment     Alignment `yaml:"alignment"`

	// Border
	BorderSize float32 `yaml:"border_size"`
}

// Validate checks the theme for contract violations. It is called by NewMenu
// and LoadTheme; themes built by hand should be validated before use.
func (t Theme) Validate() error {
	if t.FontScale <= 0 {
		return fmt.Errorf("font scale must be positive, got %v: %w", t.FontScale, ErrInvalidState)
	}
	if t.CharWidth <= 0 || t.CharHeight <= 0 {
		return fmt.Errorf("char cell must be positive, got %vx%v: %w", t.CharWidth, t.CharHeight, ErrInvalidState)
	}
	if t.FontSize < 0 {
		return fmt.Errorf("font size cannot be negative: %w", ErrInvalidState)
	}
	if t.WidgetPadding.Top < 0 || t.WidgetPadding.Right < 0 ||
		t.WidgetPadding.Bottom < 0 || t.WidgetPadding.Left < 0 {
		return fmt.Errorf("negative widget padding: %w", ErrInvalidState)
	}
	if t.WidgetMargin.Y < 0 {
		return fmt.Errorf("negative widget margin: %w", ErrInvalidState)
	}
	if t.TitleHeight < 0 {
		return fmt.Errorf("negative title height: %w", ErrInvalidState)
	}
	return nil
}

// DefaultTheme returns the default theme with sensible defaults.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor:      RGBA(20, 20, 20, 220),
		TitleBackgroundColor: RGBA(40, 40, 45, 255),
		TitleFontColor:       ColorWhite,
		BorderColor:          RGBA(80, 80, 80, 255),

		FontColor:             ColorWhite,
		SelectedFontColor:     ColorYellow,
		ReadonlyColor:         ColorGray,
		ReadonlySelectedColor: ColorLightGray,

		SelectionColor: RGBA(50, 100, 150, 255),

		FontSize:   16,
		CharWidth:  8,
		CharHeight: 8,

		FontScale:     1.0,
		WidgetPadding: UniformPadding(4),
		WidgetMargin:  Vec2{X: 0, Y: 10},
		TitleHeight:   32,
		Alignment:     AlignCenter,

		BorderSize: 0,
	}
}

// DarkTheme returns a dark theme with a blue selection highlight.
func DarkTheme() Theme {
	t := DefaultTheme()
	t.BackgroundColor = RGBA(25, 25, 25, 245)
	t.TitleBackgroundColor = RGBA(35, 35, 40, 255)
	t.SelectionColor = RGBA(65, 105, 225, 255) // Royal blue
	t.SelectedFontColor = ColorWhite
	return t
}

// LightTheme returns a light theme.
func LightTheme() Theme {
	t := DefaultTheme()
	t.BackgroundColor = RGBA(245, 245, 245, 250)
	t.TitleBackgroundColor = RGBA(220, 220, 225, 255)
	t.TitleFontColor = RGBA(40, 40, 40, 255)
	t.BorderColor = RGBA(200, 200, 200, 255)
	t.FontColor = RGBA(20, 20, 20, 255)
	t.SelectedFontColor = ColorWhite
	t.ReadonlyColor = RGBA(150, 150, 150, 255)
	t.ReadonlySelectedColor = RGBA(120, 120, 120, 255)
	t.SelectionColor = RGBA(0, 120, 215, 255)
	return t
}

// LoadTheme reads and validates a theme from a YAML file.
// Missing fields keep the DefaultTheme value, so partial overrides are fine.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}

	t := DefaultTheme()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, fmt.Errorf("validate theme %s: %w", path, err)
	}
	return t, nil
}

// Save writes the theme to a YAML file.
func (t Theme) Save(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}
