// Package styles defines the visual styling for shortcut-maker's terminal
// output.
//
// All styles use semantic names and adaptive colors that automatically
// adjust to light and dark terminal themes. Definitions live in the
// embedded styles.yaml.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Registry maps semantic names to lipgloss styles bound to one renderer.
type Registry struct {
	renderer *lipgloss.Renderer
	colors   map[string]lipgloss.AdaptiveColor
	styles   map[string]lipgloss.Style
}

// Load builds a registry from YAML data.
func Load(data []byte, renderer *lipgloss.Renderer) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	reg := &Registry{
		renderer: renderer,
		colors:   make(map[string]lipgloss.AdaptiveColor, len(config.Colors)),
		styles:   make(map[string]lipgloss.Style, len(config.Styles)),
	}
	for name, def := range config.Colors {
		reg.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	for name, def := range config.Styles {
		reg.styles[name] = reg.buildStyle(def)
	}
	return reg, nil
}

// Default builds the registry from the embedded styles. If they cannot be
// parsed every name maps to an unstyled style.
func Default(renderer *lipgloss.Renderer) *Registry {
	reg, err := Load(embeddedStyles, renderer)
	if err != nil {
		return &Registry{
			renderer: renderer,
			colors:   map[string]lipgloss.AdaptiveColor{},
			styles:   map[string]lipgloss.Style{},
		}
	}
	return reg
}

// buildStyle constructs a lipgloss style from a style definition
func (r *Registry) buildStyle(def StyleDef) lipgloss.Style {
	style := r.renderer.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := r.colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := r.colors[def.Background]; ok {
		style = style.Background(color)
	}
	return style
}

// Get safely retrieves a style from the registry
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return r.renderer.NewStyle()
}

// Render applies the named style to s.
func (r *Registry) Render(name, s string) string {
	return r.Get(name).Render(s)
}

// Names returns the defined style names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	return names
}
