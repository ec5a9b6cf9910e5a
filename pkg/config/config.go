package config

import (
	"github.com/pelletier/go-toml/v2"
)

// Config is the effective configuration of a run.
type Config struct {
	Links  Links  `koanf:"links" toml:"links"`
	Clean  Clean  `koanf:"clean" toml:"clean"`
	Output Output `koanf:"output" toml:"output"`
}

// Links selects how shortcuts are stored and recognised.
type Links struct {
	Type      string `koanf:"type" toml:"type" validate:"oneof=symlink toml webloc"`
	Suffix    string `koanf:"suffix" toml:"suffix" validate:"omitempty,max=32,excludesall=/\\<>:\"0x7C?*"`
	Recognize string `koanf:"recognize" toml:"recognize" validate:"oneof=suffix object"`
}

// Clean configures the clean pass.
type Clean struct {
	Prune bool `koanf:"prune" toml:"prune"`
}

// Output selects the renderer.
type Output struct {
	Format string `koanf:"format" toml:"format" validate:"oneof=auto term text json"`
}

// Default returns the configuration built from the embedded defaults only.
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUserConfig: true, SkipEnv: true})
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

// TOML renders the configuration as a config file.
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
