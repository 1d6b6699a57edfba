// Package config reads gitoffice.yaml, GITOFFICE_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	FPS    int    `mapstructure:"fps"`
	Title  string `mapstructure:"title"`
}

type Player struct {
	MouseSens        float32 `mapstructure:"mouse_sens"`
	MoveSpeed        float32 `mapstructure:"move_speed"`
	HoldingSpeedMult float32 `mapstructure:"holding_speed_mult"`
	Reach            float32 `mapstructure:"reach"`
	EyeHeight        float32 `mapstructure:"eye_height"`
}

type Audio struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

type Office struct {
	Layout string `mapstructure:"layout"`
}

type Game struct {
	// Seed drives line shuffling and split impulses; 0 picks one from the clock.
	Seed int64 `mapstructure:"seed"`
}

type Config struct {
	Window Window `mapstructure:"window"`
	Player Player `mapstructure:"player"`
	Audio  Audio  `mapstructure:"audio"`
	Office Office `mapstructure:"office"`
	Game   Game   `mapstructure:"game"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.fps", 120)
	v.SetDefault("window.title", "gitoffice")

	v.SetDefault("player.mouse_sens", 0.1)
	v.SetDefault("player.move_speed", 4.0)
	v.SetDefault("player.holding_speed_mult", 0.75)
	v.SetDefault("player.reach", 3.0)
	v.SetDefault("player.eye_height", 1.6)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.dir", "assets/audio")

	v.SetDefault("office.layout", "assets/office.yaml")

	v.SetDefault("game.seed", 0)
}

// New returns a viper instance with defaults, env binding and the config search path set up.
// An explicit file overrides the search path.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("GITOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return v
	}
	v.SetConfigName("gitoffice")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "gitoffice"))
	}
	return v
}

// Load reads the config. A missing file in the search path is not an error; a missing explicit file is.
func Load(file string) (*Config, error) {
	v := New(file)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return Decode(v)
}

// Decode unmarshals and validates whatever v holds.
func Decode(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d", c.Window.Width, c.Window.Height)
	check(c.Window.FPS > 0, "window.fps %d", c.Window.FPS)
	check(c.Player.MouseSens > 0, "player.mouse_sens %v", c.Player.MouseSens)
	check(c.Player.MoveSpeed > 0, "player.move_speed %v", c.Player.MoveSpeed)
	check(c.Player.HoldingSpeedMult > 0 && c.Player.HoldingSpeedMult <= 1, "player.holding_speed_mult %v", c.Player.HoldingSpeedMult)
	check(c.Player.Reach > 0, "player.reach %v", c.Player.Reach)
	check(c.Player.EyeHeight > 0, "player.eye_height %v", c.Player.EyeHeight)
	check(c.Office.Layout != "", "office.layout is empty")
	check(!c.Audio.Enabled || c.Audio.Dir != "", "audio.dir is empty")
	return errors.Join(errs...)
}
