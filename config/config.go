// Package config holds the game's tunables. Defaults are embedded as YAML and
// decoded at init; Init merges a user file over them.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds general screen configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Color is an RGBA color as written in YAML.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Speed  float64 `yaml:"speed"` // pixels per 16ms step

	Health int `yaml:"health"`

	// Radius = BaseRadius + growth*RadiusPerGrowth
	BaseRadius      float64 `yaml:"base_radius"`
	RadiusPerGrowth float64 `yaml:"radius_per_growth"`

	DamageFlashMs int     `yaml:"damage_flash_ms"`
	FlashTint     Color   `yaml:"flash_tint"`
	FlashAmount   float64 `yaml:"flash_amount"` // 0..1 blend toward FlashTint over opaque pixels

	Sprite string `yaml:"sprite"`
}

// DamageFlash returns the flash duration set by TakeDamage.
func (p PlayerConfig) DamageFlash() time.Duration {
	return time.Duration(p.DamageFlashMs) * time.Millisecond
}

// TierConfig is one enemy size band.
type TierConfig struct {
	Name        string  `yaml:"name"`
	MinSize     float64 `yaml:"min_size"`
	MaxSize     float64 `yaml:"max_size"`
	Sprite      string  `yaml:"sprite"`
	GrowthValue float64 `yaml:"growth_value"`
}

// EnemyConfig contains enemy generation values
type EnemyConfig struct {
	Tiers    []TierConfig `yaml:"tiers"`
	MinSpeed float64      `yaml:"min_speed"`
	MaxSpeed float64      `yaml:"max_speed"` // exclusive
}

// SpawnConfig controls how often and how many enemies appear.
type SpawnConfig struct {
	// EnemiesPerSpawn is fractional on purpose; see BatchSize.
	EnemiesPerSpawn  float64 `yaml:"enemies_per_spawn"`
	RandomOffsetMax  int     `yaml:"random_offset_max"` // offset is uniform in [0, max]
	BaseInterval     int     `yaml:"base_interval"`     // ticks
	IntervalPerLevel int     `yaml:"interval_per_level"`
	MinInterval      int     `yaml:"min_interval"`
}

// ProgressionConfig contains leveling values
type ProgressionConfig struct {
	// GrowthThresholds[i] is the growth needed to leave level i. Reaching
	// the last index wins the game.
	GrowthThresholds []float64 `yaml:"growth_thresholds"`
	CollisionDamage  int       `yaml:"collision_damage"`
}

// SimulationConfig controls the tick clock.
type SimulationConfig struct {
	StepMs        int   `yaml:"step_ms"`
	MeasuredDelta bool  `yaml:"measured_delta"`
	MaxDeltaMs    int   `yaml:"max_delta_ms"`
	Seed          int64 `yaml:"seed"` // 0 = time based
}

// Step is the nominal tick duration.
func (s SimulationConfig) Step() time.Duration {
	return time.Duration(s.StepMs) * time.Millisecond
}

// MaxDelta caps measured frame deltas.
func (s SimulationConfig) MaxDelta() time.Duration {
	return time.Duration(s.MaxDeltaMs) * time.Millisecond
}

// InputConfig holds analog input tuning.
type InputConfig struct {
	AnalogDeadzone float64 `yaml:"analog_deadzone"`
	// PointerReach is the pointer distance, in pixels, that maps to a
	// fully tilted virtual joystick.
	PointerReach float64 `yaml:"pointer_reach"`
}

// UIConfig contains HUD and screen configuration values
type UIConfig struct {
	BackgroundColor  Color   `yaml:"background_color"`
	HUDTextColor     Color   `yaml:"hud_text_color"`
	HUDMargin        float64 `yaml:"hud_margin"`
	HUDLineHeight    float64 `yaml:"hud_line_height"`
	HUDFontSize      float64 `yaml:"hud_font_size"`
	TitleFontSize    float64 `yaml:"title_font_size"`
	PlaceholderColor Color   `yaml:"placeholder_color"`
	BannerColor      Color   `yaml:"banner_color"`
	BannerSeconds    float64 `yaml:"banner_seconds"`
	WinMessage       string  `yaml:"win_message"`
	LoseMessage      string  `yaml:"lose_message"`
	Title            string  `yaml:"title"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool `yaml:"skip_menu"`
	DrawBounds bool `yaml:"draw_bounds"`
}

// File mirrors the YAML layout.
type File struct {
	Screen      Config            `yaml:"screen"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Progression ProgressionConfig `yaml:"progression"`
	Simulation  SimulationConfig  `yaml:"simulation"`
	Input       InputConfig       `yaml:"input"`
	UI          UIConfig          `yaml:"ui"`
	Debug       DebugConfig       `yaml:"debug"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Spawn SpawnConfig
var Progression ProgressionConfig
var Simulation SimulationConfig
var Input InputConfig
var UI UIConfig
var Debug DebugConfig

func init() {
	f, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	apply(f)
}

// Init loads path over the embedded defaults and installs the result as the
// global configuration. An empty path restores the defaults.
func Init(path string) error {
	f, err := Load(path)
	if err != nil {
		return err
	}
	apply(f)
	return nil
}

// Load decodes the embedded defaults, then the file at path (if any) on top.
// Fields missing from the file keep their default; lists are replaced whole.
func Load(path string) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(defaultsYAML, f); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return f, nil
}

// Validate rejects values the simulation cannot run with.
func (f *File) Validate() error {
	var errs []error
	if f.Screen.Width <= 0 || f.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", f.Screen.Width, f.Screen.Height))
	}
	if f.Player.Health <= 0 {
		errs = append(errs, errors.New("player health must be positive"))
	}
	if f.Player.BaseRadius <= 0 {
		errs = append(errs, errors.New("player base radius must be positive"))
	}
	if len(f.Enemy.Tiers) == 0 {
		errs = append(errs, errors.New("at least one enemy tier is required"))
	}
	for i, t := range f.Enemy.Tiers {
		if t.MinSize <= 0 || t.MaxSize < t.MinSize {
			errs = append(errs, fmt.Errorf("tier %d: size range [%v,%v) is invalid", i, t.MinSize, t.MaxSize))
		}
	}
	if f.Enemy.MaxSpeed < f.Enemy.MinSpeed {
		errs = append(errs, fmt.Errorf("enemy speed range [%v,%v) is invalid", f.Enemy.MinSpeed, f.Enemy.MaxSpeed))
	}
	if f.Spawn.MinInterval <= 0 || f.Spawn.BaseInterval < f.Spawn.MinInterval {
		errs = append(errs, fmt.Errorf("spawn interval %d (min %d) is invalid", f.Spawn.BaseInterval, f.Spawn.MinInterval))
	}
	if f.Spawn.RandomOffsetMax < 0 {
		errs = append(errs, errors.New("spawn random offset must not be negative"))
	}
	if len(f.Progression.GrowthThresholds) < 2 {
		errs = append(errs, errors.New("at least two growth thresholds are required"))
	}
	for i := 1; i < len(f.Progression.GrowthThresholds); i++ {
		if f.Progression.GrowthThresholds[i] < f.Progression.GrowthThresholds[i-1] {
			errs = append(errs, fmt.Errorf("growth thresholds must not decrease (index %d)", i))
			break
		}
	}
	if f.Simulation.StepMs <= 0 {
		errs = append(errs, errors.New("simulation step must be positive"))
	}
	return errors.Join(errs...)
}

func apply(f *File) {
	screen := f.Screen
	C = &screen
	Player = f.Player
	Enemy = f.Enemy
	Spawn = f.Spawn
	Progression = f.Progression
	Simulation = f.Simulation
	Input = f.Input
	UI = f.UI
	Debug = f.Debug
}

// Snapshot returns the active global configuration as a File.
func Snapshot() *File {
	return &File{
		Screen:      *C,
		Player:      Player,
		Enemy:       Enemy,
		Spawn:       Spawn,
		Progression: Progression,
		Simulation:  Simulation,
		Input:       Input,
		UI:          UI,
		Debug:       Debug,
	}
}
