package solarvibe

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables overriding the configuration,
// e.g. SOLARVIBE_SCALE_DISTANCE_SCALE.
const EnvPrefix = "SOLARVIBE"

// ScaleConfig holds the tuning of the visual scale planner.
type ScaleConfig struct {
	DistanceScale     float64 `mapstructure:"distance_scale"`  // Scene units per AU.
	SizeMultiplier    float64 `mapstructure:"size_multiplier"` // Radius exaggeration.
	MinBodyRadius     float64 `mapstructure:"min_body_radius"`
	MoonClearance     float64 `mapstructure:"moon_clearance"`
	MinMoonOrbitScale float64 `mapstructure:"min_moon_orbit_scale"`
	MaxMoonOrbitScale float64 `mapstructure:"max_moon_orbit_scale"`

	RockyMoonParents []string `mapstructure:"rocky_moon_parents"`
	RockyMoonScale   float64  `mapstructure:"rocky_moon_scale"`

	GiantMoonParents   []string `mapstructure:"giant_moon_parents"`
	GiantMoonScale     float64  `mapstructure:"giant_moon_scale"`
	GiantMoonMinRadius float64  `mapstructure:"giant_moon_min_radius"`

	OuterPlanets          []string `mapstructure:"outer_planets"`
	OuterSurfaceFactorMin float64  `mapstructure:"outer_surface_factor_min"`
	OuterSurfaceFactorMax float64  `mapstructure:"outer_surface_factor_max"`
	// SurfaceMultipliers places the listed moons at parent radius × (1 + multiplier).
	SurfaceMultipliers map[string]float64 `mapstructure:"surface_multipliers"`
	RingBuffer         float64            `mapstructure:"ring_buffer"`     // In parent radii past the ring.
	RingMaxFactor      float64            `mapstructure:"ring_max_factor"` // Farthest moon, in parent radii.
}

// EngineConfig holds the engine settings.
type EngineConfig struct {
	PathSegments int `mapstructure:"path_segments"`
}

// ClockConfig holds the time controller settings.
type ClockConfig struct {
	SpeedSteps  []float64 `mapstructure:"speed_steps"`
	InitialStep int       `mapstructure:"initial_step"`
}

// LogConfig holds the logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StreamConfig holds the renderer stream settings.
type StreamConfig struct {
	Address         string  `mapstructure:"address"`
	FramesPerSecond float64 `mapstructure:"fps"`
	CommandRate     float64 `mapstructure:"command_rate"` // Control messages per second and client.
	CommandBurst    int     `mapstructure:"command_burst"`
}

// EphemerisConfig holds the ephemeris recorder settings.
type EphemerisConfig struct {
	Path string `mapstructure:"path"`
	Step string `mapstructure:"step"` // A time.Duration string.
}

// Config is the full configuration.
type Config struct {
	Scale     ScaleConfig     `mapstructure:"scale"`
	Engine    EngineConfig    `mapstructure:"engine"`
	Clock     ClockConfig     `mapstructure:"clock"`
	Log       LogConfig       `mapstructure:"log"`
	Stream    StreamConfig    `mapstructure:"stream"`
	Ephemeris EphemerisConfig `mapstructure:"ephemeris"`
}

// DefaultScaleConfig returns the tuning used for the built-in catalogue.
func DefaultScaleConfig() ScaleConfig {
	return ScaleConfig{
		DistanceScale:         8,
		SizeMultiplier:        2200,
		MinBodyRadius:         0.35,
		MoonClearance:         0.12,
		MinMoonOrbitScale:     12,
		MaxMoonOrbitScale:     900,
		RockyMoonParents:      []string{"mars"},
		RockyMoonScale:        0.25,
		GiantMoonParents:      []string{"jupiter"},
		GiantMoonScale:        2.0,
		GiantMoonMinRadius:    0.32,
		OuterPlanets:          []string{"jupiter", "saturn", "uranus", "neptune"},
		OuterSurfaceFactorMin: 1,
		OuterSurfaceFactorMax: 5,
		SurfaceMultipliers:    map[string]float64{"io": 1, "europa": 2, "ganymede": 3, "callisto": 5},
		RingBuffer:            0.2,
		RingMaxFactor:         6,
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Scale:  DefaultScaleConfig(),
		Engine: EngineConfig{PathSegments: 512},
		Clock: ClockConfig{
			SpeedSteps: []float64{1, 3, 10, 30, 100, 300, 1e3, 3e3, 1e4, 3e4, 1e5, 3e5, 1e6, 3e6, 1e7, 3e7,
				1e8, 3e8, 1e9, 3e9, 1e10, 3e10, 1e11},
		},
		Log:       LogConfig{Level: "info", Format: "logfmt"},
		Stream:    StreamConfig{Address: ":8080", FramesPerSecond: 30, CommandRate: 10, CommandBurst: 5},
		Ephemeris: EphemerisConfig{Path: "ephemeris.sqlite", Step: "24h"},
	}
}

// setDefaults registers every default so that environment variables can
// override keys which are absent from the file.
func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("scale.distance_scale", cfg.Scale.DistanceScale)
	v.SetDefault("scale.size_multiplier", cfg.Scale.SizeMultiplier)
	v.SetDefault("scale.min_body_radius", cfg.Scale.MinBodyRadius)
	v.SetDefault("scale.moon_clearance", cfg.Scale.MoonClearance)
	v.SetDefault("scale.min_moon_orbit_scale", cfg.Scale.MinMoonOrbitScale)
	v.SetDefault("scale.max_moon_orbit_scale", cfg.Scale.MaxMoonOrbitScale)
	v.SetDefault("scale.rocky_moon_parents", cfg.Scale.RockyMoonParents)
	v.SetDefault("scale.rocky_moon_scale", cfg.Scale.RockyMoonScale)
	v.SetDefault("scale.giant_moon_parents", cfg.Scale.GiantMoonParents)
	v.SetDefault("scale.giant_moon_scale", cfg.Scale.GiantMoonScale)
	v.SetDefault("scale.giant_moon_min_radius", cfg.Scale.GiantMoonMinRadius)
	v.SetDefault("scale.outer_planets", cfg.Scale.OuterPlanets)
	v.SetDefault("scale.outer_surface_factor_min", cfg.Scale.OuterSurfaceFactorMin)
	v.SetDefault("scale.outer_surface_factor_max", cfg.Scale.OuterSurfaceFactorMax)
	v.SetDefault("scale.surface_multipliers", cfg.Scale.SurfaceMultipliers)
	v.SetDefault("scale.ring_buffer", cfg.Scale.RingBuffer)
	v.SetDefault("scale.ring_max_factor", cfg.Scale.RingMaxFactor)
	v.SetDefault("engine.path_segments", cfg.Engine.PathSegments)
	v.SetDefault("clock.speed_steps", cfg.Clock.SpeedSteps)
	v.SetDefault("clock.initial_step", cfg.Clock.InitialStep)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("stream.address", cfg.Stream.Address)
	v.SetDefault("stream.fps", cfg.Stream.FramesPerSecond)
	v.SetDefault("stream.command_rate", cfg.Stream.CommandRate)
	v.SetDefault("stream.command_burst", cfg.Stream.CommandBurst)
	v.SetDefault("ephemeris.path", cfg.Ephemeris.Path)
	v.SetDefault("ephemeris.step", cfg.Ephemeris.Step)
}

// LoadConfig reads the configuration file at path (TOML, YAML or JSON, by
// extension) on top of the defaults, then applies SOLARVIBE_* environment
// variables. An empty path only applies the environment.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read %s: %w", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot work with.
func (c Config) Validate() error {
	s := c.Scale
	switch {
	case s.DistanceScale <= 0:
		return fmt.Errorf("scale.distance_scale must be positive, got %f", s.DistanceScale)
	case s.MinMoonOrbitScale <= 0 || s.MaxMoonOrbitScale < s.MinMoonOrbitScale:
		return fmt.Errorf("invalid moon orbit scale range [%f, %f]", s.MinMoonOrbitScale, s.MaxMoonOrbitScale)
	case s.OuterSurfaceFactorMax < s.OuterSurfaceFactorMin:
		return fmt.Errorf("invalid outer surface factor range [%f, %f]", s.OuterSurfaceFactorMin, s.OuterSurfaceFactorMax)
	case c.Engine.PathSegments < 3:
		return fmt.Errorf("engine.path_segments must be at least 3, got %d", c.Engine.PathSegments)
	case len(c.Clock.SpeedSteps) == 0:
		return fmt.Errorf("clock.speed_steps is empty")
	case c.Stream.FramesPerSecond <= 0:
		return fmt.Errorf("stream.fps must be positive, got %f", c.Stream.FramesPerSecond)
	}
	return nil
}

// contains returns whether id is listed.
func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
