package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/orbit-sweeper/audio"
	"github.com/lixenwraith/orbit-sweeper/debris"
	"github.com/lixenwraith/orbit-sweeper/game"
)

const (
	EnvDifficulty = "ORBIT_SWEEPER_DIFFICULTY"
	EnvTool       = "ORBIT_SWEEPER_TOOL"
	EnvSeed       = "ORBIT_SWEEPER_SEED"
	EnvDebug      = "ORBIT_SWEEPER_DEBUG"
	EnvHint       = "ORBIT_SWEEPER_HINT"
	EnvMaxObjects = "ORBIT_SWEEPER_MAX_OBJECTS"

	// DefaultEnvFile is read from the working directory when present
	DefaultEnvFile = ".env"
)

var (
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidTool       = errors.New("invalid tool")
	ErrInvalidMaxObjects = errors.New("invalid max objects")
)

// Config is the resolved game configuration
// Precedence: flags over environment over .env over defaults
type Config struct {
	Difficulty string
	Tool       string // Preselected tool, empty = choose in menu
	Seed       int64  // 0 = random per phase
	Debug      bool
	Hint       bool
	MaxObjects int // 0 = unbounded

	Audio *audio.Config
}

// Default returns the configuration used with no overrides
func Default() *Config {
	return &Config{
		Difficulty: game.DifficultyMedium.String(),
		MaxObjects: debris.DefaultTuning().MaxObjects,
		Audio:      audio.DefaultConfig(),
	}
}

// Load resolves configuration from envFile, the environment and args
// A missing envFile is not an error; an empty envFile skips it
func Load(envFile string, args []string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	cfg := fromEnv()

	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func fromEnv() *Config {
	cfg := Default()
	cfg.Audio = audio.LoadConfig()

	cfg.Difficulty = getEnv(EnvDifficulty, cfg.Difficulty)
	cfg.Tool = getEnv(EnvTool, cfg.Tool)

	if n, err := strconv.ParseInt(getEnv(EnvSeed, "0"), 10, 64); err == nil {
		cfg.Seed = n
	}
	if b, err := strconv.ParseBool(getEnv(EnvDebug, "false")); err == nil {
		cfg.Debug = b
	}
	if b, err := strconv.ParseBool(getEnv(EnvHint, "false")); err == nil {
		cfg.Hint = b
	}
	if n, err := strconv.Atoi(getEnv(EnvMaxObjects, strconv.Itoa(cfg.MaxObjects))); err == nil {
		cfg.MaxObjects = n
	}
	return cfg
}

func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("orbit-sweeper", flag.ContinueOnError)

	volume := int(c.Audio.MasterVolume*100 + 0.5)

	fs.StringVar(&c.Difficulty, "difficulty", c.Difficulty, "Maze difficulty: easy, medium, hard")
	fs.StringVar(&c.Tool, "tool", c.Tool, "Preselect a tool: magnetic-collector, net, robotic-hand, laser")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed for maze and debris (0 = random)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write debug logs to logs/")
	fs.BoolVar(&c.Hint, "hint", c.Hint, "Show the maze solution hint from the start")
	fs.IntVar(&c.MaxObjects, "max-objects", c.MaxObjects, "Orbiting object cap (0 = unbounded)")
	fs.BoolVar(&c.Audio.Muted, "muted", c.Audio.Muted, "Start with sound muted")
	fs.IntVar(&volume, "volume", volume, "Master volume 0-100")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.Audio.SetVolumePercent(volume)
	return nil
}

// Validate rejects names that do not resolve and negative caps
func (c *Config) Validate() error {
	if _, err := game.ParseDifficulty(c.Difficulty); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDifficulty, err)
	}
	if _, err := game.ParseTool(c.Tool); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTool, err)
	}
	if c.MaxObjects < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxObjects, c.MaxObjects)
	}
	return nil
}

// GameDifficulty returns the parsed difficulty, medium when invalid
func (c *Config) GameDifficulty() game.Difficulty {
	d, err := game.ParseDifficulty(c.Difficulty)
	if err != nil {
		return game.DifficultyMedium
	}
	return d
}

// GameTool returns the parsed preselected tool, ToolNone when unset or invalid
func (c *Config) GameTool() game.Tool {
	t, err := game.ParseTool(c.Tool)
	if err != nil {
		return game.ToolNone
	}
	return t
}

// Tuning returns the debris tuning with configured overrides applied
func (c *Config) Tuning() debris.Tuning {
	t := debris.DefaultTuning()
	t.MaxObjects = c.MaxObjects
	return t
}

// LogValue groups the resolved settings for a single startup log line
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("difficulty", c.Difficulty),
		slog.String("tool", c.Tool),
		slog.Int64("seed", c.Seed),
		slog.Bool("hint", c.Hint),
		slog.Int("max_objects", c.MaxObjects),
		slog.Bool("muted", c.Audio.Muted),
		slog.Float64("volume", c.Audio.MasterVolume),
	)
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
