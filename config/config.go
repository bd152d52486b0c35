package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Environment variables, SNAKE_ENV_FILE selects the dotenv file (default .env)
const (
	EnvFile          = "SNAKE_ENV_FILE"
	EnvBoardSize     = "SNAKE_BOARD_SIZE"
	EnvMode          = "SNAKE_MODE"
	EnvBestScorePath = "SNAKE_BEST_SCORE_PATH"
	EnvKeymap        = "SNAKE_KEYMAP"
	EnvDebug         = "SNAKE_DEBUG"
	EnvMute          = "SNAKE_MUTE"
	EnvLogDir        = "SNAKE_LOG_DIR"
	EnvSeed          = "SNAKE_SEED"
)

const defaultEnvFile = ".env"

// Config holds startup settings
type Config struct {
	BoardSize     int
	Mode          core.Mode // Preselected in the menu and used by Enter
	BestScorePath string    // Empty keeps the best score in memory
	KeymapPath    string    // Optional TOML key overrides
	Debug         bool      // Write logs to LogDir
	Mute          bool
	LogDir        string
	Seed          int64 // 0 seeds from the clock
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		BoardSize:     constants.DefaultBoardSize,
		Mode:          core.ModeClassic,
		BestScorePath: DefaultBestScorePath(),
		LogDir:        "logs",
	}
}

// DefaultBestScorePath returns $XDG_CONFIG_HOME/vi-snake/best.toml, empty when no config dir exists
func DefaultBestScorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vi-snake", "best.toml")
}

// Load resolves settings with precedence flags > environment > dotenv file > defaults
// args excludes the program name
func Load(args []string) (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	fset := flag.NewFlagSet("vi-snake", flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	modeName := cfg.Mode.String()
	fset.IntVar(&cfg.BoardSize, "size", cfg.BoardSize, "board side length in cells")
	fset.StringVar(&modeName, "mode", modeName, "initial mode: classic or no_walls")
	fset.StringVar(&cfg.BestScorePath, "best", cfg.BestScorePath, "best score file, empty for memory only")
	fset.StringVar(&cfg.KeymapPath, "keymap", cfg.KeymapPath, "TOML key binding overrides")
	fset.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write logs to the log directory")
	fset.BoolVar(&cfg.Mute, "mute", cfg.Mute, "start with sound muted")
	fset.StringVar(&cfg.LogDir, "logdir", cfg.LogDir, "log directory")
	fset.Int64Var(&cfg.Seed, "seed", cfg.Seed, "fruit placement seed, 0 for random")

	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fset.SetOutput(os.Stderr)
			fset.PrintDefaults()
		}
		return nil, fmt.Errorf("flags: %w", err)
	}
	if fset.NArg() > 0 {
		return nil, fmt.Errorf("flags: unexpected argument %q", fset.Arg(0))
	}

	mode, err := core.ParseMode(modeName)
	if err != nil {
		return nil, fmt.Errorf("flag -mode: %w", err)
	}
	cfg.Mode = mode

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects out-of-range values
func (c *Config) Validate() error {
	if c.BoardSize < constants.MinBoardSize || c.BoardSize > constants.MaxBoardSize {
		return fmt.Errorf("board size %d out of range [%d, %d]", c.BoardSize, constants.MinBoardSize, constants.MaxBoardSize)
	}
	if c.Mode != core.ModeClassic && c.Mode != core.ModeNoWalls {
		return fmt.Errorf("unknown mode %d", c.Mode)
	}
	if c.Debug && c.LogDir == "" {
		return errors.New("debug logging needs a log directory")
	}
	return nil
}

// loadDotenv reads the dotenv file without overriding variables already set
func loadDotenv() error {
	path := os.Getenv(EnvFile)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvBoardSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBoardSize, err)
		}
		c.BoardSize = n
	}

	if v, ok := os.LookupEnv(EnvMode); ok && v != "" {
		mode, err := core.ParseMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMode, err)
		}
		c.Mode = mode
	}

	// Set but empty disables the file
	if v, ok := os.LookupEnv(EnvBestScorePath); ok {
		c.BestScorePath = v
	}
	if v, ok := os.LookupEnv(EnvKeymap); ok {
		c.KeymapPath = v
	}
	if v, ok := os.LookupEnv(EnvLogDir); ok && v != "" {
		c.LogDir = v
	}

	for _, b := range []struct {
		name string
		dst  *bool
	}{
		{EnvDebug, &c.Debug},
		{EnvMute, &c.Mute},
	} {
		if v, ok := os.LookupEnv(b.name); ok && v != "" {
			val, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", b.name, err)
			}
			*b.dst = val
		}
	}

	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}

	return nil
}
