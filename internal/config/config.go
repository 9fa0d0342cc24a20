package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/jask/hanzicards/internal/catalog"
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Assets  AssetsConfig  `mapstructure:"assets"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Log     LogConfig     `mapstructure:"log"`
	Quiz    QuizConfig    `mapstructure:"quiz"`
}

// CatalogConfig says where lessons come from: a JSON file path, an http(s)
// URL or sqlite://<path>.
type CatalogConfig struct {
	Source string `mapstructure:"source"`
}

// AssetsConfig locates images and pronunciation audio.
type AssetsConfig struct {
	BaseDir  string `mapstructure:"base_dir"`
	AudioDir string `mapstructure:"audio_dir"`
	AudioExt string `mapstructure:"audio_ext"`
}

// Base returns BaseDir, or fallback when it is unset.
func (a AssetsConfig) Base(fallback string) string {
	if a.BaseDir != "" {
		return a.BaseDir
	}
	return fallback
}

// AudioConfig holds the external player command. Empty disables audio.
type AudioConfig struct {
	Player string `mapstructure:"player"`
}

type LogConfig struct {
	Path   string `mapstructure:"path"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

type QuizConfig struct {
	Seed int64 `mapstructure:"seed"` // 0 seeds from the clock
}

// Options locate what Load reads. Zero values use the defaults.
type Options struct {
	ConfigFile string // default $HANZICARDS_CONFIG, then ~/.config/hanzicards/config.toml
	EnvFile    string // default .env
	Flags      *pflag.FlagSet
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"source":    "catalog.source",
	"audio-dir": "assets.audio_dir",
	"base-dir":  "assets.base_dir",
	"player":    "audio.player",
	"log-file":  "log.path",
	"log-level": "log.level",
	"seed":      "quiz.seed",
}

// RegisterFlags adds the configuration flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (TOML)")
	flags.String("source", "", "catalog source: file, http(s) URL or sqlite://path")
	flags.String("audio-dir", "", "directory holding pronunciation audio")
	flags.String("base-dir", "", "base directory for image references")
	flags.String("player", "", "audio player command")
	flags.String("log-file", "", "log file path")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Int64("seed", 0, "quiz random seed, 0 for time based")
}

// Load reads defaults, the config file, environment and flags, later layers
// winning. The .env file feeds the environment layer. Env var overrides use
// prefix HANZICARDS_.
func Load(opts Options) (Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("catalog.source", "data.json")
	v.SetDefault("assets.base_dir", "")
	v.SetDefault("assets.audio_dir", "audio")
	v.SetDefault("assets.audio_ext", ".ogg")
	v.SetDefault("audio.player", "ffplay -nodisp -autoexit -loglevel quiet")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "hanzicards", "hanzicards.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("quiz.seed", 0)

	v.SetConfigType("toml")

	cfgPath := opts.ConfigFile
	if cfgPath == "" && opts.Flags != nil {
		cfgPath, _ = opts.Flags.GetString("config")
	}
	if cfgPath == "" {
		cfgPath = os.Getenv("HANZICARDS_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "hanzicards"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HANZICARDS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate reports the first problem with c, wrapped in ErrInvalid.
func (c Config) Validate() error {
	if _, _, err := catalog.ParseSource(c.Catalog.Source); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Assets.AudioExt != "" && !strings.HasPrefix(c.Assets.AudioExt, ".") {
		return fmt.Errorf("%w: assets.audio_ext %q must start with a dot", ErrInvalid, c.Assets.AudioExt)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q must be console or json", ErrInvalid, c.Log.Format)
	}
	return nil
}
