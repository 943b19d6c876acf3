package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	pathutil "github.com/redjax/tuxfetch/internal/utils/path"
)

// EnvPrefix is stripped from environment variables; TUXFETCH_LOG_LEVEL becomes log.level.
const EnvPrefix = "TUXFETCH_"

// DefaultTimeout bounds each external command a probe runs.
const DefaultTimeout = 10 * time.Second

type Config struct {
	Debug   bool          `koanf:"debug"`
	Color   bool          `koanf:"color"`
	Spinner bool          `koanf:"spinner"`
	Timeout time.Duration `koanf:"timeout"`
	Log     LogConfig     `koanf:"log"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// LogLevel returns the effective log level; --debug wins over log.level.
func (c Config) LogLevel() string {
	if c.Debug {
		return "debug"
	}
	if c.Log.Level == "" {
		return "warn"
	}
	return c.Log.Level
}

// Load merges, in increasing precedence: the config file (if any), TUXFETCH_*
// environment variables, and command-line flags. Unset flags contribute their
// defaults only when no other source set the key.
func Load(flagSet *pflag.FlagSet, configFile string) (*Config, error) {
	k := koanf.New(".")

	if configFile != "" {
		p, err := pathutil.ExpandPath(configFile)
		if err != nil {
			return nil, fmt.Errorf("config path %q: %w", configFile, err)
		}
		parser, err := parserForFile(p)
		if err != nil {
			return nil, fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := k.Load(file.Provider(p), parser); err != nil {
			return nil, fmt.Errorf("error loading config file %s: %w", p, err)
		}
	}

	// This will convert TUXFETCH_LOG_LEVEL to log.level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	if flagSet != nil {
		// --log-level maps onto log.level
		fp := posflag.ProviderWithFlag(flagSet, ".", k, func(f *pflag.Flag) (string, interface{}) {
			return strings.ReplaceAll(f.Name, "-", "."), posflag.FlagVal(flagSet, f)
		})
		if err := k.Load(fp, nil); err != nil {
			return nil, fmt.Errorf("error loading flags: %w", err)
		}
	}

	cfg := &Config{Color: true}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return cfg, nil
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
