package formvalidation

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into a Config.
	ErrParsingConfig = errors.New("formvalidation: failed to parse config from environment")

	// ErrInvalidConfig is returned when a parsed Config holds unusable values.
	ErrInvalidConfig = errors.New("formvalidation: invalid config")

	// ErrLoadingEnvFile is returned when a given .env file cannot be read.
	ErrLoadingEnvFile = errors.New("formvalidation: failed to load env file")
)

// Config holds application-wide defaults for fields and forms.
//
//	FORMVALIDATION_DEBOUNCE=250ms
//	FORMVALIDATION_WARNINGS_BLOCK=true
//	FORMVALIDATION_SEQUENTIAL=false
//	FORMVALIDATION_MAX_CONCURRENCY=4
type Config struct {
	Debounce       time.Duration `env:"DEBOUNCE" envDefault:"0s"`
	WarningsBlock  bool          `env:"WARNINGS_BLOCK" envDefault:"false"`
	Sequential     bool          `env:"SEQUENTIAL" envDefault:"false"`
	MaxConcurrency int           `env:"MAX_CONCURRENCY" envDefault:"0"`
}

// LoadConfig reads a Config from environment variables named prefix plus the
// tag name. An empty prefix defaults to "FORMVALIDATION_". envFiles are
// loaded into the environment first; variables already set win.
func LoadConfig(prefix string, envFiles ...string) (Config, error) {
	if prefix == "" {
		prefix = "FORMVALIDATION_"
	}
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	}
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: prefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if cfg.Debounce < 0 {
		return Config{}, fmt.Errorf("%w: negative debounce %s", ErrInvalidConfig, cfg.Debounce)
	}
	if cfg.MaxConcurrency < 0 {
		return Config{}, fmt.Errorf("%w: negative max concurrency %d", ErrInvalidConfig, cfg.MaxConcurrency)
	}
	return cfg, nil
}

// Options converts c into field options. Options given after these override
// them.
func (c Config) Options() []Option {
	policy := PolicyConcurrent
	if c.Sequential {
		policy = PolicySequential
	}
	return []Option{
		WithDebounce(c.Debounce),
		WithChainPolicy(policy),
		WithConcurrencyLimit(c.MaxConcurrency),
	}
}

// FormOptions converts c into form options.
func (c Config) FormOptions() []FormOption {
	gate := ErrorsBlock
	if c.WarningsBlock {
		gate = WarningsBlock
	}
	return []FormOption{WithGatePolicy(gate)}
}
