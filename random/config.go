package random

import (
	"math/rand/v2"

	"github.com/NethermindEth/idioms/utils"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid stream config")

// Log represents the stream logger configuration.
type Log struct {
	Level  utils.LogLevel `yaml:"level" mapstructure:"level"`
	Colour bool           `yaml:"colour" mapstructure:"colour"`
}

// Seed holds the two PCG seed words. Streams built from the same seed repeat.
type Seed struct {
	Hi uint64 `yaml:"hi" mapstructure:"hi"`
	Lo uint64 `yaml:"lo" mapstructure:"lo"`
}

// Config is the configuration shared by the streams of a caller:
//
//	log:
//	  level: debug
//	seed:
//	  hi: 1
//	  lo: 2
type Config struct {
	Log  Log   `yaml:"log" mapstructure:"log"`
	Seed *Seed `yaml:"seed" mapstructure:"seed"`
}

func DefaultConfig() Config {
	return Config{Log: Log{Level: utils.INFO}}
}

// Flags registers the config fields on fs, for callers exposing them on a command line.
func (c *Config) Flags(fs *pflag.FlagSet) {
	fs.Var(&c.Log.Level, "log-level", "Stream log level: debug, info, warn or error.")
	fs.BoolVar(&c.Log.Colour, "log-colour", c.Log.Colour, "Colour stream log levels.")
}

// ParseConfig decodes a YAML config on top of DefaultConfig.
func ParseConfig(doc []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "parse: %v", err)
	}
	return cfg, nil
}

// DecodeConfig decodes a config from a generic map on top of DefaultConfig.
func DecodeConfig(raw map[string]any) (Config, error) {
	cfg := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.TextUnmarshallerHookFunc(),
		ErrorUnused: true,
		Result:      &cfg,
	})
	if err != nil {
		return Config{}, err
	}

	if err = decoder.Decode(raw); err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "decode: %v", err)
	}
	return cfg, nil
}

// Options turns c into stream options: a zap logger at the configured level and,
// when a seed is set, a seeded source.
func Options[T comparable](c Config) ([]Option[T], error) {
	log, err := utils.NewZapLogger(c.Log.Level, c.Log.Colour)
	if err != nil {
		return nil, errors.WithMessage(err, "create stream logger")
	}

	opts := []Option[T]{WithLogger[T](log)}
	if c.Seed != nil {
		opts = append(opts, WithSource[T](rand.New(rand.NewPCG(c.Seed.Hi, c.Seed.Lo))))
	}
	return opts, nil
}
