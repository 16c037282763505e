package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables e.g. KNN_TRAIN.
const EnvPrefix = "KNN"

const (
	TrainKey       = "train"
	TestKey        = "test"
	OutputKey      = "output"
	KKey           = "k"
	ReportDirKey   = "report-dir"
	MetricsFileKey = "metrics-file"
	LogLevelKey    = "log-level"
)

const (
	DefaultOutput   = "predictions_{k}.csv"
	DefaultK        = "1,3,5,7,9"
	DefaultLogLevel = "info"
)

// ErrInvalidConfig is returned for a configuration that can not drive a run.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the configuration of an evaluation run.
type Config struct {
	// Train is the path of the training set.
	Train string `json:"train"`
	// Test is the path of the test set.
	Test string `json:"test"`
	// Output is the path template of the predictions file for each k.
	Output string `json:"output"`
	// K are the neighbourhood sizes to evaluate, in order.
	K []int `json:"k"`
	// ReportDir stores the evaluation summaries as json if set.
	ReportDir string `json:"report-dir"`
	// MetricsFile is the prometheus textfile to write if set.
	MetricsFile string `json:"metrics-file"`
	LogLevel    string `json:"log-level"`
}

// Flags registers the configuration flags on the given set.
func Flags(fs *pflag.FlagSet) {
	fs.String(TrainKey, "", "path of the training set")
	fs.String(TestKey, "", "path of the test set")
	fs.String(OutputKey, DefaultOutput, "path template of the predictions file, '{k}' is replaced by k")
	fs.String(KKey, DefaultK, "comma separated list of k values to evaluate")
	fs.String(ReportDirKey, "", "directory to store the json evaluation summaries")
	fs.String(MetricsFileKey, "", "prometheus textfile to write the evaluation metrics to")
	fs.String(LogLevelKey, DefaultLogLevel, "log level")
}

// Load resolves the configuration from the flags, the environment and the optional config file,
// in that order of precedence.
func Load(file string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(OutputKey, DefaultOutput)
	v.SetDefault(KKey, DefaultK)
	v.SetDefault(LogLevelKey, DefaultLogLevel)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("could not bind flags: %w", err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config file '%s': %w", file, err)
		}
		log.Info().Str("file", file).Msg("loaded config file")
	}

	ks, err := parseK(v.Get(KKey))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Train:       v.GetString(TrainKey),
		Test:        v.GetString(TestKey),
		Output:      v.GetString(OutputKey),
		K:           ks,
		ReportDir:   v.GetString(ReportDirKey),
		MetricsFile: v.GetString(MetricsFileKey),
		LogLevel:    v.GetString(LogLevelKey),
	}
	return cfg.Validate()
}

// Validate checks the configuration and returns it with duplicate k values removed.
func (c Config) Validate() (Config, error) {
	if c.Train == "" {
		return c, fmt.Errorf("missing training set path: %w", ErrInvalidConfig)
	}
	if c.Test == "" {
		return c, fmt.Errorf("missing test set path: %w", ErrInvalidConfig)
	}
	if c.Output == "" {
		return c, fmt.Errorf("missing output path: %w", ErrInvalidConfig)
	}
	if len(c.K) == 0 {
		return c, fmt.Errorf("no k values given: %w", ErrInvalidConfig)
	}
	seen := make(map[int]bool)
	ks := make([]int, 0, len(c.K))
	for _, k := range c.K {
		if k < 1 {
			return c, fmt.Errorf("k must be positive but was %d: %w", k, ErrInvalidConfig)
		}
		if seen[k] {
			log.Warn().Int("k", k).Msg("ignoring duplicate k")
			continue
		}
		seen[k] = true
		ks = append(ks, k)
	}
	c.K = ks
	return c, nil
}

// parseK accepts either a comma separated string or a list of values.
func parseK(value interface{}) ([]int, error) {
	var items []string
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		items = strings.Split(v, ",")
	case []interface{}:
		for _, item := range v {
			items = append(items, fmt.Sprint(item))
		}
	case []int:
		return v, nil
	default:
		items = []string{fmt.Sprint(v)}
	}
	ks := make([]int, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		k, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("could not parse k '%s': %w", item, ErrInvalidConfig)
		}
		ks = append(ks, k)
	}
	return ks, nil
}
