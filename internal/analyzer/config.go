package analyzer

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-analysis/internal/indicator"
	"github.com/rxtech-lab/argo-analysis/internal/risk"
	"github.com/rxtech-lab/argo-analysis/internal/signal"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// Config aggregates the engine configurations.
type Config struct {
	Indicator indicator.Config `yaml:"indicator"`
	Risk      risk.Config      `yaml:"risk"`
	Signal    signal.Config    `yaml:"signal"`
}

// DefaultConfig returns the standard parameterization of every engine.
func DefaultConfig() Config {
	return Config{
		Indicator: indicator.DefaultConfig(),
		Risk:      risk.DefaultConfig(),
		Signal:    signal.DefaultConfig(),
	}
}

// LoadConfig reads a YAML config file, overlaying it on the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(errors.ErrCodeAnalyzerConfigError, err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(errors.ErrCodeAnalyzerConfigError, err, "parse config %s", path)
	}

	return config, nil
}
