package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Mode string

const (
	// ModeDelta checks every ready row against the reference within epsilon.
	ModeDelta Mode = "delta"

	// ModeConvergence checks that the error never grows by more than epsilon.
	ModeConvergence Mode = "convergence"
)

// Job is one verification run: an indicator replayed against one column of a
// recorded reference dataset.
type Job struct {
	Name      string  `yaml:"name"`
	Indicator string  `yaml:"indicator"`
	Window    int     `yaml:"window"`
	Input     string  `yaml:"input"`
	Column    string  `yaml:"column"`
	Epsilon   float64 `yaml:"epsilon"`
	Mode      Mode    `yaml:"mode"`
}

func (j *Job) Validate() error {
	if j.Indicator == "" {
		return errors.New("indicator is required")
	}
	if j.Window <= 0 {
		return errors.Errorf("invalid window %d", j.Window)
	}
	if j.Input == "" {
		return errors.New("input is required")
	}
	if j.Column == "" {
		return errors.New("column is required")
	}

	switch j.Mode {
	case ModeDelta, ModeConvergence:
	case "":
		j.Mode = ModeDelta
	default:
		return errors.Errorf("unknown mode %q", j.Mode)
	}

	return nil
}

type Config struct {
	Jobs []Job `yaml:"jobs"`
}

// Load reads a yaml job file and validates every job.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, errors.Wrapf(err, "can not parse config file %s", path)
	}

	if len(config.Jobs) == 0 {
		return nil, errors.Errorf("config file %s has no jobs", path)
	}

	for i := range config.Jobs {
		if err := config.Jobs[i].Validate(); err != nil {
			return nil, errors.Wrapf(err, "job #%d (%s)", i+1, config.Jobs[i].Name)
		}
	}

	return &config, nil
}
