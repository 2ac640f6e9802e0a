package config

import (
	"errors"
	"fmt"
	"strconv"
)

var validSources = map[string]struct{}{"preview": {}, "workflow": {}}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutputs(); err != nil {
		return err
	}
	if err := c.validateQuality(); err != nil {
		return err
	}
	if err := c.validateMapping(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutputs() error {
	if _, ok := validSources[c.Outputs.Preview.Source]; !ok {
		return fmt.Errorf("outputs.preview.source must be \"preview\" or \"workflow\", got %q", c.Outputs.Preview.Source)
	}
	if _, ok := validSources[c.Outputs.Workflow.Source]; !ok {
		return fmt.Errorf("outputs.workflow.source must be \"preview\" or \"workflow\", got %q", c.Outputs.Workflow.Source)
	}
	return nil
}

func (c *Config) validateQuality() error {
	for name, q := range map[string]Quality{
		"quality.preview":  c.Quality.Preview,
		"quality.workflow": c.Quality.Workflow,
	} {
		if q.Scale == "" {
			return fmt.Errorf("%s.scale must be set", name)
		}
		if width, err := strconv.Atoi(q.Scale); err != nil || width <= 0 {
			return fmt.Errorf("%s.scale must be a positive pixel width, got %q", name, q.Scale)
		}
		if q.CRF != "" {
			crf, err := strconv.Atoi(q.CRF)
			if err != nil || crf < 0 || crf > 51 {
				return fmt.Errorf("%s.crf must be between 0 and 51, got %q", name, q.CRF)
			}
		}
	}
	return nil
}

func (c *Config) validateMapping() error {
	if c.Mapping.RemoveLevels < 0 {
		return errors.New("mapping.remove_levels must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
}
