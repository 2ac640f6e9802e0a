package main

import (
	"strings"
	"sync"

	"prevgen/internal/config"
	"prevgen/internal/platform"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	envOnce sync.Once
	env     platform.Env
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) environment() platform.Env {
	c.envOnce.Do(func() {
		c.env = platform.Detect()
	})
	return c.env
}
