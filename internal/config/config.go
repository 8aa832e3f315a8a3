// Package config is used to load the configuration file
package config

import (
	"fmt"

	"github.com/blacktop/oodle-helper/pkg/oodle"
	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
)

// Config is the configuration struct
type Config struct {
	// MaxSize is the ceiling for compressed and decompressed buffers (e.g. "64MiB")
	MaxSize string `mapstructure:"max-size"`
	Verbose bool   `mapstructure:"verbose"`

	maxBytes int64
}

// MaxBytes returns the verified size ceiling in bytes.
func (c *Config) MaxBytes() int64 {
	return c.maxBytes
}

func (c *Config) verify() error {
	if c.MaxSize == "" {
		c.maxBytes = oodle.MaxSize
		return nil
	}
	n, err := humanize.ParseBytes(c.MaxSize)
	if err != nil {
		return fmt.Errorf("config: invalid max-size %q: %v", c.MaxSize, err)
	}
	if n == 0 {
		return fmt.Errorf("config: max-size must be greater than 0")
	}
	if n > uint64(1<<40) {
		return fmt.Errorf("config: max-size %s is too large", humanize.IBytes(n))
	}
	c.maxBytes = int64(n)
	return nil
}

// LoadConfig loads the configuration from v
func LoadConfig(v *viper.Viper) (*Config, error) {
	var c *Config

	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %v", err)
	}
	if c == nil {
		c = &Config{}
	}

	if err := c.verify(); err != nil {
		return nil, fmt.Errorf("config: failed to verify: %v", err)
	}

	return c, nil
}
