package config

import (
	"errors"
	"fmt"

	"github.com/npat-efault/bst/bintree"
	"github.com/rs/zerolog"
)

var errMissing = errors.New("missing value")

func validateLogLevel(v string) error {
	if _, err := zerolog.ParseLevel(v); err != nil {
		return fmt.Errorf("invalid level string %s", v)
	}
	return nil
}

func validateOrders(vs []string) error {
	for _, v := range vs {
		if _, err := bintree.ParseOrder(v); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that a fully merged configuration is complete and
// sensible.
func (c *Config) Validate() error {
	if c.LogLevel == nil {
		return fmt.Errorf("log-level: %w", errMissing)
	}
	if c.Silent == nil {
		return fmt.Errorf("silent: %w", errMissing)
	}
	if c.Verify == nil {
		return fmt.Errorf("verify: %w", errMissing)
	}
	if len(c.Orders) == 0 {
		return fmt.Errorf("order: %w", errMissing)
	}
	for _, o := range c.Orders {
		if _, err := o.MarshalText(); err != nil {
			return fmt.Errorf("order: %w", err)
		}
	}
	return nil
}
