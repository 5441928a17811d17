package config

import (
	"slices"

	"github.com/npat-efault/bst/bintree"
	"github.com/rs/zerolog"
)

// Config holds the settings of a demo run: the tree operations to
// perform and how to report them. A nil (or, for slices, nil) field
// is unset and is filled from a lower-precedence source by Merge.
type Config struct {
	LogLevel *zerolog.Level  `toml:"log-level"`
	Silent   *bool           `toml:"silent"`
	Verify   *bool           `toml:"verify"`
	Insert   []int           `toml:"insert"`
	Search   []int           `toml:"search"`
	Delete   []int           `toml:"delete"`
	Orders   []bintree.Order `toml:"order"`
}

// Default returns the built-in configuration: the classic seven-key
// tree, traversed in pre-, in- and post-order, searched for 60 and
// then shrunk by deleting 70.
func Default() *Config {
	lvl := zerolog.InfoLevel
	silent, verify := false, true
	return &Config{
		LogLevel: &lvl,
		Silent:   &silent,
		Verify:   &verify,
		Insert:   []int{50, 30, 20, 40, 70, 60, 80},
		Search:   []int{60},
		Delete:   []int{70},
		Orders:   []bintree.Order{bintree.PreOrder, bintree.InOrder, bintree.PostOrder},
	}
}

// Merge returns a copy of c with every field that is set in override
// replaced by override's value. Neither c nor override is modified.
func (c *Config) Merge(override *Config) *Config {
	out := c.Clone()
	if override == nil {
		return out
	}
	o := override.Clone()
	if o.LogLevel != nil {
		out.LogLevel = o.LogLevel
	}
	if o.Silent != nil {
		out.Silent = o.Silent
	}
	if o.Verify != nil {
		out.Verify = o.Verify
	}
	if o.Insert != nil {
		out.Insert = o.Insert
	}
	if o.Search != nil {
		out.Search = o.Search
	}
	if o.Delete != nil {
		out.Delete = o.Delete
	}
	if o.Orders != nil {
		out.Orders = o.Orders
	}
	return out
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return &Config{}
	}
	return &Config{
		LogLevel: clonePtr(c.LogLevel),
		Silent:   clonePtr(c.Silent),
		Verify:   clonePtr(c.Verify),
		Insert:   slices.Clone(c.Insert),
		Search:   slices.Clone(c.Search),
		Delete:   slices.Clone(c.Delete),
		Orders:   slices.Clone(c.Orders),
	}
}

func clonePtr[T any](x *T) *T {
	if x == nil {
		return nil
	}
	v := *x
	return &v
}
