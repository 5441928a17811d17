package config

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/npat-efault/bst/bintree"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

const configFilename = "bstdemo.toml"

// CreateCommand builds the bstdemo command. When run, it merges the
// built-in defaults, the TOML config file (if any) and the command
// line flags, in increasing order of precedence, validates the
// result, and hands it to runFunc.
func CreateCommand(
	runFunc func(ctx context.Context, cfg *Config) error,
	version string,
) *cli.Command {
	cmd := &cli.Command{
		Name:        "bstdemo",
		Usage:       "exercise an unbalanced binary search tree",
		Description: "Insert, search and delete integer keys and print the tree's traversals",
		Version:     version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "clean",
				Usage:    "if set, all configuration files will be ignored",
				OnlyOnce: true,
			},

			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `custom location of the config file to load. Options given
				through the command line flags override the options set in this file`,
				OnlyOnce: true,
				Sources:  cli.EnvVars("BSTDEMO_CONFIG"),
			},

			&cli.IntSliceFlag{
				Name:    "insert",
				Aliases: []string{"i"},
				Usage:   "keys to insert, in order (default: 50,30,20,40,70,60,80)",
			},

			&cli.IntSliceFlag{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "keys to search for after inserting (default: 60)",
			},

			&cli.IntSliceFlag{
				Name:    "delete",
				Aliases: []string{"d"},
				Usage:   "keys to delete after searching (default: 70)",
			},

			&cli.StringSliceFlag{
				Name:    "order",
				Aliases: []string{"o"},
				Usage: `traversal orders to print: pre, in, post or level
				(default: pre,in,post)`,
				Validator: validateOrders,
			},

			&cli.StringFlag{
				Name:      "log-level",
				Usage:     "set log level (default: 'info')",
				OnlyOnce:  true,
				Validator: validateLogLevel,
			},

			&cli.BoolFlag{
				Name:     "no-verify",
				Usage:    "skip checking the tree's invariants after each phase",
				OnlyOnce: true,
			},

			&cli.BoolFlag{
				Name:     "silent",
				Usage:    "do not show the banner",
				OnlyOnce: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runFunc(ctx, cfg)
		},
	}

	return cmd
}

func loadConfig(cmd *cli.Command) (*Config, error) {
	cfg := Default()

	if !cmd.Bool("clean") {
		lookupPaths := []string{
			path.Join(string(os.PathSeparator), "etc", configFilename),
		}
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			lookupPaths = append(lookupPaths, path.Join(xdg, "bstdemo", configFilename))
		}
		if home := os.Getenv("HOME"); home != "" {
			lookupPaths = append(lookupPaths,
				path.Join(home, ".config", "bstdemo", configFilename))
		}

		p, err := searchTomlFile(cmd.String("config"), lookupPaths)
		if err != nil {
			return nil, err
		}
		if p != "" {
			tomlCfg, err := fromTomlFile(p)
			if err != nil {
				return nil, fmt.Errorf("error parsing toml config %s: %w", p, err)
			}
			cfg = cfg.Merge(tomlCfg)
		}
	}

	argsCfg, err := parseConfigFromArgs(cmd)
	if err != nil {
		return nil, fmt.Errorf("error parsing config from args: %w", err)
	}
	cfg = cfg.Merge(argsCfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// parseConfigFromArgs returns a Config holding only the options that
// were explicitly given on the command line.
func parseConfigFromArgs(cmd *cli.Command) (*Config, error) {
	cfg := &Config{}

	if cmd.IsSet("log-level") {
		lvl, err := zerolog.ParseLevel(cmd.String("log-level"))
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = &lvl
	}
	if cmd.IsSet("silent") {
		v := cmd.Bool("silent")
		cfg.Silent = &v
	}
	if cmd.IsSet("no-verify") {
		v := !cmd.Bool("no-verify")
		cfg.Verify = &v
	}
	if cmd.IsSet("insert") {
		cfg.Insert = nonNil(cmd.IntSlice("insert"))
	}
	if cmd.IsSet("search") {
		cfg.Search = nonNil(cmd.IntSlice("search"))
	}
	if cmd.IsSet("delete") {
		cfg.Delete = nonNil(cmd.IntSlice("delete"))
	}
	if cmd.IsSet("order") {
		for _, s := range cmd.StringSlice("order") {
			o, err := bintree.ParseOrder(s)
			if err != nil {
				return nil, err
			}
			cfg.Orders = append(cfg.Orders, o)
		}
	}

	return cfg, nil
}

// nonNil keeps an explicitly given (possibly empty) list distinct from
// an unset one.
func nonNil(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}
