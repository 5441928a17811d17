package config

import (
	"context"
	"testing"

	"github.com/npat-efault/bst/bintree"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand runs the bstdemo command with args and returns the
// configuration handed to the run function.
func runCommand(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	t.Setenv("BSTDEMO_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var got *Config
	cmd := CreateCommand(func(_ context.Context, cfg *Config) error {
		got = cfg
		return nil
	}, "test")
	err := cmd.Run(context.Background(), append([]string{"bstdemo"}, args...))
	return got, err
}

func TestCreateCommand_Flags(t *testing.T) {
	tcs := []struct {
		name   string
		args   []string
		assert func(t *testing.T, cfg *Config)
	}{
		{
			name: "default values (no flags)",
			args: []string{"--clean"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "all flags set with custom values",
			args: []string{
				"--clean",
				"--log-level", "debug",
				"--silent",
				"--no-verify",
				"--insert", "8,4,12",
				"--insert", "2",
				"--search", "4",
				"--delete", "8",
				"--order", "level",
				"--order", "post",
			},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, zerolog.DebugLevel, *cfg.LogLevel)
				assert.True(t, *cfg.Silent)
				assert.False(t, *cfg.Verify)
				assert.Equal(t, []int{8, 4, 12, 2}, cfg.Insert)
				assert.Equal(t, []int{4}, cfg.Search)
				assert.Equal(t, []int{8}, cfg.Delete)
				assert.Equal(t,
					[]bintree.Order{bintree.LevelOrder, bintree.PostOrder},
					cfg.Orders)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := runCommand(t, tc.args...)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tc.assert(t, cfg)
		})
	}
}

func TestCreateCommand_ConfigFile(t *testing.T) {
	path := writeFile(t, "custom.toml", `
log-level = "warn"
insert = [3, 1, 2]
search = [9]
`)

	cfg, err := runCommand(t, "--config", path, "--search", "1")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, *cfg.LogLevel)
	assert.Equal(t, []int{3, 1, 2}, cfg.Insert)
	// flags override the file
	assert.Equal(t, []int{1}, cfg.Search)
	// unset in both, default kept
	assert.Equal(t, []int{70}, cfg.Delete)
}

func TestCreateCommand_Errors(t *testing.T) {
	tcs := map[string][]string{
		"bad log level":  {"--clean", "--log-level", "loud"},
		"bad order":      {"--clean", "--order", "sideways"},
		"bad key":        {"--clean", "--insert", "x"},
		"missing config": {"--config", "nonexistent.toml"},
	}
	for name, args := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg, err := runCommand(t, args...)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
