// Package config defines the configuration types and defaults for unmake.
package config

// Config is the top-level configuration.
type Config struct {
	Lint LintConfig `yaml:"lint"`
}

// LintConfig controls which policy codes run and which paths are skipped
// entirely.
type LintConfig struct {
	// Rules maps a policy code to "on", "off", or "error". A code absent
	// from the map runs at its default severity ("on"). "error" is
	// reserved for a future strict mode; unmake currently treats "error"
	// the same as "on".
	Rules map[string]string `yaml:"rules"`

	// Exclude lists doublestar glob patterns; any candidate path matching
	// one of them is skipped before classification ever runs.
	Exclude []string `yaml:"exclude"`
}

// DefaultConfig returns a Config with every policy enabled and nothing
// excluded.
func DefaultConfig() *Config {
	return &Config{
		Lint: LintConfig{
			Rules:   map[string]string{},
			Exclude: nil,
		},
	}
}

// Disabled reports whether code is turned off by this configuration.
func (c *Config) Disabled(code string) bool {
	return c.Lint.Rules[code] == "off"
}
