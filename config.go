package normcheck

import "fmt"

// Config holds the command line client's settings.
type Config struct {
	// Alpha is the significance level used to phrase test verdicts.
	Alpha float64
	// File is an optional path to read measurements from instead of stdin.
	File string
	// Verbose emits the full test report in addition to the verdicts.
	Verbose bool
}

// ConfigOption applies one setting to the configuration.
type ConfigOption func(c *Config) error

// NewConfig builds a Config from defaults plus options. All option errors
// are collected so the user sees every problem at once.
func NewConfig(options ...ConfigOption) (*Config, []error) {
	c := &Config{
		Alpha: 0.05,
	}
	var errors []error
	for _, option := range options {
		if err := option(c); err != nil {
			errors = append(errors, err)
		}
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		errors = append(errors, fmt.Errorf("significance level must be in (0, 1), got %f", c.Alpha))
	}
	return c, errors
}

// Alpha sets the significance level for test verdicts.
func Alpha(a float64) ConfigOption {
	return func(c *Config) error {
		c.Alpha = a
		return nil
	}
}

// File reads measurements from path instead of stdin.
func File(path string) ConfigOption {
	return func(c *Config) error {
		c.File = path
		return nil
	}
}

// Verbose emits the full test report.
func Verbose() ConfigOption {
	return func(c *Config) error {
		c.Verbose = true
		return nil
	}
}
