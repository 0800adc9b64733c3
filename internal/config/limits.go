package config

import "fmt"

// MaxVariablesCeiling is the largest accepted max_variables. 2^24 rows is already
// far beyond anything that can be displayed.
const MaxVariablesCeiling = 24

// LimitsConfig bounds the exponential cost of a computation.
type LimitsConfig struct {
	MaxVariables  int `yaml:"max_variables"`  // 2^n rows are produced for n variables
	MaxStatements int `yaml:"max_statements"` // 0 = unlimited
}

// ValidateLimits checks that limits are within acceptable ranges.
func (c *Config) ValidateLimits() error {
	if c.Limits.MaxVariables < 0 || c.Limits.MaxVariables > MaxVariablesCeiling {
		return fmt.Errorf("max_variables must be between 0 and %d", MaxVariablesCeiling)
	}
	if c.Limits.MaxStatements < 0 {
		return fmt.Errorf("max_statements must be >= 0")
	}
	return nil
}
