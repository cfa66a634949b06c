package fuzzil

import "github.com/fuzzil-dev/fuzzil/internal/environment"

// Config controls Generator construction, with the default
// implementation as NewConfig.
type Config struct {
	env *environment.Env
}

// engineLessConfig helps avoid copy/pasting the wrong defaults.
var engineLessConfig = &Config{env: environment.Default()}

// NewConfig returns a Config configured against the reference
// environment catalog (internal/environment.Default()).
func NewConfig() *Config {
	return engineLessConfig.clone()
}

func (c *Config) clone() *Config {
	return &Config{env: c.env}
}

// WithEnvironment replaces the declarative target-environment catalog
// (builtins, groups, well-known Symbol names, Wasm constants) consulted
// by every generator. The zero value is never valid; pass a catalog
// built the same way internal/environment.Default() is.
func (c *Config) WithEnvironment(env *environment.Env) *Config {
	ret := c.clone()
	ret.env = env
	return ret
}
