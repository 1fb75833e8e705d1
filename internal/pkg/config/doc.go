// Package config loads and validates the settings of the rsa tooling.
//
// Settings come from a YAML file read through viper, may be overridden with
// RSA_-prefixed environment variables, and are validated with struct tags
// before use.
package config
