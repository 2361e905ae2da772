// Package config provides the configuration of phoneosint: defaults,
// validation, the optional YAML configuration file and the credentials
// read from the environment or a .env file.
//
// A Config is built once by the CLI and passed explicitly to the components
// that need it. Nothing in this package holds global state.
package config
