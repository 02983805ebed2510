// Package config loads client configuration from YAML files and the
// environment. A .env file, when present, is folded into the process
// environment before binding, so secrets can stay out of the YAML.
package config
