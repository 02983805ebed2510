package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default file names searched when no explicit paths are given.
const (
	defaultConfigName = "openapi.yml"
	defaultEnvName    = ".env"
)

// LoaderConfig holds optional explicit file paths.
type LoaderConfig struct {
	// ConfigFile is an explicit YAML config path. Empty triggers a search.
	ConfigFile string
	// EnvFile is an explicit .env path. Empty triggers a search.
	EnvFile string
	// EnvPrefix namespaces environment variable bindings
	// (e.g. "OPENAPI" binds OPENAPI_BASE_URL to base_url).
	EnvPrefix string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// Load reads configuration into cfg. Sources, in increasing precedence:
// the YAML config file, then environment variables (after loading the
// .env file when one is found). Missing files are not an error; a file
// that exists but does not parse is.
func Load(cfg any, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findFile(defaultConfigName)
	}
	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findFile(defaultEnvName)
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("config: load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	bindEnv(v, lc.EnvPrefix)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	return nil
}

// bindEnv overlays environment variables onto v. Viper's AutomaticEnv does
// not surface env-only keys through Unmarshal, so each variable is set
// explicitly under every plausible key shape: OPENAPI_CREDENTIALS_API_KEY
// binds to credentials.api_key among others.
func bindEnv(v *viper.Viper, prefix string) {
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(key, prefix+"_") {
				continue
			}
			key = strings.TrimPrefix(key, prefix+"_")
		}
		for _, variant := range keyVariants(key) {
			v.Set(variant, value)
		}
	}
}

// keyVariants lowercases an env key and enumerates the ways its
// underscores can split into nesting: BASE_URL yields base_url, base.url
// and nothing else; CREDENTIALS_API_KEY also yields credentials.api_key.
func keyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	if len(parts) == 1 {
		return []string{lower}
	}

	variants := []string{lower, strings.ReplaceAll(lower, "_", ".")}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}
	return variants
}

// findFile searches the working directory and up to two parents for name.
func findFile(name string) string {
	for _, dir := range []string{".", "..", "../.."} {
		path := dir + "/" + name
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
