package cli

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/toyz/docspec/internal/errors"
	"github.com/toyz/docspec/internal/generator"
	"github.com/toyz/docspec/internal/registry"
	"github.com/toyz/docspec/internal/server/adapters"
	"github.com/toyz/docspec/internal/utils"
)

// ConfigFileName is the optional configuration file read from the scan root
const ConfigFileName = ".docspec.yaml"

// EnvFileName is the optional dotenv file read from the scan root
const EnvFileName = ".env"

// Environment variables overriding the configuration file
const (
	EnvAddr    = "DOCSPEC_ADDR"
	EnvAdapter = "DOCSPEC_ADAPTER"
	EnvFormat  = "DOCSPEC_FORMAT"
	EnvOutput  = "DOCSPEC_OUTPUT"
)

var supportedLanguages = []string{"javascript", "js", "go", "golang"}

// ServerConfig configures the mock server
type ServerConfig struct {
	Addr    string `yaml:"addr"`
	Adapter string `yaml:"adapter"`
}

// Config holds the settings of one docspec run
type Config struct {
	Root      string       `yaml:"-"`
	Languages []string     `yaml:"languages"`
	Exclude   []string     `yaml:"exclude"`
	Output    string       `yaml:"output"`
	Format    string       `yaml:"format"`
	Server    ServerConfig `yaml:"server"`
	CacheSize int          `yaml:"cacheSize"`

	Verbose bool `yaml:"-"`
	Quiet   bool `yaml:"-"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig(root string) *Config {
	return &Config{
		Root:      root,
		Languages: slices.Clone(registry.DefaultLanguages),
		Format:    "json",
		Server: ServerConfig{
			Addr:    ":8080",
			Adapter: adapters.Echo,
		},
		CacheSize: utils.DefaultCacheSize,
	}
}

// LoadConfig builds the configuration for root. Values from
// <root>/.docspec.yaml are laid over the defaults, then DOCSPEC_* variables
// from <root>/.env and finally from the process environment win.
// A root naming a file reads its configuration from the file's directory.
func LoadConfig(root string) (*Config, error) {
	cfg := DefaultConfig(root)
	dir := configDir(root)

	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapConfigurationError(configPath, "parse", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.WrapConfigurationError(configPath, "read", err)
	}

	env, err := loadEnv(dir)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(env)
	cfg.Root = root

	return cfg, nil
}

// ApplyEnv overrides settings from the DOCSPEC_* entries of env
func (c *Config) ApplyEnv(env map[string]string) {
	if v := env[EnvAddr]; v != "" {
		c.Server.Addr = v
	}
	if v := env[EnvAdapter]; v != "" {
		c.Server.Adapter = v
	}
	if v := env[EnvFormat]; v != "" {
		c.Format = v
	}
	if v := env[EnvOutput]; v != "" {
		c.Output = v
	}
}

// Validate checks the configuration and reports the first invalid setting
func (c *Config) Validate() error {
	formats := generator.NewDefaultRegistry().Formats()

	checks := []error{
		utils.NewValidatorChain(utils.NotEmpty("root")).Validate(c.Root),
		utils.NewValidatorChain(utils.EachOneOf("language", supportedLanguages...)).Validate(c.Languages),
		utils.NewValidatorChain(utils.NotEmpty("format"), utils.IsOneOf("format", formats...)).Validate(c.Format),
		utils.NewValidatorChain(utils.IsOneOf("adapter", adapters.Names()...)).Validate(c.Server.Adapter),
		utils.NewValidatorChain(utils.ListenAddress("address")).Validate(c.Server.Addr),
		utils.NewValidatorChain(utils.NotNegative("cache size")).Validate(c.CacheSize),
	}

	for _, err := range checks {
		if err != nil {
			return errors.Wrap(errors.ConfigurationErrorCode, "invalid configuration", err)
		}
	}
	return nil
}

// Level returns the diagnostic level selected by the verbose and quiet flags
func (c *Config) Level() utils.DiagnosticLevel {
	return utils.LevelFromFlags(c.Verbose, c.Quiet)
}

func loadEnv(dir string) (map[string]string, error) {
	env := make(map[string]string)

	envPath := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(envPath); err == nil {
		values, err := godotenv.Read(envPath)
		if err != nil {
			return nil, errors.WrapConfigurationError(envPath, "parse", err)
		}
		env = values
	}

	for _, key := range []string{EnvAddr, EnvAdapter, EnvFormat, EnvOutput} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

func configDir(root string) string {
	info, err := os.Stat(root)
	if err == nil && !info.IsDir() {
		return filepath.Dir(root)
	}
	return root
}
