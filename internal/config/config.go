package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/nft-holders/internal/adapter"
	"github.com/feral-file/nft-holders/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ExplorerConfig holds the explorer API and transport configuration
type ExplorerConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	MaxRetries  uint64        `mapstructure:"max_retries"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
}

// HoldersConfig holds configuration for the nft-holders program
type HoldersConfig struct {
	BaseConfig      `mapstructure:",squash"`
	Explorer        ExplorerConfig `mapstructure:"explorer"`
	CollectionToken string         `mapstructure:"collection_token"`
	BatchLimit      int            `mapstructure:"batch_limit"`
	TxConcurrency   int            `mapstructure:"tx_concurrency"` // 0 fetches all transactions at once
	OutputFile      string         `mapstructure:"output_file"`
}

// LoadHoldersConfig loads configuration for the nft-holders program
func LoadHoldersConfig(configFile string, envPath string) (*HoldersConfig, error) {
	v := configureViper("nft-holders", configFile, envPath)

	// Set defaults
	v.SetDefault("explorer.base_url", domain.DEFAULT_EXPLORER_BASE_URL)
	v.SetDefault("explorer.http_timeout", adapter.DEFAULT_HTTP_TIMEOUT)
	v.SetDefault("explorer.max_retries", adapter.DEFAULT_MAX_RETRIES)
	v.SetDefault("explorer.retry_delay", adapter.DEFAULT_RETRY_DELAY)
	v.SetDefault("collection_token", domain.DEFAULT_COLLECTION_TOKEN)
	v.SetDefault("batch_limit", 100)
	v.SetDefault("tx_concurrency", 0)
	v.SetDefault("output_file", "nft_holders.csv")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg HoldersConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the required fields
func (c *HoldersConfig) Validate() error {
	if c.Explorer.BaseURL == "" {
		return errors.New("explorer.base_url is required")
	}
	if !domain.IsTokenID(c.CollectionToken) {
		return fmt.Errorf("collection_token must be a %d character hex token id", domain.ID_LENGTH)
	}
	if c.BatchLimit <= 0 {
		return errors.New("batch_limit must be positive")
	}
	if c.TxConcurrency < 0 {
		return errors.New("tx_concurrency must not be negative")
	}
	if c.Explorer.RetryDelay < 0 {
		return errors.New("explorer.retry_delay must not be negative")
	}
	if c.OutputFile == "" {
		return errors.New("output_file is required")
	}

	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in the current directory, the service directory
		// and the config directory
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("NFT_HOLDERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Explorer
		"explorer.base_url",
		"explorer.http_timeout",
		"explorer.max_retries",
		"explorer.retry_delay",
		// Run
		"collection_token",
		"batch_limit",
		"tx_concurrency",
		"output_file",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
