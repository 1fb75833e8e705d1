package config

import (
	"fmt"
	"strings"

	"github.com/prophetss/rsa/internal/domain/cryptoalg"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RSA_LOGGER_LOG_LEVEL
const EnvPrefix = "RSA"

// Config is the top level configuration of the rsa tooling
type Config struct {
	Logger LoggerSettings `mapstructure:"logger"`
	RSA    RSASettings    `mapstructure:"rsa"`
}

// Validate validates every section
func (c *Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.RSA.Validate()
}

// InitializeConfig reads the configuration at path. An empty path yields the
// defaults with environment overrides applied.
func InitializeConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)
	v.SetDefault("rsa.key_size", cryptoalg.DefaultKeySize)
	v.SetDefault("rsa.entropy", EntropyCrypto)
	v.SetDefault("rsa.seed", 0)
}
