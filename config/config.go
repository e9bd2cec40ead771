package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyUser            = "user"
	KeyGoalDailyTarget = "goal.daily_target_hours"
	KeyStorageDB       = "storage.db"
)

type Config struct {
	User    string        `mapstructure:"user" validate:"required"`
	Goal    GoalConfig    `mapstructure:"goal"`
	Storage StorageConfig `mapstructure:"storage"`
}

type GoalConfig struct {
	DailyTargetHours float64 `mapstructure:"daily_target_hours" validate:"gt=0,lte=24"`
}

type StorageConfig struct {
	DB string `mapstructure:"db" validate:"required"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# daylog configuration
user: "me"

goal:
  daily_target_hours: 8.5

storage:
  db: "./daylog.db"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.User = strings.TrimSpace(cfg.User)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyUser, "me")
	v.SetDefault(KeyGoalDailyTarget, 8.5)
	v.SetDefault(KeyStorageDB, "./daylog.db")
}
