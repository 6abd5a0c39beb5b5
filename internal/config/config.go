package config

import (
	"fmt"
	"reflect"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	EnvVars  EnvVars       `json:"env"`
	Keywords *KeywordRules `json:"-"`
}

// EnvVars holds environment variables required by the application.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
type EnvVars struct {
	Port                 string `env:"PORT" envDefault:"8080"`
	RakutenApplicationID string `env:"RAKUTEN_APPLICATION_ID"`
	RakutenAffiliateID   string `env:"RAKUTEN_AFFILIATE_ID"`
	ActionsBearerToken   string `env:"ACTIONS_BEARER_TOKEN"`
	RakutenSearchURL     string `env:"RAKUTEN_SEARCH_URL" envDefault:"https://app.rakuten.co.jp/services/api/IchibaItem/Search/20220601"`
	KeywordRulesPath     string `env:"KEYWORD_RULES_PATH" envDefault:"configs/keywords.yaml" optional:"true"`
}

// LoadConfig parses environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	return &config, nil
}

// CheckConfigEnvFields validates that all required EnvVars fields are set.
func (c *Config) CheckConfigEnvFields() error {
	return checkFieldsRecursive(reflect.ValueOf(c.EnvVars))
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if isZeroValue(field) {
			return fmt.Errorf("$%s must be set", fieldType.Name)
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}

func isZeroValue(v reflect.Value) bool {
	return v.Interface() == reflect.Zero(v.Type()).Interface()
}
