package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
	BaseURL string `yaml:"base_url"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	TTL        string `yaml:"ttl"`
	CookieName string `yaml:"cookie_name"`
}

type PlatformConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type PayUConfig struct {
	ActionURL   string `yaml:"action_url"`
	MerchantKey string `yaml:"merchant_key"`
	Salt        string `yaml:"salt"`
}

type CasbinConfig struct {
	ModelPath  string `yaml:"model_path"`
	PolicyPath string `yaml:"policy_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	Platform PlatformConfig `yaml:"platform"`
	PayU     PayUConfig     `yaml:"payu"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

type Config struct {
	Port              string
	GinMode           string
	BaseURL           string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	SessionSecret     string
	SessionIssuer     string
	SessionTTL        time.Duration
	SessionCookieName string
	PlatformBaseURL   string
	PlatformTimeout   time.Duration
	PayUActionURL     string
	PayUMerchantKey   string
	PayUSalt          string
	CasbinModelPath   string
	CasbinPolicyPath  string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessTTL, err := time.ParseDuration(configFile.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	platformTimeout, err := time.ParseDuration(configFile.Platform.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid platform timeout: %w", err)
	}

	cookieName := configFile.Session.CookieName
	if cookieName == "" {
		cookieName = "biffle_session"
	}

	return &Config{
		Port:              fmt.Sprintf("%d", configFile.App.Port),
		GinMode:           configFile.App.GinMode,
		BaseURL:           configFile.App.BaseURL,
		RedisAddr:         configFile.Redis.Addr,
		RedisPassword:     configFile.Redis.Password,
		RedisDB:           configFile.Redis.DB,
		SessionSecret:     env("SESSION_SECRET", configFile.Session.Secret),
		SessionIssuer:     configFile.Session.Issuer,
		SessionTTL:        sessTTL,
		SessionCookieName: cookieName,
		PlatformBaseURL:   env("PLATFORM_BASE_URL", configFile.Platform.BaseURL),
		PlatformTimeout:   platformTimeout,
		PayUActionURL:     configFile.PayU.ActionURL,
		PayUMerchantKey:   env("PAYU_MERCHANT_KEY", configFile.PayU.MerchantKey),
		PayUSalt:          env("PAYU_SALT", configFile.PayU.Salt),
		CasbinModelPath:   configFile.Casbin.ModelPath,
		CasbinPolicyPath:  configFile.Casbin.PolicyPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
