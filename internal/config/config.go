package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

var supportedLocales = []string{"en", "fr", "ar"}

type Config struct {
	Token          string `env:"TOKEN"`
	GuildID        string `env:"GUILD_ID"`
	AuditChannelID string `env:"AUDIT_CHANNEL_ID"`
	DefaultLocale  string `env:"DEFAULT_LOCALE" envDefault:"en"`
	Timezone       string `env:"TIMEZONE" envDefault:"Europe/Paris"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	StoragePrefix string `env:"STORAGE_PREFIX" envDefault:"sitedesk"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"sitedesk.db"`
	DatabaseURL   string `env:"DATABASE_URL"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}

	if err := digitsOnly("GUILD_ID", c.GuildID); err != nil {
		return err
	}
	if err := digitsOnly("AUDIT_CHANNEL_ID", c.AuditChannelID); err != nil {
		return err
	}

	c.DefaultLocale = strings.ToLower(strings.TrimSpace(c.DefaultLocale))
	if !contains(supportedLocales, c.DefaultLocale) {
		return fmt.Errorf("config: DEFAULT_LOCALE doit être l'une de %v (reçu %q)", supportedLocales, c.DefaultLocale)
	}

	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	switch c.StorageDriver {
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("config: SQLITE_PATH est requis avec STORAGE_DRIVER=sqlite")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
			c.DatabaseURL = "postgres://localhost:5432/sitedesk?sslmode=disable"
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
		}
	case DriverRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("config: REDIS_ADDR est requis avec STORAGE_DRIVER=redis")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: STORAGE_DRIVER inconnu %q", c.StorageDriver)
	}

	return nil
}

func digitsOnly(name, value string) error {
	for _, r := range value {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: %s doit être un ID Discord (chiffres uniquement)", name)
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
