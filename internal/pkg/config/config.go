package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Backend names accepted by the *_BACKEND settings.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"

	ProviderMock     = "mock"
	ProviderAccounts = "accounts"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Device   DeviceConfig
	Session  SessionConfig
	Identity IdentityConfig
	Registry RegistryConfig

	EnforceSalonRole bool `env:"ENFORCE_SALON_ROLE, default=false"`
	NotifyWorkers    int  `env:"NOTIFY_WORKERS,     default=2"`

	Mongo MongoConfig
	Redis RedisConfig
}

// DeviceConfig signs the cookie that identifies a browser.
// SecureCookie is forced on in production.
type DeviceConfig struct {
	Secret       string        `env:"DEVICE_SECRET,        default=dev-device-secret"`
	TTL          time.Duration `env:"DEVICE_TTL,           default=720h"`
	SecureCookie bool          `env:"DEVICE_SECURE_COOKIE, default=false"`
}

type SessionConfig struct {
	Key        string        `env:"SESSION_KEY,         default=salon_user"`
	Backend    string        `env:"SESSION_BACKEND,     default=memory"`
	TTL        time.Duration `env:"SESSION_TTL,         default=0s"`
	CacheTTL   time.Duration `env:"SESSION_CACHE_TTL,   default=5s"`
	MaxDevices int           `env:"SESSION_MAX_DEVICES, default=10000"`
	DeviceIdle time.Duration `env:"SESSION_DEVICE_IDLE, default=30m"`
}

type IdentityConfig struct {
	Provider    string        `env:"IDENTITY_PROVIDER, default=mock"`
	MockLatency time.Duration `env:"MOCK_LATENCY,      default=1s"`
}

type RegistryConfig struct {
	Backend string `env:"REGISTRY_BACKEND, default=memory"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=salon_booking"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads and validates configuration from l.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown backend names.
func (c *Config) Validate() error {
	switch c.Session.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("config: SESSION_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.Session.Backend)
	}
	switch c.Registry.Backend {
	case BackendMemory, BackendMongo:
	default:
		return fmt.Errorf("config: REGISTRY_BACKEND must be %q or %q, got %q", BackendMemory, BackendMongo, c.Registry.Backend)
	}
	switch c.Identity.Provider {
	case ProviderMock, ProviderAccounts:
	default:
		return fmt.Errorf("config: IDENTITY_PROVIDER must be %q or %q, got %q", ProviderMock, ProviderAccounts, c.Identity.Provider)
	}
	if c.IsProduction() && c.Device.Secret == "dev-device-secret" {
		return fmt.Errorf("config: DEVICE_SECRET must be set in production")
	}
	return nil
}

// NeedsMongo reports whether any enabled component uses MongoDB.
func (c *Config) NeedsMongo() bool {
	return c.Registry.Backend == BackendMongo || c.Identity.Provider == ProviderAccounts
}

// NeedsRedis reports whether any enabled component uses Redis.
func (c *Config) NeedsRedis() bool {
	return c.Session.Backend == BackendRedis
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// SecureDeviceCookie reports whether the device cookie carries the Secure flag.
func (c *Config) SecureDeviceCookie() bool {
	return c.Device.SecureCookie || c.IsProduction()
}
