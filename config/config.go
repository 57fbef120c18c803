package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath    = "."
	defaultBaseURL = "http://localhost:3000"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey holds the HMAC secret for the verified-email cookie.
	// Required when Env.Env is "production"; a published development
	// fallback is used otherwise.
	SecretKey struct {
		Cookie string `json:"cookie" yaml:"cookie"`
	} `json:"secretKey" yaml:"secretKey"`

	// MagicLink configures token issuance and the verified-email cookie.
	MagicLink MagicLinkConfig `json:"magicLink" yaml:"magicLink"`

	// RateLimit configures the fixed-window throttles per action category.
	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Resend configuration for transactional email. Optional: when absent
	// the mail sender degrades to logging verification URLs.
	Resend *ResendConfig `json:"resend" yaml:"resend"`

	// OpenAI configuration for the sales chat and the visualizer.
	OpenAI *OpenAIConfig `json:"openai" yaml:"openai"`

	// Admin configuration for the dashboard API.
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Chat configures the sales-chat relay.
	Chat ChatConfig `json:"chat" yaml:"chat"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MagicLinkConfig defines magic-link issuance parameters.
type MagicLinkConfig struct {
	// BaseURL is the public origin used to build verification links and
	// post-verification redirects. Trailing slash is trimmed.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// TokenTTL is the magic-link token lifetime.
	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`

	// CookieTTL is the verified-email cookie lifetime.
	CookieTTL time.Duration `json:"cookieTtl" yaml:"cookieTtl"`
}

// RateLimitRule is one fixed-window throttle: Limit requests per Window.
type RateLimitRule struct {
	Limit  int           `json:"limit" yaml:"limit"`
	Window time.Duration `json:"window" yaml:"window"`
}

// RateLimitConfig holds the per-category throttle rules.
type RateLimitConfig struct {
	MagicLink    RateLimitRule `json:"magicLink" yaml:"magicLink"`
	ListSessions RateLimitRule `json:"listSessions" yaml:"listSessions"`
}

// ResendConfig defines the Resend transactional email settings.
type ResendConfig struct {
	APIKey               string   `json:"apiKey" yaml:"apiKey"`
	FromEmail            string   `json:"fromEmail" yaml:"fromEmail"`
	RecipientEmail       string   `json:"recipientEmail" yaml:"recipientEmail"`
	AdditionalRecipients []string `json:"additionalRecipients" yaml:"additionalRecipients"`
}

// OpenAIConfig defines the hosted model settings.
type OpenAIConfig struct {
	APIKey     string `json:"apiKey" yaml:"apiKey"`
	ChatModel  string `json:"chatModel" yaml:"chatModel"`
	ImageModel string `json:"imageModel" yaml:"imageModel"`
	MaxTokens  int    `json:"maxTokens" yaml:"maxTokens"`
}

// AdminConfig defines dashboard authentication settings.
type AdminConfig struct {
	// Secret is exchanged at /api/admin/login for a short-lived JWT.
	Secret string `json:"secret" yaml:"secret"`

	// JWTSecret signs admin access tokens.
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`

	// TokenTTL is the admin access token lifetime.
	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// ChatConfig bounds the sales-chat relay.
type ChatConfig struct {
	MaxMessageLength   int `json:"maxMessageLength" yaml:"maxMessageLength"`
	MaxHistoryMessages int `json:"maxHistoryMessages" yaml:"maxHistoryMessages"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: MAGICLINK_BASEURL -> magicLink.baseUrl (not magiclink.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.MagicLink.BaseURL) == "" {
		cfg.MagicLink.BaseURL = defaultBaseURL
	}
	cfg.MagicLink.BaseURL = strings.TrimRight(cfg.MagicLink.BaseURL, "/")
	if cfg.MagicLink.TokenTTL <= 0 {
		cfg.MagicLink.TokenTTL = 15 * time.Minute
	}
	if cfg.MagicLink.CookieTTL <= 0 {
		cfg.MagicLink.CookieTTL = 24 * time.Hour
	}

	if cfg.RateLimit.MagicLink.Limit <= 0 {
		cfg.RateLimit.MagicLink = RateLimitRule{Limit: 5, Window: 15 * time.Minute}
	}
	if cfg.RateLimit.ListSessions.Limit <= 0 {
		cfg.RateLimit.ListSessions = RateLimitRule{Limit: 10, Window: 15 * time.Minute}
	}

	if cfg.Chat.MaxMessageLength <= 0 {
		cfg.Chat.MaxMessageLength = 2000
	}
	if cfg.Chat.MaxHistoryMessages <= 0 {
		cfg.Chat.MaxHistoryMessages = 20
	}

	if cfg.Admin != nil && cfg.Admin.TokenTTL <= 0 {
		cfg.Admin.TokenTTL = time.Hour
	}
}

// IsProduction reports whether the service runs in a production-like environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, "production")
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
