package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/common"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Corpus   CorpusConfig   `mapstructure:"corpus"`
	Alerts   AlertsConfig   `mapstructure:"alerts"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
	Sinks    SinksConfig    `mapstructure:"sinks"`
}

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	Host        string `mapstructure:"host"`
	// SecretKey signs admin JWTs.
	SecretKey      string         `mapstructure:"secret_key"`
	MaxLiveClients int            `mapstructure:"max_live_clients"`
	PingPeriod     time.Duration  `mapstructure:"ping_period"`
	PongWait       time.Duration  `mapstructure:"pong_wait"`
	CORS           CORSConfig     `mapstructure:"cors"`
	Security       SecurityConfig `mapstructure:"security"`
}

type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	ExposeHeaders    []string `mapstructure:"expose_headers"`
	MaxAge           string   `mapstructure:"max_age"`
}

type SecurityConfig struct {
	AllowedHosts          []string `mapstructure:"allowed_hosts"`
	STSSeconds            int      `mapstructure:"sts_seconds"`
	STSIncludeSubdomains  bool     `mapstructure:"sts_include_subdomains"`
	FrameDeny             bool     `mapstructure:"frame_deny"`
	ContentTypeNosniff    bool     `mapstructure:"content_type_nosniff"`
	ReferrerPolicy        string   `mapstructure:"referrer_policy"`
	ContentSecurityPolicy string   `mapstructure:"content_security_policy"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
	EnableRuntime bool `mapstructure:"enable_runtime"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Dir     string `mapstructure:"dir"`
	Console bool   `mapstructure:"console"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TLS      bool          `mapstructure:"tls"`
	LocalTTL time.Duration `mapstructure:"local_ttl"`
}

type KafkaConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	Topic   string `mapstructure:"topic"`
}

// Settings returns the exporter settings map.
func (k KafkaConfig) Settings() map[string]interface{} {
	return map[string]interface{}{
		"host":  k.Host,
		"port":  k.Port,
		"topic": k.Topic,
	}
}

type WebhookConfig struct {
	Secret     string   `mapstructure:"secret"`
	EventTypes []string `mapstructure:"event_types"`
}

type CorpusConfig struct {
	File     string        `mapstructure:"file"`
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce"`
}

type AlertsConfig struct {
	Enabled    bool              `mapstructure:"enabled"`
	URL        string            `mapstructure:"url"`
	Format     string            `mapstructure:"format"`
	MinLevel   string            `mapstructure:"min_level"`
	Headers    map[string]string `mapstructure:"headers"`
	Timeout    time.Duration     `mapstructure:"timeout"`
	MaxRetries int               `mapstructure:"max_retries"`
	Backoff    time.Duration     `mapstructure:"backoff"`
	Breaker    BreakerConfig     `mapstructure:"breaker"`
}

type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

type ScoringConfig struct {
	BaseScore  int              `mapstructure:"base_score"`
	Thresholds ThresholdsConfig `mapstructure:"thresholds"`
}

type ThresholdsConfig struct {
	Critical int `mapstructure:"critical"`
	High     int `mapstructure:"high"`
	Medium   int `mapstructure:"medium"`
}

type SinksConfig struct {
	QueueSize int           `mapstructure:"queue_size"`
	Workers   int           `mapstructure:"workers"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		setDefaultValues(&globalConfig)
		return fmt.Errorf("⚠️ Warning: Could not load main config file: %v", err)
	}
	setDefaultValues(&globalConfig)
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setViperDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
		}
		if uerr := v.Unmarshal(out); uerr != nil {
			return fmt.Errorf("failed to unmarshal %s config: %w", fileName, uerr)
		}
		return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.max_live_clients", 100)
	v.SetDefault("server.ping_period", 30*time.Second)
	v.SetDefault("server.pong_wait", 45*time.Second)
	v.SetDefault("server.cors.allow_origins", []string{"*"})
	v.SetDefault("server.cors.allow_methods", []string{"GET", "POST", "OPTIONS"})

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.enable_latency", true)
	v.SetDefault("metrics.enable_runtime", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.dir", "logs")
	v.SetDefault("logging.console", true)

	v.SetDefault("database.port", 5432)
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.local_ttl", 30*time.Second)

	v.SetDefault("webhook.event_types", common.ProcessedEventTypes)

	v.SetDefault("corpus.watch", true)
	v.SetDefault("corpus.debounce", 500*time.Millisecond)

	v.SetDefault("alerts.format", "json")
	v.SetDefault("alerts.min_level", "high")
	v.SetDefault("alerts.timeout", 5*time.Second)
	v.SetDefault("alerts.max_retries", 2)
	v.SetDefault("alerts.backoff", 500*time.Millisecond)
	v.SetDefault("alerts.breaker.max_failures", 5)
	v.SetDefault("alerts.breaker.open_timeout", 30*time.Second)

	v.SetDefault("scoring.base_score", 5)
	v.SetDefault("scoring.thresholds.critical", 90)
	v.SetDefault("scoring.thresholds.high", 60)
	v.SetDefault("scoring.thresholds.medium", 25)

	v.SetDefault("sinks.queue_size", 1000)
	v.SetDefault("sinks.workers", 4)
	v.SetDefault("sinks.timeout", 10*time.Second)
}

// AutomaticEnv only resolves keys viper already knows about; these have no
// default and usually come from the environment alone.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"server.host", "server.secret_key",
		"database.host", "database.user", "database.password", "database.name", "database.sslmode",
		"redis.host", "redis.password", "redis.db", "redis.tls",
		"kafka.enabled", "kafka.host", "kafka.port", "kafka.topic",
		"corpus.file",
		"alerts.enabled", "alerts.url",
	} {
		_ = v.BindEnv(key)
	}
	_ = v.BindEnv("webhook.secret", "WEBHOOK_SECRET", "ELEVENLABS_WEBHOOK_SECRET")
}

func setDefaultValues(cfg *Config) {
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Server.PongWait <= cfg.Server.PingPeriod {
		cfg.Server.PongWait = cfg.Server.PingPeriod * 3 / 2
	}
}

func GetConfig() *Config {
	return &globalConfig
}
