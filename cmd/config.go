package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mydirectory/adapters/myredis"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envConfigPath       = "CONFIG_PATH"
	envTCPPort          = "DIRECTORY_PORT_TCP"
	envUDPPort          = "DIRECTORY_PORT_UDP"
	envHTTPPort         = "SERVICE_PORT_HTTP"
	envDefaultTTLSec    = "DEFAULT_TTL_SEC"
	envReadTimeoutMs    = "READ_TIMEOUT_MS"
	envMaxLineBytes     = "MAX_LINE_BYTES"
	envMaxConnections   = "MAX_CONNECTIONS"
	envRedisAddr        = "REDIS_ADDR"
	envAuditRedisKey    = "AUDIT_REDIS_KEY"
	envAuditRedisMaxLen = "AUDIT_REDIS_MAX_LEN"
	envAuditBuffer      = "AUDIT_BUFFER"
)

// Config holds the directory configuration loaded by LoadConfig.
// HTTPPort 0 disables the admin API; an empty Redis.Addr disables the Redis audit sink.
type Config struct {
	TCPPort          int
	UDPPort          int
	HTTPPort         int
	DefaultTTL       time.Duration
	ReadTimeout      time.Duration
	MaxLineBytes     int
	MaxConnections   int
	Redis            myredis.RedisConfig
	AuditRedisKey    string
	AuditRedisMaxLen int64
	AuditBuffer      int
}

// yamlConfig mirrors Config in the optional YAML file. Absent keys keep the built-in defaults.
type yamlConfig struct {
	Ports struct {
		TCP  *int `yaml:"tcp"`
		UDP  *int `yaml:"udp"`
		HTTP *int `yaml:"http"`
	} `yaml:"ports"`
	DefaultTTLSec  *int `yaml:"default_ttl_sec"`
	ReadTimeoutMs  *int `yaml:"read_timeout_ms"`
	MaxLineBytes   *int `yaml:"max_line_bytes"`
	MaxConnections *int `yaml:"max_connections"`
	Audit          struct {
		RedisAddr   *string `yaml:"redis_addr"`
		RedisKey    *string `yaml:"redis_key"`
		RedisMaxLen *int    `yaml:"redis_max_len"`
		Buffer      *int    `yaml:"buffer"`
	} `yaml:"audit"`
}

func defaultConfig() Config {
	return Config{
		TCPPort:          5044,
		UDPPort:          4555,
		HTTPPort:         8080,
		DefaultTTL:       3600 * time.Second,
		ReadTimeout:      5 * time.Second,
		MaxLineBytes:     2048,
		MaxConnections:   64,
		AuditRedisKey:    "directory:audit",
		AuditRedisMaxLen: 10000,
		AuditBuffer:      1024,
	}
}

// loadYAMLConfig reads the YAML file at path.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the directory config: built-in defaults, then the YAML file at
// CONFIG_PATH when set, then environment variables. Every value is validated after
// merging; errors name the offending variable.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	if configPath := strings.TrimSpace(os.Getenv(envConfigPath)); configPath != "" {
		if !filepath.IsAbs(configPath) {
			abs, err := filepath.Abs(configPath)
			if err != nil {
				return nil, err
			}
			configPath = abs
		}
		raw, err := loadYAMLConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		applyYAML(&cfg, raw)
	}

	var err error
	if cfg.TCPPort, err = envInt(envTCPPort, cfg.TCPPort); err != nil {
		return nil, err
	}
	if cfg.UDPPort, err = envInt(envUDPPort, cfg.UDPPort); err != nil {
		return nil, err
	}
	if cfg.HTTPPort, err = envInt(envHTTPPort, cfg.HTTPPort); err != nil {
		return nil, err
	}
	ttlSec, err := envInt(envDefaultTTLSec, int(cfg.DefaultTTL/time.Second))
	if err != nil {
		return nil, err
	}
	readTimeoutMs, err := envInt(envReadTimeoutMs, int(cfg.ReadTimeout/time.Millisecond))
	if err != nil {
		return nil, err
	}
	if cfg.MaxLineBytes, err = envInt(envMaxLineBytes, cfg.MaxLineBytes); err != nil {
		return nil, err
	}
	if cfg.MaxConnections, err = envInt(envMaxConnections, cfg.MaxConnections); err != nil {
		return nil, err
	}
	maxLen, err := envInt(envAuditRedisMaxLen, int(cfg.AuditRedisMaxLen))
	if err != nil {
		return nil, err
	}
	if cfg.AuditBuffer, err = envInt(envAuditBuffer, cfg.AuditBuffer); err != nil {
		return nil, err
	}
	if v, ok := os.LookupEnv(envRedisAddr); ok {
		cfg.Redis.Addr = strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(os.Getenv(envAuditRedisKey)); v != "" {
		cfg.AuditRedisKey = v
	}

	switch {
	case cfg.TCPPort <= 0 || cfg.TCPPort > 65535:
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envTCPPort, cfg.TCPPort)
	case cfg.UDPPort <= 0 || cfg.UDPPort > 65535:
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envUDPPort, cfg.UDPPort)
	case cfg.HTTPPort < 0 || cfg.HTTPPort > 65535:
		return nil, fmt.Errorf("%s must be 0-65535, got %d", envHTTPPort, cfg.HTTPPort)
	case ttlSec <= 0:
		return nil, fmt.Errorf("%s must be positive, got %d", envDefaultTTLSec, ttlSec)
	case readTimeoutMs <= 0:
		return nil, fmt.Errorf("%s must be positive, got %d", envReadTimeoutMs, readTimeoutMs)
	case cfg.MaxLineBytes <= 0:
		return nil, fmt.Errorf("%s must be positive, got %d", envMaxLineBytes, cfg.MaxLineBytes)
	case cfg.MaxConnections <= 0:
		return nil, fmt.Errorf("%s must be positive, got %d", envMaxConnections, cfg.MaxConnections)
	case maxLen < 0:
		return nil, fmt.Errorf("%s must not be negative, got %d", envAuditRedisMaxLen, maxLen)
	case cfg.AuditBuffer <= 0:
		return nil, fmt.Errorf("%s must be positive, got %d", envAuditBuffer, cfg.AuditBuffer)
	}
	cfg.DefaultTTL = time.Duration(ttlSec) * time.Second
	cfg.ReadTimeout = time.Duration(readTimeoutMs) * time.Millisecond
	cfg.AuditRedisMaxLen = int64(maxLen)

	return &cfg, nil
}

func applyYAML(cfg *Config, raw *yamlConfig) {
	setInt(&cfg.TCPPort, raw.Ports.TCP)
	setInt(&cfg.UDPPort, raw.Ports.UDP)
	setInt(&cfg.HTTPPort, raw.Ports.HTTP)
	setInt(&cfg.MaxLineBytes, raw.MaxLineBytes)
	setInt(&cfg.MaxConnections, raw.MaxConnections)
	setInt(&cfg.AuditBuffer, raw.Audit.Buffer)
	if raw.DefaultTTLSec != nil {
		cfg.DefaultTTL = time.Duration(*raw.DefaultTTLSec) * time.Second
	}
	if raw.ReadTimeoutMs != nil {
		cfg.ReadTimeout = time.Duration(*raw.ReadTimeoutMs) * time.Millisecond
	}
	if raw.Audit.RedisAddr != nil {
		cfg.Redis.Addr = strings.TrimSpace(*raw.Audit.RedisAddr)
	}
	if raw.Audit.RedisKey != nil && strings.TrimSpace(*raw.Audit.RedisKey) != "" {
		cfg.AuditRedisKey = strings.TrimSpace(*raw.Audit.RedisKey)
	}
	if raw.Audit.RedisMaxLen != nil {
		cfg.AuditRedisMaxLen = int64(*raw.Audit.RedisMaxLen)
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// envInt returns the integer in env variable name, or def when it is unset or blank.
func envInt(name string, def int) (int, error) {
	s := strings.TrimSpace(os.Getenv(name))
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}
