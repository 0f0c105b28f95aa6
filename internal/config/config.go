package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Dev struct {
		Mode bool `yaml:"mode"`
	} `yaml:"dev"`
	LLM struct {
		Provider  string        `yaml:"provider"`
		Model     string        `yaml:"model"`
		BaseURL   string        `yaml:"base_url"`
		APIKey    string        `yaml:"api_key"`
		MaxTokens int           `yaml:"max_tokens"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"llm"`
	Dashboard struct {
		ProxyURL string `yaml:"proxy_url"`
		LogPath  string `yaml:"log_path"`
	} `yaml:"dashboard"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func Default() Config {
	var cfg Config
	cfg.HTTP.Addr = ":5000"
	cfg.LLM.Provider = "groq-cloud"
	cfg.LLM.Model = "llama-3.3-70b-versatile"
	cfg.LLM.BaseURL = "https://api.groq.com/openai/v1"
	cfg.LLM.MaxTokens = 1024
	cfg.Dashboard.ProxyURL = "http://localhost:5000"
	cfg.Log.Level = "info"
	return cfg
}

// Load reads the optional yaml file at path and applies IE_* environment
// overrides on top of it. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, err
			}
		} else {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Validate checks what the proxy needs before it can serve requests.
func (c Config) Validate() error {
	if c.LLM.APIKey == "" {
		return errors.New("missing llm.api_key (or IE_LLM_API_KEY / GROQ_API_KEY)")
	}
	if c.LLM.Model == "" {
		return errors.New("missing llm.model")
	}
	if c.LLM.MaxTokens <= 0 {
		return errors.New("llm.max_tokens must be positive")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("IE_HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	} else if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Addr = ":" + v
	}
	if v := os.Getenv("IE_DEV_MODE"); v != "" {
		cfg.Dev.Mode = parseBool(v, cfg.Dev.Mode)
	}
	if v := os.Getenv("IE_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("IE_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("IE_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := firstEnv("IE_LLM_API_KEY", "GROQ_API_KEY", "OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("IE_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.LLM.MaxTokens = n
		}
	}
	if v := os.Getenv("IE_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.LLM.Timeout = d
		}
	}
	if v := os.Getenv("IE_PROXY_URL"); v != "" {
		cfg.Dashboard.ProxyURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("IE_DASHBOARD_LOG_PATH"); v != "" {
		cfg.Dashboard.LogPath = v
	}
	if v := os.Getenv("IE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

func parseBool(input string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
