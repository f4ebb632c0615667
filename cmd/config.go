package main

import (
	"errors"
	"strings"
	"time"

	"ecosync/internal/gateway"
	"ecosync/internal/logger"
	"ecosync/internal/server"

	"github.com/spf13/viper"
)

type config struct {
	Port         string
	LogLevel     string
	WriteTimeout time.Duration
	Gemini       gateway.GeminiConfig
	FactoryLog   factoryLogConfig
	WSInterval   time.Duration
}

type factoryLogConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", logger.InfoLevel)
	v.SetDefault("http.write_timeout", server.DefaultWriteTimeout)
	v.SetDefault("gemini.model", gateway.DefaultModel)
	v.SetDefault("gemini.temperature", gateway.DefaultTemperature)
	v.SetDefault("factory_log.enabled", false)
	v.SetDefault("factory_log.brokers", []string{"localhost:9092"})
	v.SetDefault("factory_log.topic", "ecosync.shift-reports")
	v.SetDefault("ws.interval", time.Second)
}

// loadConfig reads configs/config.yml (optional) and applies env overrides:
// ECOSYNC_<KEY> for every key, plus GEMINI_API_KEY / API_KEY for the model key.
func loadConfig(paths ...string) (config, error) {
	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix("ECOSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("gemini.api_key", "ECOSYNC_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return config{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config{}, err
		}
	}

	return config{
		Port:         v.GetString("port"),
		LogLevel:     v.GetString("log.level"),
		WriteTimeout: v.GetDuration("http.write_timeout"),
		Gemini: gateway.GeminiConfig{
			APIKey:      v.GetString("gemini.api_key"),
			Model:       v.GetString("gemini.model"),
			Temperature: float32(v.GetFloat64("gemini.temperature")),
			BaseURL:     v.GetString("gemini.base_url"),
		},
		FactoryLog: factoryLogConfig{
			Enabled: v.GetBool("factory_log.enabled"),
			Brokers: splitBrokers(v.GetStringSlice("factory_log.brokers")),
			Topic:   v.GetString("factory_log.topic"),
		},
		WSInterval: v.GetDuration("ws.interval"),
	}, nil
}

// splitBrokers also accepts the comma separated form used in env vars.
func splitBrokers(in []string) []string {
	var out []string
	for _, s := range in {
		for _, b := range strings.Split(s, ",") {
			if b = strings.TrimSpace(b); b != "" {
				out = append(out, b)
			}
		}
	}
	return out
}
