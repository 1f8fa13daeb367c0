package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable is invalid")

const (
	apiPortEnvKey       = "API_PORT"
	sessionSecretEnvKey = "SESSION_SECRET"
	sessionCookieEnvKey = "SESSION_COOKIE"
	sessionTTLEnvKey    = "SESSION_TTL"
	logLevelEnvKey      = "LOG_LEVEL"
)

const (
	defaultPort          = "3000"
	defaultSessionCookie = "sid"
	defaultSessionTTL    = 24 * time.Hour
)

type App struct {
	Port          string
	SessionSecret string
	SessionCookie string
	SessionTTL    time.Duration
	LogLevel      zapcore.Level
}

func NewApp() (App, error) {
	secret, ok := os.LookupEnv(sessionSecretEnvKey)
	if !ok || secret == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, sessionSecretEnvKey)
	}

	port := lookupOr(apiPortEnvKey, defaultPort)
	cookie := lookupOr(sessionCookieEnvKey, defaultSessionCookie)

	ttl := defaultSessionTTL
	if raw, ok := os.LookupEnv(sessionTTLEnvKey); ok {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, sessionTTLEnvKey, raw)
		}
		ttl = parsed
	}

	level := zapcore.InfoLevel
	if raw, ok := os.LookupEnv(logLevelEnvKey); ok {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, logLevelEnvKey, raw)
		}
	}

	return App{
		Port:          port,
		SessionSecret: secret,
		SessionCookie: cookie,
		SessionTTL:    ttl,
		LogLevel:      level,
	}, nil
}

func lookupOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
