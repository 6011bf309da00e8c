package config

import (
	"os"
	"strings"
	"sync"
)

type Env struct {
	AppAddr     string
	GinMode     string
	DBDSN       string
	JWTSecret   string
	CORSOrigins []string
}

var (
	envOnce sync.Once
	env     Env
)

// LoadEnv reads configuration from the environment once and caches it.
func LoadEnv() Env {
	envOnce.Do(func() {
		env = readEnv()
	})
	return env
}

func readEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/todoapi?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		origins = nil
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:       dsn,
		JWTSecret:   secret,
		CORSOrigins: origins,
	}
}
