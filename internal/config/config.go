package config

import (
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite3"
	StorageMySQL  = "mysql"

	DefaultMaxUploadBytes = 50 << 20
)

type Config struct {
	AppPort            string
	CorsOrigins        []string
	LogLevel           string
	StorageDriver      string
	DatabaseDSN        string
	UploadDir          string
	MaxUploadBytes     int64
	TrashRetentionDays int
	WSHeartbeatSeconds int
	TranslationFolder  string
	TrustedProxies     []string
}

// LoadConfig reads .env (when present) and the environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")
	return FromProvider(NewEnvProvider())
}

func FromProvider(p Provider) (*Config, error) {
	port, err := p.Get("PORT", "4000")
	if err != nil {
		return nil, err
	}
	origins, _ := p.Get("CORS_ORIGIN", "*")
	logLevel, _ := p.Get("LOG_LEVEL", "info")
	driver, _ := p.Get("STORAGE_DRIVER", StorageMemory)
	dsn, _ := p.Get("DATABASE_DSN", "")
	uploadDir, _ := p.Get("UPLOAD_DIR", "uploads")
	translations, _ := p.Get("TRANSLATION_FOLDER", "pkg/translator/translation")
	proxies, _ := p.Get("TRUSTED_PROXIES", "")

	retention, err := p.GetNumber("TRASH_RETENTION_DAYS", 30)
	if err != nil {
		return nil, err
	}
	heartbeat, err := p.GetNumber("WS_HEARTBEAT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	maxUpload, err := p.GetNumber("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)
	if err != nil {
		return nil, err
	}

	driver = strings.ToLower(strings.TrimSpace(driver))
	if driver != StorageSQLite && driver != StorageMySQL {
		driver = StorageMemory
	}
	if driver != StorageMemory && dsn == "" {
		return nil, &MissingKeyError{Key: "DATABASE_DSN"}
	}

	return &Config{
		AppPort:            port,
		CorsOrigins:        splitList(origins),
		LogLevel:           logLevel,
		StorageDriver:      driver,
		DatabaseDSN:        dsn,
		UploadDir:          uploadDir,
		MaxUploadBytes:     int64(maxUpload),
		TrashRetentionDays: retention,
		WSHeartbeatSeconds: heartbeat,
		TranslationFolder:  translations,
		TrustedProxies:     splitList(proxies),
	}, nil
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
