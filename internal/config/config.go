package config

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Port            string
	StorageDriver   string
	DatabaseURL     string
	JWTSecret       string
	SessionTTL      time.Duration
	GoogleAudience  string
	AdminEmails     []string
	AllowOrigins    []string
	LogstashTCPAddr string
	DefaultUserID   int64
	SeedPlaces      bool

	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	MinIOBucketPlaces  string
	MinIOPublicURL     string
	PlaceImageMaxBytes int64

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	TelegramBotToken string
	TelegramChatID   int64
}

// Load reads .env, then an optional azerguest.yaml from . or ./config.
// Environment variables take precedence over the file.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	v := viper.New()
	v.SetConfigName("azerguest")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("Warning: reading config file: %v", err)
		}
	} else {
		log.Printf("Using config file: %s", v.ConfigFileUsed())
	}
	v.AutomaticEnv()

	return load(v)
}

func load(v *viper.Viper) Config {
	r := reader{v: v}

	driver := strings.ToLower(r.getenv("STORAGE_DRIVER", StorageDriverPostgres))
	if driver != StorageDriverPostgres && driver != StorageDriverMemory {
		panic("invalid STORAGE_DRIVER: " + driver)
	}
	databaseURL := r.getenv("DATABASE_URL", "")
	if driver == StorageDriverPostgres {
		databaseURL = r.must("DATABASE_URL")
	}

	sessionTTL, err := time.ParseDuration(r.getenv("SESSION_TTL", "168h"))
	if err != nil || sessionTTL <= 0 {
		log.Printf("Warning: invalid SESSION_TTL, using 168h")
		sessionTTL = 168 * time.Hour
	}

	imageMax := int64(5 * 1024 * 1024)
	if n, err := strconv.ParseInt(r.getenv("PLACE_IMAGE_MAX_BYTES", "5242880"), 10, 64); err == nil && n > 0 {
		imageMax = n
	}

	return Config{
		Port:            r.getenv("PORT", "8080"),
		StorageDriver:   driver,
		DatabaseURL:     databaseURL,
		JWTSecret:       r.must("JWT_SECRET"),
		SessionTTL:      sessionTTL,
		GoogleAudience:  r.getenv("GOOGLE_AUDIENCE", ""),
		AdminEmails:     splitList(r.getenv("ADMIN_EMAILS", "")),
		AllowOrigins:    splitAndTrim(r.getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr: r.getenv("LOGSTASH_TCP_ADDR", ""),
		DefaultUserID:   r.getInt64("DEFAULT_USER_ID", 0),
		SeedPlaces:      r.getenv("SEED_PLACES", "true") == "true",

		MinIOEndpoint:      r.getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:     r.getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:     r.getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:        r.getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketPlaces:  r.getenv("MINIO_BUCKET_PLACES", "azerguest-places"),
		MinIOPublicURL:     r.getenv("MINIO_PUBLIC_URL", ""),
		PlaceImageMaxBytes: imageMax,

		SMTPHost:     r.getenv("SMTP_HOST", ""),
		SMTPPort:     r.getenv("SMTP_PORT", "587"),
		SMTPUsername: r.getenv("SMTP_USERNAME", ""),
		SMTPPassword: r.getenv("SMTP_PASSWORD", ""),
		SMTPFrom:     r.getenv("SMTP_FROM", ""),

		TelegramBotToken: r.getenv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   r.getInt64("TELEGRAM_CHAT_ID", 0),
	}
}

func (c Config) MinIOEnabled() bool {
	return c.MinIOEndpoint != ""
}

func (c Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

func (c Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != 0
}

type reader struct {
	v *viper.Viper
}

func (r reader) getenv(k, d string) string {
	if s := strings.TrimSpace(r.v.GetString(k)); s != "" {
		return s
	}
	return d
}

func (r reader) must(k string) string {
	s := strings.TrimSpace(r.v.GetString(k))
	if s == "" {
		panic("missing env: " + k)
	}
	return s
}

func (r reader) getInt64(k string, d int64) int64 {
	raw := r.getenv(k, "")
	if raw == "" {
		return d
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", k, raw, d)
		return d
	}
	return n
}

func splitList(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitAndTrim(input string) []string {
	out := splitList(input)
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
