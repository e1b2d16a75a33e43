package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

func TestLoadDefaultsWithMemoryDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_EMAILS", "a@example.com, b@example.com,")

	cfg := load(envViper())

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.AdminEmails)
	assert.Equal(t, int64(5*1024*1024), cfg.PlaceImageMaxBytes)
	assert.True(t, cfg.SeedPlaces)
	assert.False(t, cfg.MinIOEnabled())
	assert.False(t, cfg.MailEnabled())
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/azerguest")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("DEFAULT_USER_ID", "1")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200")

	cfg := load(envViper())

	assert.Equal(t, "postgres://localhost/azerguest", cfg.DatabaseURL)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, int64(1), cfg.DefaultUserID)
	assert.Equal(t, int64(-100200), cfg.TelegramChatID)
	assert.True(t, cfg.TelegramEnabled())
}

func TestLoadFileValuesYieldToEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("PORT", "9090")

	v := envViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader("port: \"7070\"\njwt_secret: from-file\n")))

	cfg := load(v)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "from-file", cfg.JWTSecret)
}

func TestLoadPanicsOnMissingRequired(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "s3cret")

	assert.PanicsWithValue(t, "missing env: DATABASE_URL", func() { load(envViper()) })
}
