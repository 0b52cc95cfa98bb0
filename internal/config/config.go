package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはサービス共通の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あれば最優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string

	JWTSecret  string        // JWT署名シークレット
	JWTTTL     time.Duration // トークンの有効期限
	BcryptCost int

	GoEnv   string // dev/prod
	LogFile string // 空ならファイル出力しない
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	pgPort, err := atoiDefault("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	cost, err := atoiDefault("BCRYPT_COST", 12)
	if err != nil {
		return Config{}, err
	}
	ttl, err := durationDefault("JWT_TTL", 30*time.Minute)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "app"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTTTL:     ttl,
		BcryptCost: cost,

		GoEnv:   getenv("GO_ENV", "dev"),
		LogFile: os.Getenv("LOG_FILE"),
	}

	//必須チェック
	if cfg.GoEnv != "dev" && cfg.GoEnv != "prod" {
		return Config{}, fmt.Errorf("GO_ENV must be dev or prod")
	}
	if cfg.JWTTTL <= 0 {
		return Config{}, fmt.Errorf("JWT_TTL must be positive")
	}

	return cfg, nil
}

// ValidateAuthは認証サービスだけが必要な設定を確認する
func (c Config) ValidateAuth() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// Addrはecho.Startに渡すアドレス
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// DSNはpostgres接続文字列
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func (c Config) IsProd() bool {
	return c.GoEnv == "prod"
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationDefault(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
