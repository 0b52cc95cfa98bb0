package db

import (
	"github.com/AshishTripathi80/product-catlog-backend/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	level := logger.Info
	if cfg.IsProd() {
		level = logger.Warn
	}

	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
}

// Migrate は渡されたモデルのテーブルを作成・更新する
func Migrate(gormDB *gorm.DB, models ...interface{}) error {
	return gormDB.AutoMigrate(models...)
}
