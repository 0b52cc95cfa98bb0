package logger

import (
	"os"

	"github.com/AshishTripathi80/product-catlog-backend/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New はGO_ENVに合わせたzapロガーを作り、グローバルにも設定する
// LOG_FILEがあればlumberjackでローテーションしながらファイルにも出す
func New(cfg config.Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.IsProd() {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var log *zap.Logger
	if cfg.LogFile != "" {
		rotate := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(rotate),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		log = zap.New(core, zap.AddCaller())
	} else {
		var err error
		log, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			return nil, err
		}
	}

	zap.ReplaceGlobals(log)
	return log, nil
}
