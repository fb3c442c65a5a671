package config

import (
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// InitLogger sets up the shared zap logger: console output plus a rotating
// file under logs/.
func InitLogger() {
	if err := os.MkdirAll("logs", os.ModePerm); err != nil {
		panic("failed to create logs directory: " + err.Error())
	}

	fileOut := zapcore.AddSync(&lumberjack.Logger{
		Filename:   "logs/pousada.log",
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	})

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stdout), zapcore.InfoLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileOut, zapcore.InfoLevel),
	)

	Logger = zap.New(core)
}
