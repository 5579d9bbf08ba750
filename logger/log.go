package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var displayLevel string = "info"
var level string = displayLevel

var zapLogger *zap.Logger

func GetLevel() string {
	return level
}

func SetDisplayLevel(lvl string) {
	displayLevel = lvl
	InitLogger(true)
	Infof("Set logger display level to %v", displayLevel)
}

func SetLevel(lvl string) {
	if lvl == "" {
		level = "debug"
	} else {
		level = lvl
	}
	Debugf("Set logger level to %v", level)
}

func InitLogger(force bool) {
	if !force && zapLogger != nil {
		return
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	if lvl, err := zapcore.ParseLevel(displayLevel); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	var err error
	zapLogger, err = cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		fmt.Printf("Error instantiating logger with level %v\n", displayLevel)
		zapLogger = zap.NewNop()
	}
}

func Log(args ...interface{}) {
	if level == "error" {
		Error(args...)
	} else if level == "debug" {
		Debug(args...)
	} else {
		Info(args...)
	}
}

func Debug(args ...interface{}) {
	InitLogger(false)
	zapLogger.Sugar().Debug(args...)
}

func Info(args ...interface{}) {
	InitLogger(false)
	zapLogger.Sugar().Info(args...)
}

func Error(args ...interface{}) {
	InitLogger(false)
	zapLogger.Sugar().Error(args...)
}

func Logf(template string, args ...interface{}) {
	if level == "error" {
		Errorf(template, args...)
	} else if level == "debug" {
		Debugf(template, args...)
	} else {
		Infof(template, args...)
	}
}

func Debugf(template string, args ...interface{}) {
	InitLogger(false)
	zapLogger.Sugar().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	InitLogger(false)
	zapLogger.Sugar().Infof(template, args...)
}

func Errorf(template string, args ...interface{}) {
	InitLogger(false)
	zapLogger.Sugar().Errorf(template, args...)
}
