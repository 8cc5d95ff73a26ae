// Package logger builds the zap logger and adapts it to llm.Logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
)

// New builds a JSON logger for production and a console logger otherwise,
// and installs it as the global zap logger
func New(environment, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}

// LLMLogger implements llm.Logger on top of a sugared zap logger
type LLMLogger struct {
	sugar *zap.SugaredLogger
}

// NewLLMLogger adapts l to the key/value logger the services accept
func NewLLMLogger(l *zap.Logger) *LLMLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &LLMLogger{sugar: l.Sugar()}
}

func (l *LLMLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *LLMLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *LLMLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

var _ llm.Logger = (*LLMLogger)(nil)
