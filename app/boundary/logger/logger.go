package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger はロギング機能を提供する構造体
// raw mode中の画面を壊さないよう、出力先はファイルのみ
type Logger struct {
	debugMode bool
	filePath  string
	zap       *zap.Logger
}

// DefaultFilePath は起動時刻からログファイル名を作る
func DefaultFilePath(startTime time.Time) string {
	return fmt.Sprintf("log-%s.json", startTime.Format("20060102-150405"))
}

// New は新しいLoggerインスタンスを作成する
// デバッグモードでなければ何も記録しない
func New(debugMode bool, filePath string) (*Logger, error) {
	if filePath == "" {
		filePath = DefaultFilePath(time.Now())
	}
	l := &Logger{
		debugMode: debugMode,
		filePath:  filePath,
		zap:       zap.NewNop(),
	}
	if !debugMode {
		return l, nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.DebugLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{filePath},
		ErrorOutputPaths: []string{filePath},
	}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	z, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l.zap = z
	return l, nil
}

// NewWithCore は任意のzapcore.Coreに書き込むLoggerを作成する（テスト用）
func NewWithCore(core zapcore.Core) *Logger {
	return &Logger{
		debugMode: true,
		zap:       zap.New(core),
	}
}

// Log はメッセージをログに記録する
func (l *Logger) Log(messageType string, message string) {
	if !l.debugMode {
		return
	}

	field := zap.String("type", messageType)
	switch messageType {
	case "error":
		l.zap.Error(message, field)
	case "warning":
		l.zap.Warn(message, field)
	default:
		l.zap.Debug(message, field)
	}
}

// Flush はバッファされたログを書き出す
func (l *Logger) Flush() {
	_ = l.zap.Sync()
}

func (l *Logger) FilePath() string {
	return l.filePath
}
