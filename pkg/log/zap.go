package log

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
	logger *zap.Logger
	Logger *zap.SugaredLogger
)

func init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		level,
	)

	logger = zap.New(core,
		zap.Fields(zap.String("logName", os.Getenv("APPLICATION_NAME"))),
		zap.AddCaller(),
		zap.AddCallerSkip(1))

	Logger = logger.Sugar()
}

// SetLevel changes the minimum enabled level. Accepts DEBUG, INFO, WARN, WARNING, ERROR
// (case-insensitive); anything else falls back to INFO.
func SetLevel(name string) {
	level.SetLevel(ParseLevel(name))
}

// ParseLevel maps a level name to a zapcore.Level, defaulting to InfoLevel.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return zap.DebugLevel
	case "WARN", "WARNING":
		return zap.WarnLevel
	case "ERROR", "CRITICAL":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// Info logs a message at InfoLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Infow logs a message with some additional context. The variadic key-value pairs are treated as they are in With.
func Infow(message string, keysAndValues ...interface{}) {
	Logger.Infow(message, keysAndValues...)
}

// Infof formats the message according to the format specifier and logs it at InfoLevel.
func Infof(message string, args ...interface{}) {
	Logger.Infof(message, args...)
}

// Debug logs a message at DebugLevel.
func Debug(message string, fields ...zap.Field) {
	logger.Debug(message, fields...)
}

// Debugf formats the message according to the format specifier and logs it at DebugLevel.
func Debugf(message string, args ...interface{}) {
	Logger.Debugf(message, args...)
}

// Warn logs a message at WarnLevel.
func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

// Warnf formats the message according to the format specifier and logs it at WarnLevel.
func Warnf(message string, args ...interface{}) {
	Logger.Warnf(message, args...)
}

// Error logs a message at ErrorLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

// Errorw logs a message with some additional context. The variadic key-value pairs are treated as they are in With.
func Errorw(message string, keysAndValues ...interface{}) {
	Logger.Errorw(message, keysAndValues...)
}

// Errorf formats the message according to the format specifier and logs it at ErrorLevel.
func Errorf(message string, args ...interface{}) {
	Logger.Errorf(message, args...)
}

// Fatal logs a message at FatalLevel, then calls os.Exit.
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}

// Fatalf formats the message according to the format specifier and calls os.Exit.
func Fatalf(message string, args ...interface{}) {
	Logger.Fatalf(message, args...)
}
