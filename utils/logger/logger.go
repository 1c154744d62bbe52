package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger zerolog.Logger

func init() {
	// usable before Init is called, e.g. from tests
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Init configures the global logger from viper: LOG_LEVEL picks the level and
// LOG_DIR, when set, adds a rotated JSON log file next to the console output.
func Init() {
	level, err := zerolog.ParseLevel(viper.GetString(constants.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	if logDir := viper.GetString(constants.LogDir); logDir != "" {
		if err := os.MkdirAll(logDir, os.ModePerm); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   filepath.Join(logDir, "rogue.log"),
				MaxSize:    10, // megabytes
				MaxBackups: 5,
				MaxAge:     28, // days
				Compress:   true,
			})
		}
	}

	logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}

// With returns a child logger carrying the given field, for request or run scoped logs.
func With(key, value string) zerolog.Logger {
	return logger.With().Str(key, value).Logger()
}

func Info(v ...any) {
	logger.Info().Msg(fmt.Sprint(v...))
}

func Infof(format string, v ...any) {
	logger.Info().Msgf(format, v...)
}

func Debug(v ...any) {
	logger.Debug().Msg(fmt.Sprint(v...))
}

func Debugf(format string, v ...any) {
	logger.Debug().Msgf(format, v...)
}

func Warn(v ...any) {
	logger.Warn().Msg(fmt.Sprint(v...))
}

func Warnf(format string, v ...any) {
	logger.Warn().Msgf(format, v...)
}

func Error(v ...any) {
	logger.Error().Msg(fmt.Sprint(v...))
}

func Errorf(format string, v ...any) {
	logger.Error().Msgf(format, v...)
}

func Fatal(v ...any) {
	logger.Fatal().Msg(fmt.Sprint(v...))
}

func Fatalf(format string, v ...any) {
	logger.Fatal().Msgf(format, v...)
}

// FileLogger writes content as indented JSON to <dir>/<fileName><fileExtension>
// and logs it. dir is LOG_DIR, falling back to the working directory.
func FileLogger(content any, fileName, fileExtension string) {
	dir := viper.GetString(constants.LogDir)
	if dir == "" {
		dir = "."
	}

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		Errorf("failed to marshal %s: %s", fileName, err)
		return
	}

	path := filepath.Join(dir, fileName+fileExtension)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		Errorf("failed to create directory for %s: %s", path, err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		Errorf("failed to write %s: %s", path, err)
		return
	}

	logger.Info().RawJSON("content", data).Msgf("written %s", path)
}
