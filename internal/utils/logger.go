package utils

import (
	"fmt"
	"log"
	"strings"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	CurrentLevel LogLevel = LevelWarn
	ShowDebugUI  bool
)

const colorReset = "\033[0m"

var levels = [...]struct {
	name  string
	color string
}{
	LevelDebug: {"DEBUG", "\033[36m"},
	LevelInfo:  {"INFO", "\033[34m"},
	LevelWarn:  {"WARN", "\033[33m"},
	LevelError: {"ERROR", "\033[31m"},
}

func (l LogLevel) valid() bool { return l >= LevelDebug && l <= LevelError }

func (l LogLevel) String() string {
	if !l.valid() {
		return "UNKNOWN"
	}
	return levels[l].name
}

// UnmarshalText accepts a level name in any case, plus "warning".
func (l *LogLevel) UnmarshalText(text []byte) error {
	name := strings.ToUpper(strings.TrimSpace(string(text)))
	if name == "WARNING" {
		name = "WARN"
	}
	for i, lv := range levels {
		if lv.name == name {
			*l = LogLevel(i)
			return nil
		}
	}
	return fmt.Errorf("unknown log level %q", text)
}

// Set and Type let a LogLevel be bound directly as a command-line flag.
func (l *LogLevel) Set(s string) error { return l.UnmarshalText([]byte(s)) }

func (l *LogLevel) Type() string { return "level" }

func logMessage(level LogLevel, format string, v ...interface{}) {
	if level < CurrentLevel || !level.valid() {
		return
	}
	prefix := fmt.Sprintf("%s[%s]%s ", levels[level].color, levels[level].name, colorReset)
	log.Printf(prefix+format, v...)
}

func Info(format string, v ...interface{})  { logMessage(LevelInfo, format, v...) }
func Debug(format string, v ...interface{}) { logMessage(LevelDebug, format, v...) }
func Warn(format string, v ...interface{})  { logMessage(LevelWarn, format, v...) }
func Error(format string, v ...interface{}) { logMessage(LevelError, format, v...) }

// raylibLevel maps a raylib TraceLogLevel (LOG_TRACE=1 .. LOG_FATAL=6) onto
// ours.
func raylibLevel(level int) (LogLevel, bool) {
	switch level {
	case 1, 2:
		return LevelDebug, true
	case 3:
		return LevelInfo, true
	case 4:
		return LevelWarn, true
	case 5, 6:
		return LevelError, true
	}
	return 0, false
}

// RaylibLogCallback forwards raylib trace output into the leveled logger.
func RaylibLogCallback(level int, text string) {
	lv, ok := raylibLevel(level)
	if !ok {
		return
	}
	logMessage(lv, "%s", "\033[35m[RAYLIB]"+colorReset+" "+text)
}
