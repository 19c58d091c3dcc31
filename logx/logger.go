package logx

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// OutputFormat defines the log output format
type OutputFormat string

const (
	FormatConsole    OutputFormat = "console"
	FormatCloudWatch OutputFormat = "cloudwatch"
	FormatJSON       OutputFormat = "json"
)

// ParseFormat maps a config string to an OutputFormat, console by default
func ParseFormat(s string) OutputFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "cloudwatch":
		return FormatCloudWatch
	default:
		return FormatConsole
	}
}

// Field is a key/value pair attached to every line of a logger
type Field struct {
	Key   string
	Value any
}

// Logger represents a logger instance
type Logger struct {
	mu         *sync.Mutex
	level      Level
	out        io.Writer
	prefix     string
	showCaller bool
	colored    bool
	format     OutputFormat
	fields     []Field
	now        func() time.Time
}

// New creates a new logger with default settings
func New() *Logger {
	return &Logger{
		mu:         &sync.Mutex{},
		level:      InfoLevel,
		out:        os.Stdout,
		showCaller: true,
		colored:    true,
		format:     FormatConsole,
		now:        time.Now,
	}
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// SetOutput sets the output destination
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// SetPrefix sets a prefix for all log messages
func (l *Logger) SetPrefix(prefix string) {
	l.prefix = prefix
}

// SetShowCaller enables or disables showing caller information
func (l *Logger) SetShowCaller(show bool) {
	l.showCaller = show
}

// SetColored enables or disables colored output
func (l *Logger) SetColored(colored bool) {
	l.colored = colored
}

// SetFormat sets the output format. JSON and CloudWatch never carry colors.
func (l *Logger) SetFormat(format OutputFormat) {
	l.format = format
	if format != FormatConsole {
		l.colored = false
	}
}

// IsLevelEnabled checks if a level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return l.level != OffLevel && level >= l.level
}

// With returns a child logger that adds key=value to every line.
// The child shares the output and lock of its parent.
func (l *Logger) With(key string, value any) *Logger {
	child := *l
	child.fields = make([]Field, len(l.fields), len(l.fields)+1)
	copy(child.fields, l.fields)
	child.fields = append(child.fields, Field{Key: key, Value: value})
	return &child
}

// findCaller finds the first caller outside of the logx package
func (l *Logger) findCaller() string {
	for i := 2; i < 15; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		if strings.Contains(filepath.ToSlash(file), "/logx/") && !strings.HasSuffix(file, "_test.go") {
			continue
		}
		return fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	return ""
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if !l.IsLevelEnabled(level) {
		return
	}

	message := msg
	if len(args) > 0 {
		message = fmt.Sprintf(msg, args...)
	}

	var caller string
	if l.showCaller {
		caller = l.findCaller()
	}

	var line string
	switch l.format {
	case FormatJSON:
		line = l.jsonLine(level, caller, message)
	case FormatCloudWatch:
		line = l.textLine(level.String(), l.now().UTC().Format("2006-01-02T15:04:05.000Z"), caller, message)
	default:
		levelStr := level.String()
		if l.colored {
			levelStr = level.colorize()
		}
		line = l.textLine(levelStr, l.now().Format("2006-01-02 15:04:05"), caller, message)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, line)
}

func (l *Logger) textLine(levelStr, timestamp, caller, message string) string {
	var b strings.Builder
	b.WriteString("[" + timestamp + "] ")
	if l.prefix != "" {
		b.WriteString(l.prefix + " ")
	}
	b.WriteString("[" + levelStr + "]")
	if caller != "" {
		b.WriteString(" " + caller)
	}
	b.WriteString(": " + message)
	for _, f := range l.fields {
		b.WriteString(" " + f.Key + "=" + formatValue(f.Value))
	}
	return b.String()
}

func (l *Logger) jsonLine(level Level, caller, message string) string {
	entry := map[string]any{
		"timestamp": l.now().Format(time.RFC3339),
		"level":     level.String(),
		"message":   message,
	}
	if l.prefix != "" {
		entry["prefix"] = l.prefix
	}
	if caller != "" {
		entry["caller"] = caller
	}
	for _, f := range l.fields {
		if err, ok := f.Value.(error); ok {
			entry[f.Key] = err.Error()
			continue
		}
		entry[f.Key] = f.Value
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"level":%q,"message":%q,"logError":%q}`, level.String(), message, err.Error())
	}
	return string(data)
}

// Trace logs a message at trace level
func (l *Logger) Trace(msg string, args ...any) {
	l.log(TraceLevel, msg, args...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(msg string, args ...any) {
	l.log(DebugLevel, msg, args...)
}

// Info logs a message at info level
func (l *Logger) Info(msg string, args ...any) {
	l.log(InfoLevel, msg, args...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(msg string, args ...any) {
	l.log(WarnLevel, msg, args...)
}

// Error logs a message at error level
func (l *Logger) Error(msg string, args ...any) {
	l.log(ErrorLevel, msg, args...)
}

// Fatal logs a message at error level and exits
func (l *Logger) Fatal(msg string, args ...any) {
	l.log(ErrorLevel, msg, args...)
	os.Exit(1)
}
