package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger
	return buf.String()
}

// captureLogOutputWithInit captures output by reinitializing the logger
// to write to a buffer. This exercises the ReplaceAttr logic.
func captureLogOutputWithInit(level Level, format Format, f func()) string {
	var buf bytes.Buffer
	InitLoggerTo(&buf, level, format)
	f()
	InitLogger(LevelInfo, FormatJSON)
	return buf.String()
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{"Debug level JSON format", LevelDebug, FormatJSON},
		{"Info level JSON format", LevelInfo, FormatJSON},
		{"Warn level JSON format", LevelWarn, FormatJSON},
		{"Error level JSON format", LevelError, FormatJSON},
		{"Info level Text format", LevelInfo, FormatText},
		{"Debug level Text format", LevelDebug, FormatText},
		{"Default level (invalid value)", Level(999), FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if GetLogger() == nil {
				t.Error("Expected logger to be initialized, got nil")
			}
		})
	}
	InitLogger(LevelInfo, FormatJSON)
}

func TestInitLoggerToFiltersLevel(t *testing.T) {
	output := captureLogOutputWithInit(LevelWarn, FormatText, func() {
		Info("dropped")
		Warn("kept")
	})
	if strings.Contains(output, "dropped") {
		t.Error("Expected info record to be filtered at warn level")
	}
	if !strings.Contains(output, "kept") {
		t.Error("Expected warn record in output")
	}
}

func TestNewLoggerLeavesGlobal(t *testing.T) {
	before := GetLogger()
	var buf bytes.Buffer
	l := NewLogger(&buf, LevelDebug, FormatJSON)
	l.Debug("local")
	if GetLogger() != before {
		t.Error("NewLogger replaced the global logger")
	}
	if !strings.Contains(buf.String(), `"msg":"local"`) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard logger should not be enabled at error level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"", FormatJSON, false},
		{"yaml", FormatJSON, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelAndFormatString(t *testing.T) {
	for _, l := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		back, err := ParseLevel(l.String())
		if err != nil || back != l {
			t.Errorf("ParseLevel(%q) = %v, %v", l.String(), back, err)
		}
	}
	for _, f := range []Format{FormatJSON, FormatText} {
		back, err := ParseFormat(f.String())
		if err != nil || back != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f.String(), back, err)
		}
	}
	if got := Level(9).String(); got != "Level(9)" {
		t.Errorf("Level(9).String() = %q", got)
	}
}

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "find")
	if got := GetCommand(ctx); got != "find" {
		t.Errorf("GetCommand() = %q, want find", got)
	}
	if got := GetCommand(context.Background()); got != "" {
		t.Errorf("GetCommand() on empty context = %q", got)
	}
}

func TestLoggerFromContext(t *testing.T) {
	output := captureLogOutput(func() {
		LoggerFromContext(WithCommand(context.Background(), "resolve")).Info("hello")
	})
	if !strings.Contains(output, `"command":"resolve"`) {
		t.Errorf("Expected command attribute, got %q", output)
	}

	output = captureLogOutput(func() {
		LoggerFromContext(context.Background()).Info("plain")
	})
	if strings.Contains(output, "command") {
		t.Errorf("Expected no command attribute, got %q", output)
	}
}

func TestLoggingFunctions(t *testing.T) {
	tests := []struct {
		name  string
		log   func(string, ...any)
		level string
	}{
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(func() {
				tt.log("message", "key", "value")
			})
			if !strings.Contains(output, tt.level) {
				t.Errorf("Expected level %s in %q", tt.level, output)
			}
			if !strings.Contains(output, `"key":"value"`) {
				t.Errorf("Expected key/value in %q", output)
			}
		})
	}
}

func TestContextLoggingFunctions(t *testing.T) {
	ctx := WithCommand(context.Background(), "books")
	tests := []struct {
		name  string
		log   func(context.Context, string, ...any)
		level string
	}{
		{"DebugContext", DebugContext, "DEBUG"},
		{"InfoContext", InfoContext, "INFO"},
		{"WarnContext", WarnContext, "WARN"},
		{"ErrorContext", ErrorContext, "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(func() {
				tt.log(ctx, "message")
			})
			if !strings.Contains(output, tt.level) || !strings.Contains(output, `"command":"books"`) {
				t.Errorf("output = %q", output)
			}
		})
	}
}

func TestCommandFinished(t *testing.T) {
	ctx := WithCommand(context.Background(), "find")

	output := captureLogOutput(func() {
		CommandFinished(ctx, 1500*time.Millisecond, nil, "matches", 3)
	})
	for _, want := range []string{"command_finished", `"duration_ms":1500`, `"ok":true`, `"matches":3`, `"command":"find"`} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %s in %q", want, output)
		}
	}

	output = captureLogOutput(func() {
		CommandFinished(ctx, time.Millisecond, errors.New("boom"))
	})
	if !strings.Contains(output, `"ok":false`) || !strings.Contains(output, `"error":"boom"`) {
		t.Errorf("output = %q", output)
	}
}

func TestDomainHelpers(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want []string
	}{
		{
			name: "ConfigLoaded",
			log:  func() { ConfigLoaded([]string{"a.yaml", "b.yaml"}) },
			want: []string{"config_loaded", "a.yaml", "b.yaml"},
		},
		{
			name: "CacheStats",
			log:  func() { CacheStats(4, 2, 3, "max_size", 8) },
			want: []string{"cache_stats", `"hits":4`, `"misses":2`, `"size":3`, `"max_size":8`},
		},
		{
			name: "SelfCheckFailed",
			log:  func() { SelfCheckFailed("round_trip", "id 1001001") },
			want: []string{"selfcheck_failed", "WARN", `"check":"round_trip"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(tt.log)
			for _, w := range tt.want {
				if !strings.Contains(output, w) {
					t.Errorf("Expected %s in %q", w, output)
				}
			}
		})
	}
}

func TestReplaceAttrTimestamp(t *testing.T) {
	output := captureLogOutputWithInit(LevelInfo, FormatJSON, func() {
		Info("timestamp test")
	})
	if !strings.Contains(output, "timestamp test") {
		t.Fatal("Expected output to contain test message")
	}
	// RFC 3339 has no fractional seconds.
	if strings.Contains(output, `"time":"`) {
		start := strings.Index(output, `"time":"`) + len(`"time":"`)
		end := strings.Index(output[start:], `"`)
		if _, err := time.Parse(time.RFC3339, output[start:start+end]); err != nil {
			t.Errorf("timestamp %q is not RFC 3339: %v", output[start:start+end], err)
		}
		if strings.Contains(output[start:start+end], ".") {
			t.Errorf("timestamp %q has fractional seconds", output[start:start+end])
		}
	} else {
		t.Errorf("Expected a time attribute in %q", output)
	}
}

func TestInit(t *testing.T) {
	if defaultLogger == nil {
		t.Error("Expected defaultLogger to be initialized by init()")
	}
}

func TestContextKeyType(t *testing.T) {
	if CommandKey != "command" {
		t.Errorf("Expected CommandKey to be 'command', got '%s'", CommandKey)
	}
}

func TestLevelConstants(t *testing.T) {
	if LevelDebug >= LevelInfo || LevelInfo >= LevelWarn || LevelWarn >= LevelError {
		t.Error("Expected levels ordered Debug < Info < Warn < Error")
	}
}
