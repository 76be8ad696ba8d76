package logger

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/veho-technologies/veho-error/errors"
	"github.com/veho-technologies/veho-error/validation"
)

func newJSONLogger(t *testing.T, cfg Config) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg.Format = "json"
	if cfg.Level == "" {
		cfg.Level = "debug"
	}
	return NewWithWriter(&cfg, "test-svc", &buf), &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", buf.String(), err)
	}
	return m
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	l, buf := newJSONLogger(t, Config{Level: "invalid-level"})
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected invalid level to fall back to info, got %q", buf.String())
	}
	l.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected info message, got %q", buf.String())
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_STACKTRACE", "true")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_STACKTRACE")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if !l.stacktrace {
		t.Error("expected stacktrace enabled from env")
	}
}

func TestWithError_PlainError(t *testing.T) {
	l, buf := newJSONLogger(t, Config{})
	l.WithError(stderrors.New("disk full")).Error("write failed")

	m := decodeLine(t, buf)
	if m[FieldError] != "disk full" {
		t.Errorf("expected error 'disk full', got %v", m[FieldError])
	}
	if _, ok := m[FieldErrorKind]; ok {
		t.Error("plain errors should not carry a kind")
	}
	if _, ok := m[FieldErrorDetail]; ok {
		t.Error("plain errors should not carry error_detail")
	}
}

func TestWithError_StructuredError(t *testing.T) {
	l, buf := newJSONLogger(t, Config{})
	err := fmt.Errorf("save: %w", errors.New("validation-failed", "Invalid email", "field=email;value=foo"))
	l.WithError(err).Error("request rejected")

	m := decodeLine(t, buf)
	if m[FieldError] != "save: Invalid email [validation-failed]" {
		t.Errorf("unexpected error field %v", m[FieldError])
	}
	if m[FieldErrorKind] != "validation-failed" {
		t.Errorf("expected error_kind 'validation-failed', got %v", m[FieldErrorKind])
	}
	detail, ok := m[FieldErrorDetail].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error_detail object, got %v", m[FieldErrorDetail])
	}
	want := map[string]string{
		"type":    "Error",
		"kind":    "validation-failed",
		"reason":  "Invalid email",
		"details": "field=email;value=foo",
		"message": "Invalid email [validation-failed]",
	}
	for k, v := range want {
		if detail[k] != v {
			t.Errorf("expected %s=%q, got %v", k, v, detail[k])
		}
	}
	if _, ok := detail["stack"]; ok {
		t.Error("stack should be omitted unless enabled")
	}
}

func TestWithError_OmitsAbsentFields(t *testing.T) {
	l, buf := newJSONLogger(t, Config{})
	l.WithError(errors.New("404", "", "")).Warn("missing")

	detail := decodeLine(t, buf)[FieldErrorDetail].(map[string]interface{})
	if _, ok := detail["reason"]; ok {
		t.Error("expected no reason field")
	}
	if _, ok := detail["details"]; ok {
		t.Error("expected no details field")
	}
	if detail["message"] != "[404]" {
		t.Errorf("expected message '[404]', got %v", detail["message"])
	}
}

func TestWithError_Stacktrace(t *testing.T) {
	l, buf := newJSONLogger(t, Config{Stacktrace: true})
	l.LogError("boom", errors.New("boom", "", ""))

	detail := decodeLine(t, buf)[FieldErrorDetail].(map[string]interface{})
	stack, ok := detail["stack"].([]interface{})
	if !ok || len(stack) == 0 {
		t.Fatalf("expected stack frames, got %v", detail["stack"])
	}
	if !strings.Contains(stack[0].(string), "TestWithError_Stacktrace") {
		t.Errorf("expected first frame to name the test, got %v", stack[0])
	}
}

func TestErrorObject(t *testing.T) {
	if ErrorObject(stderrors.New("plain")) != nil {
		t.Error("expected nil marshaler for plain errors")
	}

	l, buf := newJSONLogger(t, Config{})
	z := l.GetLogger()
	z.Error().Object("failure", ErrorObject(errors.New("timeout", "Upstream slow", ""))).Msg("call failed")

	failure, ok := decodeLine(t, buf)["failure"].(map[string]interface{})
	if !ok {
		t.Fatal("expected failure object")
	}
	if failure["kind"] != "timeout" || failure["reason"] != "Upstream slow" {
		t.Errorf("unexpected failure object %v", failure)
	}
}

func TestWithComponentAndContext(t *testing.T) {
	l, buf := newJSONLogger(t, Config{})
	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")
	l.WithComponent("handler").WithContext(ctx).Info("handled")

	m := decodeLine(t, buf)
	if m[FieldComponent] != "handler" {
		t.Errorf("expected component 'handler', got %v", m[FieldComponent])
	}
	if m[FieldRequestID] != "req-1" || m[FieldCorrelationID] != "corr-1" {
		t.Errorf("expected context IDs, got %v", m)
	}
}

func TestWithFields(t *testing.T) {
	l, buf := newJSONLogger(t, Config{})
	l.WithFields(map[string]interface{}{"key": "value"}).Info("with fields", Fields("n", 1))

	m := decodeLine(t, buf)
	if m["key"] != "value" {
		t.Errorf("expected key=value, got %v", m["key"])
	}
	if m["n"] != float64(1) {
		t.Errorf("expected n=1, got %v", m["n"])
	}
}

func TestDerivedLoggersKeepSettings(t *testing.T) {
	l, _ := newJSONLogger(t, Config{Stacktrace: true})
	d := l.WithComponent("c").WithFields(nil).WithError(nil)
	if d.service != "test-svc" || !d.stacktrace {
		t.Errorf("derived logger lost settings: service=%q stacktrace=%v", d.service, d.stacktrace)
	}
}

func TestInit(t *testing.T) {
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		globalLogger = nil
	})
	Init(Config{Level: "info", Format: "console", Output: "stdout", ServiceName: "billing"})
	gl := GetGlobalLogger()
	if gl == nil {
		t.Fatal("expected global logger to be set after Init")
	}
	if gl.service != "billing" {
		t.Errorf("expected service 'billing', got %q", gl.service)
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestRegisterAndGet(t *testing.T) {
	defer Reset()
	l := NewDefault("registered")
	Register("db", l)
	if Get("db") != l {
		t.Error("expected registered logger")
	}
	if Get("unregistered") == nil {
		t.Error("expected fallback logger for unregistered name")
	}
	Reset()
	if Get("db") == l {
		t.Error("expected Reset to drop registered loggers")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stdout" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"bad level", Config{Level: "loud", Format: "json", Output: "stdout"}, true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"pretty format", Config{Level: "info", Format: "pretty", Output: "stdout"}, false},
		{"upper case format", Config{Level: "info", Format: "JSON", Output: "stdout"}, false},
		{"text format", Config{Level: "info", Format: "text", Output: "stdout"}, true},
		{"bad output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestErrorFields(t *testing.T) {
	plain := ErrorFields("load", stderrors.New("eof"))
	if plain[FieldOperation] != "load" || plain[FieldError] != "eof" {
		t.Errorf("unexpected fields %v", plain)
	}
	if _, ok := plain[FieldErrorKind]; ok {
		t.Error("plain errors should not carry a kind")
	}

	structured := ErrorFields("load", errors.MakeType("StoreError").New("not-found", "", ""))
	if structured[FieldErrorKind] != "not-found" {
		t.Errorf("expected error_kind 'not-found', got %v", structured[FieldErrorKind])
	}
	if structured[FieldErrorType] != "StoreError" {
		t.Errorf("expected error_type 'StoreError', got %v", structured[FieldErrorType])
	}
}

func TestMergeWithError_Nil(t *testing.T) {
	fields := MergeWithError(nil, nil)
	if fields == nil || len(fields) != 0 {
		t.Errorf("expected empty map, got %v", fields)
	}
}

func TestDurationFields(t *testing.T) {
	f := MergeWithDuration(DurationFields("op", 1500*time.Millisecond), 2*time.Second)
	if f[FieldDuration] != int64(2000) {
		t.Errorf("expected merged duration 2000, got %v", f[FieldDuration])
	}
}

func TestWithError_TypedNilRefinement(t *testing.T) {
	l, buf := newJSONLogger(t, Config{})
	var verr *validation.Error
	l.WithError(fmt.Errorf("signup: %w", verr)).Error("rejected")

	m := decodeLine(t, buf)
	if _, ok := m[FieldErrorKind]; ok {
		t.Error("typed nil refinement should not carry a kind")
	}
	if ErrorObject(verr) != nil {
		t.Error("expected nil marshaler for a typed nil refinement")
	}
	if _, ok := ErrorFields("signup", verr)[FieldErrorType]; ok {
		t.Error("typed nil refinement should not carry a type")
	}
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		globalLogger = nil
	})
	Init(Config{Level: "loud", Format: "json", Output: "stdout"})
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Errorf("expected global level info, got %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tc := range tests {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatsAcceptedByValidateAreRendered(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatConsole, FormatPretty} {
		cfg := Config{Level: "info", Format: format, Output: "stdout"}
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected %q to validate, got %v", format, err)
		}
		var buf bytes.Buffer
		NewWithWriter(&cfg, "svc", &buf).Info("hello")
		isJSON := json.Valid(bytes.TrimSpace(buf.Bytes()))
		if wantJSON := format == FormatJSON; isJSON != wantJSON {
			t.Errorf("format %q: expected JSON output %v, got %v (%q)", format, wantJSON, isJSON, buf.String())
		}
	}
}
