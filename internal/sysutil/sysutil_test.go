package sysutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetLogLevel_AllVariants(t *testing.T) {
	orig := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(orig) })

	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"  DeBuG  ", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"unknown", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		SetLogLevel(tc.in)
		if got := zerolog.GlobalLevel(); got != tc.want {
			t.Fatalf("SetLogLevel(%q) -> %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestConfigureLogger(t *testing.T) {
	orig := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(orig) })

	var buf bytes.Buffer
	lg := ConfigureLogger(&buf, "info", false)
	lg.Debug().Msg("hidden")
	lg.Info().Str("k", "v").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %q", buf.String())
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatalf("json log line: %v", err)
	}
	if m["message"] != "shown" || m["k"] != "v" || m["time"] == nil {
		t.Fatalf("unexpected log fields: %v", m)
	}

	buf.Reset()
	lg = ConfigureLogger(&buf, "debug", true)
	lg.Debug().Msg("pretty")
	if out := buf.String(); !strings.Contains(out, "pretty") || strings.HasPrefix(out, "{") {
		t.Fatalf("expected console output, got %q", out)
	}
}

func TestEnvFiles(t *testing.T) {
	if got := EnvFiles(""); !reflect.DeepEqual(got, []string{".env"}) {
		t.Fatalf("EnvFiles(\"\") = %v", got)
	}
	if got := EnvFiles(" Test "); !reflect.DeepEqual(got, []string{".env.test", ".env"}) {
		t.Fatalf("EnvFiles(test) = %v", got)
	}
}

func TestLoadEnv_SpecificFileWinsAndProcessEnvKept(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write(".env.test", "NEWSAPI_A=from-test\n")
	write(".env", "NEWSAPI_A=from-base\nNEWSAPI_B=base\nNEWSAPI_C=base\n")

	t.Setenv("NEWSAPI_C", "process")
	t.Setenv("NEWSAPI_A", "")
	t.Setenv("NEWSAPI_B", "")
	os.Unsetenv("NEWSAPI_A")
	os.Unsetenv("NEWSAPI_B")

	loaded, err := LoadEnv("test")
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if !reflect.DeepEqual(loaded, []string{".env.test", ".env"}) {
		t.Fatalf("loaded = %v", loaded)
	}
	if os.Getenv("NEWSAPI_A") != "from-test" || os.Getenv("NEWSAPI_B") != "base" || os.Getenv("NEWSAPI_C") != "process" {
		t.Fatalf("unexpected env: A=%q B=%q C=%q",
			os.Getenv("NEWSAPI_A"), os.Getenv("NEWSAPI_B"), os.Getenv("NEWSAPI_C"))
	}

	loaded, err = LoadEnv("production")
	if err != nil || !reflect.DeepEqual(loaded, []string{".env"}) {
		t.Fatalf("missing env file should be skipped: %v %v", loaded, err)
	}
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", " yes ", "Y", "on"} {
		if !IsTruthy(v) {
			t.Fatalf("IsTruthy(%q) = false", v)
		}
	}
	for _, v := range []string{"", "0", "false", "no", "off", "random"} {
		if IsTruthy(v) {
			t.Fatalf("IsTruthy(%q) = true", v)
		}
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("NEWSAPI_BLANK", "  ")
	if Getenv("NEWSAPI_BLANK", "d") != "d" {
		t.Fatal("blank should fall back")
	}
	t.Setenv("NEWSAPI_SET", " v ")
	if Getenv("NEWSAPI_SET", "d") != "v" {
		t.Fatal("set value should be trimmed")
	}
}
