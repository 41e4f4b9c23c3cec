package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate runs the test from an empty directory with an empty HOME so no
// developer .env leaks into Load.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("HOME", tmpDir)
	for _, key := range []string{"USAGE_SOURCE", "FX_SOURCE", "FETCH_TIMEOUT", "NOTIFY_ON_ERROR", "WATCH_FILES", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(key, "")
	}
	return tmpDir
}

func TestGetEnvString(t *testing.T) {
	key := "TEST_ENV_STRING"
	val := "test_value"
	t.Setenv(key, val)

	if got := getEnvString(key, "default"); got != val {
		t.Errorf("getEnvString() = %q, want %q", got, val)
	}

	if got := getEnvString("NON_EXISTENT", "default"); got != "default" {
		t.Errorf("getEnvString() = %q, want %q", got, "default")
	}
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_ENV_DURATION"

	tests := []struct {
		name       string
		envVal     string
		defaultVal time.Duration
		want       time.Duration
	}{
		{"ValidDuration", "1m", time.Second, time.Minute},
		{"ValidSeconds", "60", time.Second, 60 * time.Second},
		{"ZeroDisables", "0", time.Second, 0},
		{"Invalid", "invalid", time.Second, time.Second},
		{"Empty", "", time.Second, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(key, tt.envVal)

			if got := getEnvDuration(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_ENV_BOOL"

	tests := []struct {
		envVal     string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"on", false, true},
		{"false", true, false},
		{"0", true, false},
		{"off", true, false},
		{"", true, true},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		t.Setenv(key, tt.envVal)
		if got := getEnvBool(key, tt.defaultVal); got != tt.want {
			t.Errorf("getEnvBool(%q) = %v, want %v", tt.envVal, got, tt.want)
		}
	}
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir")

	if err := ensureDir(path); err != nil {
		t.Fatalf("ensureDir() failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("directory was not created")
	}

	if err := ensureDir(""); err != nil {
		t.Error("ensureDir(\"\") should not error")
	}
}

func TestGetEnvPaths(t *testing.T) {
	paths := getEnvPaths()
	if len(paths) == 0 {
		t.Error("getEnvPaths() returned empty list")
	}

	cwd, _ := os.Getwd()
	found := false
	for _, p := range paths {
		if p == filepath.Join(cwd, ".env") {
			found = true
			break
		}
	}
	if !found {
		t.Error("getEnvPaths() missing current directory .env")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.UsageSource != defaultUsageSource {
		t.Errorf("UsageSource = %q, want %q", cfg.UsageSource, defaultUsageSource)
	}
	if cfg.FxSource != defaultFxSource {
		t.Errorf("FxSource = %q, want %q", cfg.FxSource, defaultFxSource)
	}
	if cfg.FetchTimeout != defaultFetchTimeout {
		t.Errorf("FetchTimeout = %v, want %v", cfg.FetchTimeout, defaultFetchTimeout)
	}
	if cfg.NotifyOnError {
		t.Error("NotifyOnError should default to false")
	}
	if cfg.WatchFiles {
		t.Error("WatchFiles should default to false")
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := isolate(t)
	logFile := filepath.Join(tmpDir, "logs", "costboard.log")

	t.Setenv("USAGE_SOURCE", "https://example.com/usage.json")
	t.Setenv("FX_SOURCE", "/srv/fx.json")
	t.Setenv("FETCH_TIMEOUT", "5")
	t.Setenv("NOTIFY_ON_ERROR", "true")
	t.Setenv("WATCH_FILES", "on")
	t.Setenv("LOG_FILE", logFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.UsageSource != "https://example.com/usage.json" {
		t.Errorf("UsageSource = %q", cfg.UsageSource)
	}
	if cfg.FxSource != "/srv/fx.json" {
		t.Errorf("FxSource = %q", cfg.FxSource)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout = %v, want 5s", cfg.FetchTimeout)
	}
	if !cfg.NotifyOnError {
		t.Error("NotifyOnError should be true")
	}
	if !cfg.WatchFiles {
		t.Error("WatchFiles should be true")
	}
	if _, err := os.Stat(filepath.Dir(logFile)); err != nil {
		t.Errorf("log directory was not created: %v", err)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	tmpDir := isolate(t)
	os.Unsetenv("FX_SOURCE")

	content := "FX_SOURCE=https://example.com/fx.json\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.FxSource != "https://example.com/fx.json" {
		t.Errorf("FxSource = %q, want value from .env", cfg.FxSource)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Valid", Config{UsageSource: "u", FxSource: "f"}, false},
		{"MissingUsage", Config{UsageSource: " ", FxSource: "f"}, true},
		{"MissingFx", Config{UsageSource: "u"}, true},
		{"NegativeTimeout", Config{UsageSource: "u", FxSource: "f", FetchTimeout: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
