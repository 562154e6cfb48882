package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAppliesDefaultsWhenNoFileOrEnv(t *testing.T) {
	path := writeConfigFile(t, `{"api_key":"from-file"}`)

	s, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default %q", s.BaseURL, DefaultBaseURL)
	}
	if s.Miles != 25 {
		t.Errorf("Miles = %d, want default 25", s.Miles)
	}
	if s.RateLimitRequests != 60 || s.RateLimitWindow != 60 {
		t.Errorf("rate limit defaults = %d/%d, want 60/60", s.RateLimitRequests, s.RateLimitWindow)
	}
	if s.APIKey != "from-file" {
		t.Errorf("APIKey = %q, want from-file", s.APIKey)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `{"api_key":"from-file"}`)
	t.Setenv("RESCUE_GROUPS_API_KEY", "from-env")

	s, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want from-env (env beats file)", s.APIKey)
	}
}

func TestLoadCLIOverridesBeatEnvAndFile(t *testing.T) {
	path := writeConfigFile(t, `{"api_key":"from-file"}`)
	t.Setenv("RESCUE_GROUPS_API_KEY", "from-env")

	s, err := Load(path, Overrides{APIKey: "from-cli"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.APIKey != "from-cli" {
		t.Errorf("APIKey = %q, want from-cli (CLI flags win)", s.APIKey)
	}
}

func TestLoadTrimsTrailingSlashFromOverrideBaseURL(t *testing.T) {
	path := writeConfigFile(t, `{"api_key":"k"}`)

	s, err := Load(path, Overrides{BaseURL: "https://example.test/v5/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BaseURL != "https://example.test/v5" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", s.BaseURL)
	}
}

func TestLoadMissingAPIKeyFailsValidation(t *testing.T) {
	path := writeConfigFile(t, `{}`)

	if _, err := Load(path, Overrides{}); err == nil {
		t.Fatal("expected a validation error for a missing api_key")
	}
}

func TestLoadRejectsMalformedBaseURL(t *testing.T) {
	path := writeConfigFile(t, `{"api_key":"k","base_url":"not-a-url"}`)

	if _, err := Load(path, Overrides{}); err == nil {
		t.Fatal("expected a validation error for a malformed base_url")
	}
}

func TestLoadMissingConfigFileIsNotFatalWhenEnvSuppliesKey(t *testing.T) {
	t.Setenv("RESCUE_GROUPS_API_KEY", "from-env")
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	s, err := Load("", Overrides{})
	if err != nil {
		t.Fatalf("unexpected error with no config file present: %v", err)
	}
	if s.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want from-env", s.APIKey)
	}
}
