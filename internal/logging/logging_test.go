package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel(""); got != slog.LevelInfo {
		t.Errorf("got %v, want info", got)
	}
}

func TestParseLevelRecognizesBareTokens(t *testing.T) {
	cases := map[string]slog.Level{
		"trace":   slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseLevelHandlesModuleQualifiedPairs(t *testing.T) {
	if got := parseLevel("hyper=warn"); got != slog.LevelWarn {
		t.Errorf("got %v, want warn", got)
	}
}

func TestParseLevelTakesFirstRecognizedTokenFromCSV(t *testing.T) {
	if got := parseLevel("debug,hyper=warn"); got != slog.LevelDebug {
		t.Errorf("got %v, want debug (first token wins)", got)
	}
}

func TestParseLevelUnrecognizedFallsBackToInfo(t *testing.T) {
	if got := parseLevel("nonsense"); got != slog.LevelInfo {
		t.Errorf("got %v, want info", got)
	}
}

func TestRedactReplacesSecretOccurrences(t *testing.T) {
	got := Redact("key=abc123 failed", "abc123")
	want := "key=[REDACTED] failed"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRedactNoOpOnEmptySecret(t *testing.T) {
	s := "nothing to redact here"
	if got := Redact(s, ""); got != s {
		t.Errorf("got %q, want unchanged %q", got, s)
	}
}

func TestRedactNoMatchLeavesStringUnchanged(t *testing.T) {
	s := "no secret present"
	if got := Redact(s, "topsecret"); got != s {
		t.Errorf("got %q, want unchanged %q", got, s)
	}
}
