package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_AcceptsExampleTemplate(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("expected example config to validate: %v", err)
	}
	if cfg.Goal.DailyTargetHours != 8.5 {
		t.Fatalf("expected default daily target 8.5, got %v", cfg.Goal.DailyTargetHours)
	}
	if cfg.Storage.DB != "./daylog.db" {
		t.Fatalf("unexpected db path: %q", cfg.Storage.DB)
	}
}

func TestValidateYAMLContent_RejectsNonPositiveTarget(t *testing.T) {
	t.Parallel()

	content := []byte(`user: "me"
goal:
  daily_target_hours: 0
storage:
  db: "./daylog.db"
`)

	_, err := ValidateYAMLContent(content)
	if err == nil {
		t.Fatalf("expected validation error for zero daily target")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateYAMLContent_RejectsBlankUser(t *testing.T) {
	t.Parallel()

	content := []byte(`user: "   "
goal:
  daily_target_hours: 8.5
storage:
  db: "./daylog.db"
`)

	if _, err := ValidateYAMLContent(content); err == nil {
		t.Fatalf("expected validation error for blank user")
	}
}

func TestValidateYAMLContent_DefaultsApplyWhenOmitted(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(`user: "alice"`))
	if err != nil {
		t.Fatalf("expected minimal config to validate: %v", err)
	}
	if cfg.Goal.DailyTargetHours != 8.5 {
		t.Fatalf("expected default daily target, got %v", cfg.Goal.DailyTargetHours)
	}
}
