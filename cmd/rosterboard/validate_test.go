package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeCmd runs the root command with args and returns captured stdout and
// any error.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	// restore stdout
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	return buf.String(), err
}

// writeFile writes content to name inside a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestRunValidate_ValidConfig(t *testing.T) {
	configPath := writeFile(t, "config.yaml", `
title: 3학년 2반
port: 8080
variant: graded
session_ttl: 45m
students:
  - name: 김철수
    age: 14
    score: 3
    grade: 1
    class: 3
`)

	output, err := executeCmd(t, "validate", "-c", configPath, "--env-file", "")
	if err != nil {
		t.Fatalf("validate command error = %v", err)
	}

	expectedPhrases := []string{
		"Config is valid!",
		"Title:       3학년 2반",
		"Port:        8080",
		"Variant:     graded",
		"Session TTL: 45m0s",
		"Students:    1 (configured)",
	}

	for _, phrase := range expectedPhrases {
		if !strings.Contains(output, phrase) {
			t.Errorf("output missing %q\nGot: %s", phrase, output)
		}
	}
}

func TestRunValidate_SeedRows(t *testing.T) {
	configPath := writeFile(t, "config.yaml", "variant: slider\n")

	output, err := executeCmd(t, "validate", "-c", configPath, "--env-file", "")
	if err != nil {
		t.Fatalf("validate command error = %v", err)
	}
	if !strings.Contains(output, "Students:    5 (variant seed)") {
		t.Errorf("output missing seed count\nGot: %s", output)
	}
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	configPath := writeFile(t, "invalid.yaml", `
students:
  - name: ""
    age: 14
    score: 5
`)

	_, err := executeCmd(t, "validate", "-c", configPath, "--env-file", "")
	if err == nil {
		t.Fatal("validate command expected error for invalid config, got nil")
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Errorf("error should mention 'name is required', got: %v", err)
	}
}

func TestRunValidate_StudentDoesNotFitVariant(t *testing.T) {
	configPath := writeFile(t, "config.yaml", `
variant: slider
students:
  - name: 김철수
    age: 14
    score: 8
`)

	_, err := executeCmd(t, "validate", "-c", configPath, "--env-file", "")
	if err == nil || !strings.Contains(err.Error(), "outside 1-5") {
		t.Errorf("validate error = %v, want a score domain error", err)
	}
}

func TestRunValidate_MissingFile(t *testing.T) {
	_, err := executeCmd(t, "validate", "-c", "/nonexistent/path/config.yaml", "--env-file", "")
	if err == nil {
		t.Fatal("validate command expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error should mention 'failed to read', got: %v", err)
	}
}

func TestRunValidate_EnvFile(t *testing.T) {
	const key = "ROSTERBOARD_TEST_TITLE"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	envPath := writeFile(t, ".env", key+"=환경 파일 제목\n")
	configPath := writeFile(t, "config.yaml", "title: \"${"+key+"}\"\n")

	output, err := executeCmd(t, "validate", "-c", configPath, "--env-file", envPath)
	if err != nil {
		t.Fatalf("validate command error = %v", err)
	}
	if !strings.Contains(output, "Title:       환경 파일 제목") {
		t.Errorf("title not taken from env file\nGot: %s", output)
	}
}
