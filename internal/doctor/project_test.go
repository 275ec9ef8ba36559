package doctor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProjectPathCheck(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, "app"), 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("project directory exists", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, "exists.yaml", `version: 1
project:
  path: app
`)

		check := &ProjectPathCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
		if !strings.Contains(result.Message, "app") {
			t.Errorf("expected resolved path in message, got %q", result.Message)
		}
	})

	t.Run("path does not exist", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, "missing.yaml", `version: 1
project:
  path: gone
`)

		check := &ProjectPathCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v: %s", result.Status, result.Message)
		}
		if result.Suggestion == "" {
			t.Error("expected a suggestion for the missing directory")
		}
	})

	t.Run("path is a file", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(tmpDir, "notadir.txt"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		cfgPath := writeConfig(t, tmpDir, "file.yaml", `version: 1
project:
  path: notadir.txt
`)

		check := &ProjectPathCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v: %s", result.Status, result.Message)
		}
		if !strings.Contains(result.Message, "not a directory") {
			t.Errorf("expected 'not a directory' in message, got %q", result.Message)
		}
	})

	t.Run("empty project path", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, "empty.yaml", `version: 1
project:
  path: ""
`)

		check := &ProjectPathCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v: %s", result.Status, result.Message)
		}
		if !result.Fixable {
			t.Error("expected the missing path to be fixable")
		}
	})

	t.Run("fix sets project path", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, "fixme.yaml", `version: 1
project:
  path: ""
`)

		check := &ProjectPathCheck{ConfigPath: cfgPath}
		if result := check.Run(); result.Status != StatusFail {
			t.Fatalf("expected StatusFail before fix, got %v", result.Status)
		}

		if err := check.Fix(); err != nil {
			t.Fatalf("Fix: %v", err)
		}

		result := check.Run()
		if result.Status != StatusPass {
			t.Errorf("expected StatusPass after fix, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("no config file", func(t *testing.T) {
		check := &ProjectPathCheck{ConfigPath: filepath.Join(tmpDir, "nonexistent.yaml")}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v", result.Status)
		}
	})

	t.Run("name and category", func(t *testing.T) {
		check := &ProjectPathCheck{}
		if check.Name() != "project_path" {
			t.Errorf("expected name 'project_path', got %s", check.Name())
		}
		if check.Category() != "PROJECT" {
			t.Errorf("expected category 'PROJECT', got %s", check.Category())
		}
	})
}

func TestProjectGitCheck(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, "repo", ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "app"), 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("git repository", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, "repo.yaml", `version: 1
project:
  path: repo
`)

		check := &ProjectGitCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("not a git repository", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, "nogit.yaml", `version: 1
project:
  path: app
`)

		check := &ProjectGitCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusWarn {
			t.Errorf("expected StatusWarn, got %v: %s", result.Status, result.Message)
		}
		if !strings.Contains(result.Suggestion, "git init") {
			t.Errorf("expected 'git init' in suggestion, got %q", result.Suggestion)
		}
	})

	t.Run("project path missing", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, "gitmissing.yaml", `version: 1
project:
  path: gone
`)

		check := &ProjectGitCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("no config file", func(t *testing.T) {
		check := &ProjectGitCheck{ConfigPath: filepath.Join(tmpDir, "nonexistent.yaml")}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v", result.Status)
		}
	})

	t.Run("name and category", func(t *testing.T) {
		check := &ProjectGitCheck{}
		if check.Name() != "project_git" {
			t.Errorf("expected name 'project_git', got %s", check.Name())
		}
		if check.Category() != "PROJECT" {
			t.Errorf("expected category 'PROJECT', got %s", check.Category())
		}
	})
}

func TestNewProjectChecks(t *testing.T) {
	checks := NewProjectChecks("")

	if len(checks) != 2 {
		t.Errorf("expected 2 project checks, got %d", len(checks))
	}

	for _, check := range checks {
		if check.Category() != "PROJECT" {
			t.Errorf("expected PROJECT category, got %s", check.Category())
		}
	}
}
