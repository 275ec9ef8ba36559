package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Boomerang-Apps/wave-sub012/internal/config"
)

// ProjectPathCheck verifies the configured project path points at a real
// directory.
type ProjectPathCheck struct {
	ConfigPath string
}

func (c *ProjectPathCheck) Name() string     { return "project_path" }
func (c *ProjectPathCheck) Category() string { return "PROJECT" }

func (c *ProjectPathCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot check project path: no config file",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot check project path: config load error",
		}
	}

	projectPath := config.ResolveProjectPath(cfg, path)
	if projectPath == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "No project path configured",
			Suggestion: "Set project.path in your wave.yaml, or run 'wavectl init'",
			Fixable:    true,
		}
	}

	info, err := os.Stat(projectPath)
	if os.IsNotExist(err) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Project path does not exist: %s", projectPath),
			Suggestion: "Check project.path in your wave.yaml",
		}
	}
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot access project path: %v", err),
			Suggestion: "Check directory permissions",
		}
	}
	if !info.IsDir() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Project path is not a directory: %s", projectPath),
			Suggestion: "Point project.path at the project folder, not a file",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Project directory: %s", projectPath),
	}
}

// Fix sets project.path to "." so the project defaults to the directory
// holding the config file. Only missing paths are fixed; a wrong path needs
// the user to say where the project actually lives.
func (c *ProjectPathCheck) Fix() error {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("no config file to fix")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cfg.Project.Path != "" {
		return nil
	}

	return config.SetValue(path, []string{"project", "path"}, ".")
}

// ProjectGitCheck warns when the project is not a git repository. The
// portal's source-control detection inspects the local clone, so without
// .git that card can never report connected.
type ProjectGitCheck struct {
	ConfigPath string
}

func (c *ProjectGitCheck) Name() string     { return "project_git" }
func (c *ProjectGitCheck) Category() string { return "PROJECT" }

func (c *ProjectGitCheck) Run() CheckResult {
	projectPath := resolveProject(c.ConfigPath)
	if projectPath == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass, // ProjectPathCheck reports the root cause
			Message: "Git check: no project path",
		}
	}

	if _, err := os.Stat(projectPath); err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Git check: project path missing",
		}
	}

	if _, err := os.Stat(filepath.Join(projectPath, ".git")); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Not a git repository: %s", projectPath),
			Suggestion: "Run 'git init' or point project.path at a cloned repository",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Git repository detected",
	}
}

func (c *ProjectGitCheck) Fix() error {
	return nil
}

// resolveProject loads the config and resolves the project path, returning
// "" when any step fails.
func resolveProject(configPath string) string {
	path, err := config.Find(configPath)
	if err != nil || path == "" {
		return ""
	}
	cfg, err := config.Load(path)
	if err != nil {
		return ""
	}
	return config.ResolveProjectPath(cfg, path)
}

// NewProjectChecks creates all project directory checks.
func NewProjectChecks(configPath string) []Check {
	return []Check{
		&ProjectPathCheck{ConfigPath: configPath},
		&ProjectGitCheck{ConfigPath: configPath},
	}
}
