package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ksyq12/siteup/internal/config"
	"github.com/ksyq12/siteup/internal/executor"
)

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg       *config.Config
	LoadErr   error
	SaveErr   error
	LoadPaths []string
	SaveCalls int
}

func (m *MockConfigLoader) Load(path string) (*config.Config, error) {
	m.LoadPaths = append(m.LoadPaths, path)
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

func (m *MockConfigLoader) Save(cfg *config.Config) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cfg = cfg
	return nil
}

// MockStdinReader is a test double for StdinReader
type MockStdinReader struct {
	Input string
	pos   int
}

func (m *MockStdinReader) ReadString(delim byte) (string, error) {
	if m.pos >= len(m.Input) {
		return "", errors.New("EOF")
	}
	idx := strings.IndexByte(m.Input[m.pos:], delim)
	if idx == -1 {
		result := m.Input[m.pos:]
		m.pos = len(m.Input)
		return result, nil
	}
	result := m.Input[m.pos : m.pos+idx+1]
	m.pos += idx + 1
	return result, nil
}

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			ConfigLoader: &MockConfigLoader{Cfg: config.New()},
			Executor:     &executor.MockExecutor{},
			StdinReader:  &MockStdinReader{},
			Stdout:       &bytes.Buffer{},
		},
	}
}

// WithConfig sets the config for the mock
func (b *MockDependenciesBuilder) WithConfig(cfg *config.Config) *MockDependenciesBuilder {
	b.deps.ConfigLoader = &MockConfigLoader{Cfg: cfg}
	return b
}

// WithConfigLoader sets a custom config loader
func (b *MockDependenciesBuilder) WithConfigLoader(loader ConfigLoader) *MockDependenciesBuilder {
	b.deps.ConfigLoader = loader
	return b
}

// WithExecutor sets the command executor
func (b *MockDependenciesBuilder) WithExecutor(exec executor.CommandExecutor) *MockDependenciesBuilder {
	b.deps.Executor = exec
	return b
}

// WithStdinInput sets the stdin input for the mock
func (b *MockDependenciesBuilder) WithStdinInput(input string) *MockDependenciesBuilder {
	b.deps.StdinReader = &MockStdinReader{Input: input}
	return b
}

// WithStdout sets where command output goes
func (b *MockDependenciesBuilder) WithStdout(out *bytes.Buffer) *MockDependenciesBuilder {
	b.deps.Stdout = out
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}

// TestHelper provides utilities for CLI tests
type TestHelper struct {
	T interface {
		Helper()
		Cleanup(func())
		TempDir() string
		Fatalf(format string, args ...interface{})
	}
	OldDeps    *Dependencies
	MockExec   *executor.MockExecutor
	MockConfig *MockConfigLoader
	Stdout     *bytes.Buffer
}

// NewTestHelper installs mock dependencies with every configured path
// inside a temp dir. Sudo stays on so recorded commands carry the prefix.
func NewTestHelper(t interface {
	Helper()
	Cleanup(func())
	TempDir() string
	Fatalf(format string, args ...interface{})
}) *TestHelper {
	t.Helper()
	root := t.TempDir()

	cfg := config.New()
	cfg.Paths = config.Paths{
		ProjectsDir:    filepath.Join(root, "projects", "web"),
		WebRoot:        filepath.Join(root, "www"),
		SitesAvailable: filepath.Join(root, "sites-available"),
		SitesEnabled:   filepath.Join(root, "sites-enabled"),
		LogDir:         "/var/log/apache2",
		HostsFile:      filepath.Join(root, "hosts"),
	}
	for _, dir := range []string{cfg.Paths.WebRoot, cfg.Paths.SitesAvailable, cfg.Paths.SitesEnabled} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(cfg.Paths.HostsFile, []byte("127.0.0.1 localhost\n"), 0644); err != nil {
		t.Fatalf("failed to create hosts file: %v", err)
	}

	helper := &TestHelper{
		T:          t,
		OldDeps:    deps,
		MockExec:   &executor.MockExecutor{},
		MockConfig: &MockConfigLoader{Cfg: cfg},
		Stdout:     &bytes.Buffer{},
	}

	deps = NewMockDeps().
		WithConfigLoader(helper.MockConfig).
		WithExecutor(helper.MockExec).
		WithStdout(helper.Stdout).
		Build()

	// Cleanup function to restore the previous deps
	t.Cleanup(func() {
		deps = helper.OldDeps
	})

	return helper
}

// SetStdinInput sets the stdin input
func (h *TestHelper) SetStdinInput(input string) {
	deps.StdinReader = &MockStdinReader{Input: input}
}

// GetConfig returns the current mock config
func (h *TestHelper) GetConfig() *config.Config {
	return h.MockConfig.Cfg
}

// Run executes siteup with args and returns the exit code
func (h *TestHelper) Run(args ...string) int {
	return execute(args)
}
