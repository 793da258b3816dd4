package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/ksyq12/siteup/internal/config"
	"github.com/ksyq12/siteup/internal/executor"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader ConfigLoader
	Executor     executor.CommandExecutor
	StdinReader  StdinReader
	Stdout       io.Writer
}

// ConfigLoader handles configuration loading and saving
type ConfigLoader interface {
	// Load reads the config at path, or the default location when empty
	Load(path string) (*config.Config, error)
	Save(cfg *config.Config) error
}

// StdinReader reads from stdin
type StdinReader interface {
	ReadString(delim byte) (string, error)
}

// Package-level dependencies, replaced by NewTestHelper in tests
var deps = &Dependencies{
	ConfigLoader: &realConfigLoader{},
	Executor:     executor.NewSystemExecutor(),
	StdinReader:  &realStdinReader{},
	Stdout:       os.Stdout,
}

// Real implementations that delegate to existing functions

type realConfigLoader struct{}

func (r *realConfigLoader) Load(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func (r *realConfigLoader) Save(cfg *config.Config) error {
	return cfg.Save()
}

type realStdinReader struct {
	reader *bufio.Reader
}

func (r *realStdinReader) ReadString(delim byte) (string, error) {
	if r.reader == nil {
		r.reader = bufio.NewReader(os.Stdin)
	}
	return r.reader.ReadString(delim)
}
