package cli

import (
	"github.com/ksyq12/siteup/internal/config"
	"github.com/ksyq12/siteup/internal/driver"
	"github.com/ksyq12/siteup/internal/errors"
	"github.com/ksyq12/siteup/internal/executor"
	"github.com/ksyq12/siteup/internal/hosts"
	"github.com/ksyq12/siteup/internal/logger"
	"github.com/ksyq12/siteup/internal/output"
	"github.com/ksyq12/siteup/internal/site"
)

// Log file rotation limits
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
)

// loadConfig loads the config through the injected loader
func loadConfig(path string) (*config.Config, error) {
	cfg, err := deps.ConfigLoader.Load(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, "failed to load config", err)
	}
	return cfg, nil
}

// openLogFile mirrors the log into cfg.LogFile when one is configured.
// The returned func detaches the file.
func openLogFile(cfg *config.Config) func() {
	if cfg.LogFile == "" {
		return func() {}
	}
	closer := logger.SetFile(cfg.LogFile, logMaxSizeMB, logMaxBackups)
	return func() {
		if err := closer.Close(); err != nil {
			logger.LogError(err, "failed to close log file")
		}
	}
}

// newRunner creates the command runner every privileged step goes through
func newRunner(cfg *config.Config) *executor.Runner {
	runner := executor.NewRunner(deps.Executor, cfg.Sudo)
	runner.SetOutput(deps.Stdout)
	return runner
}

// newHostsEditor picks the hosts editor for the configured method
func newHostsEditor(cfg *config.Config, runner *executor.Runner) hosts.Editor {
	if cfg.HostsMethod == config.HostsMethodFile {
		return hosts.NewFileEditor(cfg.Paths.HostsFile)
	}
	return hosts.NewCommandEditor(cfg.Paths.HostsFile, runner)
}

// newManager wires the site operations to the configured paths and tools
func newManager(cfg *config.Config) *site.Manager {
	runner := newRunner(cfg)
	drv := driver.NewApacheWithPaths(cfg.Paths.SitesAvailable, cfg.Paths.SitesEnabled, cfg.Service, runner)

	for _, tool := range []string{"a2ensite", "a2dissite", "systemctl"} {
		if _, err := deps.Executor.LookPath(tool); err != nil {
			logger.Debug("%s not found in PATH", tool)
		}
	}

	logger.DebugFields("site manager ready", map[string]interface{}{
		"driver":       drv.Name(),
		"projects_dir": cfg.Paths.ProjectsDir,
		"hosts_method": cfg.HostsMethod,
		"sudo":         cfg.Sudo,
	})

	return site.NewManager(cfg, site.Deps{
		Driver: drv,
		Hosts:  newHostsEditor(cfg, runner),
		Runner: runner,
		Input:  deps.StdinReader,
		Output: output.New(deps.Stdout),
		Save:   deps.ConfigLoader.Save,
	})
}
