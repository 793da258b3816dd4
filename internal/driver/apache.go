package driver

import (
	"fmt"
	"os"
	"path/filepath"
)

// CommandRunner runs a privileged command, echoing it first
type CommandRunner interface {
	Run(name string, args ...string) error
}

// ApacheDriver implements the Driver interface with the Debian
// a2ensite/a2dissite tooling
type ApacheDriver struct {
	paths   Paths
	service string
	runner  CommandRunner
}

// NewApache creates a new Apache driver with default paths
func NewApache(runner CommandRunner) *ApacheDriver {
	return NewApacheWithPaths("/etc/apache2/sites-available", "/etc/apache2/sites-enabled", "apache2", runner)
}

// NewApacheWithPaths creates a new Apache driver with custom paths and
// service name
func NewApacheWithPaths(available, enabled, service string, runner CommandRunner) *ApacheDriver {
	return &ApacheDriver{
		paths: Paths{
			Available: available,
			Enabled:   enabled,
		},
		service: service,
		runner:  runner,
	}
}

// Name returns the driver name
func (a *ApacheDriver) Name() string {
	return "apache"
}

// Paths returns the config paths
func (a *ApacheDriver) Paths() Paths {
	return a.paths
}

// EnableSite runs a2ensite for the site's config file
func (a *ApacheDriver) EnableSite(name string) error {
	if err := a.runner.Run("a2ensite", ConfigFileName(name)); err != nil {
		return fmt.Errorf("failed to enable site %s: %w", name, err)
	}
	return nil
}

// DisableSite runs a2dissite for the site's config file
func (a *ApacheDriver) DisableSite(name string) error {
	if err := a.runner.Run("a2dissite", ConfigFileName(name)); err != nil {
		return fmt.Errorf("failed to disable site %s: %w", name, err)
	}
	return nil
}

// Reload reloads apache to apply changes
func (a *ApacheDriver) Reload() error {
	if err := a.runner.Run("systemctl", "reload", a.service); err != nil {
		return fmt.Errorf("failed to reload %s: %w", a.service, err)
	}
	return nil
}

// IsEnabled checks for the site's entry in sites-enabled
func (a *ApacheDriver) IsEnabled(name string) (bool, error) {
	target := filepath.Join(a.paths.Enabled, ConfigFileName(name))
	_, err := os.Lstat(target)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check site status: %w", err)
	}
	return true, nil
}
