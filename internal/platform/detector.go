// Package platform provides platform-specific default paths for the Apache
// layout siteup manages.
package platform

import (
	"fmt"
	"os"
	"runtime"
)

// PlatformPaths contains the detected web server paths.
type PlatformPaths struct {
	SitesAvailable string
	SitesEnabled   string
	WebRoot        string
	LogDir         string
	HostsFile      string
	Service        string
}

// debianPaths is the a2ensite/a2dissite layout shipped by Debian and Ubuntu.
var debianPaths = PlatformPaths{
	SitesAvailable: "/etc/apache2/sites-available",
	SitesEnabled:   "/etc/apache2/sites-enabled",
	WebRoot:        "/var/www",
	LogDir:         "/var/log/apache2",
	HostsFile:      "/etc/hosts",
	Service:        "apache2",
}

// DetectPaths returns platform-specific default paths.
// It checks for common installation locations based on the OS.
func DetectPaths() (*PlatformPaths, error) {
	switch runtime.GOOS {
	case "darwin":
		return detectDarwinPaths()
	case "linux":
		return detectLinuxPaths(), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// detectDarwinPaths detects paths for macOS (Homebrew httpd).
func detectDarwinPaths() (*PlatformPaths, error) {
	for _, prefix := range []string{"/opt/homebrew", "/usr/local"} {
		if !pathExists(prefix) {
			continue
		}
		return &PlatformPaths{
			SitesAvailable: prefix + "/etc/httpd/sites-available",
			SitesEnabled:   prefix + "/etc/httpd/sites-enabled",
			WebRoot:        prefix + "/var/www",
			LogDir:         prefix + "/var/log/httpd",
			HostsFile:      "/etc/hosts",
			Service:        "httpd",
		}, nil
	}

	return nil, fmt.Errorf("homebrew installation not found (checked /opt/homebrew and /usr/local)")
}

// detectLinuxPaths always falls back to the Debian layout, since a2ensite
// only exists there.
func detectLinuxPaths() *PlatformPaths {
	p := debianPaths
	return &p
}

// Defaults returns DetectPaths, or the Debian layout when detection fails.
func Defaults() *PlatformPaths {
	if p, err := DetectPaths(); err == nil {
		return p
	}
	p := debianPaths
	return &p
}

// pathExists checks if a path exists on the filesystem.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
