package driver

// Driver is the web server capability the site operations depend on
type Driver interface {
	// Name returns the driver name
	Name() string

	// EnableSite activates the site's config with the web server
	EnableSite(name string) error

	// DisableSite deactivates the site's config
	DisableSite(name string) error

	// Reload reloads the web server
	Reload() error

	// IsEnabled checks if the site's config is active
	IsEnabled(name string) (bool, error)

	// Paths returns the driver's config paths
	Paths() Paths
}

// Paths contains the web server config directory paths
type Paths struct {
	Available string // config available directory
	Enabled   string // config enabled directory
}

// ConfigFileName returns the config file name of a site
func ConfigFileName(name string) string {
	return name + ".conf"
}
