package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ksyq12/siteup/internal/platform"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Paths       Paths            `yaml:"paths"`
	Service     string           `yaml:"service"`
	Sudo        bool             `yaml:"sudo"`
	HostsMethod string           `yaml:"hosts_method"`
	LogFile     string           `yaml:"log_file,omitempty"`
	Sites       map[string]*Site `yaml:"sites"`

	// path is where Save writes; empty means ConfigPath()
	path string
	// stored holds the settings as read from the file, without env overrides
	stored *settings
}

// settings is the part of Config that environment overrides may change
type settings struct {
	Paths       Paths
	Service     string
	Sudo        bool
	HostsMethod string
	LogFile     string
}

func (c *Config) settings() *settings {
	return &settings{
		Paths:       c.Paths,
		Service:     c.Service,
		Sudo:        c.Sudo,
		HostsMethod: c.HostsMethod,
		LogFile:     c.LogFile,
	}
}

// Paths contains every filesystem location siteup touches
type Paths struct {
	ProjectsDir    string `yaml:"projects_dir"`
	WebRoot        string `yaml:"web_root"`
	SitesAvailable string `yaml:"sites_available"`
	SitesEnabled   string `yaml:"sites_enabled"`
	LogDir         string `yaml:"log_dir"`
	HostsFile      string `yaml:"hosts_file"`
}

// Hosts file editing methods
const (
	HostsMethodCommand = "command"
	HostsMethodFile    = "file"
)

// configDir is the default config directory
const configDir = ".config/siteup"
const configFile = "config.yaml"
const envFile = "siteup.env"

// defaultProjectsDir is relative to the user's home directory
const defaultProjectsDir = "projects/web"

// New creates a new Config with default values
func New() *Config {
	p := platform.Defaults()
	projects := defaultProjectsDir
	if home, err := os.UserHomeDir(); err == nil {
		projects = filepath.Join(home, defaultProjectsDir)
	}

	return &Config{
		Paths: Paths{
			ProjectsDir:    projects,
			WebRoot:        p.WebRoot,
			SitesAvailable: p.SitesAvailable,
			SitesEnabled:   p.SitesEnabled,
			LogDir:         p.LogDir,
			HostsFile:      p.HostsFile,
		},
		Service:     p.Service,
		Sudo:        true,
		HostsMethod: HostsMethodCommand,
		Sites:       make(map[string]*Site),
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// ConfigPath returns the config file path
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config from the default location
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, then applies SITEUP_* overrides from
// siteup.env next to it and from the process environment.
func LoadFrom(path string) (*Config, error) {
	cfg := New()
	cfg.path = path

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	if cfg.Sites == nil {
		cfg.Sites = make(map[string]*Site)
	}
	cfg.stored = cfg.settings()

	// godotenv.Load never overrides variables already set in the environment
	envPath := filepath.Join(filepath.Dir(path), envFile)
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.Paths.ProjectsDir = expandHome(cfg.Paths.ProjectsDir)
	cfg.LogFile = expandHome(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	overrides := map[string]*string{
		"SITEUP_PROJECTS_DIR":    &c.Paths.ProjectsDir,
		"SITEUP_WEB_ROOT":        &c.Paths.WebRoot,
		"SITEUP_SITES_AVAILABLE": &c.Paths.SitesAvailable,
		"SITEUP_SITES_ENABLED":   &c.Paths.SitesEnabled,
		"SITEUP_LOG_DIR":         &c.Paths.LogDir,
		"SITEUP_HOSTS_FILE":      &c.Paths.HostsFile,
		"SITEUP_SERVICE":         &c.Service,
		"SITEUP_HOSTS_METHOD":    &c.HostsMethod,
		"SITEUP_LOG_FILE":        &c.LogFile,
	}
	for key, field := range overrides {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*field = v
		}
	}

	if v := strings.TrimSpace(os.Getenv("SITEUP_SUDO")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SITEUP_SUDO value %q: %w", v, err)
		}
		c.Sudo = b
	}
	return nil
}

// Validate checks that every configured path is usable
func (c *Config) Validate() error {
	paths := map[string]string{
		"projects_dir":    c.Paths.ProjectsDir,
		"web_root":        c.Paths.WebRoot,
		"sites_available": c.Paths.SitesAvailable,
		"sites_enabled":   c.Paths.SitesEnabled,
		"log_dir":         c.Paths.LogDir,
		"hosts_file":      c.Paths.HostsFile,
	}
	for key, p := range paths {
		if p == "" {
			return fmt.Errorf("config %s cannot be empty", key)
		}
		if !filepath.IsAbs(p) {
			return fmt.Errorf("config %s must be an absolute path: %s", key, p)
		}
	}

	switch c.HostsMethod {
	case HostsMethodCommand, HostsMethodFile:
	default:
		return fmt.Errorf("invalid hosts_method %q (valid: %s, %s)", c.HostsMethod, HostsMethodCommand, HostsMethodFile)
	}

	if c.Service == "" {
		return fmt.Errorf("config service cannot be empty")
	}
	return nil
}

// Path returns the file Save writes to
func (c *Config) Path() (string, error) {
	if c.path != "" {
		return c.path, nil
	}
	return ConfigPath()
}

// Save writes the config to disk. A loaded config keeps the settings it was
// read with, so SITEUP_* overrides never end up in the file; only the site
// records reflect the current state.
func (c *Config) Save() error {
	path, err := c.Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := *c
	if c.stored != nil {
		out.Paths = c.stored.Paths
		out.Service = c.stored.Service
		out.Sudo = c.stored.Sudo
		out.HostsMethod = c.stored.HostsMethod
		out.LogFile = c.stored.LogFile
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// SiteDir returns the source directory of a site
func (c *Config) SiteDir(name string) string {
	return filepath.Join(c.Paths.ProjectsDir, name)
}

// LinkPath returns the served-root symlink of a site
func (c *Config) LinkPath(name string) string {
	return filepath.Join(c.Paths.WebRoot, name)
}

// ConfFile returns the virtual host config file of a site
func (c *Config) ConfFile(name string) string {
	return filepath.Join(c.Paths.SitesAvailable, name+".conf")
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
