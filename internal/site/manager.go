package site

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ksyq12/siteup/internal/config"
	"github.com/ksyq12/siteup/internal/driver"
	"github.com/ksyq12/siteup/internal/errors"
	"github.com/ksyq12/siteup/internal/hosts"
	"github.com/ksyq12/siteup/internal/input"
	"github.com/ksyq12/siteup/internal/logger"
	"github.com/ksyq12/siteup/internal/output"
	"github.com/ksyq12/siteup/internal/template"
)

// CommandRunner runs a privileged command, echoing it first
type CommandRunner interface {
	Run(name string, args ...string) error
}

// Deps groups the collaborators of a Manager
type Deps struct {
	Driver driver.Driver
	Hosts  hosts.Editor
	Runner CommandRunner
	Input  input.Reader
	Output *output.Printer

	// Save persists the site records; nil means cfg.Save
	Save func(cfg *config.Config) error
}

// Manager performs the site lifecycle operations
type Manager struct {
	cfg    *config.Config
	driver driver.Driver
	hosts  hosts.Editor
	runner CommandRunner
	in     input.Reader
	out    *output.Printer
	save   func(cfg *config.Config) error
}

// NewManager creates a Manager operating on the paths in cfg
func NewManager(cfg *config.Config, d Deps) *Manager {
	m := &Manager{
		cfg:    cfg,
		driver: d.Driver,
		hosts:  d.Hosts,
		runner: d.Runner,
		in:     d.Input,
		out:    d.Output,
		save:   d.Save,
	}
	if m.out == nil {
		m.out = output.Default()
	}
	if m.in == nil {
		m.in = input.NewStdinReader()
	}
	if m.save == nil {
		m.save = func(cfg *config.Config) error { return cfg.Save() }
	}
	return m
}

// ValidateName rejects names that cannot be used as a single path segment
func ValidateName(name string) error {
	if name == "" {
		return errors.InvalidName(name, "name cannot be empty")
	}
	if name == "." || name == ".." || strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return errors.InvalidName(name, "name must be a single path segment")
	}
	return nil
}

// Create makes the site's source directory with placeholder pages.
// An existing directory is left untouched.
func (m *Manager) Create(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	dir := m.cfg.SiteDir(name)
	exists, err := pathExists(dir)
	if err != nil {
		return errors.WrapSite(errors.ErrCodeInternal, name, "failed to check site folder", err)
	}
	if exists {
		logger.Debug("site folder %s already exists, nothing to create", dir)
		if _, err := m.cfg.GetSite(name); err != nil {
			m.transition(name, m.seedState(name), dir)
			m.persist()
		}
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.WrapSite(errors.ErrCodeInternal, name, "failed to create site folder", err)
	}
	m.out.Print("Created site directory: %s", dir)

	pages, err := template.RenderPlaceholders(name)
	if err != nil {
		return errors.WrapSite(errors.ErrCodeInternal, name, "failed to render placeholder pages", err)
	}
	for _, page := range pages {
		path := filepath.Join(dir, page.FileName)
		if err := os.WriteFile(path, []byte(page.Content), 0644); err != nil {
			return errors.WrapSite(errors.ErrCodeInternal, name, "failed to write "+page.FileName, err)
		}
		m.out.Print("Created %s at: %s", page.FileName, path)
	}

	m.transition(name, config.StateCreated, dir)
	m.persist()
	return nil
}

// Enable links the site into the web root, writes its virtual host config
// when absent, activates it and reloads the web server. With withHosts a
// loopback entry is appended to the hosts file.
func (m *Manager) Enable(name string, withHosts bool) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	dir := m.cfg.SiteDir(name)
	exists, err := pathExists(dir)
	if err != nil {
		return errors.WrapSite(errors.ErrCodeInternal, name, "failed to check site folder", err)
	}
	if !exists {
		return errors.SiteDirMissing(name, dir)
	}

	link := m.cfg.LinkPath(name)
	linked, err := pathExists(link)
	if err != nil {
		return errors.WrapSite(errors.ErrCodeInternal, name, "failed to check symbolic link", err)
	}
	if linked {
		m.out.Print("Symbolic link already exists: %s", link)
	} else {
		if err := os.Symlink(dir, link); err != nil {
			return errors.WrapSite(errors.ErrCodeInternal, name, "failed to create symbolic link", err)
		}
		m.out.Print("Created symbolic link: %s", link)
	}

	if err := m.writeVHost(name, dir); err != nil {
		return err
	}

	if err := m.driver.EnableSite(name); err != nil {
		return err
	}
	if err := m.driver.Reload(); err != nil {
		return err
	}

	if withHosts {
		if err := m.hosts.AddEntry(name); err != nil {
			return err
		}
		m.out.Print("Added %s to %s", name, m.hosts.Path())
	}

	m.transition(name, config.StateEnabled, dir)
	if withHosts {
		m.cfg.SetHostEntry(name, true)
	}
	m.persist()
	m.out.Success("Enabled site: %s", name)
	return nil
}

// writeVHost renders the site's config file unless one already exists.
// An existing file may have been customized and is never regenerated.
func (m *Manager) writeVHost(name, dir string) error {
	conf := m.cfg.ConfFile(name)
	exists, err := pathExists(conf)
	if err != nil {
		return errors.WrapSite(errors.ErrCodeInternal, name, "failed to check config file", err)
	}
	if exists {
		logger.Debug("keeping existing config %s", conf)
		return nil
	}

	content, err := template.RenderVHost(template.VHostData{
		Name:         name,
		DocumentRoot: dir,
		LogDir:       m.cfg.Paths.LogDir,
	})
	if err != nil {
		return errors.WrapSite(errors.ErrCodeInternal, name, "failed to render config", err)
	}
	if err := os.WriteFile(conf, []byte(content), 0644); err != nil {
		return errors.WrapSite(errors.ErrCodeInternal, name, "failed to write config", err)
	}
	logger.Debug("wrote config %s", conf)
	return nil
}

// Disable deactivates the site and removes its symlink and config file.
// A missing config file means there is nothing to disable. With withHosts
// every hosts line containing the name is deleted.
func (m *Manager) Disable(name string, withHosts bool) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	conf := m.cfg.ConfFile(name)
	exists, err := pathExists(conf)
	if err != nil {
		return errors.WrapSite(errors.ErrCodeInternal, name, "failed to check config file", err)
	}
	if !exists {
		m.out.Print("Apache configuration file does not exist: %s", conf)
		return nil
	}

	if err := m.driver.DisableSite(name); err != nil {
		return err
	}
	if err := m.driver.Reload(); err != nil {
		return err
	}

	link := m.cfg.LinkPath(name)
	linked, err := pathExists(link)
	if err != nil {
		return errors.WrapSite(errors.ErrCodeInternal, name, "failed to check symbolic link", err)
	}
	if linked {
		if err := os.Remove(link); err != nil {
			return errors.WrapSite(errors.ErrCodeInternal, name, "failed to remove symbolic link", err)
		}
		m.out.Print("Removed symbolic link: %s", link)
	}

	if exists, err = pathExists(conf); err != nil {
		return errors.WrapSite(errors.ErrCodeInternal, name, "failed to check config file", err)
	}
	if exists {
		if err := os.Remove(conf); err != nil {
			return errors.WrapSite(errors.ErrCodeInternal, name, "failed to remove config file", err)
		}
		m.out.Print("Removed Apache configuration file: %s", conf)
	}

	if withHosts {
		if err := m.removeHostEntries(name); err != nil {
			return err
		}
	}

	m.transition(name, config.StateDisabled, m.cfg.SiteDir(name))
	m.persist()
	m.out.Success("Disabled site: %s", name)
	return nil
}

// Delete asks for confirmation, disables the site without touching the
// hosts file and recursively removes its source directory.
func (m *Manager) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	m.out.Prompt("Are you sure you want to completely delete all files, folders, and configurations for site '%s'? (yes/no): ", name)
	if !input.Confirm(m.in) {
		m.out.Print("Deletion canceled.")
		return nil
	}

	dir := m.cfg.SiteDir(name)
	exists, err := pathExists(dir)
	if err != nil {
		return errors.WrapSite(errors.ErrCodeInternal, name, "failed to check site folder", err)
	}
	if exists {
		if err := checkInside(name, dir, m.cfg.Paths.ProjectsDir); err != nil {
			return err
		}
	}

	if err := m.Disable(name, false); err != nil {
		return err
	}

	if exists {
		if err := m.runner.Run("rm", "-rf", dir); err != nil {
			return err
		}
		m.out.Print("Removed site directory: %s", dir)
	}

	if err := m.cfg.RemoveSite(name); err == nil {
		m.persist()
	}
	return nil
}

// RemoveHost deletes every hosts line containing the name, regardless of
// the site's state.
func (m *Manager) RemoveHost(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := m.removeHostEntries(name); err != nil {
		return err
	}
	if _, err := m.cfg.GetSite(name); err == nil {
		m.persist()
	}
	return nil
}

func (m *Manager) removeHostEntries(name string) error {
	if err := m.hosts.RemoveEntries(name); err != nil {
		return err
	}
	m.out.Print("Removed %s from %s", name, m.hosts.Path())
	m.cfg.SetHostEntry(name, false)
	return nil
}

func (m *Manager) transition(name, state, root string) {
	if _, err := m.cfg.Transition(name, state, root); err != nil {
		logger.Warn("failed to record state of %s: %v", name, err)
	}
}

// persist saves the site records. A failed save is reported but never fails
// the operation, whose effects are already on disk.
func (m *Manager) persist() {
	if err := m.save(m.cfg); err != nil {
		m.out.Warn("Site state not saved: %v", err)
	}
}

// checkInside verifies that dir resolves to a path strictly inside root.
// A root resolving to the filesystem root is refused outright.
func checkInside(name, dir, root string) error {
	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return errors.WrapSite(errors.ErrCodeValidation, name, "failed to resolve projects directory", err)
	}
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return errors.WrapSite(errors.ErrCodeValidation, name, "failed to resolve site folder", err)
	}

	if realRoot == string(filepath.Separator) {
		return errors.OutsideRoot(name, realDir, realRoot)
	}

	rel, err := filepath.Rel(realRoot, realDir)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return errors.OutsideRoot(name, realDir, realRoot)
	}
	return nil
}

// pathExists reports whether path exists without following a final symlink
// seedState picks the state for a site found on disk without a record
func (m *Manager) seedState(name string) string {
	enabled, err := m.driver.IsEnabled(name)
	if err != nil {
		logger.Debug("could not check whether %s is enabled: %v", name, err)
		return config.StateCreated
	}
	if conf, _ := pathExists(m.cfg.ConfFile(name)); enabled && conf {
		return config.StateEnabled
	}
	return config.StateCreated
}

func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
