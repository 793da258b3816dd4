package site

import (
	"fmt"
	"os"
	"sort"

	"github.com/ksyq12/siteup/internal/config"
	"github.com/ksyq12/siteup/internal/hosts"
	"github.com/ksyq12/siteup/internal/logger"
)

// StateUntracked is reported for a site folder with no site record
const StateUntracked = "untracked"

// Status describes a site's recorded state next to its artifacts on disk
type Status struct {
	Name      string   `json:"name"`
	State     string   `json:"state"`
	Dir       bool     `json:"dir"`
	Link      bool     `json:"link"`
	Config    bool     `json:"config"`
	Enabled   bool     `json:"enabled"`
	HostEntry bool     `json:"host_entry"`
	Drift     []string `json:"drift,omitempty"`
}

// Status inspects a single site. It never modifies anything.
func (m *Manager) Status(name string) (Status, error) {
	if err := ValidateName(name); err != nil {
		return Status{}, err
	}

	st := Status{Name: name, State: StateUntracked}
	var err error

	if st.Dir, err = pathExists(m.cfg.SiteDir(name)); err != nil {
		return st, fmt.Errorf("failed to check site folder: %w", err)
	}
	if st.Link, err = pathExists(m.cfg.LinkPath(name)); err != nil {
		return st, fmt.Errorf("failed to check symbolic link: %w", err)
	}
	if st.Config, err = pathExists(m.cfg.ConfFile(name)); err != nil {
		return st, fmt.Errorf("failed to check config file: %w", err)
	}
	if st.Enabled, err = m.driver.IsEnabled(name); err != nil {
		return st, err
	}
	if st.HostEntry, err = hosts.HasEntry(m.hosts.Path(), name); err != nil {
		logger.Debug("could not read hosts file: %v", err)
	}

	if rec, err := m.cfg.GetSite(name); err == nil {
		st.State = rec.State
		st.Drift = drift(rec, st)
	}
	return st, nil
}

// List returns the status of every recorded site and every folder in the
// projects directory, sorted by name.
func (m *Manager) List() ([]Status, error) {
	names := make(map[string]struct{})
	for _, rec := range m.cfg.ListSites() {
		names[rec.Name] = struct{}{}
	}

	entries, err := os.ReadDir(m.cfg.Paths.ProjectsDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read projects directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			names[e.Name()] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	result := make([]Status, 0, len(sorted))
	for _, name := range sorted {
		st, err := m.Status(name)
		if err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	return result, nil
}

// drift lists every way the artifacts disagree with the recorded state
func drift(rec *config.Site, st Status) []string {
	var issues []string
	if !st.Dir {
		issues = append(issues, "site folder missing")
	}

	switch rec.State {
	case config.StateEnabled:
		if !st.Link {
			issues = append(issues, "symlink missing")
		}
		if !st.Config {
			issues = append(issues, "config missing")
		}
		if !st.Enabled {
			issues = append(issues, "not enabled in web server")
		}
	case config.StateCreated, config.StateDisabled:
		if st.Link {
			issues = append(issues, "symlink present")
		}
		if st.Config {
			issues = append(issues, "config present")
		}
	}

	if rec.HostEntry && !st.HostEntry {
		issues = append(issues, "hosts entry missing")
	}
	return issues
}
