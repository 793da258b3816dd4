package config

import (
	"fmt"
	"sort"
	"time"
)

// Site is the persisted state record of a managed site
type Site struct {
	Name      string    `yaml:"name"`
	State     string    `yaml:"state"` // created, enabled, disabled
	Root      string    `yaml:"root"`
	HostEntry bool      `yaml:"host_entry"`
	CreatedAt time.Time `yaml:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// Site state constants
const (
	StateCreated  = "created"
	StateEnabled  = "enabled"
	StateDisabled = "disabled"
)

// ValidStates returns all valid site states
func ValidStates() []string {
	return []string{StateCreated, StateEnabled, StateDisabled}
}

// IsValidState checks if the given state is valid
func IsValidState(s string) bool {
	for _, valid := range ValidStates() {
		if s == valid {
			return true
		}
	}
	return false
}

// GetSite returns a site record by name
func (c *Config) GetSite(name string) (*Site, error) {
	site, exists := c.Sites[name]
	if !exists {
		return nil, fmt.Errorf("site %s not found", name)
	}
	return site, nil
}

// Transition moves a site record to state, creating the record if needed.
func (c *Config) Transition(name, state, root string) (*Site, error) {
	if !IsValidState(state) {
		return nil, fmt.Errorf("invalid site state: %s", state)
	}

	now := time.Now()
	site, exists := c.Sites[name]
	if !exists {
		site = &Site{Name: name, CreatedAt: now}
		c.Sites[name] = site
	}
	site.State = state
	if root != "" {
		site.Root = root
	}
	site.UpdatedAt = now
	return site, nil
}

// SetHostEntry records whether the hosts file carries an entry for the site.
// Unknown sites are ignored.
func (c *Config) SetHostEntry(name string, present bool) {
	if site, exists := c.Sites[name]; exists {
		site.HostEntry = present
		site.UpdatedAt = time.Now()
	}
}

// RemoveSite removes a site record
func (c *Config) RemoveSite(name string) error {
	if _, exists := c.Sites[name]; !exists {
		return fmt.Errorf("site %s not found", name)
	}
	delete(c.Sites, name)
	return nil
}

// ListSites returns all site records sorted by name
func (c *Config) ListSites() []*Site {
	sites := make([]*Site, 0, len(c.Sites))
	for _, s := range c.Sites {
		sites = append(sites, s)
	}
	sort.Slice(sites, func(i, j int) bool {
		return sites[i].Name < sites[j].Name
	})
	return sites
}
