package driver

// MockDriver is a test double for Driver interface
type MockDriver struct {
	name  string
	paths Paths

	// Function mocks - set these to customize behavior
	EnableSiteFunc  func(name string) error
	DisableSiteFunc func(name string) error
	ReloadFunc      func() error
	IsEnabledFunc   func(name string) (bool, error)

	// Call tracking - check these to verify interactions
	EnableCalls  []string
	DisableCalls []string
	ReloadCalls  int
	// Order records every call as "enable:<name>", "disable:<name>" or "reload"
	Order []string
}

// NewMockDriver creates a new MockDriver with default no-op implementations
func NewMockDriver(name, availableDir, enabledDir string) *MockDriver {
	return &MockDriver{
		name: name,
		paths: Paths{
			Available: availableDir,
			Enabled:   enabledDir,
		},
		EnableCalls:  make([]string, 0),
		DisableCalls: make([]string, 0),
	}
}

// Name returns the driver name
func (m *MockDriver) Name() string {
	return m.name
}

// Paths returns the configured paths
func (m *MockDriver) Paths() Paths {
	return m.paths
}

// EnableSite records the call and invokes the mock function if set
func (m *MockDriver) EnableSite(name string) error {
	m.EnableCalls = append(m.EnableCalls, name)
	m.Order = append(m.Order, "enable:"+name)
	if m.EnableSiteFunc != nil {
		return m.EnableSiteFunc(name)
	}
	return nil
}

// DisableSite records the call and invokes the mock function if set
func (m *MockDriver) DisableSite(name string) error {
	m.DisableCalls = append(m.DisableCalls, name)
	m.Order = append(m.Order, "disable:"+name)
	if m.DisableSiteFunc != nil {
		return m.DisableSiteFunc(name)
	}
	return nil
}

// Reload records the call and invokes the mock function if set
func (m *MockDriver) Reload() error {
	m.ReloadCalls++
	m.Order = append(m.Order, "reload")
	if m.ReloadFunc != nil {
		return m.ReloadFunc()
	}
	return nil
}

// IsEnabled invokes the mock function if set
func (m *MockDriver) IsEnabled(name string) (bool, error) {
	if m.IsEnabledFunc != nil {
		return m.IsEnabledFunc(name)
	}
	return false, nil
}

// Reset clears all call tracking
func (m *MockDriver) Reset() {
	m.EnableCalls = make([]string, 0)
	m.DisableCalls = make([]string, 0)
	m.ReloadCalls = 0
	m.Order = nil
}
