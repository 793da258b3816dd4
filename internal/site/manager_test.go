package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/ksyq12/siteup/internal/config"
	"github.com/ksyq12/siteup/internal/driver"
	"github.com/ksyq12/siteup/internal/errors"
	"github.com/ksyq12/siteup/internal/executor"
	"github.com/ksyq12/siteup/internal/hosts"
	"github.com/ksyq12/siteup/internal/input"
	"github.com/ksyq12/siteup/internal/output"
)

func init() {
	color.NoColor = true
}

const baseHosts = "127.0.0.1 localhost\n"

type fixture struct {
	cfg     *config.Config
	mgr     *Manager
	drv     *driver.MockDriver
	exec    *executor.MockExecutor
	out     *bytes.Buffer
	saves   int
	saveErr error
}

// newFixture points every configured path into a temp dir. stdin holds the
// answers to confirmation prompts.
func newFixture(t *testing.T, stdin ...string) *fixture {
	t.Helper()
	root := t.TempDir()

	cfg := config.New()
	cfg.Paths = config.Paths{
		ProjectsDir:    filepath.Join(root, "projects", "web"),
		WebRoot:        filepath.Join(root, "www"),
		SitesAvailable: filepath.Join(root, "sites-available"),
		SitesEnabled:   filepath.Join(root, "sites-enabled"),
		LogDir:         "/var/log/apache2",
		HostsFile:      filepath.Join(root, "hosts"),
	}
	for _, dir := range []string{cfg.Paths.WebRoot, cfg.Paths.SitesAvailable, cfg.Paths.SitesEnabled} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(cfg.Paths.HostsFile, []byte(baseHosts), 0644); err != nil {
		t.Fatal(err)
	}

	f := &fixture{
		cfg:  cfg,
		drv:  driver.NewMockDriver("apache", cfg.Paths.SitesAvailable, cfg.Paths.SitesEnabled),
		out:  &bytes.Buffer{},
		exec: &executor.MockExecutor{},
	}
	// rm -rf really removes so deletion can be observed
	f.exec.ExecuteFunc = func(name string, args ...string) ([]byte, error) {
		if name == "sudo" && len(args) == 3 && args[0] == "rm" && args[1] == "-rf" {
			return nil, os.RemoveAll(args[2])
		}
		return nil, nil
	}

	runner := executor.NewRunner(f.exec, true)
	runner.SetOutput(f.out)

	f.mgr = NewManager(cfg, Deps{
		Driver: f.drv,
		Hosts:  hosts.NewFileEditor(cfg.Paths.HostsFile),
		Runner: runner,
		Input:  input.NewStringReader(stdin...),
		Output: output.New(f.out),
		Save: func(*config.Config) error {
			f.saves++
			return f.saveErr
		},
	})
	return f
}

func (f *fixture) hostsContent(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.cfg.Paths.HostsFile)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func (f *fixture) state(name string) string {
	if rec, ok := f.cfg.Sites[name]; ok {
		return rec.State
	}
	return ""
}

func onDisk(t *testing.T, path string) bool {
	t.Helper()
	ok, err := pathExists(path)
	if err != nil {
		t.Fatal(err)
	}
	return ok
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"testsite", false},
		{"my.site.local", false},
		{"UPPER_case-1", false},
		{"", true},
		{".", true},
		{"..", true},
		{"a/b", true},
		{"../etc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrInvalidName) {
				t.Errorf("ValidateName(%q) = %v, want ErrInvalidName", tt.name, err)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	f := newFixture(t)

	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	dir := f.cfg.SiteDir("testsite")
	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("index.html not created: %v", err)
	}
	if !strings.Contains(string(index), "<h1>Welcome to testsite</h1>") {
		t.Errorf("index.html does not mention the site:\n%s", index)
	}
	info, err := os.ReadFile(filepath.Join(dir, "info.php"))
	if err != nil {
		t.Fatalf("info.php not created: %v", err)
	}
	if !strings.Contains(string(info), "phpinfo();") {
		t.Errorf("unexpected info.php:\n%s", info)
	}

	out := f.out.String()
	for _, want := range []string{
		"Created site directory: " + dir,
		"Created index.html at: " + filepath.Join(dir, "index.html"),
		"Created info.php at: " + filepath.Join(dir, "info.php"),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if f.state("testsite") != config.StateCreated {
		t.Errorf("expected record state created, got %q", f.state("testsite"))
	}
	if f.cfg.Sites["testsite"].Root != dir {
		t.Errorf("expected record root %s, got %s", dir, f.cfg.Sites["testsite"].Root)
	}
}

func TestCreate_Twice(t *testing.T) {
	f := newFixture(t)
	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatal(err)
	}

	index := filepath.Join(f.cfg.SiteDir("testsite"), "index.html")
	custom := "<p>my own page</p>\n"
	if err := os.WriteFile(index, []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}
	f.out.Reset()

	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatalf("second Create failed: %v", err)
	}

	data, _ := os.ReadFile(index)
	if string(data) != custom {
		t.Errorf("existing content was overwritten:\n%s", data)
	}
	if f.out.Len() != 0 {
		t.Errorf("second Create should be silent, got:\n%s", f.out.String())
	}
}

func TestCreate_ExistingFolderWithoutRecord(t *testing.T) {
	f := newFixture(t)
	dir := f.cfg.SiteDir("legacy")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	if err := f.mgr.Create("legacy"); err != nil {
		t.Fatal(err)
	}
	if onDisk(t, filepath.Join(dir, "index.html")) {
		t.Error("placeholders must not be written into an existing folder")
	}
	if f.state("legacy") != config.StateCreated {
		t.Errorf("existing folder should be adopted as created, got %q", f.state("legacy"))
	}
}

func TestCreate_ExistingEnabledSiteWithoutRecord(t *testing.T) {
	f := newFixture(t)
	dir := f.cfg.SiteDir("legacy")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(dir, f.cfg.LinkPath("legacy")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(f.cfg.ConfFile("legacy"), []byte("<VirtualHost *:80>\n</VirtualHost>\n"), 0644); err != nil {
		t.Fatal(err)
	}
	f.drv.IsEnabledFunc = func(name string) (bool, error) { return name == "legacy", nil }

	if err := f.mgr.Create("legacy"); err != nil {
		t.Fatal(err)
	}
	if f.state("legacy") != config.StateEnabled {
		t.Fatalf("enabled site should be adopted as enabled, got %q", f.state("legacy"))
	}

	st, err := f.mgr.Status("legacy")
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Drift) != 0 {
		t.Errorf("adopted site should report no drift, got %v", st.Drift)
	}
}

func TestEnable(t *testing.T) {
	f := newFixture(t)
	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatal(err)
	}
	f.out.Reset()

	if err := f.mgr.Enable("testsite", false); err != nil {
		t.Fatalf("Enable failed: %v", err)
	}

	dir := f.cfg.SiteDir("testsite")
	target, err := os.Readlink(f.cfg.LinkPath("testsite"))
	if err != nil {
		t.Fatalf("symlink not created: %v", err)
	}
	if target != dir {
		t.Errorf("symlink points to %s, want %s", target, dir)
	}

	conf, err := os.ReadFile(f.cfg.ConfFile("testsite"))
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	for _, want := range []string{
		"ServerName testsite",
		"DocumentRoot " + dir,
		"<Directory " + dir + ">",
		"ErrorLog /var/log/apache2/testsite_error.log",
		"CustomLog /var/log/apache2/testsite_access.log combined",
	} {
		if !strings.Contains(string(conf), want) {
			t.Errorf("config missing %q:\n%s", want, conf)
		}
	}

	if got := strings.Join(f.drv.Order, ","); got != "enable:testsite,reload" {
		t.Errorf("unexpected driver calls: %s", got)
	}
	if f.hostsContent(t) != baseHosts {
		t.Error("hosts file must not change without the hosts flag")
	}
	if !strings.Contains(f.out.String(), "Enabled site: testsite") {
		t.Errorf("missing completion notice:\n%s", f.out.String())
	}
	if f.state("testsite") != config.StateEnabled {
		t.Errorf("expected record state enabled, got %q", f.state("testsite"))
	}
}

func TestEnable_MissingFolder(t *testing.T) {
	f := newFixture(t)

	err := f.mgr.Enable("ghost", true)
	if err == nil {
		t.Fatal("expected error for missing site folder")
	}
	if !errors.Is(err, errors.ErrSiteDirMissing) {
		t.Errorf("expected ErrSiteDirMissing, got %v", err)
	}
	if errors.ExitCode(err) != 1 {
		t.Errorf("expected exit code 1, got %d", errors.ExitCode(err))
	}
	if len(f.drv.Order) != 0 {
		t.Errorf("no driver call expected, got %v", f.drv.Order)
	}
	if onDisk(t, f.cfg.LinkPath("ghost")) || onDisk(t, f.cfg.ConfFile("ghost")) {
		t.Error("nothing should be created for a missing site")
	}
	if f.hostsContent(t) != baseHosts {
		t.Error("hosts file must not change")
	}
}

func TestEnable_ExistingArtifactsKept(t *testing.T) {
	f := newFixture(t)
	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatal(err)
	}

	// A link pointing elsewhere is not verified
	elsewhere := t.TempDir()
	if err := os.Symlink(elsewhere, f.cfg.LinkPath("testsite")); err != nil {
		t.Fatal(err)
	}
	custom := "# hand tuned\n<VirtualHost *:8080>\n</VirtualHost>\n"
	if err := os.WriteFile(f.cfg.ConfFile("testsite"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}
	f.out.Reset()

	if err := f.mgr.Enable("testsite", false); err != nil {
		t.Fatalf("Enable failed: %v", err)
	}

	if !strings.Contains(f.out.String(), "Symbolic link already exists: "+f.cfg.LinkPath("testsite")) {
		t.Errorf("missing symlink notice:\n%s", f.out.String())
	}
	if target, _ := os.Readlink(f.cfg.LinkPath("testsite")); target != elsewhere {
		t.Errorf("existing symlink was replaced: %s", target)
	}
	if data, _ := os.ReadFile(f.cfg.ConfFile("testsite")); string(data) != custom {
		t.Errorf("existing config was regenerated:\n%s", data)
	}
	if len(f.drv.EnableCalls) != 1 || f.drv.ReloadCalls != 1 {
		t.Error("enable and reload still run when artifacts exist")
	}
}

func TestEnable_HostsTwiceDuplicates(t *testing.T) {
	f := newFixture(t)
	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if err := f.mgr.Enable("testsite", true); err != nil {
			t.Fatalf("Enable #%d failed: %v", i+1, err)
		}
	}

	if got := strings.Count(f.hostsContent(t), "127.0.0.1 testsite\n"); got != 2 {
		t.Errorf("expected 2 duplicate hosts entries, got %d:\n%s", got, f.hostsContent(t))
	}
	if !strings.Contains(f.out.String(), "Added testsite to "+f.cfg.Paths.HostsFile) {
		t.Errorf("missing hosts notice:\n%s", f.out.String())
	}
	if !f.cfg.Sites["testsite"].HostEntry {
		t.Error("record should note the hosts entry")
	}
}

func TestEnable_CommandFailureStops(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(d *driver.MockDriver)
		wantOrder string
	}{
		{
			name: "enable fails",
			setup: func(d *driver.MockDriver) {
				d.EnableSiteFunc = func(string) error {
					return fmt.Errorf("failed to enable site testsite: %w", &errors.CommandError{Command: "sudo a2ensite testsite.conf", Code: 3})
				}
			},
			wantOrder: "enable:testsite",
		},
		{
			name: "reload fails",
			setup: func(d *driver.MockDriver) {
				d.ReloadFunc = func() error {
					return &errors.CommandError{Command: "sudo systemctl reload apache2", Code: 3}
				}
			},
			wantOrder: "enable:testsite,reload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if err := f.mgr.Create("testsite"); err != nil {
				t.Fatal(err)
			}
			tt.setup(f.drv)

			err := f.mgr.Enable("testsite", true)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.ExitCode(err) != 3 {
				t.Errorf("expected exit code 3, got %d", errors.ExitCode(err))
			}
			if got := strings.Join(f.drv.Order, ","); got != tt.wantOrder {
				t.Errorf("driver calls = %s, want %s", got, tt.wantOrder)
			}

			// Earlier steps are not rolled back, later steps never run
			if !onDisk(t, f.cfg.LinkPath("testsite")) || !onDisk(t, f.cfg.ConfFile("testsite")) {
				t.Error("symlink and config should remain after a failure")
			}
			if f.hostsContent(t) != baseHosts {
				t.Error("hosts entry must not be added after a failure")
			}
			if f.state("testsite") != config.StateCreated {
				t.Errorf("record should stay created, got %q", f.state("testsite"))
			}
		})
	}
}

func TestEnableThenDisable(t *testing.T) {
	f := newFixture(t)
	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatal(err)
	}
	dir := f.cfg.SiteDir("testsite")
	before, _ := os.ReadFile(filepath.Join(dir, "index.html"))

	if err := f.mgr.Enable("testsite", false); err != nil {
		t.Fatal(err)
	}
	f.out.Reset()
	if err := f.mgr.Disable("testsite", false); err != nil {
		t.Fatalf("Disable failed: %v", err)
	}

	if onDisk(t, f.cfg.LinkPath("testsite")) {
		t.Error("symlink should be removed")
	}
	if onDisk(t, f.cfg.ConfFile("testsite")) {
		t.Error("config should be removed")
	}
	after, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil || !bytes.Equal(before, after) {
		t.Error("source folder must be untouched")
	}
	if !onDisk(t, filepath.Join(dir, "info.php")) {
		t.Error("info.php must be untouched")
	}

	if got := strings.Join(f.drv.Order, ","); got != "enable:testsite,reload,disable:testsite,reload" {
		t.Errorf("unexpected driver calls: %s", got)
	}
	out := f.out.String()
	for _, want := range []string{
		"Removed symbolic link: " + f.cfg.LinkPath("testsite"),
		"Removed Apache configuration file: " + f.cfg.ConfFile("testsite"),
		"Disabled site: testsite",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if f.state("testsite") != config.StateDisabled {
		t.Errorf("expected record state disabled, got %q", f.state("testsite"))
	}
}

func TestDisable_NoConfig(t *testing.T) {
	f := newFixture(t)
	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatal(err)
	}
	// A stray symlink is left alone when there is no config
	if err := os.Symlink(f.cfg.SiteDir("testsite"), f.cfg.LinkPath("testsite")); err != nil {
		t.Fatal(err)
	}
	f.out.Reset()

	if err := f.mgr.Disable("testsite", true); err != nil {
		t.Fatalf("Disable should not fail: %v", err)
	}

	if !strings.Contains(f.out.String(), "Apache configuration file does not exist: "+f.cfg.ConfFile("testsite")) {
		t.Errorf("missing notice:\n%s", f.out.String())
	}
	if len(f.drv.Order) != 0 {
		t.Errorf("no driver call expected, got %v", f.drv.Order)
	}
	if !onDisk(t, f.cfg.LinkPath("testsite")) {
		t.Error("symlink must not be touched")
	}
	if f.state("testsite") != config.StateCreated {
		t.Errorf("record should be unchanged, got %q", f.state("testsite"))
	}
}

func TestDisable_UnreadableLinkFails(t *testing.T) {
	f := newFixture(t)
	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatal(err)
	}
	if err := f.mgr.Enable("testsite", false); err != nil {
		t.Fatal(err)
	}
	// Checking a path below a regular file fails with ENOTDIR
	if err := os.RemoveAll(f.cfg.Paths.WebRoot); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(f.cfg.Paths.WebRoot, nil, 0644); err != nil {
		t.Fatal(err)
	}
	f.out.Reset()

	err := f.mgr.Disable("testsite", false)
	if err == nil {
		t.Fatal("expected error when the symlink cannot be checked")
	}
	if strings.Contains(f.out.String(), "Disabled site") {
		t.Errorf("must not report success:\n%s", f.out.String())
	}
	if !onDisk(t, f.cfg.ConfFile("testsite")) {
		t.Error("config file should be kept after the failure")
	}
	if f.state("testsite") != config.StateEnabled {
		t.Errorf("record should stay enabled, got %q", f.state("testsite"))
	}
}

func TestDisable_HostsSubstringRemoval(t *testing.T) {
	f := newFixture(t)
	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatal(err)
	}
	if err := f.mgr.Enable("testsite", true); err != nil {
		t.Fatal(err)
	}

	extra := "10.1.2.3 mytestsite.example.com\n192.168.0.9 testsite-api # staging\n"
	hostsFile, err := os.OpenFile(f.cfg.Paths.HostsFile, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = hostsFile.WriteString(extra)
	hostsFile.Close()

	if err := f.mgr.Disable("testsite", true); err != nil {
		t.Fatalf("Disable failed: %v", err)
	}

	content := f.hostsContent(t)
	if strings.Contains(content, "testsite") {
		t.Errorf("every line containing testsite should be gone:\n%s", content)
	}
	if content != baseHosts {
		t.Errorf("unrelated lines should survive, got:\n%s", content)
	}
	if !strings.Contains(f.out.String(), "Removed testsite from "+f.cfg.Paths.HostsFile) {
		t.Errorf("missing hosts notice:\n%s", f.out.String())
	}
	if f.cfg.Sites["testsite"].HostEntry {
		t.Error("record should no longer note a hosts entry")
	}
}

func TestDelete_NeverEnabled(t *testing.T) {
	f := newFixture(t, "yes\n")
	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatal(err)
	}
	dir := f.cfg.SiteDir("testsite")
	f.out.Reset()

	if err := f.mgr.Delete("testsite"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if onDisk(t, dir) {
		t.Error("site folder should be removed")
	}
	if len(f.drv.Order) != 0 {
		t.Errorf("nothing to disable, got driver calls %v", f.drv.Order)
	}

	lines := f.exec.CommandLines()
	if len(lines) != 1 || lines[0] != executor.Quote("sudo", "rm", "-rf", dir) {
		t.Errorf("unexpected commands: %v", lines)
	}

	out := f.out.String()
	for _, want := range []string{
		"Are you sure you want to completely delete all files, folders, and configurations for site 'testsite'? (yes/no): ",
		"Apache configuration file does not exist",
		"Running command: " + executor.Quote("sudo", "rm", "-rf", dir),
		"Removed site directory: " + dir,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, ok := f.cfg.Sites["testsite"]; ok {
		t.Error("site record should be removed")
	}
}

func TestDelete_Enabled(t *testing.T) {
	f := newFixture(t, "YES\n")
	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatal(err)
	}
	if err := f.mgr.Enable("testsite", true); err != nil {
		t.Fatal(err)
	}
	f.drv.Reset()

	if err := f.mgr.Delete("testsite"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if got := strings.Join(f.drv.Order, ","); got != "disable:testsite,reload" {
		t.Errorf("unexpected driver calls: %s", got)
	}
	for _, p := range []string{f.cfg.SiteDir("testsite"), f.cfg.LinkPath("testsite"), f.cfg.ConfFile("testsite")} {
		if onDisk(t, p) {
			t.Errorf("%s should be removed", p)
		}
	}
	// Delete never touches the hosts file
	if !strings.Contains(f.hostsContent(t), "127.0.0.1 testsite") {
		t.Error("hosts entry should remain after delete")
	}
}

func TestDelete_NotConfirmed(t *testing.T) {
	answers := []struct {
		name  string
		input []string
	}{
		{"no", []string{"no\n"}},
		{"y", []string{"y\n"}},
		{"yess", []string{"yess\n"}},
		{"empty line", []string{"\n"}},
		{"EOF", nil},
	}

	for _, tt := range answers {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.input...)
			if err := f.mgr.Create("testsite"); err != nil {
				t.Fatal(err)
			}
			if err := f.mgr.Enable("testsite", false); err != nil {
				t.Fatal(err)
			}
			f.drv.Reset()
			f.exec.Calls = nil
			f.out.Reset()

			if err := f.mgr.Delete("testsite"); err != nil {
				t.Fatalf("declined Delete should not fail: %v", err)
			}

			if !strings.HasSuffix(f.out.String(), "Deletion canceled.\n") {
				t.Errorf("missing cancel notice:\n%s", f.out.String())
			}
			for _, p := range []string{
				filepath.Join(f.cfg.SiteDir("testsite"), "index.html"),
				f.cfg.LinkPath("testsite"),
				f.cfg.ConfFile("testsite"),
			} {
				if !onDisk(t, p) {
					t.Errorf("%s should be untouched", p)
				}
			}
			if len(f.drv.Order) != 0 || len(f.exec.Calls) != 0 {
				t.Error("no command may run when deletion is declined")
			}
			if f.state("testsite") != config.StateEnabled {
				t.Errorf("record should be unchanged, got %q", f.state("testsite"))
			}
		})
	}
}

func TestDelete_OutsideProjectsDir(t *testing.T) {
	f := newFixture(t, "yes\n")
	outside := t.TempDir()
	if err := os.WriteFile(filepath.Join(outside, "keep.txt"), []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(f.cfg.Paths.ProjectsDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(outside, f.cfg.SiteDir("escape")); err != nil {
		t.Fatal(err)
	}

	err := f.mgr.Delete("escape")
	if err == nil {
		t.Fatal("expected containment error")
	}
	if !errors.Is(err, errors.ErrOutsideRoot) {
		t.Errorf("expected ErrOutsideRoot, got %v", err)
	}
	if len(f.exec.Calls) != 0 || len(f.drv.Order) != 0 {
		t.Error("nothing may run when the folder escapes the projects dir")
	}
	if !onDisk(t, filepath.Join(outside, "keep.txt")) {
		t.Error("outside content must survive")
	}
}

func TestCheckInside(t *testing.T) {
	root := t.TempDir()
	inside := filepath.Join(root, "blog")
	if err := os.MkdirAll(inside, 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("inside", func(t *testing.T) {
		if err := checkInside("blog", inside, root); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("root itself", func(t *testing.T) {
		if err := checkInside("blog", root, root); !errors.Is(err, errors.ErrOutsideRoot) {
			t.Errorf("expected ErrOutsideRoot, got %v", err)
		}
	})

	t.Run("sibling", func(t *testing.T) {
		if err := checkInside("blog", filepath.Dir(root), root); !errors.Is(err, errors.ErrOutsideRoot) {
			t.Errorf("expected ErrOutsideRoot, got %v", err)
		}
	})

	t.Run("filesystem root", func(t *testing.T) {
		if err := checkInside("blog", inside, "/"); !errors.Is(err, errors.ErrOutsideRoot) {
			t.Errorf("expected ErrOutsideRoot, got %v", err)
		}
	})
}

func TestRemoveHost(t *testing.T) {
	f := newFixture(t)
	content := baseHosts + "127.0.0.1 testsite\n127.0.0.1 testsite\n"
	if err := os.WriteFile(f.cfg.Paths.HostsFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// No site record or folder is needed
	if err := f.mgr.RemoveHost("testsite"); err != nil {
		t.Fatalf("RemoveHost failed: %v", err)
	}

	if f.hostsContent(t) != baseHosts {
		t.Errorf("entries should be removed:\n%s", f.hostsContent(t))
	}
	if len(f.drv.Order) != 0 {
		t.Error("RemoveHost must not touch the web server")
	}
	if f.saves != 0 {
		t.Error("no record to save for an unknown site")
	}
}

func TestRemoveHost_ClearsRecord(t *testing.T) {
	f := newFixture(t)
	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatal(err)
	}
	if err := f.mgr.Enable("testsite", true); err != nil {
		t.Fatal(err)
	}

	if err := f.mgr.RemoveHost("testsite"); err != nil {
		t.Fatal(err)
	}
	if f.cfg.Sites["testsite"].HostEntry {
		t.Error("record should no longer note a hosts entry")
	}
	if f.state("testsite") != config.StateEnabled {
		t.Error("RemoveHost must not change the site state")
	}
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.saveErr = fmt.Errorf("read-only file system")

	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatalf("Create should succeed despite save failure: %v", err)
	}
	if !strings.Contains(f.out.String(), "Site state not saved: read-only file system") {
		t.Errorf("missing warning:\n%s", f.out.String())
	}
}

func TestScenario(t *testing.T) {
	f := newFixture(t)
	dir := f.cfg.SiteDir("testsite")

	// create
	if err := f.mgr.Create("testsite"); err != nil {
		t.Fatal(err)
	}
	for _, file := range []string{"index.html", "info.php"} {
		if !onDisk(t, filepath.Join(dir, file)) {
			t.Fatalf("%s missing after create", file)
		}
	}

	// enable --hosts
	if err := f.mgr.Enable("testsite", true); err != nil {
		t.Fatal(err)
	}
	if !onDisk(t, f.cfg.LinkPath("testsite")) || !onDisk(t, f.cfg.ConfFile("testsite")) {
		t.Fatal("symlink and config should exist after enable")
	}
	if got := strings.Count(f.hostsContent(t), "127.0.0.1 testsite\n"); got != 1 {
		t.Fatalf("expected one hosts line, got %d", got)
	}
	if len(f.drv.EnableCalls) != 1 || f.drv.EnableCalls[0] != "testsite" || f.drv.ReloadCalls != 1 {
		t.Fatalf("unexpected driver calls: %v", f.drv.Order)
	}

	// disable --hosts
	if err := f.mgr.Disable("testsite", true); err != nil {
		t.Fatal(err)
	}
	if onDisk(t, f.cfg.LinkPath("testsite")) || onDisk(t, f.cfg.ConfFile("testsite")) {
		t.Fatal("symlink and config should be gone after disable")
	}
	if strings.Contains(f.hostsContent(t), "testsite") {
		t.Fatal("hosts line should be gone after disable")
	}
	for _, file := range []string{"index.html", "info.php"} {
		if !onDisk(t, filepath.Join(dir, file)) {
			t.Fatalf("%s should survive disable", file)
		}
	}
	if len(f.drv.DisableCalls) != 1 || f.drv.DisableCalls[0] != "testsite" || f.drv.ReloadCalls != 2 {
		t.Fatalf("unexpected driver calls: %v", f.drv.Order)
	}
}
