// Package hosts edits the static host-name resolution file (/etc/hosts).
//
// Two editors implement the same capability:
//
//   - CommandEditor appends with `tee -a` and deletes with `sed -i`, run
//     through a privileged command runner. This is the default, since the
//     hosts file is normally owned by root.
//   - FileEditor rewrites the file directly. It is used when the file is
//     writable by the current user (hosts_method: file) and in tests.
//
// Both editors share the same semantics: AddEntry appends a loopback line
// without checking for duplicates, and RemoveEntries deletes every line that
// contains the site name anywhere, not only exact entries.
package hosts

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoopbackAddress is the address every site entry resolves to
const LoopbackAddress = "127.0.0.1"

// Editor adds and removes site entries in the hosts file
type Editor interface {
	// AddEntry appends "127.0.0.1 <name>"
	AddEntry(name string) error

	// RemoveEntries deletes every line containing name
	RemoveEntries(name string) error

	// Path returns the hosts file being edited
	Path() string
}

// EntryLine returns the hosts line for a site
func EntryLine(name string) string {
	return LoopbackAddress + " " + name
}

// HasEntry reports whether the hosts file maps name to any address.
// Comments are ignored and a missing file has no entries.
func HasEntry(path, name string) (bool, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to open hosts file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		for _, host := range fields[1:] {
			if host == name {
				return true, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("failed to read hosts file: %w", err)
	}
	return false, nil
}
