package hosts

import (
	"fmt"
	"os"
	"strings"
)

// FileEditor edits the hosts file in place without external commands
type FileEditor struct {
	path string
}

// NewFileEditor creates an editor for the hosts file at path
func NewFileEditor(path string) *FileEditor {
	return &FileEditor{path: path}
}

// Path returns the hosts file path
func (e *FileEditor) Path() string {
	return e.path
}

// AddEntry appends the site's line, creating the file if needed
func (e *FileEditor) AddEntry(name string) error {
	line := EntryLine(name) + "\n"

	// Keep the new entry on its own line when the file lacks a trailing newline
	if data, err := os.ReadFile(e.path); err == nil && len(data) > 0 && data[len(data)-1] != '\n' {
		line = "\n" + line
	}

	f, err := os.OpenFile(e.path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", e.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to add %s to %s: %w", name, e.path, err)
	}
	return nil
}

// RemoveEntries deletes every line containing name
func (e *FileEditor) RemoveEntries(name string) error {
	if name == "" {
		return fmt.Errorf("refusing to remove hosts entries for an empty name")
	}

	info, err := os.Stat(e.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", e.path, err)
	}

	data, err := os.ReadFile(e.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", e.path, err)
	}

	kept, removed := filterLines(string(data), name)
	if removed == 0 {
		return nil
	}

	if err := os.WriteFile(e.path, []byte(kept), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.path, err)
	}
	return nil
}

// filterLines drops every line containing name and reports how many went.
// A trailing newline on the input is preserved.
func filterLines(content, name string) (string, int) {
	trailing := strings.HasSuffix(content, "\n")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	kept := make([]string, 0, len(lines))
	removed := 0
	for _, line := range lines {
		if strings.Contains(line, name) {
			removed++
			continue
		}
		kept = append(kept, line)
	}

	out := strings.Join(kept, "\n")
	if trailing && len(kept) > 0 {
		out += "\n"
	}
	return out, removed
}
