package hosts

import (
	"fmt"
	"strings"
)

// CommandRunner runs privileged commands, optionally feeding stdin
type CommandRunner interface {
	Run(name string, args ...string) error
	RunInput(input string, name string, args ...string) error
}

// CommandEditor edits the hosts file through external commands
type CommandEditor struct {
	path   string
	runner CommandRunner
}

// NewCommandEditor creates an editor for the hosts file at path
func NewCommandEditor(path string, runner CommandRunner) *CommandEditor {
	return &CommandEditor{path: path, runner: runner}
}

// Path returns the hosts file path
func (e *CommandEditor) Path() string {
	return e.path
}

// AddEntry appends the site's line with tee -a
func (e *CommandEditor) AddEntry(name string) error {
	if err := e.runner.RunInput(EntryLine(name)+"\n", "tee", "-a", e.path); err != nil {
		return fmt.Errorf("failed to add %s to %s: %w", name, e.path, err)
	}
	return nil
}

// RemoveEntries deletes every line containing name with sed -i
func (e *CommandEditor) RemoveEntries(name string) error {
	if name == "" {
		return fmt.Errorf("refusing to remove hosts entries for an empty name")
	}
	if err := e.runner.Run("sed", "-i", DeleteScript(name), e.path); err != nil {
		return fmt.Errorf("failed to remove %s from %s: %w", name, e.path, err)
	}
	return nil
}

// DeleteScript returns the sed script deleting every line that contains
// name as a literal substring
func DeleteScript(name string) string {
	return "/" + escapeBRE(name) + "/d"
}

// escapeBRE escapes the characters that are special in a sed basic regular
// expression delimited by slashes
func escapeBRE(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '/', '.', '*', '[', ']', '^', '$':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
