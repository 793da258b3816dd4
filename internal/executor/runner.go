package executor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ksyq12/siteup/internal/errors"
	"github.com/ksyq12/siteup/internal/logger"
)

// Runner executes privileged commands on behalf of the site operations.
// Every command line is printed before it runs so the operator can see
// exactly what was executed.
type Runner struct {
	exec CommandExecutor
	sudo bool
	out  io.Writer
}

// NewRunner creates a Runner printing to stdout.
// When sudo is true every command is prefixed with sudo.
func NewRunner(exec CommandExecutor, sudo bool) *Runner {
	return &Runner{exec: exec, sudo: sudo, out: os.Stdout}
}

// SetOutput redirects the command echo (for testing)
func (r *Runner) SetOutput(w io.Writer) {
	r.out = w
}

// Run executes the command and returns a *errors.CommandError when it exits
// non-zero. The caller is expected to stop on the first failure.
func (r *Runner) Run(name string, args ...string) error {
	name, args = r.privileged(name, args)
	line := Quote(name, args...)
	_, _ = fmt.Fprintf(r.out, "Running command: %s\n", line)

	output, err := r.exec.Execute(name, args...)
	return r.result(line, output, err)
}

// RunInput is Run with input fed to the command's stdin.
func (r *Runner) RunInput(input string, name string, args ...string) error {
	name, args = r.privileged(name, args)
	line := Quote(name, args...)
	_, _ = fmt.Fprintf(r.out, "Running command: %s\n", line)

	output, err := r.exec.ExecuteInput(input, name, args...)
	return r.result(line, output, err)
}

func (r *Runner) privileged(name string, args []string) (string, []string) {
	if !r.sudo {
		return name, args
	}
	return "sudo", append([]string{name}, args...)
}

func (r *Runner) result(line string, output []byte, err error) error {
	logger.DebugFields("command finished", map[string]interface{}{
		"command": line,
		"output":  strings.TrimSpace(string(output)),
		"ok":      err == nil,
	})
	if err == nil {
		return nil
	}

	cmdErr := &errors.CommandError{
		Command: line,
		Code:    ExitStatus(err),
		Output:  strings.TrimSpace(string(output)),
		Err:     err,
	}
	_, _ = fmt.Fprintf(r.out, "Error running command: %v\n", cmdErr)
	if cmdErr.Output != "" {
		_, _ = fmt.Fprintln(r.out, cmdErr.Output)
	}
	return cmdErr
}

// Quote renders a command and its arguments as a shell command line,
// single-quoting arguments that contain shell metacharacters.
func Quote(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(name))
	for _, a := range args {
		parts = append(parts, quoteArg(a))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`|&;<>()*?[]{}!#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
