// Package executor runs finished command strings in the host shell.
package executor

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/doeshing/wtf/internal/domain"
	"github.com/doeshing/wtf/internal/ports"
)

// Local runs commands via `shell -c`. Shell defaults to $SHELL, then /bin/sh.
type Local struct {
	shell string
}

// NewLocal builds a local executor.
func NewLocal(shell string) *Local {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &Local{shell: shell}
}

// Execute runs command and returns its captured output and exit status. A
// non-zero exit is reported in the result, not as an error; only failing to
// start the shell at all is an error.
func (e *Local) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	cmd := exec.CommandContext(ctx, e.shell, "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := domain.ExecutionResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

var _ ports.CommandExecutor = (*Local)(nil)
