package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/doeshing/wtf/internal/pkg/filesystem"
	"github.com/doeshing/wtf/internal/ports"
)

// LineReader wraps liner: line editing, Ctrl-C mapped to
// ports.ErrInterrupted, and input history persisted under ~/.wtf. This
// input history is the readline-level one, separate from the command log.
type LineReader struct {
	state       *liner.State
	historyPath string
}

// NewLineReader opens the terminal and loads prior input history when the
// history file is readable.
func NewLineReader() *LineReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	path := filepath.Join(filesystem.ConfigDir(), "input_history")
	if f, err := os.Open(path); err == nil {
		_, _ = state.ReadHistory(f)
		f.Close()
	}
	return &LineReader{state: state, historyPath: path}
}

// ReadLine reads one line of input under the given prompt.
func (r *LineReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ports.ErrInterrupted
	}
	return line, err
}

// AppendHistory records a line in the input history.
func (r *LineReader) AppendHistory(line string) {
	r.state.AppendHistory(line)
}

// Close persists the input history if a path is available and restores the
// terminal.
func (r *LineReader) Close() error {
	if err := os.MkdirAll(filepath.Dir(r.historyPath), 0o755); err == nil {
		if f, err := os.Create(r.historyPath); err == nil {
			_, _ = r.state.WriteHistory(f)
			f.Close()
		}
	}
	return r.state.Close()
}

var _ ports.LineReader = (*LineReader)(nil)
