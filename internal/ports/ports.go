// Package ports defines the interfaces between the session core and the
// infrastructure adapters (HTTP providers, stores, terminal I/O). The
// application layer depends on these abstractions only.
package ports

import (
	"context"
	"errors"

	"github.com/doeshing/wtf/internal/domain"
)

// ErrInterrupted is returned by a LineReader when the user sends an
// interrupt signal while a prompt is pending. One interrupt aborts the
// current turn; it does not end the session.
var ErrInterrupted = errors.New("interrupted")

// Provider generates raw text from a user prompt and a system prompt via a
// remote model API. Exactly one outbound call per invocation, no retries.
type Provider interface {
	Name() string
	Generate(ctx context.Context, userPrompt, systemPrompt string) (string, error)
}

// ContextHarvester gathers ambient working-directory and version-control
// snippets to enrich the system prompt. The result may be empty; harvesting
// failures degrade silently.
type ContextHarvester interface {
	Harvest(ctx context.Context) string
}

// HistoryStore is the append-only, size-bounded log of (prompt, command)
// pairs persisted across process runs.
type HistoryStore interface {
	Append(prompt, command string) error
	List() ([]domain.HistoryEntry, error)
	Clear() error
	Path() string
}

// CommandExecutor runs a finished command string in the host shell and
// returns its captured output and exit status.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// LineReader reads one line of interactive input. Implementations map
// terminal interrupts to ErrInterrupted and end-of-input to io.EOF, and may
// persist their own input history on Close.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// Clipboard copies text to the system clipboard when a platform tool is
// available.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// ResponseCache memoizes raw provider responses within one process.
type ResponseCache interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Logger is the structured logging abstraction used across layers.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
