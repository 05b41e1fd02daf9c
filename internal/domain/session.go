// Package domain defines the core entities and value objects shared across
// the application. It is independent of infrastructure concerns.
package domain

// Exchange is one completed turn: what the user asked for and the command
// that was finally committed for it. Exchanges feed the rolling conversation
// window; they are never persisted.
type Exchange struct {
	Prompt  string
	Command string
}

// ExecutionResult wraps the output of running a finished command string in
// the host shell. The session displays it verbatim and never parses it.
type ExecutionResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
