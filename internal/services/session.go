// Package services drives the interactive command-synthesis session: read a
// request, call the provider with rolling conversational context, present
// the sanitized command, run the confirm/edit/execute dialogue, and commit
// the result to history.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/wtf/internal/domain"
	"github.com/doeshing/wtf/internal/pkg/sanitize"
	"github.com/doeshing/wtf/internal/ports"
)

// Session orchestrates one interactive invocation. All dependencies are
// ports; the zero Window starts empty each run.
type Session struct {
	Provider  ports.Provider
	Harvester ports.ContextHarvester
	History   ports.HistoryStore
	Executor  ports.CommandExecutor
	Reader    ports.LineReader
	Clipboard ports.Clipboard
	Cache     ports.ResponseCache
	Logger    ports.Logger
	Out       io.Writer

	window  Window
	pending string
}

const inputPrompt = "wtf> "

// Run executes the interactive loop until the user exits or input ends.
func (s *Session) Run(ctx context.Context) error {
	if err := s.checkDeps(); err != nil {
		return err
	}
	fmt.Fprintln(s.Out, "Describe what you want to do. Type 'help' for commands, 'exit' to quit.")

	for {
		line, err := s.Reader.ReadLine(inputPrompt)
		switch {
		case errors.Is(err, ports.ErrInterrupted):
			fmt.Fprintln(s.Out, "\n(interrupted, type 'exit' to quit)")
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.Out, "bye")
			return nil
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "exit", "quit":
			return nil
		case "clear":
			fmt.Fprint(s.Out, "\033[2J\033[H")
			continue
		case "help":
			s.printHelp()
			continue
		}

		s.Reader.AppendHistory(input)
		if err := s.turn(ctx, input); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.Out, "bye")
				return nil
			}
			if errors.Is(err, ports.ErrInterrupted) {
				fmt.Fprintln(s.Out, "\n(turn aborted)")
				continue
			}
			fmt.Fprintf(s.Out, "error: %v\n", err)
		}
	}
}

// RunOnce handles a single non-interactive request. In raw mode only the
// bare command is printed and nothing is persisted.
func (s *Session) RunOnce(ctx context.Context, request string, raw bool) error {
	if err := s.checkDeps(); err != nil {
		return err
	}
	if raw {
		text, err := s.generate(ctx, request)
		if err != nil {
			return err
		}
		command, _ := sanitize.Sanitize(text)
		fmt.Fprintln(s.Out, command)
		return nil
	}
	err := s.turn(ctx, request)
	if errors.Is(err, io.EOF) || errors.Is(err, ports.ErrInterrupted) {
		return nil
	}
	return err
}

// turn drives one request from model call through commit. Any error before
// commit leaves history and the window untouched.
func (s *Session) turn(ctx context.Context, input string) error {
	text, err := s.generate(ctx, input)
	if err != nil {
		return err
	}

	command, explanation := sanitize.Sanitize(text)
	if command == "" {
		return errors.New("model returned an empty command")
	}
	s.pending = command

	fmt.Fprintf(s.Out, "\nSuggested command:\n\n    %s\n", s.pending)
	if explanation != "" {
		fmt.Fprintf(s.Out, "\n%s\n", explanation)
	}
	fmt.Fprintln(s.Out)

	return s.confirmLoop(ctx, input)
}

// generate composes the windowed prompt and context-enriched system prompt,
// consults the cache, and calls the provider.
func (s *Session) generate(ctx context.Context, input string) (string, error) {
	userPrompt := s.window.Compose(input)
	systemPrompt := baseSystemPrompt
	if s.Harvester != nil {
		if snippet := s.Harvester.Harvest(ctx); snippet != "" {
			systemPrompt += "\n\nCurrent environment:\n" + snippet
		}
	}

	key := responseKey(userPrompt, systemPrompt)
	if s.Cache != nil {
		if text, ok := s.Cache.Get(key); ok {
			s.Logger.Debug("response cache hit", map[string]interface{}{"key": key})
			return text, nil
		}
	}

	s.Logger.Debug("calling provider", map[string]interface{}{"provider": s.Provider.Name()})
	text, err := s.Provider.Generate(ctx, userPrompt, systemPrompt)
	if err != nil {
		return "", err
	}
	if s.Cache != nil {
		s.Cache.Set(key, text)
	}
	return text, nil
}

// confirmLoop runs the confirm/edit dialogue until the pending command is
// executed or skipped, then commits. The edit sub-dialogue may recur any
// number of times; only the operator ends it.
func (s *Session) confirmLoop(ctx context.Context, input string) error {
	for {
		answer, err := s.Reader.ReadLine("Execute? [y/N/e]: ")
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			s.execute(ctx)
			s.commit(input)
			return nil
		case "n", "no", "":
			s.copyToClipboard()
			s.commit(input)
			return nil
		case "e", "edit":
			if err := s.edit(ctx); err != nil {
				return err
			}
		default:
			fmt.Fprintln(s.Out, "Please answer y, n, or e.")
		}
	}
}

// edit reads one edit instruction and revises the pending command: direct
// commands replace it verbatim, natural language goes through the model. A
// model failure falls back to the literal edit text with a warning.
func (s *Session) edit(ctx context.Context) error {
	instruction, err := s.Reader.ReadLine("Edit (new command or description): ")
	if errors.Is(err, ports.ErrInterrupted) {
		fmt.Fprintln(s.Out)
		return nil
	}
	if err != nil {
		return err
	}
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return nil
	}

	if isDirectCommand(instruction) {
		s.pending = instruction
	} else {
		text, err := s.Provider.Generate(ctx, editPrompt(s.pending, instruction), editSystemPrompt)
		if err != nil {
			s.Logger.Warn("edit call failed, using edit text verbatim", map[string]interface{}{"error": err.Error()})
			fmt.Fprintf(s.Out, "warning: model edit failed (%v), using your text as the command\n", err)
			s.pending = instruction
		} else if revised, _ := sanitize.Sanitize(text); revised != "" {
			s.pending = revised
		} else {
			s.pending = instruction
		}
	}

	fmt.Fprintf(s.Out, "\n    %s\n\n", s.pending)
	return nil
}

// execute runs the pending command and displays its output and exit status.
// Failures are displayed, never fatal to the session.
func (s *Session) execute(ctx context.Context) {
	fmt.Fprintln(s.Out, "Running...")
	result, err := s.Executor.Execute(ctx, s.pending)
	if err != nil {
		fmt.Fprintf(s.Out, "error: %v\n", err)
		return
	}
	if result.Stdout != "" {
		fmt.Fprint(s.Out, result.Stdout)
		if !strings.HasSuffix(result.Stdout, "\n") {
			fmt.Fprintln(s.Out)
		}
	}
	if result.Stderr != "" {
		fmt.Fprint(s.Out, result.Stderr)
		if !strings.HasSuffix(result.Stderr, "\n") {
			fmt.Fprintln(s.Out)
		}
	}
	if result.ExitCode != 0 {
		fmt.Fprintf(s.Out, "(exit status %d)\n", result.ExitCode)
	}
}

// commit persists the final pair and slides the conversational window. A
// history write failure is a warning, not an abort.
func (s *Session) commit(input string) {
	if err := s.History.Append(input, s.pending); err != nil {
		s.Logger.Warn("history write failed", map[string]interface{}{"error": err.Error()})
		fmt.Fprintf(s.Out, "warning: could not write history: %v\n", err)
	}
	s.window.Push(domain.Exchange{Prompt: input, Command: s.pending})
}

func (s *Session) copyToClipboard() {
	if s.Clipboard == nil || !s.Clipboard.Enabled() {
		return
	}
	if err := s.Clipboard.Copy(s.pending); err == nil {
		fmt.Fprintln(s.Out, "Command copied to clipboard.")
	}
}

func (s *Session) printHelp() {
	fmt.Fprint(s.Out, `Type a request in plain language to get a shell command.

Commands:
  help        show this message
  clear       clear the screen
  exit, quit  leave the session

At the Execute? prompt:
  y    run the suggested command
  n    skip it (still recorded in history)
  e    edit it, either with a replacement command or a description
`)
}

func (s *Session) checkDeps() error {
	if s.Provider == nil || s.History == nil || s.Executor == nil || s.Reader == nil || s.Logger == nil {
		return errors.New("services.Session dependencies not satisfied")
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}
	return nil
}

func responseKey(userPrompt, systemPrompt string) string {
	sum := sha256.Sum256([]byte(userPrompt + "\x00" + systemPrompt))
	return hex.EncodeToString(sum[:])
}
