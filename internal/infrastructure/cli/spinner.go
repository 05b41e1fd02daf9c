package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/doeshing/wtf/internal/ports"
)

// Spinner displays an animated spinner during long operations.
type Spinner struct {
	frames   []string
	interval time.Duration
	writer   io.Writer
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewSpinner creates a new spinner writing to w.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{
		frames:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		interval: 80 * time.Millisecond,
		writer:   w,
		stopChan: make(chan struct{}),
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		idx := 0
		for {
			select {
			case <-s.stopChan:
				// Clear the spinner line
				fmt.Fprintf(s.writer, "\r\033[K")
				return
			default:
				fmt.Fprintf(s.writer, "\r%s ", s.frames[idx%len(s.frames)])
				idx++
				time.Sleep(s.interval)
			}
		}
	}()
}

// Stop stops the spinner animation.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopChan)
	s.wg.Wait()
}

// SpinningProvider wraps a ports.Provider so an animation runs on the
// terminal while a model call is in flight.
type SpinningProvider struct {
	inner   ports.Provider
	spinner *Spinner
}

// WithSpinner decorates a provider with a terminal spinner on w.
func WithSpinner(inner ports.Provider, w io.Writer) *SpinningProvider {
	return &SpinningProvider{inner: inner, spinner: NewSpinner(w)}
}

func (p *SpinningProvider) Name() string { return p.inner.Name() }

func (p *SpinningProvider) Generate(ctx context.Context, userPrompt, systemPrompt string) (string, error) {
	p.spinner.Start()
	defer p.spinner.Stop()
	return p.inner.Generate(ctx, userPrompt, systemPrompt)
}

var _ ports.Provider = (*SpinningProvider)(nil)
