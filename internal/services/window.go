package services

import (
	"fmt"
	"strings"

	"github.com/doeshing/wtf/internal/domain"
)

// windowCapacity bounds the rolling conversational context: at most this
// many recent exchanges enrich a new prompt, oldest evicted first.
const windowCapacity = 3

// Window is the bounded FIFO of recent (prompt, command) exchanges. It
// lives in memory for one session and is never persisted.
type Window struct {
	exchanges []domain.Exchange
}

// Push records a committed exchange, evicting the oldest one when full.
func (w *Window) Push(ex domain.Exchange) {
	w.exchanges = append(w.exchanges, ex)
	if len(w.exchanges) > windowCapacity {
		w.exchanges = w.exchanges[len(w.exchanges)-windowCapacity:]
	}
}

// Len returns the number of retained exchanges.
func (w *Window) Len() int {
	return len(w.exchanges)
}

// Compose renders the prompt sent to the provider: a transcript of the
// retained exchanges followed by the new request, or the raw request when
// the window is empty.
func (w *Window) Compose(request string) string {
	if len(w.exchanges) == 0 {
		return request
	}
	var b strings.Builder
	b.WriteString("Previous conversation:\n")
	for _, ex := range w.exchanges {
		fmt.Fprintf(&b, "User: %s\nAssistant: %s\n", ex.Prompt, ex.Command)
	}
	b.WriteString("\nNew request: ")
	b.WriteString(request)
	return b.String()
}
