package cli

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/doeshing/wtf/internal/ports"
)

// Clipboard pipes text into the platform clipboard tool. A skipped command
// lands here so the user can paste it instead of retyping it.
type Clipboard struct{}

// NewClipboard builds the clipboard adapter.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Enabled reports whether this platform has a known clipboard tool.
func (c *Clipboard) Enabled() bool {
	return runtime.GOOS == "darwin" || runtime.GOOS == "linux"
}

// Copy writes text to the clipboard: pbcopy on macOS, xclip or wl-copy on
// Linux, whichever is installed.
func (c *Clipboard) Copy(text string) error {
	cmd, err := c.tool()
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

func (c *Clipboard) tool() (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy"), nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		}
		if _, err := exec.LookPath("wl-copy"); err == nil {
			return exec.Command("wl-copy"), nil
		}
		return nil, fmt.Errorf("no clipboard tool found (need xclip or wl-copy)")
	default:
		return nil, fmt.Errorf("no clipboard support on %s", runtime.GOOS)
	}
}

var _ ports.Clipboard = (*Clipboard)(nil)
