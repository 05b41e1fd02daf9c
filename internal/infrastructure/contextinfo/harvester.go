// Package contextinfo gathers ambient working-directory and git-status
// snippets used to enrich the model's system prompt. Everything here is
// best-effort: any failure degrades to an empty contribution.
package contextinfo

import (
	"context"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"
)

const (
	maxListingEntries = 50
	maxGitStatusLines = 20
	truncationMarker  = "...(truncated)"

	subprocessTimeout = 2 * time.Second
)

// Harvester collects directory and version-control context for the current
// working directory.
type Harvester struct {
	dir      string
	disabled bool
}

// New builds a Harvester. An empty dir means the process working directory.
// Harvesting is disabled entirely when the opt-out is set.
func New(dir string, disabled bool) *Harvester {
	return &Harvester{
		dir:      dir,
		disabled: disabled || os.Getenv("WTF_NO_CONTEXT") != "",
	}
}

// Harvest returns free text describing the working directory, or an empty
// string when disabled or nothing could be gathered.
func (h *Harvester) Harvest(ctx context.Context) string {
	if h.disabled {
		return ""
	}

	dir := h.dir
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			return ""
		}
	}

	var sections []string
	if listing := listDirectory(dir); listing != "" {
		sections = append(sections, "Directory listing:\n"+listing)
	}
	if status := gitStatus(ctx, dir); status != "" {
		sections = append(sections, "Git status:\n"+status)
	}
	return strings.Join(sections, "\n\n")
}

// listDirectory returns immediate non-dotfile entry names, sorted, capped at
// maxListingEntries with an explicit marker when more exist.
func listDirectory(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var names []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return ""
	}
	if len(names) > maxListingEntries {
		names = append(names[:maxListingEntries], truncationMarker)
	}
	return strings.Join(names, "\n")
}

// gitStatus captures short-form status, up to maxGitStatusLines lines. Not a
// repository, or git being absent, is not an error.
func gitStatus(ctx context.Context, dir string) string {
	cctx, cancel := context.WithTimeout(ctx, subprocessTimeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, "git", "status", "--short")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	text := strings.TrimRight(string(out), "\n")
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) > maxGitStatusLines {
		lines = append(lines[:maxGitStatusLines], truncationMarker)
	}
	return strings.Join(lines, "\n")
}
