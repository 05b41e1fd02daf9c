package sanitize

import (
	"testing"
)

func TestSanitizeSplitsOnFirstSeparator(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantCommand string
		wantExplain string
	}{
		{
			name:        "command with explanation",
			raw:         "curl -s ifconfig.me ### Queries an external service for your public IP.",
			wantCommand: "curl -s ifconfig.me",
			wantExplain: "Queries an external service for your public IP.",
		},
		{
			name:        "no separator",
			raw:         "  ls -la  ",
			wantCommand: "ls -la",
			wantExplain: "",
		},
		{
			name:        "splits on first separator only",
			raw:         "echo hi ### first ### second",
			wantCommand: "echo hi",
			wantExplain: "first ### second",
		},
		{
			name:        "separator with empty explanation",
			raw:         "df -h ###",
			wantCommand: "df -h",
			wantExplain: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, explanation := Sanitize(tt.raw)
			if command != tt.wantCommand {
				t.Errorf("command = %q, want %q", command, tt.wantCommand)
			}
			if explanation != tt.wantExplain {
				t.Errorf("explanation = %q, want %q", explanation, tt.wantExplain)
			}
		})
	}
}

func TestSanitizeStripsFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"fence with language tag", "```bash\nfind . -type f -size +100M\n```", "find . -type f -size +100M"},
		{"fence without language tag", "```\ntar -czvf archive.tar.gz .\n```", "tar -czvf archive.tar.gz ."},
		{"single line fence", "```ls -la```", "ls -la"},
		{"no fence", "git status", "git status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, _ := Sanitize(tt.raw)
			if command != tt.want {
				t.Errorf("Sanitize(%q) command = %q, want %q", tt.raw, command, tt.want)
			}
		})
	}
}

func TestSanitizeFencesOnCommandSideOnly(t *testing.T) {
	raw := "```sh\nls\n``` ### keep ```ticks``` here"
	command, explanation := Sanitize(raw)
	if command != "ls" {
		t.Errorf("command = %q, want %q", command, "ls")
	}
	if explanation != "keep ```ticks``` here" {
		t.Errorf("explanation = %q, want %q", explanation, "keep ```ticks``` here")
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "echo hello", "echo hello"},
		{"color codes removed", "\x1b[36mls -la\x1b[0m", "ls -la"},
		{"bold marker removed", "\x1b[1mSuggested\x1b[0m command", "Suggested command"},
		{"multi parameter sequence", "\x1b[38;5;208mwarm\x1b[0m", "warm"},
		{"bare short sequence", "\x1b[mx", "x"},
		{"truncated sequence dropped", "tail\x1b[3", "tail"},
		{"lone escape dropped", "a\x1bb", "ab"},
		{"escape before sequence", "\x1b\x1b[0m[", "["},
		{"stripped sequence between escape and bracket", "x\x1b\x1b[31m[0m", "x[0m"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.in); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripANSIIdempotent(t *testing.T) {
	inputs := []string{
		"plain",
		"\x1b[31mred\x1b[0m and \x1b[1mbold\x1b[22m",
		"\x1b\x1b[31mnested",
		"mixed \x1b[2J\x1b[H screen clear",
		"dangling \x1b[12",
		"\x1b\x1b[0m[",
		"x\x1b\x1b[31m[0m",
		"\x1b[\x1b[0m",
		"a\x1bb\x1b",
	}
	for _, in := range inputs {
		once := StripANSI(in)
		twice := StripANSI(once)
		if once != twice {
			t.Errorf("StripANSI not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
