package services

import "testing"

func TestIsDirectCommand(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"find . -size +1G", true},
		{"only show top 10", false},
		{"du -sh * | sort -h", true},
		{"make build && make test", true},
		{"cd /tmp; ls", true},
		{"grep -r TODO .", true},
		{"ls", true},
		{"cat /etc/hosts", true},
		{"curl example.com", true},
		{"git log --oneline", true},
		{"docker ps -a", true},
		{"kubectl get pods", true},
		{"use a human readable format", false},
		{"awk '{print $1}'", false}, // known false negative, goes through the model
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := isDirectCommand(tt.text); got != tt.want {
				t.Errorf("isDirectCommand(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
