// Package assets holds embedded default files shipped with the binary.
package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration written to
// ~/.wtf/config.yaml on first run.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte
