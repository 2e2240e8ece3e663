package scaffold

import "embed"

// templateFS holds the embedded artifact templates. Base templates live
// under templates/base; each feature contributes its own subdirectory.
//
//go:embed all:templates
var templateFS embed.FS
